package order

import (
	"sync"

	"github.com/MarcGrol/shopfront/lib/mybus"
	"github.com/MarcGrol/shopfront/services/shop/shopevents"
	"github.com/MarcGrol/shopfront/services/validation"
)

// Draft is the in-progress order: the single source of truth for
// checkout state. It is created once at startup; the payment/address
// form and the contacts form each write their own subset of its fields,
// so switching between the two checkout steps never discards values
// entered in the other step.
//
// The checkout stage (empty, address, contacts, submittable) is never
// stored; it is always recomputed from the field values, so stage and
// data cannot disagree.
type Draft struct {
	mutex sync.Mutex

	payment string
	email   string
	phone   string
	address string
	total   int64
	items   []string

	engine    *validation.Engine
	publisher mybus.EventPublisher
}

// Use dependency injection to isolate the bus and easy testing
func NewDraft(engine *validation.Engine, publisher mybus.EventPublisher) *Draft {
	return &Draft{
		engine:    engine,
		publisher: publisher,
	}
}

// ValidateField evaluates a single field and surfaces the result as a
// one-message "order:changed" update: the failing message, or "" when
// the field now passes.
func (d *Draft) ValidateField(field validation.Field, value string) string {
	message := d.engine.ValidateField(field, value)

	d.publisher.Emit(shopevents.OrderChanged{Message: message})

	return message
}

// ValidateForm evaluates the calling form's field subset and reports
// whether it is valid. The aggregated error is rendered under the same
// one-message contract: the first failing field in canonical order
// wins, matching the one-line error display of the forms.
func (d *Draft) ValidateForm(fields map[validation.Field]string) bool {
	errors := d.engine.ValidateForm(fields)

	message := ""
	for _, field := range validation.AllFields() {
		if failure, found := errors[field]; found {
			message = failure
			break
		}
	}
	d.publisher.Emit(shopevents.OrderChanged{Message: message})

	return len(errors) == 0
}

// Validate is the checkout-completion predicate guarding remote
// submission: a positive total, at least one item and all four required
// fields populated.
func (d *Draft) Validate() bool {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.total > 0 &&
		len(d.items) > 0 &&
		d.payment != "" &&
		d.email != "" &&
		d.phone != "" &&
		d.address != ""
}

// Clear resets every field to its default.
func (d *Draft) Clear() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.payment = ""
	d.email = ""
	d.phone = ""
	d.address = ""
	d.total = 0
	d.items = nil
}

func (d *Draft) SetPaymentDetails(payment string, address string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.payment = payment
	d.address = address
}

func (d *Draft) SetContactDetails(email string, phone string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.email = email
	d.phone = phone
}

// SetBasketContents snapshots the basket at checkout time.
func (d *Draft) SetBasketContents(productUIDs []string, total int64) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.items = make([]string, len(productUIDs))
	copy(d.items, productUIDs)
	d.total = total
}

func (d *Draft) Total() int64 {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	return d.total
}

// Snapshot returns the submission payload; the submission path reads
// the draft, it never mutates it.
func (d *Draft) Snapshot() Order {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	items := make([]string, len(d.items))
	copy(items, d.items)

	return Order{
		Payment: d.payment,
		Email:   d.email,
		Phone:   d.phone,
		Address: d.address,
		Total:   d.total,
		Items:   items,
	}
}
