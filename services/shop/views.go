package shop

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/MarcGrol/shopfront/services/catalog"
)

// View is the binding contract for every presentation surface: it
// receives data through a single Update accepting a partial snapshot of
// its own display fields (applying the same snapshot twice yields the
// same rendered result), and it never caches aggregate state beyond the
// latest snapshot it was given. Views are followers, never sources of
// truth; user gestures travel back as bus emissions, never as direct
// calls into the aggregates.
type View[T any] interface {
	Update(snapshot T)
}

//go:embed templates
var templateFolder embed.FS

var (
	storefrontPageTemplate   *template.Template
	productPageTemplate      *template.Template
	basketPageTemplate       *template.Template
	orderFormPageTemplate    *template.Template
	contactsFormPageTemplate *template.Template
	successPageTemplate      *template.Template
)

func init() {
	storefrontPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/storefront.html"))
	productPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/product.html"))
	basketPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/basket.html"))
	orderFormPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/order_form.html"))
	contactsFormPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/contacts_form.html"))
	successPageTemplate = template.Must(template.ParseFS(templateFolder, "templates/success.html"))
}

// patch builds a pointer for partial snapshot fields.
func patch[T any](value T) *T {
	return &value
}

// PagePatch is a partial snapshot of the storefront page: nil fields
// are left as they are.
type PagePatch struct {
	Products    *[]catalog.Product
	BasketCount *int
	Notice      *string
}

type pageSnapshot struct {
	Products    []catalog.Product
	BasketCount int
	Notice      string
}

type pageView struct {
	mutex    sync.RWMutex
	snapshot pageSnapshot
}

func newPageView() *pageView {
	return &pageView{}
}

func (v *pageView) Update(p PagePatch) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if p.Products != nil {
		v.snapshot.Products = *p.Products
	}
	if p.BasketCount != nil {
		v.snapshot.BasketCount = *p.BasketCount
	}
	if p.Notice != nil {
		v.snapshot.Notice = *p.Notice
	}
}

func (v *pageView) Render(w io.Writer) error {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return storefrontPageTemplate.Execute(w, v.snapshot)
}

// ProductSnapshot is what the product detail surface shows: the product
// itself plus whether it already sits in the basket.
type ProductSnapshot struct {
	Product  catalog.Product
	InBasket bool
}

type productView struct {
	mutex    sync.RWMutex
	snapshot ProductSnapshot
}

func newProductView() *productView {
	return &productView{}
}

func (v *productView) Update(snapshot ProductSnapshot) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.snapshot = snapshot
}

func (v *productView) Render(w io.Writer) error {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return productPageTemplate.Execute(w, v.snapshot)
}

type BasketLine struct {
	Index   int
	Product catalog.Product
}

// BasketSnapshot is recomputed wholesale on every basket change.
type BasketSnapshot struct {
	Lines       []BasketLine
	Total       int64
	CanCheckout bool
}

type basketView struct {
	mutex    sync.RWMutex
	snapshot BasketSnapshot
}

func newBasketView() *basketView {
	return &basketView{}
}

func (v *basketView) Update(snapshot BasketSnapshot) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.snapshot = snapshot
}

func (v *basketView) Render(w io.Writer) error {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return basketPageTemplate.Execute(w, v.snapshot)
}

// FormPatch is a partial snapshot shared by both checkout forms: the
// entered values, the one-line error message and the submit toggle.
type FormPatch struct {
	Payment *string
	Address *string
	Email   *string
	Phone   *string
	Message *string
	IsValid *bool
}

type formSnapshot struct {
	Payment string
	Address string
	Email   string
	Phone   string
	Message string
	IsValid bool
}

type formView struct {
	mutex    sync.RWMutex
	tmpl     *template.Template
	snapshot formSnapshot
}

func newFormView(tmpl *template.Template) *formView {
	return &formView{
		tmpl: tmpl,
	}
}

func (v *formView) Update(p FormPatch) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if p.Payment != nil {
		v.snapshot.Payment = *p.Payment
	}
	if p.Address != nil {
		v.snapshot.Address = *p.Address
	}
	if p.Email != nil {
		v.snapshot.Email = *p.Email
	}
	if p.Phone != nil {
		v.snapshot.Phone = *p.Phone
	}
	if p.Message != nil {
		v.snapshot.Message = *p.Message
	}
	if p.IsValid != nil {
		v.snapshot.IsValid = *p.IsValid
	}
}

func (v *formView) Snapshot() formSnapshot {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return v.snapshot
}

func (v *formView) Reset() {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.snapshot = formSnapshot{}
}

func (v *formView) Render(w io.Writer) error {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return v.tmpl.Execute(w, v.snapshot)
}

// SuccessSnapshot feeds the order confirmation surface.
type SuccessSnapshot struct {
	OrderUID string
	Total    int64
}

type successView struct {
	mutex    sync.RWMutex
	snapshot SuccessSnapshot
}

func newSuccessView() *successView {
	return &successView{}
}

func (v *successView) Update(snapshot SuccessSnapshot) {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	v.snapshot = snapshot
}

func (v *successView) Render(w io.Writer) error {
	v.mutex.RLock()
	defer v.mutex.RUnlock()

	return successPageTemplate.Execute(w, v.snapshot)
}
