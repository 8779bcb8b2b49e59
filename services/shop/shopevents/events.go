package shopevents

// Event names form the public seam between the presentation surfaces and
// the aggregates. They must stay stable: views subscribe on the exact
// strings below.
const (
	BasketChangedName        = "basket:changed"
	BasketOpenedName         = "basket:open"
	BasketCheckoutName       = "basket:checkout"
	BasketQuantityChangeName = "basket:quantity-change"
	ProductSelectedName      = "product:select"
	ProductAddedName         = "product:add"
	ProductRemovedName       = "product:remove"
	OrderChangedName         = "order:changed"
	OrderFormChangedName     = "order:changed-form"
	OrderContactsChangedName = "order:changed-contacts"
	OrderButtonChangedName   = "order:changed-button"
	OrderSubmitName          = "order:submit"
	ContactsSubmitName       = "contacts:submit"
	OrderCreatedName         = "order:created"
	OrderFailedName          = "order:error"
	CatalogLoadedName        = "catalog:loaded"
	CatalogFailedName        = "catalog:error"
	SuccessDismissedName     = "success:submit"
)

// BasketChanged carries the derived basket state: product uids in
// insertion order plus the current total.
type BasketChanged struct {
	ProductUIDs []string
	Total       int64
}

func (e BasketChanged) GetEventName() string {
	return BasketChangedName
}

type BasketOpened struct{}

func (e BasketOpened) GetEventName() string {
	return BasketOpenedName
}

type BasketCheckoutStarted struct{}

func (e BasketCheckoutStarted) GetEventName() string {
	return BasketCheckoutName
}

type BasketQuantityChanged struct{}

func (e BasketQuantityChanged) GetEventName() string {
	return BasketQuantityChangeName
}

type ProductSelected struct {
	ProductUID string
}

func (e ProductSelected) GetEventName() string {
	return ProductSelectedName
}

type ProductAdded struct {
	ProductUID string
}

func (e ProductAdded) GetEventName() string {
	return ProductAddedName
}

type ProductRemoved struct {
	ProductUID string
}

func (e ProductRemoved) GetEventName() string {
	return ProductRemovedName
}

// OrderChanged surfaces at most one validation message at a time,
// matching the one-line error display of the checkout forms.
type OrderChanged struct {
	Message string
}

func (e OrderChanged) GetEventName() string {
	return OrderChangedName
}

type OrderFormChanged struct {
	Payment string
	Address string
}

func (e OrderFormChanged) GetEventName() string {
	return OrderFormChangedName
}

type OrderContactsChanged struct {
	Email string
	Phone string
}

func (e OrderContactsChanged) GetEventName() string {
	return OrderContactsChangedName
}

type OrderButtonChanged struct {
	IsValid bool
}

func (e OrderButtonChanged) GetEventName() string {
	return OrderButtonChangedName
}

type OrderSubmitted struct {
	Payment string
	Address string
}

func (e OrderSubmitted) GetEventName() string {
	return OrderSubmitName
}

type ContactsSubmitted struct {
	Email string
	Phone string
}

func (e ContactsSubmitted) GetEventName() string {
	return ContactsSubmitName
}

type OrderCreated struct {
	OrderUID string
	Total    int64
}

func (e OrderCreated) GetEventName() string {
	return OrderCreatedName
}

type OrderFailed struct {
	Message string
}

func (e OrderFailed) GetEventName() string {
	return OrderFailedName
}

type CatalogLoaded struct {
	Total int
}

func (e CatalogLoaded) GetEventName() string {
	return CatalogLoadedName
}

type CatalogFailed struct {
	Message string
}

func (e CatalogFailed) GetEventName() string {
	return CatalogFailedName
}

type SuccessDismissed struct{}

func (e SuccessDismissed) GetEventName() string {
	return SuccessDismissedName
}
