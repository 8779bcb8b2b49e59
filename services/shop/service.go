package shop

import (
	"context"
	"sync"

	"github.com/MarcGrol/shopfront/lib/mybus"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/basket"
	"github.com/MarcGrol/shopfront/services/catalog"
	"github.com/MarcGrol/shopfront/services/order"
	"github.com/MarcGrol/shopfront/services/shop/shopevents"
	"github.com/MarcGrol/shopfront/services/shopapi"
	"github.com/MarcGrol/shopfront/services/validation"
)

// service ties the aggregates, the remote api and the presentation
// surfaces together. All coupling runs through the event bus: views
// emit intents, aggregates mutate and re-emit derived state, views
// re-render from the new snapshot. Nothing here polls anything.
type service struct {
	bus            mybus.EventBus
	products       *catalog.Store
	basket         *basket.Basket
	draft          *order.Draft
	catalogGetter  shopapi.CatalogGetter
	orderSubmitter shopapi.OrderSubmitter
	nower          mytime.Nower
	uuider         myuuid.UUIDer
	logger         mylog.Logger

	page         *pageView
	productV     *productView
	basketV      *basketView
	orderForm    *formView
	contactsForm *formView
	success      *successView

	// one basket and one draft per process: the session mutex
	// serializes every mutating event chain, so within a chain
	// dispatch is single-threaded and synchronous.
	sessionMutex sync.Mutex
	requestCtx   context.Context

	// the checkout form whose fields were validated most recently;
	// "order:changed-button" applies to this one.
	activeForm *formView
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(bus mybus.EventBus, products *catalog.Store, bskt *basket.Basket, draft *order.Draft,
	catalogGetter shopapi.CatalogGetter, orderSubmitter shopapi.OrderSubmitter,
	nower mytime.Nower, uuider myuuid.UUIDer, logger mylog.Logger) *service {
	s := &service{
		bus:            bus,
		products:       products,
		basket:         bskt,
		draft:          draft,
		catalogGetter:  catalogGetter,
		orderSubmitter: orderSubmitter,
		nower:          nower,
		uuider:         uuider,
		logger:         logger,

		page:         newPageView(),
		productV:     newProductView(),
		basketV:      newBasketView(),
		orderForm:    newFormView(orderFormPageTemplate),
		contactsForm: newFormView(contactsFormPageTemplate),
		success:      newSuccessView(),
	}
	s.activeForm = s.orderForm

	return s
}

// Subscribe registers every event handler. Handlers run synchronously
// in registration order; a handler that emits itself (the aggregates
// do) runs that nested emission to completion first.
func (s *service) Subscribe(c context.Context) {
	s.bus.On(shopevents.CatalogLoadedName, s.onCatalogLoaded)
	s.bus.On(shopevents.CatalogFailedName, s.onCatalogFailed)
	s.bus.On(shopevents.ProductSelectedName, s.onProductSelected)
	s.bus.On(shopevents.ProductAddedName, s.onProductAdded)
	s.bus.On(shopevents.ProductRemovedName, s.onProductRemoved)
	s.bus.On(shopevents.BasketChangedName, s.onBasketChanged)
	s.bus.On(shopevents.BasketOpenedName, s.onBasketOpened)
	s.bus.On(shopevents.BasketQuantityChangeName, s.onBasketQuantityChanged)
	s.bus.On(shopevents.BasketCheckoutName, s.onBasketCheckout)
	s.bus.On(shopevents.OrderFormChangedName, s.onOrderFormChanged)
	s.bus.On(shopevents.OrderContactsChangedName, s.onOrderContactsChanged)
	s.bus.On(shopevents.OrderChangedName, s.onOrderChanged)
	s.bus.On(shopevents.OrderButtonChangedName, s.onOrderButtonChanged)
	s.bus.On(shopevents.OrderSubmitName, s.onOrderSubmit)
	s.bus.On(shopevents.ContactsSubmitName, s.onContactsSubmit)
	s.bus.On(shopevents.OrderCreatedName, s.onOrderCreated)
	s.bus.On(shopevents.OrderFailedName, s.onOrderFailed)
	s.bus.On(shopevents.SuccessDismissedName, s.onSuccessDismissed)
}

// dispatch serializes an inbound gesture: one event chain at a time,
// with the request context available to handlers that do IO.
func (s *service) dispatch(c context.Context, event mybus.Event) {
	s.sessionMutex.Lock()
	defer s.sessionMutex.Unlock()

	s.requestCtx = c
	defer func() {
		s.requestCtx = nil
	}()

	s.bus.Emit(event)
}

func (s *service) ctx() context.Context {
	if s.requestCtx != nil {
		return s.requestCtx
	}
	return context.Background()
}

// LoadCatalog performs the one-shot catalog read that seeds the
// snapshot. A failing fetch never crashes the storefront: it surfaces
// as a "catalog:error" event instead.
func (s *service) LoadCatalog(c context.Context) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Loading catalog")

	response, err := s.catalogGetter.FetchCatalog(c)
	if err != nil {
		s.logger.Log(c, "", mylog.SeverityError, "Error loading catalog: %s", err)
		s.dispatch(c, shopevents.CatalogFailed{Message: err.Error()})
		return
	}

	s.products.Load(response.Items)
	s.dispatch(c, shopevents.CatalogLoaded{Total: s.products.Count()})
}

func (s *service) onCatalogLoaded(e mybus.Event) {
	event := e.(shopevents.CatalogLoaded)

	s.logger.Log(s.ctx(), "", mylog.SeverityInfo, "Catalog loaded with %d products", event.Total)

	s.page.Update(PagePatch{
		Products:    patch(s.products.Items()),
		BasketCount: patch(s.basket.Count()),
	})
}

func (s *service) onCatalogFailed(e mybus.Event) {
	event := e.(shopevents.CatalogFailed)

	s.page.Update(PagePatch{
		Notice: patch("Failed to load catalog: " + event.Message),
	})
}

func (s *service) onProductSelected(e mybus.Event) {
	event := e.(shopevents.ProductSelected)

	product, found := s.products.GetProductByUID(event.ProductUID)
	if !found {
		// looking up a uid outside the snapshot is caller misuse
		s.logger.Log(s.ctx(), event.ProductUID, mylog.SeverityError, "Product %s not in catalog snapshot", event.ProductUID)
		return
	}

	s.productV.Update(ProductSnapshot{
		Product:  product,
		InBasket: s.basket.Contains(product.UID),
	})
}

func (s *service) onProductAdded(e mybus.Event) {
	event := e.(shopevents.ProductAdded)

	product, found := s.products.GetProductByUID(event.ProductUID)
	if !found {
		s.logger.Log(s.ctx(), event.ProductUID, mylog.SeverityError, "Product %s not in catalog snapshot", event.ProductUID)
		return
	}

	s.basket.Add(product)
	s.productV.Update(ProductSnapshot{
		Product:  product,
		InBasket: s.basket.Contains(product.UID),
	})
}

func (s *service) onProductRemoved(e mybus.Event) {
	event := e.(shopevents.ProductRemoved)

	s.basket.Remove(event.ProductUID)

	if product, found := s.products.GetProductByUID(event.ProductUID); found {
		s.productV.Update(ProductSnapshot{
			Product:  product,
			InBasket: false,
		})
	}
}

func (s *service) onBasketChanged(e mybus.Event) {
	event := e.(shopevents.BasketChanged)

	s.refreshBasketView()
	s.page.Update(PagePatch{
		BasketCount: patch(len(event.ProductUIDs)),
	})
}

func (s *service) onBasketOpened(e mybus.Event) {
	s.refreshBasketView()
}

func (s *service) onBasketQuantityChanged(e mybus.Event) {
	s.refreshBasketView()
}

func (s *service) refreshBasketView() {
	items := s.basket.Items()

	lines := make([]BasketLine, 0, len(items))
	for idx, item := range items {
		lines = append(lines, BasketLine{
			Index:   idx + 1,
			Product: item.Product,
		})
	}

	total := s.basket.Total()
	s.basketV.Update(BasketSnapshot{
		Lines:       lines,
		Total:       total,
		CanCheckout: len(lines) > 0 && total > 0,
	})
}

// onBasketCheckout starts a fresh checkout: the draft is reset and gets
// a snapshot of the basket, with priceless products excluded from the
// order.
func (s *service) onBasketCheckout(e mybus.Event) {
	s.draft.Clear()

	pricedUIDs := []string{}
	for _, item := range s.basket.Items() {
		if item.Product.IsPriced() {
			pricedUIDs = append(pricedUIDs, item.Product.UID)
		}
	}
	s.draft.SetBasketContents(pricedUIDs, s.basket.Total())

	s.orderForm.Reset()
	s.contactsForm.Reset()
	s.activeForm = s.orderForm
}

func (s *service) onOrderFormChanged(e mybus.Event) {
	event := e.(shopevents.OrderFormChanged)

	s.activeForm = s.orderForm
	s.orderForm.Update(FormPatch{
		Payment: patch(event.Payment),
		Address: patch(event.Address),
	})

	isValid := s.draft.ValidateForm(map[validation.Field]string{
		validation.FieldPayment: event.Payment,
		validation.FieldAddress: event.Address,
	})
	s.draft.SetPaymentDetails(event.Payment, event.Address)

	s.bus.Emit(shopevents.OrderButtonChanged{IsValid: isValid})
}

func (s *service) onOrderContactsChanged(e mybus.Event) {
	event := e.(shopevents.OrderContactsChanged)

	s.activeForm = s.contactsForm
	s.contactsForm.Update(FormPatch{
		Email: patch(event.Email),
		Phone: patch(event.Phone),
	})

	isValid := s.draft.ValidateForm(map[validation.Field]string{
		validation.FieldEmail: event.Email,
		validation.FieldPhone: event.Phone,
	})
	s.draft.SetContactDetails(event.Email, event.Phone)

	s.bus.Emit(shopevents.OrderButtonChanged{IsValid: isValid})
}

func (s *service) onOrderChanged(e mybus.Event) {
	event := e.(shopevents.OrderChanged)

	s.activeForm.Update(FormPatch{
		Message: patch(event.Message),
	})
}

func (s *service) onOrderButtonChanged(e mybus.Event) {
	event := e.(shopevents.OrderButtonChanged)

	s.activeForm.Update(FormPatch{
		IsValid: patch(event.IsValid),
	})
}

func (s *service) onOrderSubmit(e mybus.Event) {
	event := e.(shopevents.OrderSubmitted)

	s.draft.SetPaymentDetails(event.Payment, event.Address)
	s.activeForm = s.contactsForm
}

// onContactsSubmit finalizes the checkout: when the draft passes the
// completion predicate the order goes out exactly once. A rejected or
// failed submission leaves the draft untouched so the shopper can
// retry.
func (s *service) onContactsSubmit(e mybus.Event) {
	event := e.(shopevents.ContactsSubmitted)

	s.draft.SetContactDetails(event.Email, event.Phone)

	if !s.draft.Validate() {
		s.logger.Log(s.ctx(), "", mylog.SeverityWarn, "Draft not submittable yet")
		return
	}

	result, err := s.orderSubmitter.SubmitOrder(s.ctx(), s.draft.Snapshot())
	if err != nil {
		s.logger.Log(s.ctx(), "", mylog.SeverityError, "Error submitting order: %s", err)
		s.bus.Emit(shopevents.OrderFailed{Message: result.Error})
		return
	}

	orderUID := result.UID
	if orderUID == "" {
		orderUID = s.uuider.Create()
	}
	s.logger.Log(s.ctx(), orderUID, mylog.SeverityInfo, "Order %s created at %s", orderUID, s.nower.Now().Format("2006-01-02T15:04:05Z07:00"))

	s.bus.Emit(shopevents.OrderCreated{
		OrderUID: orderUID,
		Total:    s.draft.Total(),
	})

	// success: basket and draft both start over
	s.basket.Clear()
	s.draft.Clear()
}

func (s *service) onOrderCreated(e mybus.Event) {
	event := e.(shopevents.OrderCreated)

	s.success.Update(SuccessSnapshot{
		OrderUID: event.OrderUID,
		Total:    event.Total,
	})
}

func (s *service) onOrderFailed(e mybus.Event) {
	event := e.(shopevents.OrderFailed)

	message := "Order submission failed"
	if event.Message != "" {
		message = "Order submission failed: " + event.Message
	}

	s.contactsForm.Update(FormPatch{
		Message: patch(message),
	})
	s.page.Update(PagePatch{
		Notice: patch(message),
	})
}

func (s *service) onSuccessDismissed(e mybus.Event) {
	s.draft.Clear()
	s.page.Update(PagePatch{
		Notice: patch(""),
	})
}
