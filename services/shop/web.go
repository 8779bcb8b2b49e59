package shop

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/shopfront/lib/mycontext"
	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/myhttp"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/shop/shopevents"
)

func (s *service) RegisterEndpoints(c context.Context, router *mux.Router) {

	// Endpoints that compose the userinterface
	router.HandleFunc("/", s.storefrontPage()).Methods("GET")
	router.HandleFunc("/product/{productUID}", s.productDetailPage()).Methods("GET")
	router.HandleFunc("/basket", s.basketPage()).Methods("GET")
	router.HandleFunc("/basket/add", s.addToBasket()).Methods("POST")
	router.HandleFunc("/basket/remove", s.removeFromBasket()).Methods("POST")
	router.HandleFunc("/checkout", s.startCheckout()).Methods("POST")
	router.HandleFunc("/checkout/order", s.orderFormPage()).Methods("GET")
	router.HandleFunc("/checkout/order", s.submitOrderForm()).Methods("POST")
	router.HandleFunc("/checkout/contacts", s.contactsFormPage()).Methods("GET")
	router.HandleFunc("/checkout/contacts", s.submitContactsForm()).Methods("POST")
	router.HandleFunc("/checkout/success", s.successPage()).Methods("GET")
	router.HandleFunc("/success", s.dismissSuccess()).Methods("POST")

	// Live field validation for the checkout forms
	router.HandleFunc("/api/checkout/order/validate", s.validateOrderForm()).Methods("POST")
	router.HandleFunc("/api/checkout/contacts/validate", s.validateContactsForm()).Methods("POST")
}

type validationResponse struct {
	IsValid bool
	Message string
}

func (s *service) storefrontPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.page.Render(w)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) productDetailPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		s.logger.Log(c, productUID, mylog.SeverityInfo, "Fetch details of product %s", productUID)

		if _, found := s.products.GetProductByUID(productUID); !found {
			errorWriter.WriteError(c, w, 1, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", productUID)))
			return
		}

		s.dispatch(c, shopevents.ProductSelected{ProductUID: productUID})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.productV.Render(w)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) basketPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		s.dispatch(c, shopevents.BasketOpened{})

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.basketV.Render(w)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) addToBasket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form, err := newBasketItemFormFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		// reject unknown uids at the boundary: past this point a
		// missing product is caller misuse
		if _, found := s.products.GetProductByUID(form.ProductUID); !found {
			errorWriter.WriteError(c, w, 2, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", form.ProductUID)))
			return
		}

		s.logger.Log(c, form.ProductUID, mylog.SeverityInfo, "Adding product %s to basket", form.ProductUID)

		s.dispatch(c, shopevents.ProductAdded{ProductUID: form.ProductUID})

		http.Redirect(w, r, fmt.Sprintf("%s/product/%s", myhttp.HostnameWithScheme(r), form.ProductUID), http.StatusSeeOther)
	}
}

func (s *service) removeFromBasket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form, err := newBasketItemFormFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.logger.Log(c, form.ProductUID, mylog.SeverityInfo, "Removing product %s from basket", form.ProductUID)

		s.dispatch(c, shopevents.ProductRemoved{ProductUID: form.ProductUID})

		http.Redirect(w, r, fmt.Sprintf("%s/basket", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *service) startCheckout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		if s.basket.IsEmpty() || s.basket.Total() <= 0 {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("basket is not ready for checkout"))
			return
		}

		s.logger.Log(c, "", mylog.SeverityInfo, "Starting checkout with %d products", s.basket.Count())

		s.dispatch(c, shopevents.BasketCheckoutStarted{})

		http.Redirect(w, r, fmt.Sprintf("%s/checkout/order", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *service) orderFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.orderForm.Render(w)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) submitOrderForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form, err := newOrderDetailsFormFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.dispatch(c, shopevents.OrderFormChanged{Payment: form.Payment, Address: form.Address})

		if !s.orderForm.Snapshot().IsValid {
			// invalid: re-render with the one-line error
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			s.orderForm.Render(w)
			return
		}

		s.dispatch(c, shopevents.OrderSubmitted{Payment: form.Payment, Address: form.Address})

		http.Redirect(w, r, fmt.Sprintf("%s/checkout/contacts", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *service) contactsFormPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.contactsForm.Render(w)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) submitContactsForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		form, err := newContactDetailsFormFromRequest(r)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		s.dispatch(c, shopevents.OrderContactsChanged{Email: form.Email, Phone: form.Phone})

		if !s.contactsForm.Snapshot().IsValid {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			s.contactsForm.Render(w)
			return
		}

		s.dispatch(c, shopevents.ContactsSubmitted{Email: form.Email, Phone: form.Phone})

		// a successful submission clears the basket; a failed one
		// preserves basket and draft so the shopper can retry
		if s.basket.IsEmpty() {
			http.Redirect(w, r, fmt.Sprintf("%s/checkout/success", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		s.contactsForm.Render(w)
	}
}

func (s *service) successPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err := s.success.Render(w)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInternalError(err))
			return
		}
	}
}

func (s *service) dismissSuccess() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)

		s.dispatch(c, shopevents.SuccessDismissed{})

		http.Redirect(w, r, fmt.Sprintf("%s/", myhttp.HostnameWithScheme(r)), http.StatusSeeOther)
	}
}

func (s *service) validateOrderForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := newOrderDetailsFormFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		s.dispatch(c, shopevents.OrderFormChanged{Payment: form.Payment, Address: form.Address})

		snapshot := s.orderForm.Snapshot()
		responseWriter.Write(c, w, http.StatusOK, validationResponse{
			IsValid: snapshot.IsValid,
			Message: snapshot.Message,
		})
	}
}

func (s *service) validateContactsForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := newContactDetailsFormFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		s.dispatch(c, shopevents.OrderContactsChanged{Email: form.Email, Phone: form.Phone})

		snapshot := s.contactsForm.Snapshot()
		responseWriter.Write(c, w, http.StatusOK, validationResponse{
			IsValid: snapshot.IsValid,
			Message: snapshot.Message,
		})
	}
}
