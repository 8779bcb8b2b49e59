package shop

import (
	"fmt"
	"net/http"
	"net/url"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/shopfront/lib/myerrors"
)

type basketItemForm struct {
	ProductUID string `form:"productUid"`
}

type orderDetailsForm struct {
	Payment string `form:"payment"`
	Address string `form:"address"`
}

type contactDetailsForm struct {
	Email string `form:"email"`
	Phone string `form:"phone"`
}

func newBasketItemFormFromRequest(r *http.Request) (basketItemForm, error) {
	form := basketItemForm{}
	err := decodeForm(r, &form)
	if err != nil {
		return basketItemForm{}, err
	}
	if form.ProductUID == "" {
		return basketItemForm{}, myerrors.NewInvalidInputErrorf("missing productUid")
	}
	return form, nil
}

func newOrderDetailsFormFromRequest(r *http.Request) (orderDetailsForm, error) {
	form := orderDetailsForm{}
	err := decodeForm(r, &form)
	if err != nil {
		return orderDetailsForm{}, err
	}
	return form, nil
}

func newContactDetailsFormFromRequest(r *http.Request) (contactDetailsForm, error) {
	form := contactDetailsForm{}
	err := decodeForm(r, &form)
	if err != nil {
		return contactDetailsForm{}, err
	}
	return form, nil
}

func decodeForm(r *http.Request, target interface{}) error {
	err := r.ParseForm()
	if err != nil {
		return myerrors.NewInvalidInputError(err)
	}
	return decodeFormValues(r.Form, target)
}

func decodeFormValues(values url.Values, target interface{}) error {
	err := formcodec.NewDecoder().Decode(target, values)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error decoding form: %s", err))
	}
	return nil
}
