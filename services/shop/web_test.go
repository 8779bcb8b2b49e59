package shop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MarcGrol/shopfront/lib/mytime"
	"github.com/MarcGrol/shopfront/lib/myuuid"
	"github.com/MarcGrol/shopfront/services/shopapi"
)

func TestShopWeb(t *testing.T) {

	t.Run("Storefront lists the catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doGet(t, router, "/")

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Tennis racket")
		assert.Contains(t, response.Body.String(), "Tennis balls")
		assert.Contains(t, response.Body.String(), `<span id="basket-counter">0</span>`)
	})

	t.Run("Unknown product yields not-found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doGet(t, router, "/product/product_unknown")

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Adding to the basket redirects back to the product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doPost(t, router, "/basket/add", url.Values{"productUid": {"product_racket"}})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "http://localhost:8888/product/product_racket", response.Header().Get("Location"))

		detail := doGet(t, router, "/product/product_racket")
		assert.Equal(t, 200, detail.Code)
		assert.Contains(t, detail.Body.String(), "Remove from basket")
	})

	t.Run("Adding an unknown product is rejected at the boundary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doPost(t, router, "/basket/add", url.Values{"productUid": {"product_unknown"}})

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Checkout with an empty basket is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doPost(t, router, "/checkout", url.Values{})

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Order form rejects a missing address with the verbatim message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)
		doPost(t, router, "/basket/add", url.Values{"productUid": {"product_racket"}})
		doPost(t, router, "/checkout", url.Values{})

		// when
		response := doPost(t, router, "/checkout/order", url.Values{
			"payment": {"cash"},
			"address": {""},
		})

		// then: no redirect, the form re-renders with the error
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Enter a delivery address")
	})

	t.Run("Full checkout flow places the order and empties the basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, submitter, nower, _, _ := setupWeb(ctrl)

		// given: two priced products in the basket
		doPost(t, router, "/basket/add", url.Values{"productUid": {"product_racket"}})
		doPost(t, router, "/basket/add", url.Values{"productUid": {"product_balls"}})

		basketPage := doGet(t, router, "/basket")
		assert.Equal(t, 200, basketPage.Code)
		assert.Contains(t, basketPage.Body.String(), "300 synapses")

		// when: checkout
		response := doPost(t, router, "/checkout", url.Values{})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "http://localhost:8888/checkout/order", response.Header().Get("Location"))

		// when: payment and address
		response = doPost(t, router, "/checkout/order", url.Values{
			"payment": {"cash"},
			"address": {"1 Main St"},
		})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "http://localhost:8888/checkout/contacts", response.Header().Get("Location"))

		// given
		submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(shopapi.OrderResult{
			UID:    "order_123",
			Total:  300,
			Status: shopapi.OrderStatusCreated,
		}, nil)
		nower.EXPECT().Now().Return(mytime.ExampleTime)

		// when: contacts and final submit
		response = doPost(t, router, "/checkout/contacts", url.Values{
			"email": {"a@b.co"},
			"phone": {"+79991234567"},
		})

		// then
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "http://localhost:8888/checkout/success", response.Header().Get("Location"))

		successPage := doGet(t, router, "/checkout/success")
		assert.Equal(t, 200, successPage.Code)
		assert.Contains(t, successPage.Body.String(), "order_123")
		assert.Contains(t, successPage.Body.String(), "Charged 300 synapses")

		// when: dismiss the confirmation
		response = doPost(t, router, "/success", url.Values{})

		// then: back to an empty storefront
		assert.Equal(t, 303, response.Code)
		assert.Equal(t, "http://localhost:8888/", response.Header().Get("Location"))
		assert.Contains(t, doGet(t, router, "/").Body.String(), `<span id="basket-counter">0</span>`)
	})

	t.Run("Failed submission re-renders the contacts form and keeps the basket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, submitter, _, _, _ := setupWeb(ctrl)
		doPost(t, router, "/basket/add", url.Values{"productUid": {"product_racket"}})
		doPost(t, router, "/basket/add", url.Values{"productUid": {"product_balls"}})
		doPost(t, router, "/checkout", url.Values{})
		doPost(t, router, "/checkout/order", url.Values{
			"payment": {"cash"},
			"address": {"1 Main St"},
		})

		// given
		submitter.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).Return(shopapi.OrderResult{
			Status: shopapi.OrderStatusCancelled,
			Error:  "order service unreachable",
		}, fmt.Errorf("order service unreachable"))

		// when
		response := doPost(t, router, "/checkout/contacts", url.Values{
			"email": {"a@b.co"},
			"phone": {"+79991234567"},
		})

		// then: no redirect, the shopper can retry
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Order submission failed: order service unreachable")
		assert.Contains(t, doGet(t, router, "/basket").Body.String(), "300 synapses")
	})

	t.Run("Live validation reports the first failing field", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doPost(t, router, "/api/checkout/order/validate", url.Values{
			"payment": {""},
			"address": {"1 Main St"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		result := validationResponse{}
		err := json.NewDecoder(response.Body).Decode(&result)
		assert.NoError(t, err)
		assert.False(t, result.IsValid)
		assert.Equal(t, "Select a payment method", result.Message)
	})

	t.Run("Live validation accepts a complete contacts form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		_, router, _, _, _, _ := setupWeb(ctrl)

		// when
		response := doPost(t, router, "/api/checkout/contacts/validate", url.Values{
			"email": {"a@b.co"},
			"phone": {"+79991234567"},
		})

		// then
		assert.Equal(t, 200, response.Code)
		result := validationResponse{}
		err := json.NewDecoder(response.Body).Decode(&result)
		assert.NoError(t, err)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Message)
	})
}

func setupWeb(ctrl *gomock.Controller) (context.Context, *mux.Router, *shopapi.MockOrderSubmitter,
	*mytime.MockNower, *myuuid.MockUUIDer, *service) {
	c, sut, _, getter, submitter, nower, uuider := setupService(ctrl)

	router := mux.NewRouter()
	sut.RegisterEndpoints(c, router)

	loadCatalog(c, sut, getter)

	return c, router, submitter, nower, uuider, sut
}

func doGet(t *testing.T, router *mux.Router, path string) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodGet, path, nil)
	assert.NoError(t, err)
	request.Host = "localhost:8888"
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}

func doPost(t *testing.T, router *mux.Router, path string, values url.Values) *httptest.ResponseRecorder {
	request, err := http.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	assert.NoError(t, err)
	request.Host = "localhost:8888"
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
