package shopapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MarcGrol/shopfront/lib/myerrors"
	"github.com/MarcGrol/shopfront/lib/mylog"
	"github.com/MarcGrol/shopfront/services/order"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     mylog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger mylog.Logger) *client {
	return &client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *client) FetchCatalog(ctx context.Context) (CatalogResponse, error) {
	c.logger.Log(ctx, "", mylog.SeverityInfo, "Fetching catalog from %s", c.baseURL)

	httpStatus, respPayload, err := c.send(ctx, http.MethodGet, c.baseURL+"/product", nil)
	if err != nil {
		return CatalogResponse{}, myerrors.NewUnavailableError(err)
	}
	if httpStatus != http.StatusOK {
		return CatalogResponse{}, myerrors.NewUnavailableError(fmt.Errorf("catalog fetch returned status %d", httpStatus))
	}

	response := CatalogResponse{}
	err = json.Unmarshal(respPayload, &response)
	if err != nil {
		return CatalogResponse{}, myerrors.NewInternalError(fmt.Errorf("error parsing catalog response: %s", err))
	}

	return response, nil
}

// SubmitOrder posts the completed order. Any failure is converted into
// a cancelled-status result carrying the message, next to the error
// itself, so the checkout flow can surface it and stay retryable.
func (c *client) SubmitOrder(ctx context.Context, ord order.Order) (OrderResult, error) {
	c.logger.Log(ctx, "", mylog.SeverityInfo, "Submitting order with %d items, total %d", len(ord.Items), ord.Total)

	reqPayload, err := json.Marshal(ord)
	if err != nil {
		return cancelledResult(ord, err), myerrors.NewInternalError(fmt.Errorf("error marshalling order: %s", err))
	}

	httpStatus, respPayload, err := c.send(ctx, http.MethodPost, c.baseURL+"/order", reqPayload)
	if err != nil {
		return cancelledResult(ord, err), myerrors.NewUnavailableError(err)
	}
	if httpStatus < http.StatusOK || httpStatus >= http.StatusMultipleChoices {
		err := fmt.Errorf("order submission returned status %d", httpStatus)
		return cancelledResult(ord, err), myerrors.NewUnavailableError(err)
	}

	result := OrderResult{}
	err = json.Unmarshal(respPayload, &result)
	if err != nil {
		err = fmt.Errorf("error parsing order response: %s", err)
		return cancelledResult(ord, err), myerrors.NewInternalError(err)
	}

	return result, nil
}

func (c *client) send(ctx context.Context, method string, url string, body []byte) (int, []byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("error creating http request for %s %s: %s", method, url, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("error sending %s %s: %s", method, url, err)
	}
	defer httpResp.Body.Close()

	respPayload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("error reading response %s %s: %s", method, url, err)
	}

	return httpResp.StatusCode, respPayload, nil
}

func cancelledResult(ord order.Order, err error) OrderResult {
	return OrderResult{
		Status: OrderStatusCancelled,
		Items:  ord.Items,
		Error:  err.Error(),
	}
}
