package controller

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-trading-webhook/src/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type OrderExecutorMock struct {
	mock.Mock
	dispatched chan string
}

func (o *OrderExecutorMock) ExecuteBuy(symbol string, amount string) {
	o.Called(symbol, amount)
	o.dispatched <- symbol
}
func (o *OrderExecutorMock) ExecuteSell(symbol string) {
	o.Called(symbol)
	o.dispatched <- symbol
}

func newWebhookController(executor *OrderExecutorMock) WebhookController {
	return WebhookController{
		CommandParser: &service.CommandParser{},
		OrderExecutor: executor,
	}
}

func awaitDispatch(t *testing.T, executor *OrderExecutorMock) string {
	select {
	case symbol := <-executor.dispatched:
		return symbol
	case <-time.After(time.Second):
		t.Fatal("command was not dispatched")
	}

	return ""
}

func TestWebhookDispatchesBuy(t *testing.T) {
	assertion := assert.New(t)

	executor := &OrderExecutorMock{dispatched: make(chan string, 1)}
	webhookController := newWebhookController(executor)

	executor.On("ExecuteBuy", "BTCUSDT", "")

	req := httptest.NewRequest("POST", "/", strings.NewReader("buy:BTCUSDT"))
	recorder := httptest.NewRecorder()
	webhookController.PostWebhookAction(recorder, req)

	assertion.Equal(http.StatusOK, recorder.Code)
	assertion.Equal("", recorder.Body.String())
	assertion.Equal("BTCUSDT", awaitDispatch(t, executor))
	executor.AssertCalled(t, "ExecuteBuy", "BTCUSDT", "")
}

func TestWebhookDispatchesSell(t *testing.T) {
	assertion := assert.New(t)

	executor := &OrderExecutorMock{dispatched: make(chan string, 1)}
	webhookController := newWebhookController(executor)

	executor.On("ExecuteSell", "ETHUSDT")

	req := httptest.NewRequest("POST", "/", strings.NewReader("sell:ETHUSDT"))
	recorder := httptest.NewRecorder()
	webhookController.PostWebhookAction(recorder, req)

	assertion.Equal(http.StatusOK, recorder.Code)
	assertion.Equal("", recorder.Body.String())
	assertion.Equal("ETHUSDT", awaitDispatch(t, executor))
	executor.AssertCalled(t, "ExecuteSell", "ETHUSDT")
}

// Bodies matching neither command are ignored but still answered with 200,
// the webhook caller never learns about the outcome.
func TestWebhookIgnoresUnknownBody(t *testing.T) {
	assertion := assert.New(t)

	executor := &OrderExecutorMock{dispatched: make(chan string, 1)}
	webhookController := newWebhookController(executor)

	req := httptest.NewRequest("POST", "/", strings.NewReader("hello world"))
	recorder := httptest.NewRecorder()
	webhookController.PostWebhookAction(recorder, req)

	assertion.Equal(http.StatusOK, recorder.Code)
	assertion.Equal("", recorder.Body.String())
	executor.AssertNotCalled(t, "ExecuteBuy", mock.Anything, mock.Anything)
	executor.AssertNotCalled(t, "ExecuteSell", mock.Anything)
}

func TestWebhookPassesAmountThrough(t *testing.T) {
	assertion := assert.New(t)

	executor := &OrderExecutorMock{dispatched: make(chan string, 1)}
	webhookController := newWebhookController(executor)

	executor.On("ExecuteBuy", " BTCUSDT amount: 50", "50")

	req := httptest.NewRequest("POST", "/", strings.NewReader("buy: BTCUSDT amount: 50"))
	recorder := httptest.NewRecorder()
	webhookController.PostWebhookAction(recorder, req)

	assertion.Equal(http.StatusOK, recorder.Code)
	awaitDispatch(t, executor)
	executor.AssertCalled(t, "ExecuteBuy", " BTCUSDT amount: 50", "50")
}
