package service

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gitlab.com/open-soft/go-trading-webhook/src/model"
	"net/url"
	"strings"
	"testing"
)

type HttpClientMock struct {
	mock.Mock
}

func (h *HttpClientMock) PostForm(address string, params url.Values, headers map[string]string) ([]byte, error) {
	args := h.Called(address, params, headers)
	return args.Get(0).([]byte), args.Error(1)
}

func TestLineNotifyBuyOrder(t *testing.T) {
	assertion := assert.New(t)

	httpClient := new(HttpClientMock)
	notificator := LineNotificator{
		HttpClient: httpClient,
		NotifyUrl:  "https://notify-api.line.me/api/notify",
		Token:      "test-token",
	}

	httpClient.On(
		"PostForm",
		"https://notify-api.line.me/api/notify",
		mock.MatchedBy(func(params url.Values) bool {
			return strings.Contains(params.Get("message"), "BUY BTCUSDT")
		}),
		map[string]string{"Authorization": "Bearer test-token"},
	).Return([]byte(`{"status":200}`), nil)

	notificator.BuyOrder(model.BinanceOrder{
		OrderId: 1,
		Symbol:  "BTCUSDT",
		OrigQty: 0.001,
		Status:  "FILLED",
		Side:    "BUY",
	}, model.Bot{Id: 1, BotUuid: "uuid"}, "FILLED")

	assertion.True(notificator.IsEnabled())
	httpClient.AssertNumberOfCalls(t, "PostForm", 1)
}

func TestLineNotifyDefaultUrl(t *testing.T) {
	httpClient := new(HttpClientMock)
	notificator := LineNotificator{
		HttpClient: httpClient,
		Token:      "test-token",
	}

	httpClient.On("PostForm", LineNotifyUrl, mock.Anything, mock.Anything).Return([]byte(`{"status":200}`), nil)

	notificator.SellOrder(model.BinanceOrder{
		OrderId: 2,
		Symbol:  "ETHUSDT",
		OrigQty: 0.5,
		Status:  "FILLED",
		Side:    "SELL",
	}, model.Bot{Id: 1, BotUuid: "uuid"}, "FILLED")

	httpClient.AssertCalled(t, "PostForm", LineNotifyUrl, mock.Anything, mock.Anything)
}

func TestLineNotifyDisabledWithoutToken(t *testing.T) {
	httpClient := new(HttpClientMock)
	notificator := LineNotificator{
		HttpClient: httpClient,
		NotifyUrl:  "https://notify-api.line.me/api/notify",
		Token:      "",
	}

	notificator.SellOrder(model.BinanceOrder{Symbol: "BTCUSDT"}, model.Bot{}, "FILLED")

	httpClient.AssertNotCalled(t, "PostForm", mock.Anything, mock.Anything, mock.Anything)
}
