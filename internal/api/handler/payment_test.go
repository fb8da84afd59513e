package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-event-hotel-booking/internal/api/middleware"
	"github.com/sanosuguru/go-event-hotel-booking/internal/application"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/payment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
)

// MockPaymentService はPaymentServiceInterfaceのモック
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetPaymentByTicketID(ctx context.Context, userID, ticketID int64) (*payment.Payment, error) {
	args := m.Called(ctx, userID, ticketID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentService) ProcessPayment(ctx context.Context, input application.ProcessPaymentInput) (*payment.Payment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func testPayment() *payment.Payment {
	return &payment.Payment{
		ID:             1,
		TicketID:       2,
		Value:          60000,
		CardIssuer:     "VISA",
		CardLastDigits: "1111",
	}
}

func TestPaymentHandler_Get(t *testing.T) {
	e := NewTestEcho()

	t.Run("正常に支払いを取得できる", func(t *testing.T) {
		mockService := new(MockPaymentService)
		mockService.On("GetPaymentByTicketID", mock.Anything, int64(10), int64(2)).Return(testPayment(), nil)

		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/payments?ticketId=2", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Get(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp PaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 60000, resp.Value)
		assert.Equal(t, "1111", resp.CardLastDigits)

		mockService.AssertExpectations(t)
	})

	t.Run("ticketIdが未指定の場合400", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/payments", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Get(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("他人のチケットの場合401", func(t *testing.T) {
		mockService := new(MockPaymentService)
		mockService.On("GetPaymentByTicketID", mock.Anything, int64(10), int64(2)).
			Return(nil, ticket.ErrTicketNotOwned)

		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/payments?ticketId=2", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Get(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("チケットが存在しない場合404", func(t *testing.T) {
		mockService := new(MockPaymentService)
		mockService.On("GetPaymentByTicketID", mock.Anything, int64(10), int64(99)).
			Return(nil, ticket.ErrTicketNotFound)

		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodGet, "/payments?ticketId=99", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Get(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}

func TestPaymentHandler_Process(t *testing.T) {
	e := NewTestEcho()

	validBody := `{
		"ticket_id": 2,
		"card_data": {
			"issuer": "VISA",
			"number": "4111111111111111",
			"name": "TARO YAMADA",
			"expiration_date": "12/2030",
			"cvv": "123"
		}
	}`

	t.Run("正常に支払いを実行できる", func(t *testing.T) {
		mockService := new(MockPaymentService)
		mockService.On("ProcessPayment", mock.Anything, mock.MatchedBy(func(input application.ProcessPaymentInput) bool {
			return input.UserID == 10 && input.TicketID == 2 && input.Card.Issuer == "VISA"
		})).Return(testPayment(), nil)

		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/payments/process", strings.NewReader(validBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Process(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp PaymentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(2), resp.TicketID)
		assert.Equal(t, "VISA", resp.CardIssuer)

		mockService.AssertExpectations(t)
	})

	t.Run("カード情報が欠けている場合400", func(t *testing.T) {
		mockService := new(MockPaymentService)
		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/payments/process", strings.NewReader(`{"ticket_id": 2, "card_data": {"issuer": "VISA"}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Process(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})

	t.Run("他人のチケットの場合401", func(t *testing.T) {
		mockService := new(MockPaymentService)
		mockService.On("ProcessPayment", mock.Anything, mock.AnythingOfType("application.ProcessPaymentInput")).
			Return(nil, ticket.ErrTicketNotOwned)

		handler := NewPaymentHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/payments/process", strings.NewReader(validBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		middleware.SetUserID(c, 10)

		err := handler.Process(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
