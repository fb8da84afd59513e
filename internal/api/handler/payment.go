package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-hotel-booking/internal/application"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/payment"
)

type PaymentHandler struct {
	paymentService PaymentServiceInterface
}

func NewPaymentHandler(paymentService PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

type CardDataRequest struct {
	Issuer         string `json:"issuer" validate:"required" example:"VISA"`
	Number         string `json:"number" validate:"required" example:"4111111111111111"`
	Name           string `json:"name" validate:"required" example:"TARO YAMADA"`
	ExpirationDate string `json:"expiration_date" validate:"required" example:"12/2030"`
	CVV            string `json:"cvv" validate:"required" example:"123"`
}

type ProcessPaymentRequest struct {
	TicketID int64           `json:"ticket_id" validate:"required,gt=0" example:"1"`
	CardData CardDataRequest `json:"card_data" validate:"required"`
}

type PaymentResponse struct {
	ID             int64  `json:"id" example:"1"`
	TicketID       int64  `json:"ticket_id" example:"1"`
	Value          int    `json:"value" example:"60000"`
	CardIssuer     string `json:"card_issuer" example:"VISA"`
	CardLastDigits string `json:"card_last_digits" example:"1111"`
	CreatedAt      string `json:"created_at" example:"2025-12-06T10:00:00+09:00"`
}

func toPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             p.ID,
		TicketID:       p.TicketID,
		Value:          p.Value,
		CardIssuer:     p.CardIssuer,
		CardLastDigits: p.CardLastDigits,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

// Get godoc
// @Summary チケットの支払いを取得
// @Description 指定チケットの支払い記録を返します
// @Tags payments
// @Produce json
// @Param ticketId query int true "チケットID"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} api.ErrorResponse "チケットID未指定"
// @Failure 401 {object} api.ErrorResponse "他人のチケット"
// @Failure 404 {object} api.ErrorResponse
// @Router /payments [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	raw := c.QueryParam("ticketId")
	if raw == "" {
		return toHTTPError(payment.ErrTicketIDRequired)
	}
	ticketID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "チケットIDの形式が不正です")
	}

	p, err := h.paymentService.GetPaymentByTicketID(c.Request().Context(), userID, ticketID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toPaymentResponse(p))
}

// Process godoc
// @Summary 支払いを実行
// @Description チケットの支払いを記録し、チケットをPAIDにします
// @Tags payments
// @Accept json
// @Produce json
// @Param request body ProcessPaymentRequest true "支払い情報"
// @Success 200 {object} PaymentResponse
// @Failure 401 {object} api.ErrorResponse "他人のチケット"
// @Failure 404 {object} api.ErrorResponse "チケットが存在しない"
// @Router /payments/process [post]
func (h *PaymentHandler) Process(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	var req ProcessPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "リクエストの形式が不正です")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	p, err := h.paymentService.ProcessPayment(c.Request().Context(), application.ProcessPaymentInput{
		UserID:   userID,
		TicketID: req.TicketID,
		Card: payment.CardData{
			Issuer:         req.CardData.Issuer,
			Number:         req.CardData.Number,
			Name:           req.CardData.Name,
			ExpirationDate: req.CardData.ExpirationDate,
			CVV:            req.CardData.CVV,
		},
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toPaymentResponse(p))
}
