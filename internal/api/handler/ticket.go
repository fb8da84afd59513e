package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-hotel-booking/internal/application"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
)

type TicketHandler struct {
	ticketService TicketServiceInterface
}

func NewTicketHandler(ticketService TicketServiceInterface) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

type CreateTicketRequest struct {
	TicketTypeID int64 `json:"ticket_type_id" validate:"required,gt=0" example:"1"`
}

type TicketTypeResponse struct {
	ID            int64  `json:"id" example:"1"`
	Name          string `json:"name" example:"Presencial + Com Hotel"`
	Price         int    `json:"price" example:"60000"`
	IsRemote      bool   `json:"is_remote" example:"false"`
	IncludesHotel bool   `json:"includes_hotel" example:"true"`
}

type TicketResponse struct {
	ID           int64               `json:"id" example:"1"`
	EnrollmentID int64               `json:"enrollment_id" example:"1"`
	Status       string              `json:"status" example:"RESERVED"`
	TicketType   *TicketTypeResponse `json:"ticket_type,omitempty"`
	CreatedAt    string              `json:"created_at" example:"2025-12-06T10:00:00+09:00"`
}

func toTicketTypeResponse(tt *ticket.TicketType) *TicketTypeResponse {
	return &TicketTypeResponse{
		ID:            tt.ID,
		Name:          tt.Name,
		Price:         tt.Price,
		IsRemote:      tt.IsRemote,
		IncludesHotel: tt.IncludesHotel,
	}
}

func toTicketResponse(t *ticket.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:           t.ID,
		EnrollmentID: t.EnrollmentID,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.TicketType != nil {
		resp.TicketType = toTicketTypeResponse(t.TicketType)
	}
	return resp
}

// ListTypes godoc
// @Summary チケット種別一覧を取得
// @Description 購入可能なチケット種別のカタログを返します
// @Tags tickets
// @Produce json
// @Success 200 {array} TicketTypeResponse
// @Router /tickets/types [get]
func (h *TicketHandler) ListTypes(c echo.Context) error {
	if _, err := authedUserID(c); err != nil {
		return err
	}

	types, err := h.ticketService.GetTicketTypes(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]*TicketTypeResponse, len(types))
	for i, tt := range types {
		resp[i] = toTicketTypeResponse(tt)
	}
	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary 自分のチケットを取得
// @Description ログインユーザーのチケットを種別付きで返します
// @Tags tickets
// @Produce json
// @Success 200 {object} TicketResponse
// @Failure 404 {object} api.ErrorResponse "参加登録またはチケットがない"
// @Router /tickets [get]
func (h *TicketHandler) Get(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	t, err := h.ticketService.GetUserTicket(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toTicketResponse(t))
}

// Create godoc
// @Summary チケットを発行
// @Description 指定種別のチケットをRESERVED状態で発行します
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body CreateTicketRequest true "チケット種別"
// @Success 201 {object} TicketResponse
// @Failure 404 {object} api.ErrorResponse "参加登録または種別が存在しない"
// @Router /tickets [post]
func (h *TicketHandler) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	var req CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "リクエストの形式が不正です")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	t, err := h.ticketService.CreateTicket(c.Request().Context(), application.CreateTicketInput{
		UserID:       userID,
		TicketTypeID: req.TicketTypeID,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, toTicketResponse(t))
}
