package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-hotel-booking/internal/application"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/booking"
)

type BookingHandler struct {
	bookingService BookingServiceInterface
}

func NewBookingHandler(bookingService BookingServiceInterface) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type CreateBookingRequest struct {
	RoomID int64 `json:"room_id" validate:"required,gt=0" example:"1"`
}

type UpdateBookingRequest struct {
	RoomID int64 `json:"room_id" validate:"required,gt=0" example:"2"`
}

type BookingResponse struct {
	ID   int64        `json:"id" example:"1"`
	Room RoomResponse `json:"room"`
}

type BookingIDResponse struct {
	ID int64 `json:"id" example:"1"`
}

func toBookingResponse(b *booking.Booking) BookingResponse {
	resp := BookingResponse{ID: b.ID}
	if b.Room != nil {
		resp.Room = toRoomResponse(b.Room)
	}
	return resp
}

// Get godoc
// @Summary 自分の予約を取得
// @Description ログインユーザーの予約を客室付きで返します
// @Tags booking
// @Produce json
// @Success 200 {object} BookingResponse
// @Failure 404 {object} api.ErrorResponse "予約がない"
// @Router /booking [get]
func (h *BookingHandler) Get(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	b, err := h.bookingService.GetBooking(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponse(b))
}

// Create godoc
// @Summary 客室を予約
// @Description 指定客室に新しい予約を作成します
// @Tags booking
// @Accept json
// @Produce json
// @Param request body CreateBookingRequest true "予約情報"
// @Success 200 {object} BookingResponse
// @Failure 403 {object} api.ErrorResponse "資格がない・満室・予約済み"
// @Failure 404 {object} api.ErrorResponse "客室が存在しない"
// @Router /booking [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	var req CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "リクエストの形式が不正です")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	b, err := h.bookingService.CreateBooking(c.Request().Context(), application.CreateBookingInput{
		UserID: userID,
		RoomID: req.RoomID,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponse(b))
}

// Update godoc
// @Summary 予約の客室を変更
// @Description 既存予約を別の客室に付け替えます
// @Tags booking
// @Accept json
// @Produce json
// @Param bookingId path int true "予約ID"
// @Param request body UpdateBookingRequest true "変更先の客室"
// @Success 200 {object} BookingIDResponse
// @Failure 401 {object} api.ErrorResponse "他人の予約"
// @Failure 403 {object} api.ErrorResponse "同じ客室・満室"
// @Failure 404 {object} api.ErrorResponse "予約または客室が存在しない"
// @Router /booking/{bookingId} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	bookingID, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "予約IDの形式が不正です")
	}
	var req UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "リクエストの形式が不正です")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	id, err := h.bookingService.UpdateBooking(c.Request().Context(), application.UpdateBookingInput{
		UserID:    userID,
		BookingID: bookingID,
		RoomID:    req.RoomID,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, BookingIDResponse{ID: id})
}
