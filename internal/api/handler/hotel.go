package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
)

type HotelHandler struct {
	hotelService HotelServiceInterface
}

func NewHotelHandler(hotelService HotelServiceInterface) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

type RoomResponse struct {
	ID       int64  `json:"id" example:"1"`
	Name     string `json:"name" example:"101"`
	Capacity int    `json:"capacity" example:"3"`
	HotelID  int64  `json:"hotel_id" example:"1"`
}

type HotelResponse struct {
	ID    int64          `json:"id" example:"1"`
	Name  string         `json:"name" example:"Driven Resort"`
	Image string         `json:"image" example:"https://example.com/hotel.jpg"`
	Rooms []RoomResponse `json:"rooms"`
}

func toRoomResponse(r *hotel.Room) RoomResponse {
	return RoomResponse{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
		HotelID:  r.HotelID,
	}
}

func toHotelResponse(h *hotel.Hotel) HotelResponse {
	rooms := make([]RoomResponse, len(h.Rooms))
	for i := range h.Rooms {
		rooms[i] = toRoomResponse(&h.Rooms[i])
	}
	return HotelResponse{
		ID:    h.ID,
		Name:  h.Name,
		Image: h.Image,
		Rooms: rooms,
	}
}

// List godoc
// @Summary ホテル一覧を取得
// @Description 宿泊資格のあるユーザーにホテル一覧を返します
// @Tags hotels
// @Produce json
// @Success 200 {array} HotelResponse
// @Failure 403 {object} api.ErrorResponse "宿泊資格がない"
// @Failure 404 {object} api.ErrorResponse "参加登録またはチケットがない"
// @Router /hotels [get]
func (h *HotelHandler) List(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}

	hotels, err := h.hotelService.GetHotels(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]HotelResponse, len(hotels))
	for i, ho := range hotels {
		resp[i] = toHotelResponse(ho)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary ホテルの客室一覧を取得
// @Description 指定ホテルを客室付きで返します
// @Tags hotels
// @Produce json
// @Param hotelId path int true "ホテルID"
// @Success 200 {object} HotelResponse
// @Failure 404 {object} api.ErrorResponse
// @Router /hotels/{hotelId} [get]
func (h *HotelHandler) GetByID(c echo.Context) error {
	userID, err := authedUserID(c)
	if err != nil {
		return err
	}
	hotelID, err := strconv.ParseInt(c.Param("hotelId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "ホテルIDの形式が不正です")
	}

	ho, err := h.hotelService.GetHotelWithRooms(c.Request().Context(), userID, hotelID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toHotelResponse(ho))
}
