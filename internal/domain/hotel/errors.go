package hotel

import "github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"

// Hotel ドメインのエラー定義
var (
	ErrHotelNotFound = apperror.NotFound("ホテルが見つかりません")
	ErrRoomNotFound  = apperror.NotFound("客室が見つかりません")
	ErrRoomFull      = apperror.Forbidden("客室は満室です")
)
