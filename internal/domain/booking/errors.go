package booking

import "github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"

// Booking ドメインのエラー定義
var (
	ErrBookingNotFound   = apperror.NotFound("予約が見つかりません")
	ErrBookingNotOwned   = apperror.Unauthorized("予約の所有者ではありません")
	ErrAlreadyBooked     = apperror.Forbidden("ユーザーは既に予約を持っています")
	ErrSameRoom          = apperror.Forbidden("既に予約している客室への変更はできません")
	ErrBookingInProgress = apperror.Forbidden("客室は他のユーザーによって処理中です")
)
