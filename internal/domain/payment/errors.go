package payment

import "github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"

// Payment ドメインのエラー定義
var (
	ErrPaymentNotFound  = apperror.NotFound("支払いが見つかりません")
	ErrTicketIDRequired = apperror.BadRequest("ticketIdは必須です")
)
