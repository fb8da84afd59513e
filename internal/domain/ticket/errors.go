package ticket

import "github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"

// Ticket ドメインのエラー定義
var (
	ErrTicketNotFound     = apperror.NotFound("チケットが見つかりません")
	ErrTicketTypeNotFound = apperror.NotFound("チケット種別が見つかりません")
	ErrTicketNotOwned     = apperror.Unauthorized("チケットの所有者ではありません")
	ErrTicketNotEligible  = apperror.Forbidden("チケットはホテル予約の資格を満たしていません")
	ErrTicketAlreadyPaid  = apperror.Forbidden("チケットは既に支払い済みです")
)
