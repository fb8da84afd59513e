package enrollment

import "github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"

// Enrollment ドメインのエラー定義
var (
	ErrEnrollmentNotFound = apperror.NotFound("参加登録が見つかりません")
)
