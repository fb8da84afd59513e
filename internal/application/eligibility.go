package application

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
)

// checkUserEligibility はホテル・予約フローの資格チェックを行う
// 判定順序が重要: 参加登録の存在 → チケットの存在 → チケットの状態と種別
// 存在チェックを先に行うことで、対象がないのにForbiddenを返すことを防ぐ
func checkUserEligibility(ctx context.Context, enrollments enrollment.Repository, tickets ticket.Repository, userID int64) (*ticket.Ticket, error) {
	enr, err := enrollments.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	tk, err := tickets.FindByEnrollmentID(ctx, enr.ID)
	if err != nil {
		return nil, err
	}

	if !tk.GrantsHotelAccess() {
		return nil, ticket.ErrTicketNotEligible
	}

	return tk, nil
}
