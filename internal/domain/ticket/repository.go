package ticket

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

// Repository はチケットリポジトリのインターフェース
type Repository interface {
	// FindTicketTypes はチケット種別の全カタログを取得する
	FindTicketTypes(ctx context.Context) ([]*TicketType, error)

	// FindTicketTypeByID はIDからチケット種別を取得する
	FindTicketTypeByID(ctx context.Context, id int64) (*TicketType, error)

	// FindByEnrollmentID は参加登録IDからチケットを種別込みで取得する
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*Ticket, error)

	// FindByID はIDからチケットを種別込みで取得する
	FindByID(ctx context.Context, id int64) (*Ticket, error)

	// Create は新しいチケットを作成する
	Create(ctx context.Context, t *Ticket) error

	// UpdateStatus はチケットの状態を更新する（トランザクション必須）
	UpdateStatus(ctx context.Context, tx transaction.Tx, id int64, status Status) error
}
