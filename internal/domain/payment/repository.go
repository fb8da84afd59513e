package payment

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

// Repository は支払いリポジトリのインターフェース
type Repository interface {
	// FindByTicketID はチケットIDから支払いを取得する
	FindByTicketID(ctx context.Context, ticketID int64) (*Payment, error)

	// Create は新しい支払いを作成する（トランザクション必須）
	// チケットの状態遷移と同一トランザクションで実行される
	Create(ctx context.Context, tx transaction.Tx, p *Payment) error
}
