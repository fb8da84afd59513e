package booking

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

// Repository は予約リポジトリのインターフェース
type Repository interface {
	// FindWithRoomByUserID はユーザーIDから予約を客室込みで取得する
	FindWithRoomByUserID(ctx context.Context, userID int64) (*Booking, error)

	// FindByID はIDから予約を取得する
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// CountByRoomID は客室の現在の予約数を取得する
	CountByRoomID(ctx context.Context, roomID int64) (int, error)

	// CountByRoomIDForUpdate は客室の現在の予約数をトランザクション内で取得する
	// FindRoomByIDForUpdate による行ロックと組み合わせて定員超過を防ぐ
	CountByRoomIDForUpdate(ctx context.Context, tx transaction.Tx, roomID int64) (int, error)

	// Create は新しい予約を作成する（トランザクション必須）
	// ユーザーが既に予約を持つ場合は ErrAlreadyBooked を返す
	Create(ctx context.Context, tx transaction.Tx, b *Booking) error

	// UpdateRoom は予約の客室を変更する（トランザクション必須）
	UpdateRoom(ctx context.Context, tx transaction.Tx, bookingID, roomID int64) error

	// CountAll は全予約数を取得する（稼働状況の集計用）
	CountAll(ctx context.Context) (int, error)
}
