package hotel

import (
	"context"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

// Repository はホテルリポジトリのインターフェース
type Repository interface {
	// FindHotels はホテルの全カタログを取得する
	FindHotels(ctx context.Context) ([]*Hotel, error)

	// FindHotelWithRoomsByID はIDからホテルを客室込みで取得する
	FindHotelWithRoomsByID(ctx context.Context, id int64) (*Hotel, error)

	// FindRoomByID はIDから客室を取得する
	FindRoomByID(ctx context.Context, id int64) (*Room, error)

	// FindRoomByIDForUpdate はIDから客室を行ロック付きで取得する（トランザクション必須）
	// 定員チェックと予約書き込みを同一トランザクションで直列化するために使う
	FindRoomByIDForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*Room, error)
}
