package booking

import (
	"time"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
)

// Booking は予約エンティティを表す
// ユーザーと客室にそれぞれ1つずつ属する。ユーザーあたり同時に1件まで
type Booking struct {
	ID        int64
	UserID    int64
	RoomID    int64
	Room      *hotel.Room
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking は新しい予約を作成する
func NewBooking(userID, roomID int64) *Booking {
	now := time.Now()
	return &Booking{
		UserID:    userID,
		RoomID:    roomID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy は予約が指定ユーザーのものかを返す
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}
