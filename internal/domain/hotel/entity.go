package hotel

import "time"

// Hotel はホテルエンティティを表す
// エンドユーザーが作成することはない参照データ
type Hotel struct {
	ID        int64
	Name      string
	Image     string
	Rooms     []Room
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Room は客室エンティティを表す
// capacity が同時に保持できる予約数の上限
type Room struct {
	ID        int64
	Name      string
	Capacity  int
	HotelID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasVacancy は現在の予約数で空きがあるかを返す
func (r *Room) HasVacancy(bookingCount int) bool {
	return bookingCount < r.Capacity
}
