package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

type hotelRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Image     string    `db:"image"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *hotelRow) toEntity() *hotel.Hotel {
	return &hotel.Hotel{
		ID: r.ID, Name: r.Name, Image: r.Image,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

type roomRow struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Capacity  int       `db:"capacity"`
	HotelID   int64     `db:"hotel_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *roomRow) toEntity() hotel.Room {
	return hotel.Room{
		ID: r.ID, Name: r.Name, Capacity: r.Capacity, HotelID: r.HotelID,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

// HotelRepository はホテルリポジトリのPostgreSQL実装
type HotelRepository struct{ db *sqlx.DB }

func NewHotelRepository(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) FindHotels(ctx context.Context) ([]*hotel.Hotel, error) {
	var rows []hotelRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, name, image, created_at, updated_at FROM hotels ORDER BY id`); err != nil {
		return nil, fmt.Errorf("ホテル一覧取得に失敗: %w", err)
	}
	hotels := make([]*hotel.Hotel, len(rows))
	for i, row := range rows {
		hotels[i] = row.toEntity()
	}
	return hotels, nil
}

func (r *HotelRepository) FindHotelWithRoomsByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	var row hotelRow
	if err := r.db.GetContext(ctx, &row, `SELECT id, name, image, created_at, updated_at FROM hotels WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrHotelNotFound
		}
		return nil, fmt.Errorf("ホテル取得に失敗: %w", err)
	}

	var roomRows []roomRow
	if err := r.db.SelectContext(ctx, &roomRows, `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE hotel_id = $1 ORDER BY id`, id); err != nil {
		return nil, fmt.Errorf("客室一覧取得に失敗: %w", err)
	}

	h := row.toEntity()
	h.Rooms = make([]hotel.Room, len(roomRows))
	for i, rr := range roomRows {
		h.Rooms[i] = rr.toEntity()
	}
	return h, nil
}

func (r *HotelRepository) FindRoomByID(ctx context.Context, id int64) (*hotel.Room, error) {
	var row roomRow
	if err := r.db.GetContext(ctx, &row, `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrRoomNotFound
		}
		return nil, fmt.Errorf("客室取得に失敗: %w", err)
	}
	room := row.toEntity()
	return &room, nil
}

func (r *HotelRepository) FindRoomByIDForUpdate(ctx context.Context, tx transaction.Tx, id int64) (*hotel.Room, error) {
	sqlxTx := UnwrapTx(tx)
	var row roomRow
	if err := sqlxTx.GetContext(ctx, &row, `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id = $1 FOR UPDATE`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, hotel.ErrRoomNotFound
		}
		return nil, fmt.Errorf("客室ロック取得に失敗: %w", err)
	}
	room := row.toEntity()
	return &room, nil
}

var _ hotel.Repository = (*HotelRepository)(nil)
