package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/booking"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
)

type bookingRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	RoomID    int64     `db:"room_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r *bookingRow) toEntity() *booking.Booking {
	return &booking.Booking{
		ID: r.ID, UserID: r.UserID, RoomID: r.RoomID,
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

// bookingWithRoomRow は予約と客室のJOIN結果を表す
type bookingWithRoomRow struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	RoomID        int64     `db:"room_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	RoomName      string    `db:"room_name"`
	RoomCapacity  int       `db:"room_capacity"`
	RoomHotelID   int64     `db:"room_hotel_id"`
	RoomCreatedAt time.Time `db:"room_created_at"`
	RoomUpdatedAt time.Time `db:"room_updated_at"`
}

func (r *bookingWithRoomRow) toEntity() *booking.Booking {
	return &booking.Booking{
		ID: r.ID, UserID: r.UserID, RoomID: r.RoomID,
		Room: &hotel.Room{
			ID: r.RoomID, Name: r.RoomName, Capacity: r.RoomCapacity, HotelID: r.RoomHotelID,
			CreatedAt: r.RoomCreatedAt, UpdatedAt: r.RoomUpdatedAt,
		},
		CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
	}
}

// BookingRepository は予約リポジトリのPostgreSQL実装
type BookingRepository struct{ db *sqlx.DB }

func NewBookingRepository(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindWithRoomByUserID(ctx context.Context, userID int64) (*booking.Booking, error) {
	var row bookingWithRoomRow
	query := `SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		r.name AS room_name, r.capacity AS room_capacity, r.hotel_id AS room_hotel_id,
		r.created_at AS room_created_at, r.updated_at AS room_updated_at
		FROM bookings b JOIN rooms r ON r.id = b.room_id WHERE b.user_id = $1`
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("予約取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.Booking, error) {
	var row bookingRow
	if err := r.db.GetContext(ctx, &row, `SELECT id, user_id, room_id, created_at, updated_at FROM bookings WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("予約取得に失敗: %w", err)
	}
	return row.toEntity(), nil
}

func (r *BookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID); err != nil {
		return 0, fmt.Errorf("予約数取得に失敗: %w", err)
	}
	return count, nil
}

func (r *BookingRepository) CountByRoomIDForUpdate(ctx context.Context, tx transaction.Tx, roomID int64) (int, error) {
	sqlxTx := UnwrapTx(tx)
	var count int
	if err := sqlxTx.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID); err != nil {
		return 0, fmt.Errorf("予約数取得に失敗: %w", err)
	}
	return count, nil
}

func (r *BookingRepository) Create(ctx context.Context, tx transaction.Tx, b *booking.Booking) error {
	sqlxTx := UnwrapTx(tx)
	query := `INSERT INTO bookings (user_id, room_id, created_at, updated_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := sqlxTx.QueryRowContext(ctx, query, b.UserID, b.RoomID, b.CreatedAt, b.UpdatedAt).Scan(&b.ID); err != nil {
		// user_id の一意制約違反＝ユーザーは既に予約済み
		if pgErr, ok := err.(*pq.Error); ok && pgErr.Code == "23505" {
			return booking.ErrAlreadyBooked
		}
		return fmt.Errorf("予約作成に失敗: %w", err)
	}
	return nil
}

func (r *BookingRepository) UpdateRoom(ctx context.Context, tx transaction.Tx, bookingID, roomID int64) error {
	sqlxTx := UnwrapTx(tx)
	result, err := sqlxTx.ExecContext(ctx, `UPDATE bookings SET room_id = $1, updated_at = NOW() WHERE id = $2`, roomID, bookingID)
	if err != nil {
		return fmt.Errorf("予約更新に失敗: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

func (r *BookingRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings`); err != nil {
		return 0, fmt.Errorf("予約総数取得に失敗: %w", err)
	}
	return count, nil
}

var _ booking.Repository = (*BookingRepository)(nil)
