package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/apperror"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/booking"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/transaction"
	redislock "github.com/sanosuguru/go-event-hotel-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/metrics"
)

type BookingService struct {
	txManager      transaction.Manager
	bookingRepo    booking.Repository
	hotelRepo      hotel.Repository
	enrollmentRepo enrollment.Repository
	ticketRepo     ticket.Repository
	lockManager    *redislock.LockManager
}

func NewBookingService(tm transaction.Manager, br booking.Repository, hr hotel.Repository, er enrollment.Repository, tr ticket.Repository, lm *redislock.LockManager) *BookingService {
	return &BookingService{
		txManager:      tm,
		bookingRepo:    br,
		hotelRepo:      hr,
		enrollmentRepo: er,
		ticketRepo:     tr,
		lockManager:    lm,
	}
}

// GetBooking はユーザーの現在の予約を客室込みで返す
func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*booking.Booking, error) {
	return s.bookingRepo.FindWithRoomByUserID(ctx, userID)
}

type CreateBookingInput struct {
	UserID int64
	RoomID int64
}

func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*booking.Booking, error) {
	b, err := s.createBooking(ctx, input)
	recordBookingMetric("create", err)
	return b, err
}

func (s *BookingService) createBooking(ctx context.Context, input CreateBookingInput) (*booking.Booking, error) {
	// 資格チェック（存在 → 状態・種別の順）
	if _, err := checkUserEligibility(ctx, s.enrollmentRepo, s.ticketRepo, input.UserID); err != nil {
		return nil, err
	}

	// ユーザーあたり同時に1件まで
	if _, err := s.bookingRepo.FindWithRoomByUserID(ctx, input.UserID); err == nil {
		return nil, booking.ErrAlreadyBooked
	} else if !errors.Is(err, booking.ErrBookingNotFound) {
		return nil, fmt.Errorf("既存予約の確認に失敗: %w", err)
	}

	// 事前チェック（存在 → 空き状況の順）
	// ここはトランザクション外の参照のため確定的ではない。確定判定はロック取得後に再チェックする
	if err := s.checkRoomData(ctx, input.RoomID); err != nil {
		return nil, err
	}

	// 分散ロックで同一客室への予約処理を直列化
	if s.lockManager != nil {
		lock, err := s.lockManager.AcquireLockWithRetry(ctx, roomLockKey(input.RoomID), 10*time.Second, 3, 100*time.Millisecond)
		if err != nil {
			if errors.Is(err, redislock.ErrLockNotAcquired) {
				return nil, booking.ErrBookingInProgress
			}
			return nil, fmt.Errorf("ロック取得に失敗: %w", err)
		}
		defer lock.Release(ctx)
	}

	b := booking.NewBooking(input.UserID, input.RoomID)

	// 行ロック付きの再チェックと書き込みを同一トランザクションで実行し、定員超過を防ぐ
	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.checkRoomVacancyLocked(ctx, tx, input.RoomID); err != nil {
		return nil, err
	}
	if err := s.bookingRepo.Create(ctx, tx, b); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("コミットに失敗: %w", err)
	}

	return s.bookingRepo.FindWithRoomByUserID(ctx, input.UserID)
}

type UpdateBookingInput struct {
	UserID    int64
	BookingID int64
	RoomID    int64
}

// UpdateBooking は予約の客室を変更し、予約IDを返す
// 同じ客室への変更は冪等な成功ではなくForbiddenとして拒否する（現行仕様）
func (s *BookingService) UpdateBooking(ctx context.Context, input UpdateBookingInput) (int64, error) {
	id, err := s.updateBooking(ctx, input)
	recordBookingMetric("update", err)
	return id, err
}

func (s *BookingService) updateBooking(ctx context.Context, input UpdateBookingInput) (int64, error) {
	// 判定順序: 存在 → 所有 → ドメイン状態 → 空き状況
	b, err := s.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		return 0, err
	}
	if !b.IsOwnedBy(input.UserID) {
		return 0, booking.ErrBookingNotOwned
	}
	if b.RoomID == input.RoomID {
		return 0, booking.ErrSameRoom
	}

	if err := s.checkRoomData(ctx, input.RoomID); err != nil {
		return 0, err
	}

	if s.lockManager != nil {
		lock, err := s.lockManager.AcquireLockWithRetry(ctx, roomLockKey(input.RoomID), 10*time.Second, 3, 100*time.Millisecond)
		if err != nil {
			if errors.Is(err, redislock.ErrLockNotAcquired) {
				return 0, booking.ErrBookingInProgress
			}
			return 0, fmt.Errorf("ロック取得に失敗: %w", err)
		}
		defer lock.Release(ctx)
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("トランザクション開始に失敗: %w", err)
	}
	defer tx.Rollback()

	if err := s.checkRoomVacancyLocked(ctx, tx, input.RoomID); err != nil {
		return 0, err
	}
	if err := s.bookingRepo.UpdateRoom(ctx, tx, b.ID, input.RoomID); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("コミットに失敗: %w", err)
	}

	return b.ID, nil
}

// checkRoomData は客室の存在と空き状況を確認する（トランザクション外の事前チェック）
func (s *BookingService) checkRoomData(ctx context.Context, roomID int64) error {
	room, err := s.hotelRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return err
	}
	count, err := s.bookingRepo.CountByRoomID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("予約数取得に失敗: %w", err)
	}
	if !room.HasVacancy(count) {
		return hotel.ErrRoomFull
	}
	return nil
}

// checkRoomVacancyLocked は客室の行ロックを取った上で空き状況を再確認する
func (s *BookingService) checkRoomVacancyLocked(ctx context.Context, tx transaction.Tx, roomID int64) error {
	room, err := s.hotelRepo.FindRoomByIDForUpdate(ctx, tx, roomID)
	if err != nil {
		return err
	}
	count, err := s.bookingRepo.CountByRoomIDForUpdate(ctx, tx, roomID)
	if err != nil {
		return fmt.Errorf("予約数取得に失敗: %w", err)
	}
	if !room.HasVacancy(count) {
		return hotel.ErrRoomFull
	}
	return nil
}

func roomLockKey(roomID int64) string {
	return fmt.Sprintf("room:%d", roomID)
}

// recordBookingMetric は予約操作の結果をメトリクスに記録する
func recordBookingMetric(operation string, err error) {
	m := metrics.Get()
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(operation, bookingStatusOf(err)).Inc()
}

func bookingStatusOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, hotel.ErrRoomFull):
		return "room_full"
	case errors.Is(err, booking.ErrAlreadyBooked):
		return "duplicate"
	case errors.Is(err, booking.ErrSameRoom):
		return "same_room"
	case errors.Is(err, ticket.ErrTicketNotEligible):
		return "not_eligible"
	case errors.Is(err, booking.ErrBookingInProgress):
		return "lock_failed"
	case apperror.KindOf(err) == apperror.KindNotFound:
		return "not_found"
	case apperror.KindOf(err) == apperror.KindUnauthorized:
		return "not_owner"
	default:
		return "error"
	}
}
