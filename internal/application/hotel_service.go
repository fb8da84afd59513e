package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/enrollment"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/ticket"
	redisinfra "github.com/sanosuguru/go-event-hotel-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/logger"
)

const (
	hotelCacheTTL = 30 * time.Second
)

type HotelService struct {
	hotelRepo      hotel.Repository
	enrollmentRepo enrollment.Repository
	ticketRepo     ticket.Repository
	cache          *redisinfra.HotelCache
}

func NewHotelService(hr hotel.Repository, er enrollment.Repository, tr ticket.Repository, cache *redisinfra.HotelCache) *HotelService {
	return &HotelService{hotelRepo: hr, enrollmentRepo: er, ticketRepo: tr, cache: cache}
}

// GetHotels は資格チェックの後にホテルカタログを返す
// 空のカタログは正常な結果でありエラーではない
func (s *HotelService) GetHotels(ctx context.Context, userID int64) ([]*hotel.Hotel, error) {
	if _, err := checkUserEligibility(ctx, s.enrollmentRepo, s.ticketRepo, userID); err != nil {
		return nil, err
	}

	// キャッシュから取得を試みる
	if s.cache != nil {
		hotels, err := s.cache.GetHotels(ctx)
		if err == nil {
			logger.Debug("ホテルカタログのキャッシュヒット", zap.Int("count", len(hotels)))
			return hotels, nil
		}
		if !errors.Is(err, redisinfra.ErrCacheMiss) {
			logger.Warn("キャッシュ取得エラー", zap.Error(err))
		}
	}

	hotels, err := s.hotelRepo.FindHotels(ctx)
	if err != nil {
		return nil, err
	}

	// キャッシュに保存
	if s.cache != nil {
		if cacheErr := s.cache.SetHotels(ctx, hotels, hotelCacheTTL); cacheErr != nil {
			logger.Warn("キャッシュ保存エラー", zap.Error(cacheErr))
		}
	}

	return hotels, nil
}

// GetHotelWithRooms は資格チェックの後にホテルを客室込みで返す
func (s *HotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*hotel.Hotel, error) {
	if _, err := checkUserEligibility(ctx, s.enrollmentRepo, s.ticketRepo, userID); err != nil {
		return nil, err
	}

	return s.hotelRepo.FindHotelWithRoomsByID(ctx, hotelID)
}

// InvalidateCache はホテルカタログのキャッシュを無効化する
func (s *HotelService) InvalidateCache(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Warn("キャッシュ無効化エラー", zap.Error(err))
		}
	}
}
