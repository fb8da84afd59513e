package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/metrics"
)

// BookingCounter は現在の予約総数を数えるインターフェース
type BookingCounter interface {
	CountAll(ctx context.Context) (int, error)
}

// HotelCatalog はホテルカタログを読み出すインターフェース
type HotelCatalog interface {
	FindHotels(ctx context.Context) ([]*hotel.Hotel, error)
}

// CatalogCache はホテルカタログのキャッシュを書き込むインターフェース
type CatalogCache interface {
	SetHotels(ctx context.Context, hotels []*hotel.Hotel, ttl time.Duration) error
}

// OccupancyRefresher は稼働中の予約数を定期的に集計してゲージメトリクスに
// 反映し、あわせてホテルカタログのキャッシュを温めるワーカー
type OccupancyRefresher struct {
	bookingRepo BookingCounter
	hotelRepo   HotelCatalog
	cache       CatalogCache
	metrics     *metrics.Metrics
	interval    time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
}

// NewOccupancyRefresher は新しいリフレッシャーを作成
// hotelRepoまたはcacheがnilの場合はキャッシュ温めをスキップする
func NewOccupancyRefresher(repo BookingCounter, hotelRepo HotelCatalog, cache CatalogCache, m *metrics.Metrics, interval time.Duration) *OccupancyRefresher {
	return &OccupancyRefresher{
		bookingRepo: repo,
		hotelRepo:   hotelRepo,
		cache:       cache,
		metrics:     m,
		interval:    interval,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
}

// Start はリフレッシャーを開始
func (r *OccupancyRefresher) Start(ctx context.Context) {
	logger.Info("予約数リフレッシャー開始", zap.Duration("interval", r.interval))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	// 起動直後に一度集計しておく
	r.refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("予約数リフレッシャー停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("予約数リフレッシャー停止（シグナル受信）")
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// Stop はリフレッシャーを停止
func (r *OccupancyRefresher) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// refresh は予約総数を集計してゲージを更新し、カタログキャッシュを温める
func (r *OccupancyRefresher) refresh(ctx context.Context) {
	log := logger.Get()

	count, err := r.bookingRepo.CountAll(ctx)
	if err != nil {
		log.Error("予約数の集計失敗", zap.Error(err))
		return
	}

	r.metrics.ActiveBookings.Set(float64(count))
	log.Debug("予約数を更新", zap.Int("count", count))

	r.warmCatalog(ctx)
}

// warmCatalog はホテルカタログをキャッシュに書き戻す
func (r *OccupancyRefresher) warmCatalog(ctx context.Context) {
	if r.hotelRepo == nil || r.cache == nil {
		return
	}

	hotels, err := r.hotelRepo.FindHotels(ctx)
	if err != nil {
		logger.Get().Error("カタログ取得失敗", zap.Error(err))
		return
	}
	if err := r.cache.SetHotels(ctx, hotels, 2*r.interval); err != nil {
		logger.Get().Warn("カタログキャッシュの更新失敗", zap.Error(err))
	}
}
