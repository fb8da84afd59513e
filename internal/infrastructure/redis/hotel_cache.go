package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sanosuguru/go-event-hotel-booking/internal/domain/hotel"
)

var (
	ErrCacheMiss = errors.New("キャッシュが見つかりません")
)

// HotelCache はホテルカタログのキャッシュを管理する
// カタログは参照データのため短いTTLのキャッシュアサイドで十分
type HotelCache struct {
	client *redis.Client
}

// NewHotelCache は新しいHotelCacheインスタンスを作成する
func NewHotelCache(client *redis.Client) *HotelCache {
	return &HotelCache{client: client}
}

// GetHotels はホテルカタログをキャッシュから取得する
func (c *HotelCache) GetHotels(ctx context.Context) ([]*hotel.Hotel, error) {
	val, err := c.client.Get(ctx, c.catalogKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("キャッシュ取得に失敗: %w", err)
	}
	var hotels []*hotel.Hotel
	if err := json.Unmarshal(val, &hotels); err != nil {
		return nil, fmt.Errorf("キャッシュ復元に失敗: %w", err)
	}
	return hotels, nil
}

// SetHotels はホテルカタログをキャッシュに保存する
func (c *HotelCache) SetHotels(ctx context.Context, hotels []*hotel.Hotel, ttl time.Duration) error {
	data, err := json.Marshal(hotels)
	if err != nil {
		return fmt.Errorf("キャッシュ変換に失敗: %w", err)
	}
	if err := c.client.Set(ctx, c.catalogKey(), data, ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュ保存に失敗: %w", err)
	}
	return nil
}

// Invalidate はホテルカタログのキャッシュを無効化する
func (c *HotelCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.catalogKey()).Err(); err != nil {
		return fmt.Errorf("キャッシュ無効化に失敗: %w", err)
	}
	return nil
}

func (c *HotelCache) catalogKey() string {
	return "hotels:catalog"
}
