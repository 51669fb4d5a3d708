package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"restomart/internal/models"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "restomart"

// CacheService stores sales reports of closed days.
type CacheService interface {
	GetSalesSummary(ctx context.Context, day string) (*models.SalesSummary, error)
	SetSalesSummary(ctx context.Context, summary *models.SalesSummary, ttl time.Duration) error
	GetSalesByMenuItem(ctx context.Context, day string) (models.SalesByMenuItem, error)
	SetSalesByMenuItem(ctx context.Context, day string, sales models.SalesByMenuItem, ttl time.Duration) error
	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	return &redisCacheService{client: redis.NewClient(&redis.Options{
		Addr:     normalizeAddr(addr),
		Password: password,
		DB:       db,
	})}
}

// Connect creates the cache client and checks it once. A failed ping is only logged:
// reads fall back to the store while redis is away.
func Connect(ctx context.Context, addr, password string, db int) CacheService {
	svc := NewRedisCacheService(addr, password, db)
	if err := svc.Ping(ctx); err != nil {
		log.Printf("WARN: Redis ping failed on initialization: %v (address: %s)", err, normalizeAddr(addr))
	} else {
		log.Printf("Redis connection established")
	}
	return svc
}

// normalizeAddr strips a redis:// or rediss:// scheme from addr.
func normalizeAddr(addr string) string {
	for _, scheme := range []string{"redis://", "rediss://"} {
		if strings.HasPrefix(addr, scheme) {
			return strings.TrimPrefix(addr, scheme)
		}
	}
	return addr
}

func summaryKey(day string) string {
	return fmt.Sprintf("%s:sales:summary:%s", keyPrefix, day)
}

func byMenuItemKey(day string) string {
	return fmt.Sprintf("%s:sales:by-item:%s", keyPrefix, day)
}

func (r *redisCacheService) GetSalesSummary(ctx context.Context, day string) (*models.SalesSummary, error) {
	data, err := r.client.Get(ctx, summaryKey(day)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var summary models.SalesSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (r *redisCacheService) SetSalesSummary(ctx context.Context, summary *models.SalesSummary, ttl time.Duration) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, summaryKey(summary.Day), data, ttl).Err()
}

func (r *redisCacheService) GetSalesByMenuItem(ctx context.Context, day string) (models.SalesByMenuItem, error) {
	data, err := r.client.Get(ctx, byMenuItemKey(day)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	sales := make(models.SalesByMenuItem)
	if err := json.Unmarshal(data, &sales); err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *redisCacheService) SetSalesByMenuItem(ctx context.Context, day string, sales models.SalesByMenuItem, ttl time.Duration) error {
	data, err := json.Marshal(sales)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, byMenuItemKey(day), data, ttl).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
