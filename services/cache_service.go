package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/luanmendes74/menu-flow-saas/config"
	"github.com/luanmendes74/menu-flow-saas/structs"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching functionality with connection pooling
// and retry logic. It carries session carts, the public menu cache, rate
// limit counters and the refresh-token blacklist.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors
		if !isRetryableCacheError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		if _, err := rand.Read(jitterBytes); err != nil {
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))
		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableCacheError determines if an error is worth retrying
func isRetryableCacheError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if err == redis.Nil {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, 3)
}

// Get retrieves a key with automatic retry logic. Returns "" for a missing key.
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil // Don't retry on key not found
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	return result, err
}

// Delete removes a key
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// IncrementRateLimit increments the sliding-window counter for ip+endpoint
// and returns the current count. The key expires after window.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var count int64
	err := cs.withRetry(func() error {
		pipe := cs.client.TxPipeline()
		incr := pipe.Incr(redisCtx, key)
		pipe.Expire(redisCtx, key, window)
		if _, err := pipe.Exec(redisCtx); err != nil {
			return err
		}
		count = incr.Val()
		return nil
	}, 2)

	return int(count), err
}

func cartKey(establishmentId uuid.UUID, sessionKey string) string {
	return fmt.Sprintf("cart:%s:%s", establishmentId, sessionKey)
}

// GetCart loads the session cart. A missing key yields an empty cart.
func (cs *CacheService) GetCart(establishmentId uuid.UUID, sessionKey string) (*structs.Cart, error) {
	raw, err := cs.Get(cartKey(establishmentId, sessionKey))
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return structs.NewCart(), nil
	}

	cart := structs.NewCart()
	if err := json.Unmarshal([]byte(raw), cart); err != nil {
		cs.logger.Warn("Corrupt cart payload in cache, resetting",
			gecho.Field("error", err),
			gecho.Field("session", sessionKey))
		return structs.NewCart(), nil
	}
	return cart, nil
}

// SetCart stores the session cart with the configured TTL.
func (cs *CacheService) SetCart(establishmentId uuid.UUID, sessionKey string, cart *structs.Cart) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return cs.Set(cartKey(establishmentId, sessionKey), payload, cs.config.Cache.CartTTL)
}

// DeleteCart discards the session cart (successful checkout, session end).
func (cs *CacheService) DeleteCart(establishmentId uuid.UUID, sessionKey string) error {
	return cs.Delete(cartKey(establishmentId, sessionKey))
}

func menuKey(subdomain string) string {
	return fmt.Sprintf("menu:%s", subdomain)
}

// GetMenu returns the cached public menu for a subdomain, or nil on miss.
func (cs *CacheService) GetMenu(subdomain string) (*structs.Menu, error) {
	raw, err := cs.Get(menuKey(subdomain))
	if err != nil || raw == "" {
		return nil, err
	}

	var menu structs.Menu
	if err := json.Unmarshal([]byte(raw), &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// SetMenu caches the public menu for a subdomain.
func (cs *CacheService) SetMenu(subdomain string, menu *structs.Menu) error {
	payload, err := json.Marshal(menu)
	if err != nil {
		return err
	}
	return cs.Set(menuKey(subdomain), payload, cs.config.Cache.MenuTTL)
}

// InvalidateMenu drops the cached menu after a catalog write.
func (cs *CacheService) InvalidateMenu(subdomain string) error {
	return cs.Delete(menuKey(subdomain))
}

// BlacklistToken marks a refresh token jti as revoked until its expiry.
func (cs *CacheService) BlacklistToken(jti uuid.UUID, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return cs.Set(fmt.Sprintf("blacklist:%s", jti), "1", ttl)
}

// IsTokenBlacklisted reports whether a refresh token jti has been revoked.
func (cs *CacheService) IsTokenBlacklisted(jti uuid.UUID) (bool, error) {
	val, err := cs.Get(fmt.Sprintf("blacklist:%s", jti))
	if err != nil {
		return false, err
	}
	return val != "", nil
}
