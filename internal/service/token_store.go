package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefixes for the token whitelist
	AccessTokenKeyPrefix  = "access_token:"
	RefreshTokenKeyPrefix = "refresh_token:"

	// Timeout for individual Redis operations
	tokenStoreTimeout = 5 * time.Second

	// SCAN page size when revoking every token of a user
	revokeScanCount = 500
)

// TokenStore whitelists issued tokens. A token is valid only while its key exists.
type TokenStore interface {
	Save(ctx context.Context, userID int64, accessID, refreshID string, accessTTL, refreshTTL time.Duration) error
	IsAccessTokenValid(ctx context.Context, userID int64, tokenID string) (bool, error)
	ConsumeRefreshToken(ctx context.Context, userID int64, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID int64, accessID, refreshID string) error
	RevokeAll(ctx context.Context, userID int64) error
}

type redisTokenStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewTokenStore(redisClient *redis.Client, log *logrus.Logger) TokenStore {
	return &redisTokenStore{redisClient: redisClient, log: log}
}

func AccessTokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", AccessTokenKeyPrefix, userID, tokenID)
}

func RefreshTokenKey(userID int64, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", RefreshTokenKeyPrefix, userID, tokenID)
}

// Save stores both keys in one MULTI/EXEC so a pair is never half written.
func (s *redisTokenStore) Save(ctx context.Context, userID int64, accessID, refreshID string, accessTTL, refreshTTL time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	pipe := s.redisClient.TxPipeline()
	pipe.Set(ctx, AccessTokenKey(userID, accessID), "valid", accessTTL)
	pipe.Set(ctx, RefreshTokenKey(userID, refreshID), "valid", refreshTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warnf("Failed to store tokens for user %d: %+v", userID, err)
		return fmt.Errorf("store tokens for user %d: %w", userID, err)
	}
	return nil
}

func (s *redisTokenStore) IsAccessTokenValid(ctx context.Context, userID int64, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	exists, err := s.redisClient.Exists(ctx, AccessTokenKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}
	return exists > 0, nil
}

// ConsumeRefreshToken deletes the refresh key and reports whether it existed.
// DEL is atomic, so a refresh token can be exchanged only once.
func (s *redisTokenStore) ConsumeRefreshToken(ctx context.Context, userID int64, tokenID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	deleted, err := s.redisClient.Del(ctx, RefreshTokenKey(userID, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to consume refresh token: %+v", err)
		return false, err
	}
	return deleted > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID int64, accessID, refreshID string) error {
	ctx, cancel := context.WithTimeout(ctx, tokenStoreTimeout)
	defer cancel()

	keys := []string{AccessTokenKey(userID, accessID)}
	if refreshID != "" {
		keys = append(keys, RefreshTokenKey(userID, refreshID))
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Failed to revoke tokens for user %d: %+v", userID, err)
		return fmt.Errorf("revoke tokens for user %d: %w", userID, err)
	}
	return nil
}

// RevokeAll removes every token of a user, e.g. after a password change or
// suspension. Keys are collected with SCAN and deleted one page at a time.
func (s *redisTokenStore) RevokeAll(ctx context.Context, userID int64) error {
	for _, prefix := range []string{AccessTokenKeyPrefix, RefreshTokenKeyPrefix} {
		pattern := fmt.Sprintf("%s%d:*", prefix, userID)
		var cursor uint64
		for {
			keys, next, err := s.redisClient.Scan(ctx, cursor, pattern, revokeScanCount).Result()
			if err != nil {
				s.log.Warnf("Failed to scan token keys for user %d: %+v", userID, err)
				return fmt.Errorf("scan %s for user %d: %w", prefix, userID, err)
			}
			if len(keys) > 0 {
				if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
					s.log.Warnf("Failed to delete token keys for user %d: %+v", userID, err)
					return fmt.Errorf("delete %s for user %d: %w", prefix, userID, err)
				}
			}
			cursor = next
			if cursor == 0 {
				break
			}

			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
	}

	s.log.Infof("Revoked all tokens for user %d", userID)
	return nil
}
