package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const adminSessionPrefix = "adminSession:"

// SaveAdminSession records a hash of an issued admin token in Redis with a TTL.
// Only tokens present here are accepted by the admin middleware, so a session
// can be revoked server-side before the JWT itself expires.
func SaveAdminSession(client *redis.Client, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, adminSessionPrefix+tokenHash, time.Now().UTC().Format(time.RFC3339), ttl).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// AdminSessionExists reports whether a token hash has an active session.
func AdminSessionExists(client *redis.Client, tokenHash string) (bool, error) {
	ctx := context.Background()
	n, err := client.Exists(ctx, adminSessionPrefix+tokenHash).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check admin session: %w", err)
	}
	return n > 0, nil
}

// DeleteAdminSession revokes an admin session.
func DeleteAdminSession(client *redis.Client, tokenHash string) error {
	ctx := context.Background()
	return client.Del(ctx, adminSessionPrefix+tokenHash).Err()
}
