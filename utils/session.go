// File: utils/session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSession is the explicit session context for an authenticated user.
// It is constructed at login, loaded per request, and cleared at logout or
// token revocation; no component reads ambient global auth state.
type AuthSession struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	TokenHash     string    `json:"tokenHash"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveAuthSession saves the session in Redis keyed by user ID, with a TTL.
func SaveAuthSession(client *redis.Client, session AuthSession, ttl time.Duration) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+session.UserID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// LoadAuthSession retrieves the session from Redis. A missing session
// returns redis.Nil, which callers treat as "not signed in".
func LoadAuthSession(client *redis.Client, userID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+userID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// ClearAuthSession removes the session from Redis.
func ClearAuthSession(client *redis.Client, userID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+userID).Err()
}
