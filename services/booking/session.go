package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"groomly/config"
	"groomly/models"
	"groomly/utils"

	"github.com/go-redis/redis/v8"
)

func sessionTTL() time.Duration {
	minutes := config.AppConfig.SessionTTLMinutes
	if minutes <= 0 {
		minutes = 15
	}
	return time.Duration(minutes) * time.Minute
}

// SessionStore persists wizard sessions between requests. The default is
// Redis; tests substitute an in-memory store.
type SessionStore interface {
	// Load fetches a session by ID. A missing or expired session returns
	// a NotFoundError.
	Load(sessionID string) (*models.BookingSession, error)

	// Save stores the session, refreshing its TTL.
	Save(session *models.BookingSession) error

	// Delete removes the session.
	Delete(sessionID string) error
}

// redisSessionStore keeps sessions in the booking cache with a TTL.
type redisSessionStore struct{}

func (redisSessionStore) Load(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()

	sessionData, err := cacheClient.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, &utils.NotFoundError{Message: "booking session not found or expired"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}

	var session models.BookingSession
	if err := json.Unmarshal([]byte(sessionData), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (redisSessionStore) Save(session *models.BookingSession) error {
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()

	sessionData, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := cacheClient.Set(ctx, session.SessionID, sessionData, sessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (redisSessionStore) Delete(sessionID string) error {
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()
	if err := cacheClient.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) sessions() SessionStore {
	if s.Sessions != nil {
		return s.Sessions
	}
	return redisSessionStore{}
}

// loadSession fetches the session and verifies it belongs to the calling
// client. A foreign session looks identical to a missing one.
func (s *DefaultBookingSessionService) loadSession(sessionID, clientID string) (*models.BookingSession, error) {
	session, err := s.sessions().Load(sessionID)
	if err != nil {
		return nil, err
	}
	if session.ClientID != clientID {
		return nil, &utils.NotFoundError{Message: "booking session not found or expired"}
	}
	return session, nil
}
