package sessions

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/antonkh/thingboard/internal/jwt"
	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
)

// CookieName is the name of the cookie carrying the signed session token.
const CookieName = "tb_session"

const keyPrefix = "session:"

// Store keeps session state in Redis, keyed by an opaque session ID. The
// browser holds only a signed token wrapping that ID; identity and flash
// messages never leave the server.
type Store struct {
	client *redis.Client
	tokens *jwt.JWT
	exp    time.Duration // session TTL in Redis
}

// NewStore creates a new session store instance
func NewStore(client *redis.Client, tokens *jwt.JWT, expiration time.Duration) *Store {
	return &Store{
		client: client,
		tokens: tokens,
		exp:    expiration,
	}
}

// Load returns the session for the request. A missing cookie, a token that
// fails validation, or an expired Redis key all yield a fresh anonymous
// session, so the returned session is always usable.
func (s *Store) Load(ctx context.Context, r *http.Request) *models.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return newSession()
	}

	sessionID, err := s.tokens.GetSessionID(ctx, cookie.Value)
	if err != nil {
		logger.Log.Infow("rejected session token", "error", err)
		return newSession()
	}

	val, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Errorw("failed to load session", "session_id", sessionID, "error", err)
		}
		return newSession()
	}

	var session models.Session
	if err := json.Unmarshal([]byte(val), &session); err != nil {
		logger.Log.Errorw("failed to decode session", "session_id", sessionID, "error", err)
		return newSession()
	}
	session.ID = sessionID

	return &session
}

// Save persists the session to Redis and (re)sets the session cookie. The
// Redis TTL restarts on every save.
func (s *Store) Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, data, s.exp).Err(); err != nil {
		logger.Log.Errorw("failed to save session", "session_id", session.ID, "error", err)
		return err
	}

	token, err := s.tokens.Generate(ctx, session.ID)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.exp.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func newSession() *models.Session {
	return &models.Session{ID: uuid.New().String()}
}
