package wizard

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// SessionPath is the public route issuing new session tokens.
const SessionPath = "/api/v1/wizard/session"

var ErrInvalidSession = errors.New("invalid wizard session")

// Sessions issues and verifies the signed tokens that identify a wizard session.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewSessions(secret string, ttl time.Duration) *Sessions {
	return &Sessions{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a new session id and the token carrying it.
func (s *Sessions) Issue() (token string, sessionID string, err error) {
	sessionID = uuid.NewString()
	now := s.now()
	claims := jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return token, sessionID, nil
}

// Middleware rejects requests without a valid session token and stores the
// parsed token in c.Locals("user").
func (s *Sessions) Middleware() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: s.secret,
		Filter:     func(c *fiber.Ctx) bool { return c.Path() == SessionPath },
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Oturum geçersiz veya süresi dolmuş."})
		},
	})
}

// SessionIDFromCtx extracts the session id placed in locals by Middleware.
func SessionIDFromCtx(c *fiber.Ctx) (string, error) {
	tok, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", ErrInvalidSession
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidSession
	}
	sid, ok := claims["sid"].(string)
	if !ok || sid == "" {
		return "", ErrInvalidSession
	}
	return sid, nil
}
