package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/golang-jwt/jwt/v5"

	"entitled/utils"
)

// Claims carries the identity baked into a session token
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token for the given identity
func GenerateToken(username, email, secret string) (string, error) {
	claims := Claims{
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %v", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a session token
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// SessionMiddleware guards routes behind an authenticated session. API
// requests get a JSON 401; page requests are redirected to the login
// form.
func SessionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			utils.Log.Error("Session error: %v", err)
			return rejectUnauthenticated(c)
		}

		if sess.Get("authenticated") != true {
			return rejectUnauthenticated(c)
		}

		if username, ok := sess.Get("username").(string); ok {
			c.Locals("username", username)
		}
		if email, ok := sess.Get("email").(string); ok {
			c.Locals("email", email)
		}
		if userID, ok := sess.Get("user_id").(string); ok {
			c.Locals("user_id", userID)
		}

		return c.Next()
	}
}

func rejectUnauthenticated(c *fiber.Ctx) error {
	if c.Get("HX-Request") != "" || len(c.Path()) >= 4 && c.Path()[:4] == "/api" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}
	return c.Redirect("/login")
}

// GetSessionToken returns the JWT stored in the current session
func GetSessionToken(c *fiber.Ctx, store *session.Store) (string, error) {
	sess, err := store.Get(c)
	if err != nil {
		return "", fmt.Errorf("session error: %v", err)
	}

	token, ok := sess.Get("token").(string)
	if !ok || token == "" {
		return "", errors.New("no session token")
	}
	return token, nil
}

// CurrentUserID returns the user id placed in locals by the session
// middleware
func CurrentUserID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
