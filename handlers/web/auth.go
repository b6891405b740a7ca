// handlers/web/auth.go
package web

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"entitled/config"
	"entitled/handlers/api"
	"entitled/models"
	"entitled/storage"
	"entitled/utils"
)

type AuthHandler struct {
	store  *session.Store
	config *config.Config
	users  *storage.UserStorage
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(store *session.Store, config *config.Config, users *storage.UserStorage) *AuthHandler {
	return &AuthHandler{
		store:  store,
		config: config,
		users:  users,
	}
}

// ShowLogin renders the login page
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		if sess.Get("authenticated") == true {
			return c.Redirect("/workspace")
		}
	}
	return c.Render("login", fiber.Map{
		"CSRFToken": c.Locals("csrf"),
	})
}

// HandleLogin processes the login form. The first login against an
// empty workspace registers the account.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return c.Status(500).SendString("Session error")
	}

	email := strings.TrimSpace(c.FormValue("email"))
	password := strings.TrimSpace(c.FormValue("password"))

	if email == "" || password == "" {
		return c.Status(400).Render("login", fiber.Map{
			"Error":     "Email and password are required",
			"Email":     email,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	user, err := h.users.GetUserByEmail(email)
	if errors.Is(err, storage.ErrUserNotFound) {
		existing, listErr := h.users.ListUsers()
		if listErr == nil && len(existing) == 0 {
			user = &models.User{
				Username:    usernameFromEmail(email),
				Email:       email,
				DisplayName: usernameFromEmail(email),
			}
			if createErr := h.users.CreateUser(user, password); createErr != nil {
				utils.Log.Error("Failed to bootstrap user: %v", createErr)
				return c.Status(500).Render("login", fiber.Map{
					"Error":     "Server error occurred during setup",
					"Email":     email,
					"CSRFToken": c.Locals("csrf"),
				})
			}
			utils.Log.Info("Bootstrapped workspace account for %s", email)
		} else {
			return invalidCredentials(c, email)
		}
	} else if err != nil {
		utils.Log.Error("User lookup failed: %v", err)
		return c.Status(500).Render("login", fiber.Map{
			"Error":     "Server error",
			"Email":     email,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	if err := h.users.VerifyPassword(user.ID, password); err != nil {
		return invalidCredentials(c, email)
	}

	token, err := api.GenerateToken(user.Username, user.Email, h.config.JWT.Secret)
	if err != nil {
		return c.Status(500).Render("login", fiber.Map{
			"Error":     "Failed to create authentication token",
			"Email":     email,
			"CSRFToken": c.Locals("csrf"),
		})
	}

	h.users.UpdateLastLogin(user.ID)

	sess.Set("authenticated", true)
	sess.Set("username", user.Username)
	sess.Set("email", user.Email)
	sess.Set("user_id", user.ID)
	sess.Set("token", token)
	if err := sess.Save(); err != nil {
		return c.Status(500).SendString("Session error")
	}

	return c.Redirect("/workspace")
}

// HandleLogout clears the session
func (h *AuthHandler) HandleLogout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err == nil {
		if err := sess.Destroy(); err != nil {
			utils.Log.Warn("Failed to destroy session: %v", err)
		}
	}
	return c.Redirect("/login")
}

func invalidCredentials(c *fiber.Ctx, email string) error {
	return c.Status(401).Render("login", fiber.Map{
		"Error":     "Invalid email or password",
		"Email":     email,
		"CSRFToken": c.Locals("csrf"),
	})
}

func usernameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
