package main

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"entitled/config"
	"entitled/fixtures"
	"entitled/handlers/api"
	"entitled/handlers/web"
	"entitled/middleware"
	"entitled/storage"
	"entitled/utils"
)

// Helper function to determine if request is an API request
func isAPIRequest(c *fiber.Ctx) bool {
	if c == nil {
		return false
	}

	// Check for HTMX request first
	if c.Get("HX-Request") != "" {
		return true
	}

	path := c.Path()
	return len(path) >= 4 && path[:4] == "/api"
}

func main() {
	utils.Log.Info("Initializing Entitled workspace...")

	// Load configuration
	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		return
	}

	// Initialize i18n system
	if err := utils.InitI18n(); err != nil {
		utils.Log.Error("Failed to initialize i18n: %v", err)
	}

	// Open the workspace database
	db, err := storage.InitDB(cfg.Storage.DataDir)
	if err != nil {
		utils.Log.Error("Failed to open database: %v", err)
		return
	}
	defer db.Close()

	userStorage := storage.NewUserStorage(db)
	prefsStorage := storage.NewPreferencesStorage(db)

	store := session.New(session.Config{
		Storage:        storage.NewSessionStorage(db),
		Expiration:     24 * time.Hour,
		CookieSecure:   cfg.SSL.Enabled,
		CookieHTTPOnly: true,
	})

	// Build the data facade: fixtures by default, a live mailbox when
	// one is configured
	client := api.NewClient(fixtures.Default(), api.Latency{
		List:   cfg.API.ListDelay(),
		Lookup: cfg.API.LookupDelay(),
		Action: cfg.API.ActionDelay(),
	})
	if cfg.IMAP.Enabled {
		source, err := api.NewIMAPSource(cfg.IMAP.Server, cfg.IMAP.Port, cfg.IMAP.Email, cfg.IMAP.Password)
		if err != nil {
			utils.Log.Error("IMAP backend unavailable, staying on fixtures: %v", err)
		} else {
			client.WithSource(source)
		}
	}
	defer client.Close()

	cache := utils.NewMemoryCache(cfg.Cache.Folder)

	// Initialize template engine with custom functions
	engine := html.New("./templates", ".html")

	// String manipulation functions
	engine.AddFunc("split", strings.Split)
	engine.AddFunc("join", strings.Join)
	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("upper", strings.ToUpper)
	engine.AddFunc("trim", strings.TrimSpace)
	engine.AddFunc("hasPrefix", strings.HasPrefix)

	// i18n template functions
	engine.AddFunc("t", func(messageID string) string {
		// This will be overridden per-request with the correct localizer
		return utils.T(utils.Localizer, messageID)
	})
	engine.AddFunc("tWithData", func(messageID string, data map[string]interface{}) string {
		return utils.TWithData(utils.Localizer, messageID, data)
	})
	engine.AddFunc("tPlural", func(messageID string, count int) string {
		return utils.TPlural(utils.Localizer, messageID, count)
	})

	// Display formatting functions
	engine.AddFunc("formatCurrency", utils.FormatCurrency)
	engine.AddFunc("formatDate", utils.FormatDate)
	engine.AddFunc("formatDateString", func(s string) string {
		formatted, err := utils.FormatDateString(s)
		if err != nil {
			return s
		}
		return formatted
	})
	engine.AddFunc("relativeTime", utils.FormatRelativeTime)
	engine.AddFunc("truncate", utils.TruncateText)
	engine.AddFunc("highlight", func(content string) template.HTML {
		return template.HTML(utils.HighlightContent(content))
	})

	engine.Reload(true)

	// Initialize Fiber with template engine
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main", // Default layout
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			// Check for AppError
			if appErr, ok := err.(*utils.AppError); ok {
				code = appErr.Code
				utils.Log.Error("Application error: %v", appErr)
			} else if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			// Handle API requests differently
			if isAPIRequest(c) {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			// Render error page for regular requests
			return c.Status(code).Render("error", fiber.Map{
				"Error": err.Error(),
				"Code":  code,
			})
		},
	})

	// Add global middleware
	app.Use(recover.New())            // Recover from panics
	app.Use(logger.New())             // Request logging
	app.Use(compress.New())           // Response compression
	app.Use(helmet.New(helmet.Config{ // Security headers
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline';",
	}))

	// Add locale middleware
	app.Use(middleware.LocaleMiddleware())

	// Add CSRF protection for the form posts
	app.Use(middleware.CSRFProtection())

	// Add rate limiting (100 requests per minute per IP)
	app.Use(middleware.RateLimiter(100, time.Minute))

	// Serve static files
	app.Static("/assets", "./assets", fiber.Static{
		Compress:      true,
		CacheDuration: 24 * time.Hour,
	})

	// Initialize handlers
	notificationHandler := api.NewNotificationHandler(store)

	webAuthHandler := web.NewAuthHandler(store, cfg, userStorage)
	workspaceHandler := web.NewWorkspaceHandler(store, cfg, client, cache)
	webPropertyHandler := web.NewPropertyHandler(store, cfg, client, cache)
	settingsHandler := web.NewSettingsHandler(store, prefsStorage)

	emailHandler := api.NewEmailHandler(client, notificationHandler)
	propertyHandler := api.NewPropertyHandler(client)
	searchHandler := api.NewSearchHandler(client)
	preferencesHandler := api.NewPreferencesHandler(prefsStorage)
	i18nHandler := &api.I18nHandler{}

	tabHandler, err := api.NewTabHandler(client)
	if err != nil {
		utils.Log.Error("Failed to seed tab bar: %v", err)
		return
	}

	// Public routes
	app.Get("/login", webAuthHandler.ShowLogin)
	app.Post("/login", webAuthHandler.HandleLogin)
	app.Get("/logout", webAuthHandler.HandleLogout)

	// Protected routes group
	protected := app.Group("", api.SessionMiddleware(store))

	// Main web routes
	protected.Get("/", workspaceHandler.HandleInbox) // Default to the workspace
	protected.Get("/workspace", workspaceHandler.HandleInbox)
	protected.Get("/properties", webPropertyHandler.HandleList)
	protected.Get("/property/:id", webPropertyHandler.HandleDetail)
	protected.Get("/settings", settingsHandler.HandleShow)
	protected.Post("/settings", settingsHandler.HandleSave)

	// API routes
	apiRoutes := protected.Group("/api")
	{
		// Email routes
		apiRoutes.Get("/emails", emailHandler.HandleList)
		apiRoutes.Get("/email/:id", emailHandler.HandleGet)
		apiRoutes.Post("/email/:id/:action", emailHandler.HandleAction)

		// Property routes
		apiRoutes.Get("/properties", propertyHandler.HandleList)
		apiRoutes.Get("/property/:id", propertyHandler.HandleGet)
		apiRoutes.Get("/property/:id/requirements", propertyHandler.HandleRequirements)
		apiRoutes.Get("/contacts", propertyHandler.HandleContacts)
		apiRoutes.Get("/contact/:id", propertyHandler.HandleContact)
		apiRoutes.Get("/documents", propertyHandler.HandleDocuments)

		// Tab routes
		apiRoutes.Get("/tabs", tabHandler.HandleList)
		apiRoutes.Post("/tabs", tabHandler.HandleOpen)
		apiRoutes.Put("/tabs/:id/activate", tabHandler.HandleActivate)
		apiRoutes.Delete("/tabs/:id", tabHandler.HandleClose)

		// Filter option groups
		apiRoutes.Get("/filters", emailHandler.HandleFilterGroups)

		// Search routes
		apiRoutes.Post("/search", searchHandler.HandleSearch)

		// Generic action sink
		apiRoutes.Post("/actions", emailHandler.HandlePerformAction)

		// Preference routes
		apiRoutes.Get("/preferences", preferencesHandler.HandleGet)
		apiRoutes.Put("/preferences", preferencesHandler.HandleSave)

		// Notification routes
		apiRoutes.Get("/notifications", notificationHandler.HandleList(client))
		apiRoutes.Get("/notifications/stream", notificationHandler.HandleSSE)

		// i18n routes
		apiRoutes.Get("/i18n/:lang", i18nHandler.GetTranslations)
	}

	// HTMX routes (partial template renders)
	htmx := protected.Group("/htmx")
	{
		htmx.Get("/email/:id", workspaceHandler.HandleEmailView)
	}

	// WebSocket notifications
	protected.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	protected.Get("/ws/notifications", websocket.New(notificationHandler.HandleWebSocket))

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 404 Handler for undefined routes
	app.Use(func(c *fiber.Ctx) error {
		localizer := c.Locals("localizer").(*i18n.Localizer)

		if isAPIRequest(c) {
			return c.Status(404).JSON(fiber.Map{
				"error": utils.T(localizer, "error_404"),
			})
		}
		return c.Status(404).Render("error", fiber.Map{
			"Error": utils.T(localizer, "error_404"),
			"Code":  404,
		})
	})

	// Start server
	utils.Log.Info("Starting server on port %d...", cfg.Server.Port)
	if cfg.SSL.Enabled {
		if err := app.ListenTLS(fmt.Sprintf(":%d", cfg.SSL.Port), cfg.SSL.CertFile, cfg.SSL.KeyFile); err != nil {
			utils.Log.Error("Error starting TLS server: %v", err)
		}
		return
	}
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		utils.Log.Error("Error starting server: %v", err)
	}
}
