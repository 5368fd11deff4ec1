package web

import (
	_ "embed"

	"reviewdesk/internal/session"

	"github.com/gofiber/fiber/v2"
)

//go:embed static/style.css
var stylesheet []byte

// Register wires the console's routes onto the app. WithSession and
// Protect run on every request; Protect leaves the login view and
// static assets open.
func (h *Handler) Register(app *fiber.App) {
	app.Use(h.WithSession())
	app.Use(h.Protect())

	app.Get("/static/style.css", func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/css; charset=utf-8")
		return c.Send(stylesheet)
	})

	app.Get("/", h.Root)

	app.Get("/login", h.LoginPage)
	app.Post("/login", LoginLimiter(), h.Login)
	app.Post("/logout", h.Logout)

	app.Get("/papers", h.ListPapers)
	app.Get("/papers/new", h.NewPaperPage)
	app.Post("/papers", h.CreatePaper)
	app.Get("/papers/:id", h.PaperDetail)

	app.Get("/reviews/new", h.ReviewFormPage)
	app.Post("/reviews", h.SubmitReview)
	app.Get("/assigned", h.Assigned)

	admin := app.Group("/dashboard", h.RequireRole(session.RoleAdmin))
	admin.Get("/", h.Dashboard)
	admin.Post("/assign", h.TriggerAssign)
}
