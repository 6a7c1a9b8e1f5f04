package routes

import (
	"net/http"
	"time"

	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/config"
	"github.com/ahmetcoskunkizilkaya/music-catalog/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Route is one entry of the routing table. Public routes skip token auth.
type Route struct {
	Method  string
	Path    string
	Handler fiber.Handler
	Public  bool
}

type Handlers struct {
	Users  *handlers.UserHandler
	Genres *handlers.GenreHandler
	Songs  *handlers.SongHandler
	Health *handlers.HealthHandler
}

// Table lists every catalog endpoint. :id is the owning user, :key the
// genre or song id.
func Table(h Handlers) []Route {
	return []Route{
		{Method: fiber.MethodPost, Path: "/users/login/", Handler: h.Users.Login, Public: true},
		{Method: fiber.MethodPost, Path: "/users/", Handler: h.Users.Register, Public: true},
		{Method: fiber.MethodGet, Path: "/users/:id<int>/", Handler: h.Users.Get},
		{Method: fiber.MethodPut, Path: "/users/:id<int>/", Handler: h.Users.Update},

		{Method: fiber.MethodPost, Path: "/users/:id<int>/genre/", Handler: h.Genres.Create},
		{Method: fiber.MethodGet, Path: "/users/:id<int>/genres/", Handler: h.Genres.List},
		{Method: fiber.MethodGet, Path: "/users/:id<int>/genre/:key<int>/", Handler: h.Genres.Get},
		{Method: fiber.MethodPut, Path: "/users/:id<int>/genre/:key<int>/", Handler: h.Genres.Update},

		{Method: fiber.MethodPost, Path: "/users/:id<int>/song/", Handler: h.Songs.Create},
		{Method: fiber.MethodGet, Path: "/users/:id<int>/tracks/", Handler: h.Songs.List},
		{Method: fiber.MethodGet, Path: "/users/:id<int>/tracks/:key<int>/", Handler: h.Songs.Get},
		{Method: fiber.MethodPut, Path: "/users/:id<int>/tracks/:key<int>/", Handler: h.Songs.Update},
	}
}

// Setup mounts the routing table. tokenAuth guards every non-public route;
// metrics may be nil.
func Setup(app *fiber.App, cfg *config.Config, h Handlers, tokenAuth fiber.Handler, metrics http.Handler) {
	app.Get("/health", h.Health.Check)
	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}

	var general, credentials fiber.Handler
	if cfg.RateLimitPerMin > 0 {
		// General API rate limit per IP, stricter for register/login
		general = rateLimit(cfg.RateLimitPerMin)
		credentials = rateLimit(max(cfg.RateLimitPerMin/6, 1))
	}

	for _, r := range Table(h) {
		chain := make([]fiber.Handler, 0, 3)
		if general != nil {
			chain = append(chain, general)
			if r.Public {
				chain = append(chain, credentials)
			}
		}
		if !r.Public {
			chain = append(chain, tokenAuth)
		}
		chain = append(chain, r.Handler)
		app.Add(r.Method, r.Path, chain...)
	}
}

func rateLimit(perMinute int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               perMinute,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
}
