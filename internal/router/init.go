package router

import (
	"context"

	"github.com/saffco/skincare-backend/internal/application"
	"github.com/saffco/skincare-backend/internal/container"
	handlers "github.com/saffco/skincare-backend/internal/interface/http"
	"github.com/saffco/skincare-backend/internal/interface/middleware"
	"github.com/saffco/skincare-backend/internal/router/modules"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Uploads     *handlers.UploadHandler
	Catalog     *handlers.CatalogHandler
	Favorites   *handlers.FavoriteHandler
	Recommender *handlers.RecommenderHandler
	Health      *handlers.HealthHandler
	Static      *handlers.StaticHandler
}

// BuildHandlers wires services from the container's adapters.
func BuildHandlers(c *container.Container) Handlers {
	log := c.Logger

	auth := application.NewAuthService(c.Users, c.Hasher, c.Notifier, log)
	profile := application.NewProfileService(c.Users, c.Stager, c.Notifier, log)
	catalog := application.NewCatalogService(c.Articles, c.Products, c.Search, c.Cfg.ESArticlesIndex, c.Cfg.ESProductsIndex, log)
	favorites := application.NewFavoriteService(c.Favorites, c.Users)
	recommender := application.NewRecommenderService(c.Models)

	return Handlers{
		Auth:        handlers.NewAuthHandler(auth, log),
		Profile:     handlers.NewProfileHandler(profile, log),
		Uploads:     handlers.NewUploadHandler(c.Uploads),
		Catalog:     handlers.NewCatalogHandler(catalog, log),
		Favorites:   handlers.NewFavoriteHandler(favorites, log),
		Recommender: handlers.NewRecommenderHandler(recommender, log),
		Health:      handlers.NewHealthHandler(healthChecks(c), log),
		Static:      handlers.NewStaticHandler(c.Cfg.StaticDir),
	}
}

func healthChecks(c *container.Container) map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{}
	if c.Pool != nil {
		checks["postgres"] = c.Pool.Ping
	}
	if c.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() }
	}
	return checks
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	h := BuildHandlers(c)

	r.Use(middleware.RealIP())
	if c.Cfg.DebugMetricsEnabled {
		r.Use(middleware.Metrics())
	}

	r.Add(modules.NewAuthModule(h.Auth))
	r.Add(modules.NewProfileModule(h.Profile, h.Uploads))
	r.Add(modules.NewCatalogModule(h.Catalog))
	r.Add(modules.NewFavoriteModule(h.Favorites))
	r.Add(modules.NewRecommenderModule(h.Recommender))
	r.Add(modules.NewHealthModule(h.Health))
	if c.Cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	r.NoRoute(h.Static.Serve)
}
