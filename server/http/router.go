package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"variant-service/internal/catalog"
	"variant-service/internal/config"
	"variant-service/internal/middleware"
	varHnd "variant-service/internal/variant/handler"
	"variant-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, cat *catalog.Catalog) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	// health-check
	r.Get("/health", handlers.Health)

	// решение по выпадашке: снапшот + цель -> выбор + план навигации
	r.Post("/variant/select", varHnd.Select(logger))

	// шаг каталога: артикул + количество -> дескриптор целевого варианта
	r.Post("/variant/resolve", varHnd.ResolveVariant(logger, cat))

	// загрузка/замена экспорта Prodotti
	r.Post("/catalog", varHnd.UploadCatalog(logger, cat))

	return r
}
