package http

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/myapplevix/store-backend/docs" // generated swagger docs
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(adminUC *usecase.AdminUseCase, catalogUC usecase.CatalogUC, verifier usecase.Authorizer) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		adminHandler := NewAdminHandler(adminUC, r.logger)
		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(requireAdmin(verifier, r.logger))
			registerAdminRoutes(admin, adminHandler)
		})
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Get("/catalog/{tipo}", h.listCatalog)
	router.Get("/products/{id}", h.getProduct)
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Get("/dashboard", h.dashboard)
	router.Get("/notifications", h.notifications)

	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Post("/{id}/sell", h.sellProduct)
		pr.Post("/{id}/removal", h.requestRemoval)
	})

	router.Route("/removal", func(rm chi.Router) {
		rm.Post("/confirm", h.confirmRemoval)
		rm.Post("/cancel", h.cancelRemoval)
	})

	router.Post("/uploads", h.uploadPhoto)

	router.Route("/config", func(cfg chi.Router) {
		cfg.Get("/", h.getConfig)
		cfg.Put("/", h.saveConfig)
		cfg.Post("/logo", h.replaceLogo)
	})
}
