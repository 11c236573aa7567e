package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
)

type CatalogHandler struct {
	catalog usecase.CatalogUC
	logger  logger.Logger
}

func NewCatalogHandler(catalog usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// The public pages use plural pt-BR category slugs.
func conditionFromSlug(slug string) (domain.Condition, error) {
	switch slug {
	case "novos":
		return domain.ConditionNew, nil
	case "seminovos":
		return domain.ConditionUsed, nil
	default:
		return "", e.ErrInvalidCondition
	}
}

// listCatalog
//
//	@Summary		Public catalog by category
//	@Description	In-stock products of one category, cheapest first, each with its ready-made contact link
//	@Tags			catalog
//	@Produce		json
//	@Param			tipo	path		string	true	"Category slug"	Enums(novos, seminovos)
//	@Success		200		{object}	catalogPageView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/catalog/{tipo} [get]
func (h *CatalogHandler) listCatalog(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "tipo")

	condition, err := conditionFromSlug(slug)
	if err != nil {
		WriteError(w, err)
		return
	}

	res, err := h.catalog.ListByCondition(r.Context(), condition)
	if err != nil {
		h.logger.Warnf("listCatalog %s: %s", slug, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogPageView(res))
}

// getProduct
//
//	@Summary		Public product page
//	@Tags			catalog
//	@Produce		json
//	@Param			id	path		string	true	"Product id"
//	@Success		200	{object}	productPageView
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	res, err := h.catalog.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Warnf("getProduct %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, productPageView{
		Product:     NewProductView(&res.Product),
		LogoURL:     res.LogoURL,
		ContactLink: res.ContactLink,
	})
}
