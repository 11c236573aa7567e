package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/logger"
)

type AdminHandler struct {
	admin  *usecase.AdminUseCase
	logger logger.Logger
}

func NewAdminHandler(admin *usecase.AdminUseCase, logger logger.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

type createProductRequest struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	PhotoURL    string `json:"photo_url"`
}

type configRequest struct {
	StoreName     *string `json:"store_name"`
	ContactNumber *string `json:"contact_number"`
	LogoURL       *string `json:"logo_url"`
}

type configView struct {
	StoreName     string  `json:"store_name"`
	ContactNumber string  `json:"contact_number"`
	LogoURL       *string `json:"logo_url,omitempty"`
}

type summaryView struct {
	TotalSold    int     `json:"total_sold"`
	NewSold      int     `json:"new_sold"`
	UsedSold     int     `json:"used_sold"`
	RevenueCents int64   `json:"revenue_cents"`
	NewShare     float64 `json:"new_share"`
	UsedShare    float64 `json:"used_share"`
}

type dashboardView struct {
	Products []ProductView `json:"products"`
	Summary  summaryView   `json:"summary"`
}

// dashboard
//
//	@Summary		Admin dashboard
//	@Description	Full product list (newest first) with the sales summary derived from the same snapshot
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Success		200	{object}	dashboardView
//	@Failure		401	{object}	ErrorResponse
//	@Router			/admin/dashboard [get]
func (h *AdminHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	res, err := h.admin.Dashboard(r.Context())
	if err != nil {
		h.logger.Warnf("dashboard: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, dashboardView{
		Products: NewProductViews(res.Products),
		Summary: summaryView{
			TotalSold:    res.Summary.TotalSold,
			NewSold:      res.Summary.NewSold,
			UsedSold:     res.Summary.UsedSold,
			RevenueCents: res.Summary.RevenueCents,
			NewShare:     res.Summary.NewShare(),
			UsedShare:    res.Summary.UsedShare(),
		},
	})
}

// createProduct
//
//	@Summary		Register a product
//	@Description	Creates an in-stock product. Price is the localized decimal string as typed ("4.299,90")
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		AdminToken
//	@Param			request	body		createProductRequest	true	"Product form"
//	@Success		201		{object}	ProductView
//	@Failure		400		{object}	ErrorResponse
//	@Router			/admin/products [post]
func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.admin.CreateProduct(r.Context(), usecase.NewCreateProductReq(
		req.Title, req.Price, req.Condition, req.Description, req.PhotoURL,
	))
	if err != nil {
		h.logger.Warnf("createProduct: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewProductView(product))
}

// sellProduct
//
//	@Summary		Record a sale
//	@Description	Marks an in-stock product as sold, stamping the sale moment
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Param			id	path		string	true	"Product id"
//	@Success		200	{object}	ProductView
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Already sold"
//	@Router			/admin/products/{id}/sell [post]
func (h *AdminHandler) sellProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.admin.SellProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("sellProduct %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductView(product))
}

// requestRemoval
//
//	@Summary		Request product removal
//	@Description	Opens the confirmation gate; nothing is deleted until confirmed
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Param			id	path		string	true	"Product id"
//	@Success		202	{object}	map[string]interface{}
//	@Router			/admin/products/{id}/removal [post]
func (h *AdminHandler) requestRemoval(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.admin.RequestRemoval(id)

	WriteSuccess(w, http.StatusAccepted, map[string]interface{}{
		"pending_removal": id,
	})
}

// confirmRemoval
//
//	@Summary		Confirm the pending removal
//	@Description	Deletes the product recorded by the last removal request
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Success		200	{object}	map[string]interface{}
//	@Failure		409	{object}	ErrorResponse	"No pending confirmation"
//	@Router			/admin/removal/confirm [post]
func (h *AdminHandler) confirmRemoval(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.ConfirmRemoval(r.Context()); err != nil {
		h.logger.Warnf("confirmRemoval: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"removed": true,
	})
}

// cancelRemoval
//
//	@Summary		Cancel the pending removal
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Success		200	{object}	map[string]interface{}
//	@Router			/admin/removal/cancel [post]
func (h *AdminHandler) cancelRemoval(w http.ResponseWriter, r *http.Request) {
	h.admin.CancelRemoval()

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cancelled": true,
	})
}

// uploadPhoto
//
//	@Summary		Upload a product photo
//	@Description	Stores the image and returns the public URL to reference on create
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		AdminToken
//	@Param			file	formData	file	true	"Image file (jpeg, png, webp)"
//	@Success		201		{object}	map[string]interface{}
//	@Failure		413		{object}	ErrorResponse
//	@Failure		415		{object}	ErrorResponse
//	@Router			/admin/uploads [post]
func (h *AdminHandler) uploadPhoto(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
		maxFileSize         = 15 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("uploadPhoto: %s", err.Error())
		WriteError(w, err)
		return
	}

	data, mimeType, err := parseUpload(r, "file", maxFileSize)
	if err != nil {
		h.logger.Warnf("uploadPhoto: %s", err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.admin.UploadPhoto(r.Context(), data, mimeType)
	if err != nil {
		h.logger.Warnf("uploadPhoto: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"key": res.Key,
		"url": res.URL,
	})
}

// getConfig
//
//	@Summary		Store configuration
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Success		200	{object}	configView
//	@Router			/admin/config [get]
func (h *AdminHandler) getConfig(w http.ResponseWriter, r *http.Request) {
	config, err := h.admin.LoadConfig(r.Context())
	if err != nil {
		h.logger.Warnf("getConfig: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, configView{
		StoreName:     config.StoreName,
		ContactNumber: config.ContactNumber,
		LogoURL:       config.LogoURL,
	})
}

// saveConfig
//
//	@Summary		Update store configuration
//	@Description	Partial update of the configuration singleton; omitted fields stay untouched
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		AdminToken
//	@Param			request	body		configRequest	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/admin/config [put]
func (h *AdminHandler) saveConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	patch := &usecase.ConfigPatch{
		StoreName:     req.StoreName,
		ContactNumber: req.ContactNumber,
		LogoURL:       req.LogoURL,
	}

	if err := h.admin.SaveConfig(r.Context(), patch); err != nil {
		h.logger.Warnf("saveConfig: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"saved": true,
	})
}

// replaceLogo
//
//	@Summary		Replace the store logo
//	@Description	Uploads the new logo, then points the configuration at it. The configuration keeps the old logo if the upload fails
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		AdminToken
//	@Param			file	formData	file	true	"Logo file (jpeg, png, webp)"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/admin/config/logo [post]
func (h *AdminHandler) replaceLogo(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 20 << 20
		maxMemory           = 8 << 20
		maxFileSize         = 15 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("replaceLogo: %s", err.Error())
		WriteError(w, err)
		return
	}

	data, mimeType, err := parseUpload(r, "file", maxFileSize)
	if err != nil {
		h.logger.Warnf("replaceLogo: %s", err.Error())
		WriteError(w, err)
		return
	}

	url, err := h.admin.ReplaceLogo(r.Context(), data, mimeType)
	if err != nil {
		h.logger.Warnf("replaceLogo: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"url": url,
	})
}

// notifications
//
//	@Summary		Notification state
//	@Description	Current toast (if still visible) and the removal awaiting confirmation (if any)
//	@Tags			admin
//	@Produce		json
//	@Security		AdminToken
//	@Success		200	{object}	notificationsView
//	@Router			/admin/notifications [get]
func (h *AdminHandler) notifications(w http.ResponseWriter, r *http.Request) {
	toast, visible, target, pending := h.admin.Notifications()

	view := notificationsView{}
	if visible {
		view.Toast = &toastView{Message: toast.Message, Kind: string(toast.Kind)}
	}
	if pending {
		view.PendingRemoval = &target
	}

	WriteSuccess(w, http.StatusOK, view)
}
