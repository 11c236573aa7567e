package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/jimlawless/whereami"

	"github.com/myapplevix/store-backend/internal/domain"
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/e"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ProductView is the wire form of a product. Active is derived from sold_at,
// so the two can never disagree in a response.
type ProductView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	PriceCents  int64      `json:"price_cents"`
	Condition   string     `json:"condition"`
	Photos      []string   `json:"photos"`
	Description string     `json:"description,omitempty"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	SoldAt      *time.Time `json:"sold_at,omitempty"`
}

func NewProductView(p *domain.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Title:       p.Title,
		PriceCents:  p.PriceCents,
		Condition:   string(p.Condition),
		Photos:      p.Photos,
		Description: p.Description,
		Active:      p.SoldAt == nil,
		CreatedAt:   p.CreatedAt,
		SoldAt:      p.SoldAt,
	}
}

func NewProductViews(products []domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i]))
	}
	return views
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrExpectedMultipart):
		return http.StatusBadRequest, e.ErrExpectedMultipart.Error()
	case errors.Is(err, e.ErrTitleRequired):
		return http.StatusBadRequest, e.ErrTitleRequired.Error()
	case errors.Is(err, e.ErrPriceRequired):
		return http.StatusBadRequest, e.ErrPriceRequired.Error()
	case errors.Is(err, e.ErrPhotoRequired):
		return http.StatusBadRequest, e.ErrPhotoRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidCondition):
		return http.StatusBadRequest, e.ErrInvalidCondition.Error()
	case errors.Is(err, e.ErrEmptyFile):
		return http.StatusBadRequest, e.ErrEmptyFile.Error()
	case errors.Is(err, e.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, e.ErrUnsupportedMediaType.Error()
	case errors.Is(err, e.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, e.ErrFileTooLarge.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrProductAlreadySold):
		return http.StatusConflict, e.ErrProductAlreadySold.Error()
	case errors.Is(err, e.ErrNoPendingConfirmation):
		return http.StatusConflict, e.ErrNoPendingConfirmation.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
	}
	return nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}

	if err := r.ParseMultipartForm(maxMemory); err != nil {
		// A body tripping MaxBytesReader surfaces here, not as a short read.
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return err
	}

	return nil
}

// parseUpload extracts a single image file from the named multipart field.
func parseUpload(r *http.Request, field string, maxSize int64) ([]byte, string, error) {
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		return nil, "", e.ErrEmptyFile
	}

	return readFile(files[0], maxSize)
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
		}
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}
	if len(data) == 0 {
		return nil, "", e.ErrEmptyFile
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data[:min(len(data), 512)])
	}
	return data, mimeType, nil
}

// toastView and notificationsView shape the coordinator state for the shell.
type toastView struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

type notificationsView struct {
	Toast          *toastView `json:"toast,omitempty"`
	PendingRemoval *string    `json:"pending_removal,omitempty"`
}

type catalogItemView struct {
	Product     ProductView `json:"product"`
	ContactLink string      `json:"contact_link"`
}

type catalogPageView struct {
	Items         []catalogItemView `json:"items"`
	LogoURL       *string           `json:"logo_url,omitempty"`
	ContactNumber string            `json:"contact_number"`
}

type productPageView struct {
	Product     ProductView `json:"product"`
	LogoURL     *string     `json:"logo_url,omitempty"`
	ContactLink string      `json:"contact_link"`
}

func newCatalogPageView(res *usecase.CatalogPageRes) catalogPageView {
	items := make([]catalogItemView, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, catalogItemView{
			Product:     NewProductView(&res.Items[i].Product),
			ContactLink: res.Items[i].ContactLink,
		})
	}

	return catalogPageView{
		Items:         items,
		LogoURL:       res.LogoURL,
		ContactNumber: res.ContactNumber,
	}
}
