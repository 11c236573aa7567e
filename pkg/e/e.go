package e

import "fmt"

var (
	// Validation errors, caught before any persistence call
	ErrTitleRequired    = fmt.Errorf("product title is required")
	ErrPriceRequired    = fmt.Errorf("product price is required")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")
	ErrPhotoRequired    = fmt.Errorf("product photo is required")
	ErrInvalidCondition = fmt.Errorf("invalid product condition")

	// Lifecycle errors
	ErrProductNotFound    = fmt.Errorf("product not found")
	ErrProductAlreadySold = fmt.Errorf("product already sold")

	// Upload errors
	ErrUploadFailed         = fmt.Errorf("upload failed")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrEmptyFile            = fmt.Errorf("empty file")
	ErrFileTooLarge         = fmt.Errorf("file too large")

	// Notification errors
	ErrNoPendingConfirmation = fmt.Errorf("no pending confirmation")

	// 400 Bad Request / 401 / 500
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrUnauthorized         = fmt.Errorf("unauthorized")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap annotates an error with its call site.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
