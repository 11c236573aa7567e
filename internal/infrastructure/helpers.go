package infrastructure

import "github.com/myapplevix/store-backend/pkg/e"

// ExtensionFromMIME returns the file extension for an image MIME type.
// Supports jpeg, jpg, png and webp; anything else is e.ErrUnsupportedMediaType.
func ExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "image/jpeg", "image/jpg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/webp":
		return "webp", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}
