package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myapplevix/store-backend/pkg/e"
)

func TestExtensionFromMIME(t *testing.T) {
	cases := map[string]string{
		"image/jpeg": "jpg",
		"image/jpg":  "jpg",
		"image/png":  "png",
		"image/webp": "webp",
	}

	for mime, want := range cases {
		ext, err := ExtensionFromMIME(mime)
		require.NoError(t, err)
		assert.Equal(t, want, ext)
	}

	_, err := ExtensionFromMIME("application/pdf")
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}
