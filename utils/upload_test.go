package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedImageFile(t *testing.T) {
	assert.True(t, AllowedImageFile("meal.jpg"))
	assert.True(t, AllowedImageFile("meal.JPEG"))
	assert.True(t, AllowedImageFile("meal.png"))
	assert.False(t, AllowedImageFile("meal.gif"))
	assert.False(t, AllowedImageFile("meal.txt"))
	assert.False(t, AllowedImageFile("meal"))
	assert.False(t, AllowedImageFile(""))
}

func TestUniqueImageName(t *testing.T) {
	a := UniqueImageName("my pizza photo.jpg")
	b := UniqueImageName("my pizza photo.jpg")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, "_my_pizza_photo.jpg"))
	assert.NotContains(t, a, " ")

	// Path components from the client name must not survive.
	c := UniqueImageName("../../etc/passwd.png")
	assert.True(t, strings.HasSuffix(c, "_passwd.png"))
	assert.NotContains(t, c, "..")
}

func TestMaxUploadBytes(t *testing.T) {
	t.Setenv("MAX_UPLOAD_BYTES", "")
	assert.Equal(t, int64(8<<20), MaxUploadBytes())

	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	assert.Equal(t, int64(1024), MaxUploadBytes())

	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")
	assert.Equal(t, int64(8<<20), MaxUploadBytes())
}
