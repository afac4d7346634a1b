package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const defaultMaxUploadBytes = 8 << 20 // 8 MiB, same cap as the reference deployment

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// AllowedImageFile reports whether the client filename has a supported
// image extension.
func AllowedImageFile(name string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(name))]
}

// UniqueImageName builds a collision-free stored name for an upload,
// keeping the (sanitized) original name for the filename heuristic.
func UniqueImageName(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	hexID := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("%s_%s", hexID, base)
}

func UploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

func EnsureUploadDir() error {
	return os.MkdirAll(UploadDir(), 0o755)
}

func MaxUploadBytes() int64 {
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxUploadBytes
}
