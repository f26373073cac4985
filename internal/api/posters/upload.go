package posters

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"tamilsangam-app/config"
	domain "tamilsangam-app/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

func validateImage(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return fmt.Errorf("unsupported image type %q, allowed: jpg, jpeg, png, gif, webp", ext)
	}
	if fh.Size > maxImageSize {
		return fmt.Errorf("image exceeds the 10 MB limit")
	}
	return nil
}

// saveImage stores the upload under a per-poster directory named by the
// poster id and returns the file asset to record on the entity.
func saveImage(c *gin.Context, fh *multipart.FileHeader, posterID string) (domain.FileAsset, error) {
	if posterID == "" {
		posterID = "temp"
	}

	dir := filepath.Join(config.UPLOAD_DIR, posterID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.FileAsset{}, err
	}

	name := filepath.Base(fh.Filename)
	dst := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		return domain.FileAsset{}, err
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	return domain.FileAsset{
		URL:    "/" + filepath.ToSlash(dst),
		Format: ext,
		Size:   fh.Size,
	}, nil
}
