package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// fileTypeExt maps accepted image mime types to their file extension.
var fileTypeExt = map[string]string{
	"image/png":  "png",
	"image/jpg":  "jpg",
	"image/jpeg": "jpeg",
}

var ErrInvalidImageType = errors.New("invalid image type")

// Uploads writes product images to a local directory that the server also
// serves statically.
type Uploads struct {
	dir      string
	basePath string // URL prefix, e.g. /public/uploads
}

func NewUploads(dir, basePath string) (*Uploads, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Uploads{dir: dir, basePath: basePath}, nil
}

// Save stores an uploaded image and returns its public URL path.
// Only png/jpg/jpeg are accepted.
func (u *Uploads) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	ext, ok := fileTypeExt[file.Header.Get("Content-Type")]
	if !ok {
		return "", ErrInvalidImageType
	}

	base := strings.ReplaceAll(file.Filename, " ", "-")
	name := fmt.Sprintf("%s-%d.%s", base, time.Now().UnixMilli(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(u.dir, name)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}
	return u.basePath + "/" + name, nil
}

// Dir is the local directory backing the static route.
func (u *Uploads) Dir() string { return u.dir }
