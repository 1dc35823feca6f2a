package http

import (
	"errors"
	"io"
	"log"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/devfolio-io/portfolio-backend/internal/uploads"
)

// FilesHandler serves stored cover images under /uploads/<filename>,
// regardless of whether they live on disk or in a bucket.
type FilesHandler struct {
	blobs uploads.BlobStore
}

func NewFilesHandler(blobs uploads.BlobStore) *FilesHandler {
	return &FilesHandler{blobs: blobs}
}

func (h *FilesHandler) Serve(c *gin.Context) {
	name := c.Param("filename")

	rc, err := h.blobs.Open(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, uploads.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		log.Printf("[files] open %s: %v", name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	defer rc.Close()

	if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
		c.Header("Content-Type", ctype)
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		log.Printf("[files] stream %s: %v", name, err)
	}
}

func (h *FilesHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/uploads/:filename", h.Serve)
}
