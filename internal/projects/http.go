package projects

import (
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devfolio-io/portfolio-backend/internal/uploads"
)

type Handler struct {
	store   Store
	blobs   uploads.BlobStore
	cache   *ListCache
	baseURL string
}

type HandlerDeps struct {
	Store   Store
	Blobs   uploads.BlobStore
	Cache   *ListCache
	BaseURL string
}

func NewHandler(dep HandlerDeps) *Handler {
	return &Handler{
		store:   dep.Store,
		blobs:   dep.Blobs,
		cache:   dep.Cache,
		baseURL: dep.BaseURL,
	}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/create", h.create)
	rg.GET("", h.list)
}

func (h *Handler) create(c *gin.Context) {
	sub, err := parseSubmission(c)
	if err != nil {
		if errors.Is(err, errBadData) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errBadData.Error()})
			return
		}
		// Malformed JSON body and other parse failures are treated like any
		// other server-side failure, without leaking internals.
		log.Printf("[projects] parse create request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	p := &Project{
		Title:       sub.fields.Title,
		LiveLink:    sub.fields.LiveLink,
		Description: sub.fields.Description,
		TechStack:   sub.fields.TechStack,
		Price:       sub.fields.Price,
		Details:     sub.fields.Details,
	}

	if sub.file != nil {
		name, relPath, err := h.storeUpload(c, sub.file)
		if err != nil {
			var verr *uploads.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
				return
			}
			log.Printf("[projects] store upload: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
			return
		}
		// An uploaded file wins over an externally supplied URL.
		p.CoverImagePath = relPath
		p.CoverImageURL = h.publicURL(c, name)
	} else if sub.fields.CoverImageURL != "" {
		p.CoverImageURL = sub.fields.CoverImageURL
	}

	created, err := h.store.Insert(c.Request.Context(), p)
	if err != nil {
		log.Printf("[projects] insert: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	h.cache.Invalidate(c.Request.Context())

	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"project": created,
	})
}

func (h *Handler) list(c *gin.Context) {
	ctx := c.Request.Context()

	if items, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, items)
		return
	}

	items, err := h.store.ListAll(ctx)
	if err != nil {
		log.Printf("[projects] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	h.cache.Set(ctx, items)
	c.JSON(http.StatusOK, items)
}

// storeUpload validates the file and writes it through the blob store,
// returning the generated name and the relative storage path.
func (h *Handler) storeUpload(c *gin.Context, fh *multipart.FileHeader) (name, relPath string, err error) {
	if err := uploads.ValidateImage(fh); err != nil {
		return "", "", err
	}

	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	name = uploads.NewName(fh.Filename)
	relPath, err = h.blobs.Save(c.Request.Context(), name, src)
	if err != nil {
		return "", "", err
	}
	return name, relPath, nil
}

// publicURL derives the absolute URL for a stored upload from the configured
// base URL, falling back to the host the request arrived on.
func (h *Handler) publicURL(c *gin.Context, name string) string {
	base := h.baseURL
	if base == "" {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + c.Request.Host
	}
	return strings.TrimRight(base, "/") + "/uploads/" + name
}
