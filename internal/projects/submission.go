package projects

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

// errBadData marks a multipart request whose embedded JSON field could not be
// parsed; handlers map it to a 400.
var errBadData = errors.New("invalid project data")

// projectFields is the client-supplied subset of a Project. Unknown fields
// are silently dropped; techStack elements and URLs are deliberately not
// validated.
type projectFields struct {
	Title         string   `json:"title"`
	CoverImageURL string   `json:"coverImageUrl"`
	LiveLink      string   `json:"liveLink"`
	Description   string   `json:"description"`
	TechStack     []string `json:"techStack"`
	Price         string   `json:"price"`
	Details       string   `json:"details"`
}

// submission is the create request reduced to a tagged variant at the
// boundary: either a multipart form (optional file plus a JSON-encoded "data"
// field) or a plain JSON body. Downstream logic never inspects the content
// type again.
type submission struct {
	fields projectFields
	file   *multipart.FileHeader
}

func parseSubmission(c *gin.Context) (*submission, error) {
	ctype := c.GetHeader("Content-Type")
	if strings.HasPrefix(ctype, "multipart/form-data") {
		return parseMultipart(c)
	}
	return parseJSON(c)
}

func parseMultipart(c *gin.Context) (*submission, error) {
	sub := &submission{}

	// A multipart request without a file is fine; the project just has no
	// uploaded cover image.
	if fh, err := c.FormFile("file"); err == nil {
		sub.file = fh
	}

	if data := c.PostForm("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &sub.fields); err != nil {
			return nil, errBadData
		}
	}

	return sub, nil
}

func parseJSON(c *gin.Context) (*submission, error) {
	sub := &submission{}
	if err := c.ShouldBindJSON(&sub.fields); err != nil {
		return nil, err
	}
	return sub, nil
}
