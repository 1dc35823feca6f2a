package uploads

import (
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxFileSize caps a single image upload at 5 MiB.
const MaxFileSize = 5 << 20

const typeErrMsg = "Only image files are allowed (jpeg, jpg, png, gif)"
const sizeErrMsg = "File too large (max 5 MB)"

var allowedExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidationError marks an upload rejection the client caused; handlers map it
// to a 400 with the message verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// ValidateImage checks the file extension AND the declared media type against
// the image allow-list, then the size cap. Either check failing rejects the
// file; a permissive client cannot sneak a mismatched pair through.
func ValidateImage(fh *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExts[ext] {
		return &ValidationError{msg: typeErrMsg}
	}

	ctype := fh.Header.Get("Content-Type")
	if mt, _, ok := strings.Cut(ctype, ";"); ok {
		ctype = mt
	}
	if !allowedMIMEs[strings.ToLower(strings.TrimSpace(ctype))] {
		return &ValidationError{msg: typeErrMsg}
	}

	if fh.Size > MaxFileSize {
		return &ValidationError{msg: sizeErrMsg}
	}

	return nil
}
