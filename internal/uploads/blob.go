package uploads

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Open when no blob exists under the given name.
var ErrNotFound = errors.New("blob not found")

// BlobStore is the capability the create flow needs from image storage: write
// a blob under a suggested name and read it back for serving. Keeping the
// filesystem (or bucket) behind this interface lets the handlers be tested
// against a fake.
type BlobStore interface {
	// Save writes the blob and returns its relative path, e.g. "uploads/<name>".
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	// Open returns the blob contents for serving; ErrNotFound if absent.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
