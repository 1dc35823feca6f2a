package uploads

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	name := NewName("My Photo.PNG")

	assert.True(t, strings.HasSuffix(name, ".png"), "extension is kept, lowercased")
	assert.NotContains(t, name, " ")
	assert.NotEqual(t, NewName("a.png"), NewName("a.png"))
}

func TestNewName_ConcurrentUniqueness(t *testing.T) {
	const n = 100

	var mu sync.Mutex
	seen := make(map[string]bool, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := NewName("cover.jpg")
			mu.Lock()
			seen[name] = true
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, n, "concurrently generated names must be pairwise distinct")
}

func TestDiskStore_SaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewDiskStore(dir)
	ctx := context.Background()

	rel, err := store.Save(ctx, "a.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/a.png", rel)

	// Directory was created on demand and the blob is in place.
	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	rc, err := store.Open(ctx, "a.png")
	require.NoError(t, err)
	defer rc.Close()

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestDiskStore_OpenMissing(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Open(context.Background(), "nope.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_OpenRejectsTraversal(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Open(context.Background(), "../secrets.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}
