package projects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMongoStore_UnavailableWithoutConnection(t *testing.T) {
	store := NewMongoStore(nil)

	_, err := store.Insert(context.Background(), &Project{Title: "A", Description: "d", Details: "x"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = store.ListAll(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestValidateRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		project Project
		wantErr string
	}{
		{"all present", Project{Title: "A", Description: "d", Details: "x"}, ""},
		{"missing title", Project{Description: "d", Details: "x"}, "title is required"},
		{"missing description", Project{Title: "A", Details: "x"}, "description is required"},
		{"missing details", Project{Title: "A", Description: "d"}, "details is required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(&tc.project)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
