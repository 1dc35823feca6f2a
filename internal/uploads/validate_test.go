package uploads

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func header(filename, ctype string, size int64) *multipart.FileHeader {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Type", ctype)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   h,
		Size:     size,
	}
}

func TestValidateImage_Accepted(t *testing.T) {
	cases := []struct {
		filename string
		ctype    string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"logo.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"UPPER.PNG", "image/png"},
		{"photo.jpg", "image/jpeg; charset=binary"},
	}

	for _, tc := range cases {
		t.Run(tc.filename+"/"+tc.ctype, func(t *testing.T) {
			err := ValidateImage(header(tc.filename, tc.ctype, 1024))
			assert.NoError(t, err)
		})
	}
}

func TestValidateImage_RejectedType(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		ctype    string
	}{
		{"text file", "notes.txt", "text/plain"},
		{"pdf", "doc.pdf", "application/pdf"},
		{"no extension", "image", "image/png"},
		{"image extension but wrong type", "fake.png", "application/octet-stream"},
		{"svg not on the allow-list", "vector.svg", "image/svg+xml"},
		{"right type wrong extension", "payload.exe", "image/png"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateImage(header(tc.filename, tc.ctype, 1024))
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Only image files are allowed (jpeg, jpg, png, gif)", verr.Error())
		})
	}
}

func TestValidateImage_SizeCap(t *testing.T) {
	assert.NoError(t, ValidateImage(header("edge.png", "image/png", MaxFileSize)))

	err := ValidateImage(header("big.png", "image/png", MaxFileSize+1))
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "too large")
}
