package s3err

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     ErrorCode
		wantCode string
		wantHTTP int
	}{
		{ErrNoSuchBucket, "NoSuchBucket", http.StatusNotFound},
		{ErrNoSuchKey, "NoSuchKey", http.StatusNotFound},
		{ErrNoSuchVersion, "NoSuchVersion", http.StatusNotFound},
		{ErrInvalidVersionID, "InvalidArgument", http.StatusBadRequest},
		{ErrMethodNotAllowed, "MethodNotAllowed", http.StatusMethodNotAllowed},
		{ErrIncompleteBody, "IncompleteBody", http.StatusBadRequest},
		{ErrInternalError, "InternalError", http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.wantCode, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.wantCode, tc.code.Code())
			assert.Equal(t, tc.wantHTTP, tc.code.HTTPStatusCode())
			assert.NotEmpty(t, tc.code.Description())
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	t.Parallel()

	e := ErrNoSuchKey.New(ObjectResource("bucket", "dir/key"))
	assert.Equal(t, "NoSuchKey", e.Code)
	assert.Equal(t, "/bucket/dir/key", e.Resource)
	assert.Contains(t, e.Error(), "NoSuchKey: /bucket/dir/key:")

	custom := ErrInvalidArgument.NewWithMessage(BucketResource("b"), "custom message")
	assert.Equal(t, "/b", custom.Resource)
	assert.Contains(t, custom.Error(), "custom message")
}

func TestIsCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCode(ErrNoSuchKey.New("/b/k"), ErrNoSuchKey))
	assert.False(t, IsCode(ErrNoSuchKey.New("/b/k"), ErrNoSuchBucket))
	assert.False(t, IsCode(errors.New("plain"), ErrNoSuchKey))
	assert.False(t, IsCode(nil, ErrNoSuchKey))

	// InvalidVersionID and InvalidArgument share a wire code.
	assert.True(t, IsCode(ErrInvalidVersionID.New("/b/k"), ErrInvalidArgument))
}
