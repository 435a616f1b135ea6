package oss

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromURL(t *testing.T) {
	for _, tc := range []struct {
		name, url, bucket, key string
		ok                     bool
	}{
		{"minio path style", "http://localhost:9000/vidtube/video/abc.mp4", "vidtube", "video/abc.mp4", true},
		{"s3 virtual host", "https://vidtube.s3.eu-west-1.amazonaws.com/image/x.png", "vidtube", "image/x.png", true},
		{"bucket only", "http://localhost:9000/vidtube", "vidtube", "", false},
		{"empty", "", "vidtube", "", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			key, ok := keyFromURL(tc.url, tc.bucket)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.key, key)
		})
	}
}

func TestObjectName(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "clip.MP4")
	require.NoError(t, os.WriteFile(p, []byte("frames"), 0o600))

	name, contentType, err := objectName(p)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "video/"), name)
	assert.True(t, strings.HasSuffix(name, ".mp4"), name)
	assert.Equal(t, "video/mp4", contentType)

	other, _, err := objectName(p)
	require.NoError(t, err)
	assert.NotEqual(t, name, other)

	_, _, err = objectName(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestRemoveLocal(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tmp.jpg")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	removeLocal(p)
	_, err := os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}
