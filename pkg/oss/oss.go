// Package oss stores uploaded media in object storage and hands back public
// URLs. Local files are removed once an upload has been attempted.
package oss

import (
	"context"
	"mime"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"vidtube.com/pkg/utils"
)

// BlobStore is the object storage collaborator. Delete reports success and
// never fails the caller.
type BlobStore interface {
	Upload(ctx context.Context, localPath string) (string, error)
	Delete(ctx context.Context, rawURL string) bool
}

// mediaTypes covers upload formats missing from the platform mime tables.
var mediaTypes = map[string]string{
	".mp4":  "video/mp4",
	".m4v":  "video/mp4",
	".mov":  "video/quicktime",
	".webm": "video/webm",
	".mkv":  "video/x-matroska",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// objectName derives a unique, content-addressed key under a media folder.
func objectName(localPath string) (name, contentType string, err error) {
	sum, err := utils.GetFileMD5(localPath)
	if err != nil {
		return "", "", err
	}
	ext := strings.ToLower(filepath.Ext(localPath))
	contentType = mediaTypes[ext]
	if contentType == "" {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	folder := "file"
	switch {
	case strings.HasPrefix(contentType, "video/"):
		folder = "video"
	case strings.HasPrefix(contentType, "image/"):
		folder = "image"
	}
	return folder + "/" + sum + "-" + strconv.FormatInt(utils.GenerateID(), 36) + ext, contentType, nil
}

// keyFromURL strips the public base and, when present, the bucket segment.
func keyFromURL(rawURL, bucket string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return "", false
	}
	key := strings.TrimPrefix(path.Clean(u.Path), "/")
	key = strings.TrimPrefix(key, bucket+"/")
	if key == "" || key == "." || key == bucket {
		return "", false
	}
	return key, true
}

func removeLocal(localPath string) {
	if localPath == "" {
		return
	}
	_ = os.Remove(localPath)
}
