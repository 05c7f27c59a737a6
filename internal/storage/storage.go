// Package storage keeps binary assets (logos, member photos, project
// galleries, news covers) outside the database. Records only hold the URL.
package storage

import (
	"context"
	"net/url"
	"strings"
)

// Kinds map to key prefixes inside the bucket.
const (
	KindLogo    = "logos"
	KindMember  = "members"
	KindProject = "projects"
	KindNews    = "news"
)

var kinds = map[string]bool{
	KindLogo:    true,
	KindMember:  true,
	KindProject: true,
	KindNews:    true,
}

func ValidKind(kind string) bool {
	return kinds[kind]
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type AssetStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// ImageUploader is what domain services need from Uploader.
type ImageUploader interface {
	UploadImage(ctx context.Context, kind, owner string, data []byte) (Asset, error)
	RemoveByURL(ctx context.Context, url string) error
}

// KeyFromURL recovers the object key from a URL produced by Upload. It
// returns "" for URLs that do not point into bucket.
func KeyFromURL(raw, bucket string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return ""
	}
	return strings.TrimPrefix(u.Path, prefix)
}
