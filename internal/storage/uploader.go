package storage

import (
	"context"
	"errors"
	"path"

	storageerrors "go-inova/internal/storage/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Asset struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Uploader struct {
	store  AssetStore
	proc   *ImageProcessor
	bucket string
	logger *zap.Logger
}

func NewUploader(store AssetStore, proc *ImageProcessor, bucket string, logger ...*zap.Logger) *Uploader {
	l := zap.L().Named("storage.uploader")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.uploader")
	}
	if proc == nil {
		proc = NewImageProcessor()
	}
	return &Uploader{store: store, proc: proc, bucket: bucket, logger: l}
}

// UploadImage validates, normalizes and stores an image under
// <kind>/<owner>/<uuid>.jpg.
func (u *Uploader) UploadImage(ctx context.Context, kind, owner string, data []byte) (Asset, error) {
	if !ValidKind(kind) {
		return Asset{}, storageerrors.ErrInvalidAssetKind
	}
	if err := u.proc.Validate(data); err != nil {
		return Asset{}, err
	}

	normalized, err := u.proc.Normalize(data)
	if err != nil {
		return Asset{}, storageerrors.ErrUnsupportedImage.WithErr(err)
	}

	if owner == "" {
		owner = "shared"
	}
	key := path.Join(kind, owner, uuid.NewString()+".jpg")

	url, err := u.store.Upload(ctx, key, normalized, "image/jpeg")
	if err != nil {
		u.logger.Error("upload image failed", zap.String("key", key), zap.Error(err))
		return Asset{}, storageerrors.ErrUploadFailed.WithErr(err)
	}

	u.logger.Info("image uploaded", zap.String("key", key), zap.Int("bytes", len(normalized)))
	return Asset{Key: key, URL: url}, nil
}

// RemoveByURL deletes the object behind a URL issued by UploadImage. URLs
// outside the bucket are ignored.
func (u *Uploader) RemoveByURL(ctx context.Context, url string) error {
	key := KeyFromURL(url, u.bucket)
	if key == "" {
		return nil
	}
	if err := u.store.Delete(ctx, key); err != nil {
		return errors.Join(storageerrors.ErrUploadFailed, err)
	}
	u.logger.Info("image removed", zap.String("key", key))
	return nil
}
