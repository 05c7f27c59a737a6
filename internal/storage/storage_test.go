package storage_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"go-inova/internal/storage"
	storageerrors "go-inova/internal/storage/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 255, A: 255})
	}
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

// withDeclaredSize rewrites the PNG header so it claims w x h pixels.
func withDeclaredSize(data []byte, w, h uint32) []byte {
	out := append([]byte(nil), data...)
	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))
	return out
}

type memoryStore struct {
	objects map[string][]byte
	failErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}}
}

func (m *memoryStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if m.failErr != nil {
		return "", m.failErr
	}
	m.objects[key] = data
	return "http://minio.local/inova/" + key, nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func TestImageProcessor_Validate(t *testing.T) {
	p := storage.NewImageProcessor()

	assert.NoError(t, p.Validate(pngBytes(t, 10, 10)))
	assert.ErrorIs(t, p.Validate(nil), storageerrors.ErrMissingFile)
	assert.ErrorIs(t, p.Validate([]byte("definitely not an image")), storageerrors.ErrUnsupportedImage)

	small := &storage.ImageProcessor{MaxSize: 10, MaxDimension: 800}
	assert.ErrorIs(t, small.Validate(pngBytes(t, 10, 10)), storageerrors.ErrImageTooLarge)
}

func TestImageProcessor_ValidateRejectsHugeDimensions(t *testing.T) {
	p := storage.NewImageProcessor()

	bomb := withDeclaredSize(pngBytes(t, 1, 1), 100_000, 100_000)
	assert.ErrorIs(t, p.Validate(bomb), storageerrors.ErrImageDimensionsTooLarge)

	tight := &storage.ImageProcessor{MaxSize: storage.DefaultMaxImageSize, MaxDimension: 800, MaxSourcePixels: 100}
	assert.ErrorIs(t, tight.Validate(pngBytes(t, 20, 20)), storageerrors.ErrImageDimensionsTooLarge)
	assert.NoError(t, tight.Validate(pngBytes(t, 10, 10)))
}

func TestImageProcessor_NormalizeFitsBox(t *testing.T) {
	p := storage.NewImageProcessor()

	out, err := p.Normalize(pngBytes(t, 1600, 400))
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 200, img.Bounds().Dy())

	out, err = p.Normalize(pngBytes(t, 40, 30))
	require.NoError(t, err)
	img, err = jpeg.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestUploader_UploadImage(t *testing.T) {
	store := newMemoryStore()
	u := storage.NewUploader(store, nil, "inova")

	asset, err := u.UploadImage(context.Background(), storage.KindLogo, "startup-1", pngBytes(t, 20, 20))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(asset.Key, "logos/startup-1/"))
	assert.True(t, strings.HasSuffix(asset.Key, ".jpg"))
	assert.Equal(t, "http://minio.local/inova/"+asset.Key, asset.URL)
	assert.Contains(t, store.objects, asset.Key)

	require.NoError(t, u.RemoveByURL(context.Background(), asset.URL))
	assert.NotContains(t, store.objects, asset.Key)
}

func TestUploader_Errors(t *testing.T) {
	store := newMemoryStore()
	u := storage.NewUploader(store, nil, "inova")

	_, err := u.UploadImage(context.Background(), "avatars", "x", pngBytes(t, 5, 5))
	assert.ErrorIs(t, err, storageerrors.ErrInvalidAssetKind)

	store.failErr = errors.New("minio down")
	_, err = u.UploadImage(context.Background(), storage.KindNews, "1", pngBytes(t, 5, 5))
	assert.ErrorIs(t, err, storageerrors.ErrUploadFailed)

	assert.NoError(t, u.RemoveByURL(context.Background(), "https://elsewhere.example/cover.png"))
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "news/7/a.jpg", storage.KeyFromURL("http://localhost:9000/inova/news/7/a.jpg", "inova"))
	assert.Equal(t, "", storage.KeyFromURL("http://localhost:9000/other/news/7/a.jpg", "inova"))
	assert.Equal(t, "", storage.KeyFromURL("", "inova"))
}
