package storage

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"go-inova/internal/middleware"
	"go-inova/internal/shared/response"
	storageerrors "go-inova/internal/storage/errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ReadFormImage reads a multipart image field, rejecting files by extension
// before reading more than the size limit.
func ReadFormImage(c *gin.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, storageerrors.ErrMissingFile
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return nil, storageerrors.ErrUnsupportedImage
	}
	if fileHeader.Size > DefaultMaxImageSize {
		return nil, storageerrors.ErrImageTooLarge
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, storageerrors.ErrMissingFile.WithErr(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, DefaultMaxImageSize+1))
	if err != nil {
		return nil, storageerrors.ErrMissingFile.WithErr(err)
	}
	return data, nil
}

type Handler struct {
	uploader *Uploader
	logger   *zap.Logger
}

func NewHandler(uploader *Uploader, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("storage.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.handler")
	}
	return &Handler{uploader: uploader, logger: l}
}

// UploadImage stores a gallery image and returns its URL; clients then send
// the URL in project or member payloads.
func (h *Handler) UploadImage(c *gin.Context) {
	kind := c.DefaultQuery("kind", KindProject)
	if !ValidKind(kind) {
		response.FromError(c, storageerrors.ErrInvalidAssetKind)
		return
	}

	data, err := ReadFormImage(c, "file")
	if err != nil {
		response.FromError(c, err)
		return
	}

	p := middleware.CurrentPrincipal(c)
	owner := p.UserID().String()
	if startupID, ok := p.AdministratorStartupID(); ok {
		owner = startupID.String()
	}

	asset, err := h.uploader.UploadImage(c.Request.Context(), kind, owner, data)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, asset, nil)
}
