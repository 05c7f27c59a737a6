package project

import (
	"context"
	"errors"
	"strings"

	"go-inova/internal/administrator"
	projecterrors "go-inova/internal/project/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// deriveCoordinator returns the id of the administrator currently bound to
// startupID. Whatever the caller sent as coordinator never reaches here.
func deriveCoordinator(ctx context.Context, admins administrator.Repository, startupID uuid.UUID) (uuid.UUID, error) {
	admin, err := admins.FindByStartupID(ctx, startupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, projecterrors.ErrStartupHasNoAdministrator
		}
		return uuid.Nil, err
	}
	return admin.ID, nil
}

// normalizePhotos drops blank slots and checks the gallery size.
func normalizePhotos(photos []string) ([]string, error) {
	out := make([]string, 0, len(photos))
	for _, p := range photos {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) < MinPhotos || len(out) > MaxPhotos {
		return nil, projecterrors.ErrInvalidPhotoCount
	}
	return out, nil
}
