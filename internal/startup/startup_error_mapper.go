package startup

import (
	"errors"

	startuperrors "go-inova/internal/startup/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return startuperrors.ErrStartupNotFound
	}
	return err
}
