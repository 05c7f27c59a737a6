package news

import (
	"errors"

	newserrors "go-inova/internal/news/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newserrors.ErrNewsNotFound
	}
	return err
}
