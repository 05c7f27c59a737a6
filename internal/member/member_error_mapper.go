package member

import (
	"errors"

	membererrors "go-inova/internal/member/errors"

	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return membererrors.ErrMemberNotFound
	}
	return err
}
