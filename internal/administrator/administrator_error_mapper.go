package administrator

import (
	"errors"
	"strings"

	administratorerrors "go-inova/internal/administrator/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return administratorerrors.ErrAdministratorNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if pgErr.ConstraintName == "uq_administrators_user_id" {
				return administratorerrors.ErrUserAlreadyBound
			}
			return administratorerrors.ErrStartupAlreadyHasAdministrator
		case "23503":
			return administratorerrors.ErrReferenceNotFound
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_administrators_user_id") {
		return administratorerrors.ErrUserAlreadyBound
	}

	return err
}
