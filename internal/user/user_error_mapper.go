package user

import (
	"errors"
	"strings"

	usererrors "github.com/bpandhare/VA-REPORTS-WEB-APPLICATION-sub001/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return usererrors.ErrUserAlreadyExists
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
		return usererrors.ErrUserAlreadyExists
	}

	return err
}
