package membership

import (
	"errors"
	"strings"

	membershiperrors "go-leave/internal/membership/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return membershiperrors.ErrMembershipNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return membershiperrors.ErrAlreadyMember
		case pgForeignKeyViolation:
			if strings.Contains(pgErr.ConstraintName, "user") {
				return membershiperrors.ErrUserNotFound
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_membership_user_company") {
		return membershiperrors.ErrAlreadyMember
	}

	return err
}
