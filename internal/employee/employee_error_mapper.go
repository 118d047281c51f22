package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "paytrack/internal/employee/errors"
	"paytrack/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError folds raw storage failures into the closed error
// set. Errors already carrying a taxonomy code pass through unchanged;
// anything unrecognized counts as the store being unavailable.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employees_name" {
			return employeeerrors.ErrEmployeeAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employees_name") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return apperror.Wrap(
		err,
		apperror.CodeServiceUnavailable,
		"The compensation store is unavailable",
		http.StatusServiceUnavailable,
	)
}
