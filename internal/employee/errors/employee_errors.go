package employeeerrors

import (
	"net/http"
	"paytrack/internal/shared/apperror"
)

var (
	ErrEmptyEmployeeName = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name cannot be empty or consist of whitespace",
		http.StatusBadRequest,
	)

	ErrNonPositiveSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Employee salary must be greater than zero",
		http.StatusBadRequest,
	)

	ErrNonPositivePercentage = apperror.New(
		apperror.CodeInvalidInput,
		"Salary percentage must be greater than zero",
		http.StatusBadRequest,
	)

	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"No employee with this name",
		http.StatusNotFound,
	)

	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An employee with this name already exists",
		http.StatusConflict,
	)

	ErrSalaryOverflow = apperror.New(
		apperror.CodeOverflow,
		"Employee salary is too high to perform math operations",
		http.StatusUnprocessableEntity,
	)

	ErrSalaryUnderflow = apperror.New(
		apperror.CodeUnderflow,
		"Employee salary is too low to perform math operations",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidSalaryResult = apperror.New(
		apperror.CodeInvalidResult,
		"Employee salary cannot be zero or negative after an increase",
		http.StatusUnprocessableEntity,
	)
)
