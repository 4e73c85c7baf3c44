package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	// ErrPayrollAlreadyExists never reaches an API caller; generation
	// counts it as already generated.
	ErrPayrollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for employee and pay period",
		http.StatusConflict,
	)
	ErrNoPayrollsForPeriod = apperror.New(
		apperror.CodeInvalidState,
		"no payrolls generated for pay period",
		http.StatusUnprocessableEntity,
	)
	ErrRegisterExport = apperror.New(
		apperror.CodeInternalError,
		"failed to build payroll register",
		http.StatusInternalServerError,
	)
)
