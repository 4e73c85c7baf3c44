package payperioderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrPayPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay period not found",
		http.StatusNotFound,
	)
	ErrInvalidPayPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay period id",
		http.StatusBadRequest,
	)
	ErrInvalidPayPeriodRange = apperror.New(
		apperror.CodeInvalidState,
		"pay period start date is after its end date",
		http.StatusUnprocessableEntity,
	)
)
