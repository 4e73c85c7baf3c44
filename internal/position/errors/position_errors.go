package positionerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrPositionNotFound = apperror.New(
	apperror.CodeNotFound,
	"position not found",
	http.StatusNotFound,
)
