package paysliperrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrPayrollRequired = apperror.New(
		apperror.CodeInvalidState,
		"payroll must be generated before its payslip",
		http.StatusUnprocessableEntity,
	)
	ErrRenderPDF = apperror.New(
		apperror.CodeInternalError,
		"failed to render payslip pdf",
		http.StatusInternalServerError,
	)
)
