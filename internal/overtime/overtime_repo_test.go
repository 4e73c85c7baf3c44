package overtime_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/overtime"
	"go-payroll/internal/shared/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRepository_ListApprovedInRange(t *testing.T) {
	gm := testutil.NewGormMock(t)
	repo := overtime.NewRepository(gm.DB)

	employeeID := uuid.NewString()
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	gm.Mock.ExpectQuery(`SELECT \* FROM "overtime_requests" WHERE employee_id = \$1 AND approval_status = \$2 AND \(start_time >= \$3 AND start_time < \$4\) AND "overtime_requests"."deleted_at" IS NULL ORDER BY start_time ASC`).
		WithArgs(employeeID, overtime.StatusApproved, "2024-06-01", "2024-06-16").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "start_time", "end_time", "approval_status"}))

	rows, err := repo.ListApprovedInRange(context.Background(), employeeID, start, end)

	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, gm.Mock.ExpectationsWereMet())
}
