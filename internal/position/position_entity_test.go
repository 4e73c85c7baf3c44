package position_test

import (
	"testing"

	"go-payroll/internal/position"

	"github.com/stretchr/testify/assert"
)

func TestPosition_IsRankAndFile(t *testing.T) {
	tests := []struct {
		name       string
		title      string
		department string
		want       bool
	}{
		{"title match", "Rank and File Clerk", "Operations", true},
		{"mixed case department", "Clerk", "RANK-AND-FILE", true},
		{"only rank", "Ranking Officer", "Finance", false},
		{"only file", "File Custodian", "Records", false},
		{"supervisory", "Supervisor", "Operations", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := position.Position{
				Title:      tt.title,
				Department: &position.PositionDepartment{Name: tt.department},
			}
			assert.Equal(t, tt.want, p.IsRankAndFile())
		})
	}

	t.Run("department not loaded", func(t *testing.T) {
		p := position.Position{Title: "Clerk"}
		assert.False(t, p.IsRankAndFile())
		assert.Equal(t, "", p.DepartmentName())
	})
}
