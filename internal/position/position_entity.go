package position

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Position struct {
	ID           uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string              `gorm:"size:255;not null"`
	DepartmentID uuid.UUID           `gorm:"type:uuid;not null"`
	Department   *PositionDepartment `gorm:"foreignKey:DepartmentID;references:ID"`
	CreatedAt    time.Time           `gorm:"autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt      `gorm:"index"`
}

type PositionDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"size:255;not null"`
}

func (PositionDepartment) TableName() string {
	return "departments"
}

// DepartmentName is empty when the department was not preloaded.
func (p Position) DepartmentName() string {
	if p.Department == nil {
		return ""
	}
	return p.Department.Name
}

// IsRankAndFile matches "rank" and "file" case-insensitively in either the
// title or the department name.
func (p Position) IsRankAndFile() bool {
	for _, s := range []string{p.Title, p.DepartmentName()} {
		lower := strings.ToLower(s)
		if strings.Contains(lower, "rank") && strings.Contains(lower, "file") {
			return true
		}
	}
	return false
}

type BenefitType struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"size:120;not null;uniqueIndex"`
}

type PositionBenefit struct {
	PositionID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BenefitTypeID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Value         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
}

// BenefitLine is a PositionBenefit joined with its type name.
type BenefitLine struct {
	PositionID    uuid.UUID
	BenefitTypeID uuid.UUID
	BenefitName   string
	Value         decimal.Decimal
}
