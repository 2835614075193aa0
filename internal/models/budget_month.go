package models

import (
	"encoding/json"
	"time"

	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
)

// BudgetMonth is one row of the monthly ledger: what was assigned to, spent
// from and is left in one category in one month.
//
// Rows are created lazily on the first non-zero assignment or activity. The
// budget ID is part of the key even though the category already implies it,
// so that month-wide scans for a budget never need a join.
//
// BudgetMonth does not soft delete: a ghost row is deleted for real, a
// tombstone would collide with the next write for the same key.
type BudgetMonth struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	BudgetID   uuid.UUID   `gorm:"primaryKey"`
	CategoryID uuid.UUID   `gorm:"primaryKey"`
	Month      types.Month `gorm:"primaryKey"`

	Assigned  types.Milliunit
	Activity  types.Milliunit
	Available types.Milliunit
}

// IsGhost reports whether the row carries no information. Ghost rows must
// not be stored, absence and an all-zero row mean the same thing.
func (b BudgetMonth) IsGhost() bool {
	return b.Assigned == 0 && b.Activity == 0 && b.Available == 0
}

// Returns all budget months on this instance for export
func (BudgetMonth) Export() (json.RawMessage, error) {
	var budgetMonths []BudgetMonth
	err := DB.Where(&BudgetMonth{}).Find(&budgetMonths).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgetMonths)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
