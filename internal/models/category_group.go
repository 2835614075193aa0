package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryGroup groups categories for bookkeeping and display.
//
// Income groups hold the categories income is booked against. They are
// excluded from all ledger math: their categories get no ledger rows and do
// not count against Ready to Assign.
type CategoryGroup struct {
	DefaultModel
	Budget    Budget    `json:"-"`
	BudgetID  uuid.UUID `gorm:"uniqueIndex:category_group_name_budget_id"`
	Name      string    `gorm:"uniqueIndex:category_group_name_budget_id"`
	Note      string
	SortOrder uint
	Income    bool
	Archived  bool
}

var ErrCategoryGroupNameNotUnique = errors.New("the category group name must be unique for the budget")

// BeforeSave trims whitespace from all strings.
func (g *CategoryGroup) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)
	g.Note = strings.TrimSpace(g.Note)

	return nil
}

func (g *CategoryGroup) BeforeCreate(tx *gorm.DB) error {
	_ = g.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*CategoryGroup)
	return g.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the category group before
// committing an update to the database.
func (g *CategoryGroup) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(CategoryGroup)
	if tx.Statement.Changed("BudgetID") {
		return g.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (g *CategoryGroup) checkIntegrity(tx *gorm.DB, toSave CategoryGroup) error {
	return tx.First(&Budget{}, toSave.BudgetID).Error
}

// Returns all category groups on this instance for export
func (CategoryGroup) Export() (json.RawMessage, error) {
	var groups []CategoryGroup
	err := DB.Unscoped().Where(&CategoryGroup{}).Find(&groups).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&groups)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
