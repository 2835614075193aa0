package models

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchRule automatically categorizes new transactions by their payee.
//
// Rules are evaluated in ascending priority order, the first rule whose
// pattern matches the payee supplies the category. The pattern is a glob,
// e.g. "Supermarket*".
type MatchRule struct {
	DefaultModel
	Budget     Budget `json:"-"`
	BudgetID   uuid.UUID
	Category   Category `json:"-"`
	CategoryID uuid.UUID
	Priority   uint
	Match      string
}

var (
	ErrMatchRuleMatchEmpty = errors.New("the match pattern must not be empty")
	ErrCategoryWrongBudget = errors.New("the category must belong to the same budget")
)

// BeforeSave trims whitespace and verifies the pattern.
func (r *MatchRule) BeforeSave(_ *gorm.DB) error {
	r.Match = strings.TrimSpace(r.Match)
	if r.Match == "" {
		return ErrMatchRuleMatchEmpty
	}

	return nil
}

func (r *MatchRule) BeforeCreate(tx *gorm.DB) error {
	_ = r.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*MatchRule)
	return r.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the match rule before
// committing an update to the database.
func (r *MatchRule) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(MatchRule)
	if tx.Statement.Changed("BudgetID") || tx.Statement.Changed("CategoryID") {
		if !tx.Statement.Changed("BudgetID") {
			toSave.BudgetID = r.BudgetID
		}
		if !tx.Statement.Changed("CategoryID") {
			toSave.CategoryID = r.CategoryID
		}

		return r.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (r *MatchRule) checkIntegrity(tx *gorm.DB, toSave MatchRule) error {
	err := tx.First(&Budget{}, toSave.BudgetID).Error
	if err != nil {
		return err
	}

	var category Category
	err = tx.First(&category, toSave.CategoryID).Error
	if err != nil {
		return err
	}

	budgetID, err := category.BudgetID(tx)
	if err != nil {
		return err
	}

	if budgetID != toSave.BudgetID {
		return ErrCategoryWrongBudget
	}

	return nil
}

// Returns all match rules on this instance for export
func (MatchRule) Export() (json.RawMessage, error) {
	var matchRules []MatchRule
	err := DB.Unscoped().Where(&MatchRule{}).Find(&matchRules).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&matchRules)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
