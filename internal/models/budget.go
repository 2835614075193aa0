package models

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/text/currency"
	"gorm.io/gorm"
)

// Budget represents a budget. It is the root resource, all other resources
// belong to exactly one budget.
type Budget struct {
	DefaultModel
	Name     string
	Note     string
	Currency string // ISO 4217 alphabetic code. Only used for display, never for math.
}

var ErrBudgetCurrencyInvalid = errors.New("the currency must be a valid ISO 4217 code")

// BeforeSave trims whitespace and verifies the currency code.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Name = strings.TrimSpace(b.Name)
	b.Note = strings.TrimSpace(b.Note)
	b.Currency = strings.ToUpper(strings.TrimSpace(b.Currency))

	if b.Currency != "" {
		if _, err := currency.ParseISO(b.Currency); err != nil {
			return ErrBudgetCurrencyInvalid
		}
	}

	return nil
}

// Returns all budgets on this instance for export
func (Budget) Export() (json.RawMessage, error) {
	var budgets []Budget
	err := DB.Unscoped().Where(&Budget{}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&budgets)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
