package ledger

import (
	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryMonth contains the ledger values of one category for one month.
type CategoryMonth struct {
	ID              uuid.UUID       `json:"id" example:"dafd9a74-6aeb-46b9-9f5a-cfca624fea85"`              // The ID of the Category
	Name            string          `json:"name" example:"Groceries"`                                       // The name of the Category
	Archived        bool            `json:"archived" example:"false"`                                       // Whether the Category is archived
	LinkedAccountID *uuid.UUID      `json:"linkedAccountId" example:"053a14c1-e44d-4d9f-abba-b05cd3008f36"` // Set to the account ID for payment categories
	Assigned        types.Milliunit `json:"assigned" example:"85440"`                                       // The money assigned in this month
	Activity        types.Milliunit `json:"activity" example:"-73120"`                                      // The activity of this month
	Available       types.Milliunit `json:"available" example:"12320"`                                      // The money available at the end of the month
}

// GroupCategories contains the month values of a category group and its
// categories.
type GroupCategories struct {
	ID         uuid.UUID       `json:"id" example:"e9287ceb-11b6-4184-87e7-bf6dbaa27b54"` // The ID of the Category Group
	Name       string          `json:"name" example:"Everyday Expenses"`                  // The name of the Category Group
	Categories []CategoryMonth `json:"categories"`                                        // The categories of the group with their month values
	Assigned   types.Milliunit `json:"assigned" example:"190000"`                         // Sum of the assigned money of the categories
	Activity   types.Milliunit `json:"activity" example:"-133700"`                        // Sum of the activity of the categories
	Available  types.Milliunit `json:"available" example:"523137"`                        // Sum of the available money of the categories
}

// Month is the full ledger view of one month of a budget.
type Month struct {
	ID            uuid.UUID         `json:"id" example:"1e777d24-3f5b-4c43-8000-04f65f895578"` // The ID of the Budget
	Name          string            `json:"name" example:"Zero budget"`                        // The name of the Budget
	Month         types.Month       `json:"month" example:"2024-03"`                           // The month
	ReadyToAssign types.Milliunit   `json:"readyToAssign" example:"352500"`                    // The money not yet assigned to any category
	Assigned      types.Milliunit   `json:"assigned" example:"2100000"`                        // Sum of the assigned money over all categories
	Activity      types.Milliunit   `json:"activity" example:"-133700"`                        // Sum of the activity over all categories
	Available     types.Milliunit   `json:"available" example:"5231370"`                       // Sum of the available money over all categories
	Groups        []GroupCategories `json:"groups"`                                            // The category groups with their categories
}

// MonthView computes the ledger view of one month of a budget.
//
// Every non-income category appears under its group, in name order. The
// view is purely derived: categories without a stored row show their
// carryforward as available, nothing is written.
func (l Ledger) MonthView(db *gorm.DB, budget models.Budget, month types.Month) (Month, error) {
	result := Month{
		ID:    budget.ID,
		Name:  budget.Name,
		Month: month,
	}

	rta, err := l.ReadyToAssign(db, budget, month)
	if err != nil {
		return Month{}, err
	}
	result.ReadyToAssign = rta

	var groups []models.CategoryGroup
	err = db.
		Where(&models.CategoryGroup{BudgetID: budget.ID}).
		Where("income = ?", false).
		Order("sort_order ASC, name ASC").
		Find(&groups).Error
	if err != nil {
		return Month{}, err
	}

	result.Groups = make([]GroupCategories, 0)

	for _, group := range groups {
		groupCategories := GroupCategories{
			ID:         group.ID,
			Name:       group.Name,
			Categories: make([]CategoryMonth, 0),
		}

		var categories []models.Category
		err = db.
			Where(&models.Category{GroupID: group.ID}).
			Order("sort_order ASC, name ASC").
			Find(&categories).Error
		if err != nil {
			return Month{}, err
		}

		for _, category := range categories {
			categoryMonth, err := l.CategoryMonth(db, category, month)
			if err != nil {
				return Month{}, err
			}

			// Update the group's summarized data
			groupCategories.Assigned += categoryMonth.Assigned
			groupCategories.Activity += categoryMonth.Activity
			groupCategories.Available += categoryMonth.Available
			groupCategories.Categories = append(groupCategories.Categories, categoryMonth)
		}

		// Update the month's summarized data
		result.Assigned += groupCategories.Assigned
		result.Activity += groupCategories.Activity
		result.Available += groupCategories.Available
		result.Groups = append(result.Groups, groupCategories)
	}

	return result, nil
}

// CategoryMonth returns the month view of a single category: the stored
// row's values, or a view derived from the carryforward when no row
// exists.
func (l Ledger) CategoryMonth(db *gorm.DB, category models.Category, month types.Month) (CategoryMonth, error) {
	view := CategoryMonth{
		ID:              category.ID,
		Name:            category.Name,
		Archived:        category.Archived,
		LinkedAccountID: category.LinkedAccountID,
	}

	row, exists, err := l.fetchRow(db, category.ID, month)
	if err != nil {
		return CategoryMonth{}, err
	}

	if exists {
		view.Assigned = row.Assigned
		view.Activity = row.Activity
		view.Available = row.Available
		return view, nil
	}

	carryforward, err := l.Carryforward(db, category, month)
	if err != nil {
		return CategoryMonth{}, err
	}

	view.Available = carryforward
	return view, nil
}
