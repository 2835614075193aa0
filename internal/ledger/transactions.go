package ledger

import (
	"errors"
	"time"

	"github.com/centavo-app/backend/internal/models"
	"github.com/centavo-app/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"gorm.io/gorm"
)

// RecordTransaction creates a transaction and brings the ledger up to
// date with it.
//
// A transaction without a category runs through the budget's match rules
// first: the first rule in priority order whose pattern matches the payee
// supplies the category.
func (l Ledger) RecordTransaction(db *gorm.DB, transaction *models.Transaction) error {
	if transaction.CategoryID == nil && transaction.TransferTransactionID == nil && transaction.Payee != "" {
		err := l.applyMatchRules(db, transaction)
		if err != nil {
			return err
		}
	}

	err := db.Create(transaction).Error
	if err != nil {
		return err
	}

	return l.resync(db, *transaction)
}

// RecordTransfer moves money between two accounts of the same budget. It
// creates the outgoing and the incoming transaction as a linked pair and
// brings the ledger up to date with both.
//
// The destination has to exist and belong to the source's budget,
// otherwise the transfer fails with ErrTransferAccountMissing. Into a
// credit account, the transfer counts as a payment towards the card.
func (l Ledger) RecordTransfer(db *gorm.DB, sourceID, destinationID uuid.UUID, date time.Time, amount types.Milliunit, note string) (models.Transaction, models.Transaction, error) {
	if sourceID == destinationID {
		return models.Transaction{}, models.Transaction{}, models.ErrTransferSameAccount
	}

	var source models.Account
	err := db.First(&source, sourceID).Error
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	var destination models.Account
	err = db.First(&destination, destinationID).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.Transaction{}, models.Transaction{}, models.ErrTransferAccountMissing
	}
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	// An account in another budget does not exist as far as this budget is
	// concerned
	if destination.BudgetID != source.BudgetID {
		return models.Transaction{}, models.Transaction{}, models.ErrTransferAccountMissing
	}

	outgoing := models.Transaction{
		AccountID: source.ID,
		Date:      date,
		Outflow:   amount,
		Note:      note,
	}
	err = db.Create(&outgoing).Error
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	incoming := models.Transaction{
		AccountID:             destination.ID,
		Date:                  date,
		Inflow:                amount,
		Note:                  note,
		TransferTransactionID: &outgoing.ID,
	}
	err = db.Create(&incoming).Error
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	err = db.Model(&outgoing).Updates(models.Transaction{TransferTransactionID: &incoming.ID}).Error
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	err = l.resync(db, outgoing)
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	err = l.resync(db, incoming)
	if err != nil {
		return models.Transaction{}, models.Transaction{}, err
	}

	return outgoing, incoming, nil
}

// UpdateTransaction applies a partial update to a transaction and brings
// the ledger up to date with it. fields names the fields to write, update
// carries their values.
func (l Ledger) UpdateTransaction(db *gorm.DB, transaction models.Transaction, update models.Transaction, fields ...any) (models.Transaction, error) {
	before := transaction

	err := db.Model(&transaction).Select("", fields...).Updates(update).Error
	if err != nil {
		return models.Transaction{}, err
	}

	var after models.Transaction
	err = db.First(&after, transaction.ID).Error
	if err != nil {
		return models.Transaction{}, err
	}

	// An edit can move activity between categories, months and accounts,
	// so both the old and the new state get refreshed
	err = l.resync(db, before)
	if err != nil {
		return models.Transaction{}, err
	}

	err = l.resync(db, after)
	if err != nil {
		return models.Transaction{}, err
	}

	return after, nil
}

// DeleteTransaction removes a transaction and brings the ledger up to
// date. Deleting one half of a transfer deletes the other half with it,
// half a transfer would invent money on one of the accounts.
func (l Ledger) DeleteTransaction(db *gorm.DB, transaction models.Transaction) error {
	err := db.Delete(&transaction).Error
	if err != nil {
		return err
	}

	if transaction.IsTransfer() {
		var other models.Transaction
		err := db.First(&other, *transaction.TransferTransactionID).Error
		if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		if err == nil {
			err = db.Delete(&other).Error
			if err != nil {
				return err
			}

			err = l.resync(db, other)
			if err != nil {
				return err
			}
		}
	}

	return l.resync(db, transaction)
}

// applyMatchRules assigns the category of the first matching rule to the
// transaction. Rules are evaluated in priority order, ties break on the
// creation time so that the result does not depend on query order.
func (l Ledger) applyMatchRules(db *gorm.DB, transaction *models.Transaction) error {
	var account models.Account
	err := db.First(&account, transaction.AccountID).Error
	if err != nil {
		return err
	}

	var rules []models.MatchRule
	err = db.
		Where(&models.MatchRule{BudgetID: account.BudgetID}).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	if err != nil {
		return err
	}

	for _, rule := range rules {
		if glob.Glob(rule.Match, transaction.Payee) {
			transaction.CategoryID = &rule.CategoryID
			return nil
		}
	}

	return nil
}

// resync refreshes the ledger rows the transaction contributes to: the
// category's month and, for transactions on a credit account, the funded
// activity of the account's payment category.
func (l Ledger) resync(db *gorm.DB, transaction models.Transaction) error {
	month := types.MonthOf(transaction.Date)

	if transaction.CategoryID != nil {
		var category models.Category
		err := db.First(&category, *transaction.CategoryID).Error
		if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
			return err
		}

		// A deleted category has no ledger rows left to update
		if err == nil {
			err = l.RefreshActivity(db, category, month)
			if err != nil {
				return err
			}
		}
	}

	var account models.Account
	err := db.First(&account, transaction.AccountID).Error
	if err != nil {
		return err
	}

	return l.RefreshFunding(db, account, month)
}
