package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

// CentavoContext is the context key type for the backend
type CentavoContext string

const (
	// DBContextURL is the key used to store the base URL of the API
	// in the request context
	DBContextURL CentavoContext = "centavo-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger: log.Logger,
		},
	}

	// Migration with foreign keys disabled since we're dropping tables
	// during migration
	//
	// sqlite does not support ALTER COLUMN, so tables are copied to a temporary table,
	// then the table is dropped and recreated
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all writers, which prevents SQLITE_BUSY
	// errors and gives ledger mutations serializable semantics.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	// The callbacks rewrite raw database errors into the sentinel errors
	// that the API layer maps to HTTP statuses
	for _, c := range []struct {
		name     string
		register func(name string, fn func(db *gorm.DB)) error
		fn       func(db *gorm.DB)
	}{
		{"centavo:after_query", db.Callback().Query().After("*").Register, queryCallback},
		{"centavo:after_query_general", db.Callback().Query().After("*").Register, generalCallback},
		{"centavo:after_create", db.Callback().Create().After("*").Register, createUpdateCallback},
		{"centavo:after_create_general", db.Callback().Create().After("*").Register, generalCallback},
		{"centavo:after_update", db.Callback().Update().After("*").Register, createUpdateCallback},
		{"centavo:after_update_general", db.Callback().Update().After("*").Register, generalCallback},
		{"centavo:after_delete_general", db.Callback().Delete().After("*").Register, generalCallback},
	} {
		if err := c.register(c.name, c.fn); err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

var pluralIes = regexp.MustCompile("ies$")

// resourceName derives a human readable resource name from a table name,
// e.g. "budget_months" becomes "budget month" and "categories" becomes
// "category".
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	name = pluralIes.ReplaceAllString(name, "y")

	return strings.TrimRight(name, "s")
}

// queryCallback replaces the generic "no record" error with one that names
// the resource the query was for
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	for constraint, sentinel := range map[string]error{
		// Account names must be unique per budget
		"UNIQUE constraint failed: accounts.budget_id, accounts.name": ErrAccountNameNotUnique,
		// Category group names must be unique per budget
		"UNIQUE constraint failed: category_groups.budget_id, category_groups.name": ErrCategoryGroupNameNotUnique,
		// Category names must be unique per category group
		"UNIQUE constraint failed: categories.group_id, categories.name": ErrCategoryNameNotUnique,
		// Every credit account has at most one payment category
		"UNIQUE constraint failed: categories.linked_account_id": ErrAccountAlreadyLinked,
	} {
		if strings.Contains(db.Error.Error(), constraint) {
			db.Error = sentinel
			return
		}
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// A general error where we cannot provide more useful information to the end user
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

// InTransaction runs fn inside a database transaction.
//
// An error on Begin never passes through the error callbacks since no
// statement runs, so the translation to ErrGeneral happens here.
func InTransaction(fn func(tx *gorm.DB) error) error {
	err := DB.Transaction(fn)
	if err != nil && err.Error() == "sql: database is closed" {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Budget{}, Account{}, CategoryGroup{}, Category{}, Transaction{}, BudgetMonth{}, MatchRule{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
