package v1

import (
	"errors"
	"net/http"

	"github.com/centavo-app/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Month endpoint errors
var (
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set")
	errBudgetNotSetInQuery = errors.New("the budget query parameter must be set")
)

// Transaction errors
var (
	errTransferNotPatchable = errors.New("the transfer destination cannot be changed after creation")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
