// Package v1 provides the v1 API of the backend.
package v1

import "github.com/centavo-app/backend/internal/ledger"

// engine is the ledger engine used by the handlers. The zero value uses
// the system clock.
var engine ledger.Ledger
