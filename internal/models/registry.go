package models

import "encoding/json"

// Exporter is implemented by every model that is part of a full export.
type Exporter interface {
	Export() (json.RawMessage, error)
}

// Registry contains all models under the name used for them in the export.
var Registry = map[string]Exporter{
	"Budget":        Budget{},
	"Account":       Account{},
	"CategoryGroup": CategoryGroup{},
	"Category":      Category{},
	"Transaction":   Transaction{},
	"BudgetMonth":   BudgetMonth{},
	"MatchRule":     MatchRule{},
}
