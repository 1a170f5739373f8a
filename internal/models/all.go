package models

import "encoding/json"

// Model is implemented by all resources that can be exported.
type Model interface {
	Export() (json.RawMessage, error)
}

// Registry contains all resources of the backend for the export.
var Registry = []Model{
	BudgetItem{},
	MonthlyInstance{},
}
