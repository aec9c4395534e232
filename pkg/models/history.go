package models

// HistoryDateLayout is the key format for SelectionHistory entries.
const HistoryDateLayout = "2006-01-02"

// DatedSelection pairs a run date with the Service Desk pair chosen that day.
type DatedSelection struct {
	Date string   `yaml:"date"`
	Pair []Person `yaml:"pair"`
}

// SelectionHistory is the persisted record of past Service Desk selections,
// keyed by ISO date. LastOps keeps the normalized Operations task names from
// the most recent run so the distributor can avoid assigning a person the
// same task two runs in a row.
type SelectionHistory struct {
	Version    string              `yaml:"version"`
	Selections map[string][]Person `yaml:"selections"`
	LastOps    map[Person][]string `yaml:"last_ops,omitempty"`
}
