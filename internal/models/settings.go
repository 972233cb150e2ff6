package models

// Settings is the singleton institutional metadata printed on reports.
// There is always exactly one instance in the application state.
type Settings struct {
	SchoolName string `json:"school_name"`
	Region     string `json:"region"`
}
