package model

// Category groups tasks by area (work, health, study, etc.).
// Color is a display attribute, kept as a hex string.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
