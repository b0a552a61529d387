package entity

// Category is a top-level classification segment of the ticketing provider.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
