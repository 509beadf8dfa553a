package category

type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

// Page is the envelope the backend wraps category listings in.
type Page struct {
	Categories      []Category `json:"categories"`
	TotalCategories int        `json:"totalCategories"`
	CurrentPage     int        `json:"currentPage"`
	TotalPages      int        `json:"totalPages"`
}

func (p Page) HasPrev() bool {
	return p.CurrentPage > 1
}

func (p Page) HasNext() bool {
	return p.CurrentPage < p.TotalPages
}
