package response

import "coupon-admin/internal/domain/category"

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Active      bool   `json:"active"`
	Order       int    `json:"order"`
}

func FromCategory(c *category.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		Active:      c.Active,
		Order:       c.Order,
	}
}

func FromCategories(cs []category.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for i := range cs {
		out = append(out, FromCategory(&cs[i]))
	}
	return out
}
