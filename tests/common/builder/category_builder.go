//go:build unit || e2e

package builder

import (
	"net/url"

	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/pkg/ptr"
)

type CategoryBuilder struct {
	ID          string
	Name        string
	Description string
	Active      bool
	Order       int
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		ID:          "64b7f0c2e1a2b3c4d5e6f7c1",
		Name:        "Electronics",
		Description: "Gadgets and devices",
		Active:      true,
		Order:       1,
	}
}

func (b *CategoryBuilder) With(mutate func(*CategoryBuilder)) *CategoryBuilder {
	mutate(b)
	return b
}

func (b *CategoryBuilder) BuildDomain() category.Category {
	return category.Category{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Active:      b.Active,
		Order:       b.Order,
	}
}

func (b *CategoryBuilder) BuildInput() category.CreateInput {
	return category.CreateInput{
		Name:        b.Name,
		Description: b.Description,
		Active:      ptr.Of(b.Active),
		Order:       ptr.Of(b.Order),
	}
}

// BuildPage wraps the category in a single-entry page envelope.
func (b *CategoryBuilder) BuildPage(current, total int) *category.Page {
	return &category.Page{
		Categories:      []category.Category{b.BuildDomain()},
		TotalCategories: total,
		CurrentPage:     current,
		TotalPages:      total,
	}
}

func (b *CategoryBuilder) BuildForm() url.Values {
	form := url.Values{
		"name":        {b.Name},
		"description": {b.Description},
	}
	if b.Active {
		form.Set("active", "true")
	}
	return form
}
