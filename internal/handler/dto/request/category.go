package request

import (
	"coupon-admin/internal/domain/category"
	"coupon-admin/internal/pkg/errs"
	"coupon-admin/internal/pkg/ptr"

	"github.com/jinzhu/copier"
)

type CreateCategoryForm struct {
	Name        string `form:"name" binding:"max=100"`
	Description string `form:"description" binding:"max=1000"`
	Icon        string `form:"icon" binding:"omitempty,url"`
	Active      bool   `form:"active"`
	Order       *int   `form:"order" binding:"omitempty,min=0"`
}

func (f CreateCategoryForm) ToDomain() (category.CreateInput, error) {
	var in category.CreateInput
	if err := copier.Copy(&in, &f); err != nil {
		return category.CreateInput{}, errs.Wrap(err, "copy category form")
	}
	in.Active = ptr.Of(f.Active)
	return in, nil
}

type ListCategoriesQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Active string `form:"active" binding:"omitempty,oneof=true false"`
}

func (q ListCategoriesQuery) ToParams() category.ListParams {
	params := category.ListParams{Page: q.Page, Limit: q.Limit}
	switch q.Active {
	case "true":
		params.Active = ptr.Of(true)
	case "false":
		params.Active = ptr.Of(false)
	}
	return params
}
