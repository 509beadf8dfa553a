package request

import (
	"strings"

	"coupon-admin/internal/domain/store"
	"coupon-admin/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type CreateStoreForm struct {
	Name             string `form:"name" binding:"max=200"`
	TrackingURL      string `form:"trackingUrl" binding:"omitempty,url"`
	ShortDescription string `form:"short_description" binding:"max=1000"`
	LongDescription  string `form:"long_description"`
	ImageURL         string `form:"image_url" binding:"omitempty,url"`
	ImageAlt         string `form:"image_alt"`
	CategoryIDs      string `form:"categories"`
	MetaTitle        string `form:"meta_title"`
	MetaDescription  string `form:"meta_description"`
	MetaKeywords     string `form:"meta_keywords"`
	Language         string `form:"language"`
	IsTopStore       bool   `form:"isTopStore"`
	IsEditorsChoice  bool   `form:"isEditorsChoice"`
	Heading          string `form:"heading"`
}

// ToDomain copies the flat form into the nested store shape. Empty image and
// seo blocks are dropped by store.CreateInput.Validate.
func (f CreateStoreForm) ToDomain() (store.CreateInput, error) {
	var in store.CreateInput
	if err := copier.Copy(&in, &f); err != nil {
		return store.CreateInput{}, errs.Wrap(err, "copy store form")
	}
	in.Categories = store.SplitCategories(f.CategoryIDs)
	in.Image = &store.Image{URL: strings.TrimSpace(f.ImageURL), Alt: strings.TrimSpace(f.ImageAlt)}
	in.SEO = &store.SEO{
		MetaTitle:       strings.TrimSpace(f.MetaTitle),
		MetaDescription: strings.TrimSpace(f.MetaDescription),
		MetaKeywords:    strings.TrimSpace(f.MetaKeywords),
	}
	return in, nil
}
