//go:build unit || e2e

package builder

import (
	"net/url"
	"strings"

	"coupon-admin/internal/domain/store"
)

type StoreBuilder struct {
	ID               string
	Name             string
	TrackingURL      string
	ShortDescription string
	ImageURL         string
	Categories       []string
	IsTopStore       bool
}

func NewStoreBuilder() *StoreBuilder {
	return &StoreBuilder{
		ID:               "64b7f0c2e1a2b3c4d5e6f701",
		Name:             "Acme",
		TrackingURL:      "https://acme.example/go",
		ShortDescription: "Tools and hardware",
	}
}

func (s *StoreBuilder) With(mutate func(*StoreBuilder)) *StoreBuilder {
	mutate(s)
	return s
}

func (s *StoreBuilder) WithID(id string) *StoreBuilder {
	s.ID = id
	return s
}

func (s *StoreBuilder) WithName(name string) *StoreBuilder {
	s.Name = name
	return s
}

func (s *StoreBuilder) WithImage(url string) *StoreBuilder {
	s.ImageURL = url
	return s
}

func (s *StoreBuilder) BuildDomain() store.Store {
	out := store.Store{
		ID:               s.ID,
		Name:             s.Name,
		TrackingURL:      s.TrackingURL,
		ShortDescription: s.ShortDescription,
		Categories:       s.Categories,
		IsTopStore:       s.IsTopStore,
	}
	if s.ImageURL != "" {
		out.Image = &store.Image{URL: s.ImageURL}
	}
	return out
}

func (s *StoreBuilder) BuildInput() store.CreateInput {
	in := store.CreateInput{
		Name:             s.Name,
		TrackingURL:      s.TrackingURL,
		ShortDescription: s.ShortDescription,
		Categories:       s.Categories,
		IsTopStore:       s.IsTopStore,
	}
	if s.ImageURL != "" {
		in.Image = &store.Image{URL: s.ImageURL}
	}
	return in
}

func (s *StoreBuilder) BuildForm() url.Values {
	form := url.Values{
		"name":              {s.Name},
		"trackingUrl":       {s.TrackingURL},
		"short_description": {s.ShortDescription},
	}
	if s.ImageURL != "" {
		form.Set("image_url", s.ImageURL)
	}
	if len(s.Categories) > 0 {
		form.Set("categories", strings.Join(s.Categories, ","))
	}
	if s.IsTopStore {
		form.Set("isTopStore", "true")
	}
	return form
}
