package store

import "strings"

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type SEO struct {
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
}

// Store is a merchant as the backend returns it. The admin never mutates one locally.
type Store struct {
	ID               string   `json:"_id"`
	Name             string   `json:"name"`
	TrackingURL      string   `json:"trackingUrl"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description,omitempty"`
	Image            *Image   `json:"image,omitempty"`
	Categories       []string `json:"categories,omitempty"`
	SEO              *SEO     `json:"seo,omitempty"`
	Language         string   `json:"language,omitempty"`
	IsTopStore       bool     `json:"isTopStore"`
	IsEditorsChoice  bool     `json:"isEditorsChoice"`
	Heading          string   `json:"heading,omitempty"`
}

// ImageAlt falls back to the store name when the image has no alt text.
func (s Store) ImageAlt() string {
	if s.Image != nil && s.Image.Alt != "" {
		return s.Image.Alt
	}
	return s.Name
}

func (s Store) HasImage() bool {
	return s.Image != nil && strings.TrimSpace(s.Image.URL) != ""
}
