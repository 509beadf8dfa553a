package response

import "coupon-admin/internal/domain/store"

type StoreCard struct {
	ID               string
	Name             string
	TrackingURL      string
	ShortDescription string
	ImageURL         string
	ImageAlt         string
	Categories       []string
	IsTopStore       bool
	IsEditorsChoice  bool
	Deleting         bool
}

func FromStore(s store.Store, deleting bool) StoreCard {
	card := StoreCard{
		ID:               s.ID,
		Name:             s.Name,
		TrackingURL:      s.TrackingURL,
		ShortDescription: s.ShortDescription,
		ImageAlt:         s.ImageAlt(),
		Categories:       s.Categories,
		IsTopStore:       s.IsTopStore,
		IsEditorsChoice:  s.IsEditorsChoice,
		Deleting:         deleting,
	}
	if s.HasImage() {
		card.ImageURL = s.Image.URL
	}
	return card
}

func StoreOptions(stores []store.Store, selected string) []StoreOption {
	out := make([]StoreOption, 0, len(stores))
	for _, s := range stores {
		out = append(out, StoreOption{ID: s.ID, Name: s.Name, Selected: s.ID == selected})
	}
	return out
}
