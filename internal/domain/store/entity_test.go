//go:build unit

package store_test

import (
	"testing"

	"coupon-admin/internal/domain/store"

	"github.com/stretchr/testify/assert"
)

func TestCreateInputValidate(t *testing.T) {
	t.Run("valid input drops empty optional blocks", func(t *testing.T) {
		in := store.CreateInput{
			Name:             " Acme ",
			TrackingURL:      "https://acme.example",
			ShortDescription: "Tools",
			Image:            &store.Image{URL: " "},
			SEO:              &store.SEO{},
		}
		assert.NoError(t, in.Validate())
		assert.Equal(t, "Acme", in.Name)
		assert.Nil(t, in.Image)
		assert.Nil(t, in.SEO)
	})

	tests := []struct {
		name string
		in   store.CreateInput
		want error
	}{
		{name: "missing name", in: store.CreateInput{TrackingURL: "u", ShortDescription: "d"}, want: store.ErrNameRequired},
		{name: "missing tracking url", in: store.CreateInput{Name: "n", ShortDescription: "d"}, want: store.ErrTrackingURLRequired},
		{name: "missing short description", in: store.CreateInput{Name: "n", TrackingURL: "u"}, want: store.ErrShortDescriptionRequired},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.in.Validate(), tc.want)
		})
	}
}

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, store.SplitCategories(" a, ,b,"))
	assert.Nil(t, store.SplitCategories(""))
}

func TestImageAlt(t *testing.T) {
	s := store.Store{Name: "Acme"}
	assert.Equal(t, "Acme", s.ImageAlt())
	assert.False(t, s.HasImage())

	s.Image = &store.Image{URL: "https://img.example/a.png", Alt: "logo"}
	assert.Equal(t, "logo", s.ImageAlt())
	assert.True(t, s.HasImage())
}
