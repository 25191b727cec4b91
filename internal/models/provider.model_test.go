package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validProvider() *ServiceProvider {
	return &ServiceProvider{
		UserID: uuid.New(),
		Name:   "Joe's Garage",
		Type:   ProviderTypeMechanic,
	}
}

func TestProviderBeforeCreateDefaultsType(t *testing.T) {
	provider := validProvider()
	provider.Type = ""

	assert.NoError(t, provider.BeforeCreate(nil))
	assert.Equal(t, ProviderTypeOther, provider.Type)
}

func TestProviderBeforeCreateRejectsInvalid(t *testing.T) {
	badRating := 6

	tests := []struct {
		name   string
		mutate func(*ServiceProvider)
	}{
		{"missing user", func(p *ServiceProvider) { p.UserID = uuid.Nil }},
		{"missing name", func(p *ServiceProvider) { p.Name = "" }},
		{"unknown type", func(p *ServiceProvider) { p.Type = "carpenter" }},
		{"rating out of range", func(p *ServiceProvider) { p.Rating = &badRating }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := validProvider()
			tt.mutate(provider)
			assert.Error(t, provider.BeforeCreate(nil))
		})
	}
}

func TestProviderRatingBounds(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		provider := validProvider()
		r := rating
		provider.Rating = &r
		assert.NoError(t, provider.BeforeCreate(nil))
	}
}
