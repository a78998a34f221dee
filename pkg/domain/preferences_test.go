package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSet(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "simple values", values: []string{"Vegan", "Paleo"}, want: "Vegan,Paleo"},
		{name: "values with spaces", values: []string{" Vegan ", "Low FODMAP"}, want: "Vegan,Low FODMAP"},
		{name: "empty entries dropped", values: []string{"", "Vegan", "  "}, want: "Vegan"},
		{name: "nil", values: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeSet(tt.values))
		})
	}
}

func TestDecodeSet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "simple values", input: "Vegan,Paleo", want: []string{"Vegan", "Paleo"}},
		{name: "spaces around values", input: " Vegan , Low FODMAP ", want: []string{"Vegan", "Low FODMAP"}},
		{name: "empty string", input: "", want: nil},
		{name: "only separators", input: ", ,", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeSet(tt.input))
		})
	}
}

func TestEncodeDecodeSetRoundTrip(t *testing.T) {
	orig := []string{"Vegan", "Low FODMAP", "Gluten Free"}
	assert.Equal(t, orig, DecodeSet(EncodeSet(orig)))
}

func TestPreferencesEmpty(t *testing.T) {
	assert.True(t, Preferences{}.Empty())
	assert.True(t, Preferences{ExcludeIngredients: "  "}.Empty())
	assert.False(t, Preferences{Diets: []string{"Vegan"}}.Empty())
	assert.False(t, Preferences{ExcludeIngredients: "egg"}.Empty())
}
