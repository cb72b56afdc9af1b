package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVariantKeyNoVariant(t *testing.T) {
	assert.Equal(t, NoVariantKey, VariantKey(nil))
	assert.Equal(t, "p1:"+NoVariantKey, LineID("p1", nil))
}

func TestVariantKeyAttributeOrderIndependence(t *testing.T) {
	a := &Variant{
		SKU:  "SKU-1",
		Name: "Black / 256GB",
		Attributes: map[string]string{
			"color":   "black",
			"storage": "256GB",
			"ram":     "8GB",
		},
	}
	b := &Variant{
		SKU:  "SKU-1",
		Name: "Black / 256GB",
		Attributes: map[string]string{
			"ram":     "8GB",
			"storage": "256GB",
			"color":   "black",
		},
	}

	assert.Equal(t, VariantKey(a), VariantKey(b))
	assert.Equal(t, LineID("p1", a), LineID("p1", b))
}

func TestVariantKeyDistinguishesVariants(t *testing.T) {
	tests := []struct {
		name string
		a, b Variant
	}{
		{
			name: "different sku",
			a:    Variant{SKU: "A", Name: "Black"},
			b:    Variant{SKU: "B", Name: "Black"},
		},
		{
			name: "different name",
			a:    Variant{SKU: "A", Name: "Black"},
			b:    Variant{SKU: "A", Name: "Green"},
		},
		{
			name: "different attribute value",
			a:    Variant{SKU: "A", Name: "X", Attributes: map[string]string{"storage": "128GB"}},
			b:    Variant{SKU: "A", Name: "X", Attributes: map[string]string{"storage": "256GB"}},
		},
		{
			name: "extra attribute",
			a:    Variant{SKU: "A", Name: "X", Attributes: map[string]string{"storage": "128GB"}},
			b:    Variant{SKU: "A", Name: "X", Attributes: map[string]string{"storage": "128GB", "color": "red"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, VariantKey(&tt.a), VariantKey(&tt.b))
		})
	}
}

func TestUnitPriceVariantOverride(t *testing.T) {
	p := Product{ID: "p1", Price: 100}
	override := 40.0

	assert.Equal(t, 100.0, UnitPrice(p, nil))
	assert.Equal(t, 100.0, UnitPrice(p, &Variant{Name: "Base"}))
	assert.Equal(t, 40.0, UnitPrice(p, &Variant{Name: "Cheap", Price: &override}))
}

func TestTriStateMatch(t *testing.T) {
	assert.True(t, TriUnset.Match(true))
	assert.True(t, TriUnset.Match(false))
	assert.True(t, TriTrue.Match(true))
	assert.False(t, TriTrue.Match(false))
	assert.True(t, TriFalse.Match(false))
	assert.False(t, TriFalse.Match(true))
}

func TestFilterStateValidate(t *testing.T) {
	valid := DefaultFilterState(1000)
	assert.NoError(t, valid.Validate())

	inverted := FilterState{PriceMin: 500, PriceMax: 100}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidPriceRange)

	badRating := FilterState{PriceMax: 1000, MinRating: 5.5}
	assert.ErrorIs(t, badRating.Validate(), ErrInvalidMinRating)
}
