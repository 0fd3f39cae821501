package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/restaurant-client/models"
)

func TestNormalizeFoldsCaseWhitespaceAndDuplicates(t *testing.T) {
	m := &models.LineModifiers{
		SpiceLevel:          "  Hot ",
		AllergensAvoid:      []string{" peanut", "GLUTEN", "peanut ", "gluten"},
		SpecialInstructions: "  no onions  ",
	}

	n := m.Normalize()
	assert.Equal(t, "hot", n.SpiceLevel)
	assert.Equal(t, []string{"GLUTEN", "PEANUT"}, n.AllergensAvoid)
	assert.Equal(t, "no onions", n.SpecialInstructions)
}

func TestNormalizeNilStaysNil(t *testing.T) {
	var m *models.LineModifiers
	assert.Nil(t, m.Normalize())
}

func TestIdentityKeyEqualForSemanticallyEqualModifiers(t *testing.T) {
	m1 := &models.LineModifiers{
		SpiceLevel:          "Hot",
		AllergensAvoid:      []string{"gluten", "Peanut"},
		SpecialInstructions: "No Onions",
	}
	m2 := &models.LineModifiers{
		SpiceLevel:          " hot ",
		AllergensAvoid:      []string{"PEANUT", "GLUTEN", "peanut"},
		SpecialInstructions: "  no onions ",
	}

	assert.Equal(t, models.LineIdentityKey(42, m1), models.LineIdentityKey(42, m2))
}

func TestIdentityKeyDiffersPerField(t *testing.T) {
	base := &models.LineModifiers{SpiceLevel: "hot", AllergensAvoid: []string{"PEANUT"}}
	key := models.LineIdentityKey(42, base)

	assert.NotEqual(t, key, models.LineIdentityKey(43, base))
	assert.NotEqual(t, key, models.LineIdentityKey(42, &models.LineModifiers{SpiceLevel: "mild", AllergensAvoid: []string{"PEANUT"}}))
	assert.NotEqual(t, key, models.LineIdentityKey(42, &models.LineModifiers{SpiceLevel: "hot", SpiceOnSide: true, AllergensAvoid: []string{"PEANUT"}}))
	assert.NotEqual(t, key, models.LineIdentityKey(42, &models.LineModifiers{SpiceLevel: "hot", AllergensAvoid: []string{"PEANUT", "SHELLFISH"}}))
	assert.NotEqual(t, key, models.LineIdentityKey(42, &models.LineModifiers{SpiceLevel: "hot", AllergensAvoid: []string{"PEANUT"}, SpecialInstructions: "extra sauce"}))
}

func TestIdentityKeyNilAndEmptyModifiersAgree(t *testing.T) {
	assert.Equal(t, models.LineIdentityKey(7, nil), models.LineIdentityKey(7, &models.LineModifiers{}))
}

func TestCartStateTotalAndCount(t *testing.T) {
	state := models.CartState{
		Lines: []models.CartLine{
			{MenuItemID: 1, Price: models.CentsFromFloat(12.50), Quantity: 2},
			{MenuItemID: 2, Price: models.CentsFromFloat(3.25), Quantity: 1},
		},
	}

	assert.Equal(t, models.Cents(2825), state.Total())
	assert.Equal(t, "28.25", state.Total().String())
	assert.Equal(t, 3, state.Count())
}

func TestCentsJSONRoundTrip(t *testing.T) {
	encoded, err := json.Marshal(models.Cents(1250))
	assert.NoError(t, err)
	assert.Equal(t, "12.50", string(encoded))

	var c models.Cents
	assert.NoError(t, json.Unmarshal([]byte("12.50"), &c))
	assert.Equal(t, models.Cents(1250), c)

	// Values the backend serves with float noise still land on the cent.
	assert.NoError(t, json.Unmarshal([]byte("12.499999999999998"), &c))
	assert.Equal(t, models.Cents(1250), c)
}
