package models

import (
	"sort"
	"strconv"
	"strings"
)

// MaxLineQuantity caps a single cart line. Anything above it is clamped,
// never rejected.
const MaxLineQuantity = 99

// Recognized spice levels. Stored lower-case; normalization folds case.
const (
	SpiceMild     = "mild"
	SpiceMedium   = "medium"
	SpiceHot      = "hot"
	SpiceExtraHot = "extra_hot"
)

// LineModifiers captures the per-line customizations that distinguish two
// otherwise identical menu items in a cart.
type LineModifiers struct {
	SpiceLevel          string   `json:"spice_level,omitempty" validate:"omitempty,oneof=mild medium hot extra_hot"`
	SpiceOnSide         bool     `json:"spice_on_side,omitempty"`
	AllergensAvoid      []string `json:"allergens_avoid,omitempty"`
	SpecialInstructions string   `json:"special_instructions,omitempty"`
}

// Normalize returns a canonical copy: spice level lower-cased and
// trimmed, allergen codes upper-cased, de-duplicated and sorted,
// instructions trimmed. Two semantically equal modifier sets normalize to
// the same value.
func (m *LineModifiers) Normalize() *LineModifiers {
	if m == nil {
		return nil
	}

	out := &LineModifiers{
		SpiceLevel:          strings.ToLower(strings.TrimSpace(m.SpiceLevel)),
		SpiceOnSide:         m.SpiceOnSide,
		SpecialInstructions: strings.TrimSpace(m.SpecialInstructions),
	}

	seen := make(map[string]bool, len(m.AllergensAvoid))
	for _, a := range m.AllergensAvoid {
		a = strings.ToUpper(strings.TrimSpace(a))
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		out.AllergensAvoid = append(out.AllergensAvoid, a)
	}
	sort.Strings(out.AllergensAvoid)

	return out
}

// keySep separates identity key fields. Normalization can never produce a
// unit separator in the fixed-position fields, and the free-text field
// sits last so it cannot shift field boundaries.
const keySep = "\x1f"

// LineIdentityKey fingerprints a menu item plus its normalized modifiers.
// Lines with equal keys are the same orderable configuration and must
// merge; any recognized difference yields a different key.
func LineIdentityKey(menuItemID uint, m *LineModifiers) string {
	n := m.Normalize()
	if n == nil {
		n = &LineModifiers{}
	}

	side := ""
	if n.SpiceOnSide {
		side = "side"
	}

	return strings.Join([]string{
		strconv.FormatUint(uint64(menuItemID), 10),
		n.SpiceLevel,
		side,
		strings.Join(n.AllergensAvoid, ","),
		strings.ToLower(n.SpecialInstructions),
	}, keySep)
}

// CartLine is one distinct orderable configuration with a quantity.
type CartLine struct {
	Key        string         `json:"key" validate:"required"`
	MenuItemID uint           `json:"menu_item_id" validate:"required"`
	Name       string         `json:"name"`
	Price      Cents          `json:"price" validate:"gte=0"`
	ImageURL   string         `json:"image_url,omitempty"`
	Quantity   int            `json:"quantity" validate:"gte=1,lte=99"`
	Modifiers  *LineModifiers `json:"modifiers,omitempty"`
}

// Subtotal is price times quantity, exact in cents.
func (l *CartLine) Subtotal() Cents {
	return l.Price * Cents(l.Quantity)
}

// CartState is the in-progress order for one (slug, table) scope on this
// device. Line order is insertion order and is what the UI displays.
type CartState struct {
	Slug        string     `json:"slug"`
	TableNumber string     `json:"table_number"`
	Lines       []CartLine `json:"lines"`
}

// Total sums all line subtotals in exact cents.
func (s *CartState) Total() Cents {
	var total Cents
	for i := range s.Lines {
		total += s.Lines[i].Subtotal()
	}
	return total
}

// Count sums all line quantities.
func (s *CartState) Count() int {
	count := 0
	for i := range s.Lines {
		count += s.Lines[i].Quantity
	}
	return count
}
