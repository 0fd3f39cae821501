package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Cents is a currency amount in minor units. Totals are summed as exact
// integers; rounding happens once, when a decimal number enters or leaves
// the system.
type Cents int64

// CentsFromFloat rounds a decimal amount to the nearest cent.
func CentsFromFloat(v float64) Cents {
	return Cents(math.Round(v * 100))
}

// Float returns the amount as a decimal number, for display and for
// request bodies that expect decimal prices.
func (c Cents) Float() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return strconv.FormatFloat(c.Float(), 'f', 2, 64)
}

// MarshalJSON encodes the amount as a decimal number with two places,
// matching what the menu API serves.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid currency amount: %w", err)
	}
	*c = CentsFromFloat(v)
	return nil
}
