// Package score implements the Eskalero scoring rules: the ten sheet
// categories, the six die faces and the arithmetic that turns a declared
// combination into points. Everything here is pure and stateless.
package score

import (
	"fmt"
	"strings"
)

// Category is one of the ten rows of a score sheet.
type Category string

const (
	Nines     Category = "9"
	Tens      Category = "10"
	Jacks     Category = "B"
	Queens    Category = "D"
	Kings     Category = "K"
	Aces      Category = "A"
	Straight  Category = "S"
	FullHouse Category = "F"
	Poker     Category = "P"
	Grande    Category = "G"
)

// Categories lists every category in sheet order.
var Categories = []Category{Nines, Tens, Jacks, Queens, Kings, Aces, Straight, FullHouse, Poker, Grande}

var categoryNames = map[Category]string{
	Nines:     "Nines",
	Tens:      "Tens",
	Jacks:     "Jacks",
	Queens:    "Queens",
	Kings:     "Kings",
	Aces:      "Aces",
	Straight:  "Straight",
	FullHouse: "Full House",
	Poker:     "Poker",
	Grande:    "Grande",
}

var categoryAliases = map[string]Category{
	"straight":   Straight,
	"street":     Straight,
	"full":       FullHouse,
	"fullhouse":  FullHouse,
	"full_house": FullHouse,
	"poker":      Poker,
	"grande":     Grande,
}

// ParseCategory resolves a sheet label ("9", "b", "P") or a long name
// ("poker", "fullhouse") into a Category.
func ParseCategory(s string) (Category, error) {
	raw := strings.TrimSpace(s)
	upper := strings.ToUpper(raw)
	for _, c := range Categories {
		if string(c) == upper {
			return c, nil
		}
	}
	if c, ok := categoryAliases[strings.ToLower(raw)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// IsNumeric reports whether c is one of the six face-value rows.
func (c Category) IsNumeric() bool {
	_, ok := numericFaces[c]
	return ok
}

// IsCombination reports whether c is Straight, Full House, Poker or Grande.
func (c Category) IsCombination() bool {
	_, ok := baseScores[c]
	return ok
}

// Face returns the die face a numeric category counts. It is zero for
// combination categories.
func (c Category) Face() Face {
	return numericFaces[c]
}

// Name is the human-readable row title.
func (c Category) Name() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return string(c)
}

func (c Category) String() string { return string(c) }
