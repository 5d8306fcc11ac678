package fruit

import (
	"fmt"

	"github.com/lixenwraith/wurm/constants"
)

// Fruit is a reward glyph and the growth it awards
type Fruit struct {
	Glyph  rune
	Points int
}

// Table maps reward glyphs to point values, in a stable order for random picks
type Table struct {
	fruits []Fruit
	index  map[rune]int
}

// Classic is the four-fruit set
var Classic = []Fruit{
	{Glyph: '¤', Points: 5},
	{Glyph: '@', Points: 10},
	{Glyph: '$', Points: 15},
	{Glyph: '§', Points: 20},
}

// Reduced drops the highest-value fruit
var Reduced = Classic[:3]

// NewTable builds a table, rejecting glyphs that would collide with bad or blank cells
func NewTable(fruits []Fruit) (*Table, error) {
	if len(fruits) == 0 {
		return nil, fmt.Errorf("fruit table is empty")
	}

	t := &Table{
		fruits: make([]Fruit, 0, len(fruits)),
		index:  make(map[rune]int, len(fruits)),
	}
	for _, f := range fruits {
		switch {
		case f.Glyph == constants.GlyphBlank || f.Glyph == 0:
			return nil, fmt.Errorf("fruit glyph %q is blank", f.Glyph)
		case constants.IsBadGlyph(f.Glyph):
			return nil, fmt.Errorf("fruit glyph %q collides with a bad glyph", f.Glyph)
		case f.Points <= 0:
			return nil, fmt.Errorf("fruit %q has non-positive points %d", f.Glyph, f.Points)
		}
		if _, dup := t.index[f.Glyph]; dup {
			return nil, fmt.Errorf("fruit glyph %q listed twice", f.Glyph)
		}
		t.index[f.Glyph] = len(t.fruits)
		t.fruits = append(t.fruits, f)
	}
	return t, nil
}

// MustTable is NewTable for package-level sets known to be valid
func MustTable(fruits []Fruit) *Table {
	t, err := NewTable(fruits)
	if err != nil {
		panic(err)
	}
	return t
}

// Points returns the value of a reward glyph
func (t *Table) Points(glyph rune) (int, bool) {
	i, ok := t.index[glyph]
	if !ok {
		return 0, false
	}
	return t.fruits[i].Points, true
}

// Len returns the number of fruit kinds
func (t *Table) Len() int {
	return len(t.fruits)
}

// At returns the i-th fruit
func (t *Table) At(i int) Fruit {
	return t.fruits[i]
}

// Fruits returns a copy of the table entries
func (t *Table) Fruits() []Fruit {
	out := make([]Fruit, len(t.fruits))
	copy(out, t.fruits)
	return out
}
