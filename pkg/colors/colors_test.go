package colors

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestHuesHaveNineValidShades(t *testing.T) {
	for _, name := range Names() {
		c, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		assert.Len(t, c, Shades, name)
		for i := 1; i <= Shades; i++ {
			assert.Regexp(t, hexColorRegex, c.Shade(i), "%s v%d", name, i)
		}
	}
}

func TestShadeAccessors(t *testing.T) {
	assert.Equal(t, "#ebf8ff", Blue.V1())
	assert.Equal(t, "#4299e1", Blue.V5())
	assert.Equal(t, "#2a4365", Blue.V9())
	assert.Equal(t, Red.V4(), Red.Shade(4))
	assert.Equal(t, Gray[0], Gray.V1())
}

func TestShadeOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Blue.Shade(0) })
	assert.Panics(t, func() { Blue.Shade(10) })
}

func TestBrightAndDark(t *testing.T) {
	bright := Bright()
	dark := Dark()
	assert.Len(t, bright, len(Rainbow))
	assert.Len(t, dark, len(Rainbow))

	assert.Equal(t, Blue.V4(), bright[0])
	assert.Equal(t, Orange.V4(), bright[1])
	assert.Equal(t, Yellow.V6(), dark[len(dark)-1])
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want Color
		ok   bool
	}{
		{"blue", Blue, true},
		{"gray", Gray, true},
		{"grey", Gray, true},
		{"chartreuse", Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Lookup(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	assert.Len(t, names, 10)
	assert.IsIncreasing(t, names)
}

func TestCycle(t *testing.T) {
	assert.Equal(t, Blue.V6(), Cycle(0, 6))
	assert.Equal(t, Blue.V6(), Cycle(len(Rainbow), 6))
	assert.Equal(t, Orange.V4(), Cycle(1, 4))
}

func TestGroup(t *testing.T) {
	rb, ok := Group("rainbow")
	if !ok || len(rb) != len(Rainbow) || rb[0] != Blue.V6() {
		t.Errorf("Group(rainbow) = %v, %v", rb, ok)
	}

	bl, ok := Group("blue")
	if !ok || len(bl) != 7 || bl[0] != Blue.V3() || bl[6] != Blue.V9() {
		t.Errorf("Group(blue) = %v, %v", bl, ok)
	}
	bl[0] = "#000000"
	if Blue.V3() == "#000000" {
		t.Error("Group must not alias the table")
	}

	if _, ok := Group("plaid"); ok {
		t.Error("Group(plaid) should fail")
	}
	for _, name := range Groups() {
		if _, ok := Group(name); !ok {
			t.Errorf("Groups lists %q but Group rejects it", name)
		}
	}
}
