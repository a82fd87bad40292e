package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithDoesNotMutate(t *testing.T) {
	base := make([]Option, 1, 4)
	base[0] = Option{Label: "A", Value: "a"}

	out := With(base, Option{Label: "B", Value: "b"})
	extra := With(base, Option{Label: "C", Value: "c"})

	assert.Equal(t, []string{"a", "b"}, Values(out))
	assert.Equal(t, []string{"a", "c"}, Values(extra))
	assert.Len(t, base, 1)
}

func TestWithout(t *testing.T) {
	sel := []Option{{Value: "a"}, {Value: "b"}, {Value: "a"}}

	out := Without(sel, "a")

	assert.Equal(t, []string{"b"}, Values(out))
	assert.Len(t, sel, 3, "input selection must stay untouched")
}

func TestContainsValue(t *testing.T) {
	sel := []Option{{Value: "x"}}
	assert.True(t, ContainsValue(sel, "x"))
	assert.False(t, ContainsValue(sel, "y"))
	assert.False(t, ContainsValue(nil, ""))
}

func TestFromValuesKeepsOptionOrder(t *testing.T) {
	opts := []Option{{Value: "a"}, {Value: "b"}, {Value: "c"}}

	got := FromValues(opts, []string{"c", "missing", "a"})

	assert.Equal(t, []string{"a", "c"}, Values(got))
}
