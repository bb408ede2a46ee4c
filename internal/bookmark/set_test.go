// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bookmark

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetToggle(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Toggle(2))
	assert.True(t, s.Has(2))
	assert.False(t, s.Toggle(2))
	assert.False(t, s.Has(2))
	assert.Equal(t, 0, s.Len())
}

func TestSetToggleTwiceRestores(t *testing.T) {
	s := NewSet(1, 3)
	before := s.IDs()

	s.Toggle(2)
	s.Toggle(2)
	assert.Equal(t, before, s.IDs())

	s.Toggle(3)
	s.Toggle(3)
	assert.Equal(t, before, s.IDs())
}

func TestNewSetIgnoresInvalidAndDuplicates(t *testing.T) {
	s := NewSet(4, 0, -1, 4, 2, math.MaxUint32+1)
	assert.Equal(t, []int{2, 4}, s.IDs())
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   int
		want bool
	}{
		{1, true},
		{math.MaxUint32, true},
		{0, false},
		{-5, false},
		{math.MaxUint32 + 1, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidID(tt.id), "id %d", tt.id)
	}
}

func TestSetToggleInvalid(t *testing.T) {
	s := NewSet()
	assert.False(t, s.Toggle(0))
	assert.False(t, s.Has(0))
	assert.Equal(t, 0, s.Len())
}

func TestSetClone(t *testing.T) {
	s := NewSet(1)
	c := s.Clone()
	c.Toggle(2)

	assert.Equal(t, []int{1}, s.IDs())
	assert.Equal(t, []int{1, 2}, c.IDs())
}
