package chainmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_Basic(t *testing.T) {
	s := NewComparableSet[string](16)

	assert.True(t, s.Put("foo"))
	assert.False(t, s.Put("foo"))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Has("foo"))
	assert.False(t, s.Has("bar"))

	assert.True(t, s.Delete("foo"))
	assert.False(t, s.Delete("foo"))
	assert.False(t, s.Has("foo"))
	assert.Equal(t, 0, s.Len())
}

func TestSet_Growth(t *testing.T) {
	s := NewComparableSet[int](4)

	for i := range 100 {
		s.Put(i)
	}

	require.Equal(t, 100, s.Len())
	require.Greater(t, s.Capacity(), 4)

	for i := range 100 {
		require.True(t, s.Has(i))
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewComparableSet[int](16)

	for i := range 5 {
		s.Put(i)
	}

	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 16, s.Capacity())
	assert.False(t, s.Has(0))
}

func TestSet_Grow(t *testing.T) {
	s := NewComparableSet[int](16)

	for i := range 5 {
		s.Put(i)
	}

	require.NoError(t, s.Grow(2))
	assert.Equal(t, 32, s.Capacity())
	assert.Equal(t, 5, s.Len())

	assert.ErrorIs(t, s.Grow(0), ErrGrowthFactor)
}

func TestSet_Stats(t *testing.T) {
	s := NewSet(collisionHash[int], ComparableEqual[int](), 16)

	s.Put(1)
	s.Put(2)
	s.Put(3)

	stats := s.Stats()
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 2, stats.Chained)
}
