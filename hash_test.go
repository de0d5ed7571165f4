package chainmap

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestComparableEqual(t *testing.T) {
	eq := ComparableEqual[string]()

	require.True(t, eq("foo", "foo"))
	require.False(t, eq("foo", "bar"))
}
