package ds

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet_AddRemove(t *testing.T) {
	s := NewStringSet()
	require.Equal(t, 0, s.Len())

	s.Add("hello")
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains("hello"))

	s.Remove("hello")
	require.Equal(t, 0, s.Len())
	require.False(t, s.Contains("hello"))

	// removing an absent value is a no-op
	s.Remove("nope")
	require.Equal(t, 0, s.Len())
}

func TestSet_Add_NoDuplicates(t *testing.T) {
	s := NewStringSet("a", "b", "a")
	require.Equal(t, []string{"a", "b"}, s.Values())

	s.Add("a")
	require.Equal(t, []string{"a", "b"}, s.Values())
}

func TestSet_Touch(t *testing.T) {
	s := NewStringSet("a", "b", "c")

	s.Touch("a")
	require.Equal(t, []string{"b", "c", "a"}, s.Values())
	require.Equal(t, 3, s.Len())

	s.Touch("a")
	require.Equal(t, []string{"b", "c", "a"}, s.Values())

	s.Touch("d")
	require.Equal(t, []string{"b", "c", "a", "d"}, s.Values())
}

func TestSet_Front(t *testing.T) {
	s := NewStringSet()
	_, ok := s.Front()
	require.False(t, ok)

	s.Add("x")
	s.Add("y")
	v, ok := s.Front()
	require.True(t, ok)
	require.Equal(t, "x", v)

	s.Touch("x")
	v, _ = s.Front()
	require.Equal(t, "y", v)
}

func TestSet_Remove_KeepsOrder(t *testing.T) {
	s := NewStringSet("a", "b", "c", "d")
	s.Remove("b", "d")
	require.Equal(t, []string{"a", "c"}, s.Values())
}

func TestSet_Values_IsCopy(t *testing.T) {
	s := NewStringSet("a", "b")
	vals := s.Values()
	vals[0] = "z"
	require.Equal(t, []string{"a", "b"}, s.Values())
}
