package traystore_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cafeteria/traystore"
)

func TestStore_Empty(t *testing.T) {
	s := traystore.New()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.Sorted())
	assert.False(t, s.Contains(100))

	_, ok := s.Min()
	assert.False(t, ok)
	_, ok = s.Max()
	assert.False(t, ok)
}

func TestStore_InsertContains(t *testing.T) {
	s := traystore.New()
	for id := 100; id < 110; id++ {
		require.True(t, s.Insert(id))
		assert.True(t, s.Contains(id), "id %d missing right after insert", id)
	}
	// lookups stay true for the rest of the run
	for i := 0; i < 3; i++ {
		for id := 100; id < 110; id++ {
			assert.True(t, s.Contains(id))
		}
	}
	assert.False(t, s.Contains(99))
	assert.False(t, s.Contains(110))
}

func TestStore_DuplicateInsertIsNoop(t *testing.T) {
	s := traystore.New()
	require.True(t, s.Insert(101))
	assert.False(t, s.Insert(101))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []int{101}, s.Sorted())
}

func TestStore_SortedFromRandomOrder(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	ids := r.Perm(500)

	s := traystore.New()
	for _, id := range ids {
		s.Insert(id + 100)
	}

	got := s.Sorted()
	require.Len(t, got, 500)
	assert.True(t, sort.IntsAreSorted(got))
	assert.Equal(t, 100, got[0])
	assert.Equal(t, 599, got[499])

	lo, _ := s.Min()
	hi, _ := s.Max()
	assert.Equal(t, 100, lo)
	assert.Equal(t, 599, hi)
}

func TestStore_SortedIsSnapshot(t *testing.T) {
	s := traystore.New()
	s.Insert(100)
	s.Insert(101)
	snap := s.Sorted()

	s.Insert(102)
	assert.Equal(t, []int{100, 101}, snap)
	assert.Equal(t, []int{100, 101, 102}, s.Sorted())
}

func TestStore_AscendRestartableAndStoppable(t *testing.T) {
	s := traystore.New()
	for _, id := range []int{105, 101, 103} {
		s.Insert(id)
	}

	var first []int
	s.Ascend(func(id int) bool {
		first = append(first, id)
		return len(first) < 2
	})
	assert.Equal(t, []int{101, 103}, first)

	var second []int
	s.Ascend(func(id int) bool {
		second = append(second, id)
		return true
	})
	assert.Equal(t, []int{101, 103, 105}, second)
}
