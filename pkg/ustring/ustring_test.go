package ustring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_InternIsStable(t *testing.T) {
	table := NewTable()

	a := table.Intern("hello")
	b := table.Intern("world")
	again := table.Intern("hello")

	assert.Equal(t, a, again)
	assert.NotEqual(t, a, b)
	assert.Equal(t, 3, table.Len())
}

func TestTable_EmptyStringIsZeroHandle(t *testing.T) {
	table := NewTable()
	assert.Equal(t, Handle(0), table.Intern(""))

	s, ok := table.Lookup(0)
	require.True(t, ok)
	assert.Equal(t, "", s)
}

func TestTable_Lookup(t *testing.T) {
	table := NewTable()
	h := table.Intern("float")

	s, ok := table.Lookup(h)
	require.True(t, ok)
	assert.Equal(t, "float", s)

	_, ok = table.Lookup(Handle(9999))
	assert.False(t, ok)
}

func TestTable_HashAndUnhash(t *testing.T) {
	table := NewTable()

	h := table.Hash("colorspace")
	assert.Equal(t, HashString("colorspace"), h)

	s, ok := table.Unhash(h)
	require.True(t, ok)
	assert.Equal(t, "colorspace", s)

	_, ok = table.Unhash(HashString("never seen"))
	assert.False(t, ok)
}

func TestHashString_Deterministic(t *testing.T) {
	assert.Equal(t, HashString("abc"), HashString("abc"))
	assert.NotEqual(t, HashString("abc"), HashString("abd"))
}

func TestTable_ConcurrentIntern(t *testing.T) {
	table := NewTable()
	words := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, w := range words {
				table.Intern(w)
				table.Hash(w)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, len(words)+1, table.Len())
	for _, w := range words {
		s, ok := table.Lookup(table.Intern(w))
		require.True(t, ok)
		assert.Equal(t, w, s)
	}
}
