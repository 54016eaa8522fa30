package application

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFence_LatestDispatchWins(t *testing.T) {
	f := NewFence()

	first := f.Issue()
	second := f.Issue()

	// The slow first response arrives after the second dispatch.
	assert.False(t, f.Admit(first))
	assert.True(t, f.Admit(second))
}

func TestFence_AdmitSingleDispatch(t *testing.T) {
	f := NewFence()

	seq := f.Issue()
	assert.True(t, f.Admit(seq))

	// Still current until another dispatch happens.
	assert.True(t, f.Admit(seq))

	f.Issue()
	assert.False(t, f.Admit(seq))
}

func TestFence_ConcurrentIssueIsMonotonic(t *testing.T) {
	f := NewFence()

	const n = 100
	var wg sync.WaitGroup
	seqs := make([]uint64, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seqs[i] = f.Issue()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, s := range seqs {
		assert.False(t, seen[s], "duplicate sequence %d", s)
		seen[s] = true
	}
	assert.Equal(t, uint64(n), f.Latest())
}
