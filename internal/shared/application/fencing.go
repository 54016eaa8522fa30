// Package application provides cross-context application services.
package application

import "sync/atomic"

// Fence orders overlapping fetches for the same resource. Each dispatch
// takes a sequence number; a response may only be applied if no newer
// dispatch has been issued since, so a slow fetch can never overwrite
// state produced by a later one.
type Fence struct {
	issued atomic.Uint64
}

// NewFence creates a fence.
func NewFence() *Fence {
	return &Fence{}
}

// Issue reserves the next sequence number for a fetch about to be
// dispatched.
func (f *Fence) Issue() uint64 {
	return f.issued.Add(1)
}

// Admit reports whether a response carrying seq is still current.
// A response is stale as soon as any newer fetch has been dispatched.
func (f *Fence) Admit(seq uint64) bool {
	return seq == f.issued.Load()
}

// Latest returns the most recently issued sequence number.
func (f *Fence) Latest() uint64 {
	return f.issued.Load()
}
