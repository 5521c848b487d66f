package naming

import (
	"container/heap"
	"fmt"

	"github.com/google/uuid"

	"tarski/internal/term"
)

// source distinguishes a hint-sourced name from a generator-sourced one.
// Only generator-sourced names are returned to the recycler on discard — a
// caller-supplied hint is never reused for anything else.
type source int

const (
	sourceHint source = iota
	sourceGenerated
)

// nameHeap is a min-heap of generator-sourced names waiting to be reused,
// ordered so the lexicographically smallest free name is handed out first.
type nameHeap []string

func (h nameHeap) Len() int { return len(h) }
func (h nameHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h nameHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nameHeap) Push(x interface{}) { *h = append(*h, x.(string)) }
func (h *nameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// FreeAllocator is the process-wide display-name allocator for free terms:
// it is owned by an Engine and passed into the pretty-printer. It is not
// safe for concurrent use.
type FreeAllocator struct {
	gen *alphabet
	assigned map[uuid.UUID]string
	usedNames map[string]source
	freeNames nameHeap
	discarded map[uuid.UUID]bool
}

// NewFreeAllocator returns an allocator with nothing assigned yet.
func NewFreeAllocator() *FreeAllocator {
	return &FreeAllocator{
		gen: freeAlphabet(),
		assigned: make(map[uuid.UUID]string),
		usedNames: make(map[string]source),
		discarded: make(map[uuid.UUID]bool),
	}
}

// NameOf returns the display name for t, assigning one on first use.
// Assignment order: the term's hint if available and not already in
// use; otherwise the smallest recycled generator name; otherwise the next
// fresh name from the generator. It panics if t was already discarded —
// displaying a discarded free term is a programmer error.
func (a *FreeAllocator) NameOf(t term.FreeTerm) string {
	if a.discarded[t.ID()] {
		panic(fmt.Sprintf("naming: free term %s was discarded and cannot be displayed again", t.ID()))
	}
	if name, ok := a.assigned[t.ID()]; ok {
		return name
	}

	var name string
	var src source
	if hint, ok := t.Hint(); ok {
		if _, taken := a.usedNames[hint]; !taken {
			name, src = hint, sourceHint
			a.removeFromFreeNames(hint)
		}
	}
	if name == "" {
		if len(a.freeNames) > 0 {
			name = heap.Pop(&a.freeNames).(string)
			src = sourceGenerated
		} else {
			for {
				candidate := a.gen.Next()
				if _, taken := a.usedNames[candidate]; !taken {
					name = candidate
					break
				}
			}
			src = sourceGenerated
		}
	}

	a.assigned[t.ID()] = name
	a.usedNames[name] = src
	return name
}

// removeFromFreeNames drops a name from the recycler heap, if present, so a
// hint can claim it without leaving a stale duplicate entry.
func (a *FreeAllocator) removeFromFreeNames(name string) {
	for i, n := range a.freeNames {
		if n == name {
			heap.Remove(&a.freeNames, i)
			return
		}
	}
}

// Discard releases t's name. Generator-sourced names return to the recycler;
// hint-sourced names are retired and never reused. Discarding a
// never-displayed term is a no-op other than marking it discarded, matching
// how a context's locally introduced free terms are invalidated in bulk on
// direct_proof even if some were never printed. Discarding an
// already-discarded term panics.
func (a *FreeAllocator) Discard(t term.FreeTerm) {
	if a.discarded[t.ID()] {
		panic(fmt.Sprintf("naming: free term %s discarded twice", t.ID()))
	}
	a.discarded[t.ID()] = true
	name, ok := a.assigned[t.ID()]
	if !ok {
		return
	}
	src := a.usedNames[name]
	delete(a.usedNames, name)
	delete(a.assigned, t.ID())
	if src == sourceGenerated {
		heap.Push(&a.freeNames, name)
	}
}
