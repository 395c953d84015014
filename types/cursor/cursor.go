// Package cursor provides a forward-only cursor over an argument list which hands out each
// item together with its absolute index and which can roll back consumed items one at a time.
package cursor

import (
	"errors"

	"github.com/ef-ds/deque"
)

var (
	// ErrExhausted is the panic value of PopFront on an empty Cursor
	ErrExhausted = errors.New("no items remaining in cursor")
	// ErrAtOriginalPosition is the panic value of Undo when nothing has been consumed
	ErrAtOriginalPosition = errors.New("cannot undo: cursor is at its original position")
	// ErrInvalidOffset is the panic value of New when the offset lies outside the item list
	ErrInvalidOffset = errors.New("offset out of range")
)

// Entry is an item handed out by the Cursor along with its index in the original list
type Entry struct {
	Value string
	Index int
}

// Cursor pops items from the front only. It is not possible to add items or to access them
// out of order. Pops can be undone up to the offset given to New.
type Cursor struct {
	pending  deque.Deque
	consumed []Entry
	count    int
}

// New creates a Cursor over items starting at offset. New panics with ErrInvalidOffset
// when offset is negative or greater than len(items).
func New(items []string, offset int) *Cursor {
	if offset < 0 || offset > len(items) {
		panic(ErrInvalidOffset)
	}

	c := &Cursor{
		count:    len(items) - offset,
		consumed: make([]Entry, 0, len(items)-offset),
	}
	for i := offset; i < len(items); i++ {
		c.pending.PushBack(Entry{Value: items[i], Index: i})
	}

	return c
}

// Count returns the original number of items - it never changes after construction
func (c *Cursor) Count() int {
	return c.count
}

// Remaining returns the number of items which can still be popped
func (c *Cursor) Remaining() int {
	return c.pending.Len()
}

// Empty is true when no items remain
func (c *Cursor) Empty() bool {
	return c.pending.Len() == 0
}

// Pos returns the number of items consumed since construction
func (c *Cursor) Pos() int {
	return len(c.consumed)
}

// PopFront removes the next item and returns it with its absolute index.
// It panics with ErrExhausted when the Cursor is empty.
func (c *Cursor) PopFront() (string, int) {
	v, ok := c.pending.PopFront()
	if !ok {
		panic(ErrExhausted)
	}
	e := v.(Entry)
	c.consumed = append(c.consumed, e)

	return e.Value, e.Index
}

// Undo reverses the last PopFront. It panics with ErrAtOriginalPosition when every pop
// has already been undone.
func (c *Cursor) Undo() {
	n := len(c.consumed)
	if n == 0 {
		panic(ErrAtOriginalPosition)
	}
	c.pending.PushFront(c.consumed[n-1])
	c.consumed = c.consumed[:n-1]
}

// Rest returns the entries which have not been consumed yet without consuming them
func (c *Cursor) Rest() []Entry {
	rest := make([]Entry, 0, c.pending.Len())
	for c.pending.Len() > 0 {
		v, _ := c.pending.PopFront()
		rest = append(rest, v.(Entry))
	}
	for _, e := range rest {
		c.pending.PushBack(e)
	}

	return rest
}
