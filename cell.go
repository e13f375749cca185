package reactive

import "github.com/AnatoleLucet/reactive/internal"

type cellKey struct{}

// Cell is a single reactive value.
type Cell[T any] struct {
	runtime *internal.Runtime
	target  *internal.Target

	value T
}

func NewCell[T any](initial T) *Cell[T] {
	return NewCellWith(Default(), initial)
}

func NewCellWith[T any](engine *Engine, initial T) *Cell[T] {
	return &Cell[T]{
		runtime: engine.runtime,
		target:  internal.NewTarget("cell"),
		value:   initial,
	}
}

// Get the current value, tracking the dependency if within an effect.
func (c *Cell[T]) Get() T {
	c.runtime.Track(c.target, cellKey{})
	return c.value
}

// Set a new value, notifying the effects that read the cell.
func (c *Cell[T]) Set(v T) {
	c.value = v
	c.runtime.Trigger(c.target, cellKey{})
}

func (c *Cell[T]) Peek() T {
	return c.value
}

// Update sets the cell to fn applied to its current value, without tracking the read.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}
