package reactive

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatch(t *testing.T) {
	t.Run("batches multiple writes", func(t *testing.T) {
		log := []string{}

		count := NewCell(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		Batch(func() {
			count.Set(10)
			count.Set(20)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("batches multiple cells", func(t *testing.T) {
		log := []string{}

		count := NewCell(0)
		double := NewCell(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("count %d", count.Get()))
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("double %d", double.Get()))
		})

		Batch(func() {
			count.Set(10)
			double.Set(count.Peek() * 2)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"count 0",
			"double 0",
			"updated",
			"count 10",
			"double 20",
		}, log)
	})

	t.Run("nested batches", func(t *testing.T) {
		log := []string{}

		count := NewCell(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		Batch(func() {
			count.Set(10)
			Batch(func() {
				count.Set(20)
			})
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"changed 0",
			"updated",
			"changed 20",
		}, log)
	})

	t.Run("hands effects to their scheduler", func(t *testing.T) {
		log := []string{}

		host := NewMicrotaskQueue()
		queue := NewJobQueue(host)
		count := NewCell(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		}, WithScheduler(queue))

		Batch(func() {
			count.Set(1)
			count.Set(2)
		})

		assert.Equal(t, 1, queue.Len())
		host.Drain()

		assert.Equal(t, []string{"changed 0", "changed 2"}, log)
	})

	t.Run("panic ends the batch", func(t *testing.T) {
		log := []string{}

		count := NewCell(0)

		NewEffect(func() {
			log = append(log, fmt.Sprintf("changed %d", count.Get()))
		})

		assert.Panics(t, func() {
			Batch(func() {
				count.Set(1)
				panic("oops")
			})
		})

		count.Set(2)

		assert.Equal(t, []string{
			"changed 0",
			"changed 1",
			"changed 2",
		}, log)
	})

	t.Run("engines batch separately", func(t *testing.T) {
		log := []string{}

		a := NewEngine()
		b := NewEngine()
		countA := NewCellWith(a, 0)
		countB := NewCellWith(b, 0)

		a.NewEffect(func() { log = append(log, fmt.Sprintf("a %d", countA.Get())) })
		b.NewEffect(func() { log = append(log, fmt.Sprintf("b %d", countB.Get())) })

		a.Batch(func() {
			countA.Set(1)
			countB.Set(1)
			log = append(log, "updated")
		})

		assert.Equal(t, []string{
			"a 0",
			"b 0",
			"b 1",
			"updated",
			"a 1",
		}, log)
	})
}

func TestUntrack(t *testing.T) {
	t.Run("does not track reads", func(t *testing.T) {
		log := []string{}

		count := NewCell(0)

		NewEffect(func() {
			c := Untrack(count.Get)
			log = append(log, fmt.Sprintf("effect %d", c))
		})

		count.Set(10)

		assert.Equal(t, []string{
			"effect 0",
		}, log)
	})

	t.Run("tracks reads after untrack returns", func(t *testing.T) {
		runs := 0

		a := NewCell(0)
		b := NewCell(0)

		NewEffect(func() {
			Untrack(a.Get)
			b.Get()
			runs++
		})

		a.Set(1)
		b.Set(1)

		assert.Equal(t, 2, runs)
	})

	t.Run("effects created inside untrack still track", func(t *testing.T) {
		log := []string{}

		e := NewEngine()
		count := NewCellWith(e, 0)

		e.Untrack(func() {
			e.NewEffect(func() {
				log = append(log, fmt.Sprintf("effect %d", count.Get()))
			})
		})

		count.Set(1)

		assert.Equal(t, []string{"effect 0", "effect 1"}, log)
	})
}
