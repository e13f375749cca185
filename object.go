package reactive

import "github.com/AnatoleLucet/reactive/internal"

// Object tracks reads and writes of the keys of a plain map.
// Values are stored as-is, nested maps or structs are not made reactive.
type Object[K comparable, V any] struct {
	runtime *internal.Runtime
	target  *internal.Target

	values map[K]V
}

// MakeReactive wraps target on the current goroutine's engine.
// All reads and writes should go through the returned object.
func MakeReactive[K comparable, V any](target map[K]V) *Object[K, V] {
	return MakeReactiveWith(Default(), target)
}

func MakeReactiveWith[K comparable, V any](engine *Engine, target map[K]V) *Object[K, V] {
	if target == nil {
		target = make(map[K]V)
	}

	return &Object[K, V]{
		runtime: engine.runtime,
		target:  internal.NewTarget("object"),
		values:  target,
	}
}

// Get reads key, subscribing the running effect to it.
func (o *Object[K, V]) Get(key K) V {
	o.runtime.Track(o.target, key)
	return o.values[key]
}

// Lookup is Get that also reports whether key is present.
func (o *Object[K, V]) Lookup(key K) (V, bool) {
	o.runtime.Track(o.target, key)
	v, ok := o.values[key]
	return v, ok
}

// Set stores v under key and notifies the effects that read it.
func (o *Object[K, V]) Set(key K, v V) {
	o.values[key] = v
	o.runtime.Trigger(o.target, key)
}

// Peek reads key without subscribing.
func (o *Object[K, V]) Peek(key K) V {
	return o.values[key]
}

// Raw returns the wrapped map. Writing to it directly notifies nobody.
func (o *Object[K, V]) Raw() map[K]V {
	return o.values
}
