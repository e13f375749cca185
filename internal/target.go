package internal

import "sync/atomic"

var targetIDCounter atomic.Uint64

// Target is the identity of a reactive object in the dependency store.
// It owns the object's subscriber sets, so they live exactly as long as the object does.
type Target struct {
	id   uint64
	kind string

	props propertyMap
}

func NewTarget(kind string) *Target {
	return &Target{
		id:   targetIDCounter.Add(1),
		kind: kind,
	}
}

func (t *Target) ID() uint64 {
	return t.id
}

func (t *Target) Kind() string {
	return t.kind
}
