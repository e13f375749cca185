package internal

import "slices"

// DepSet holds the effects subscribed to a single (target, key) pair, in subscription order.
type DepSet struct {
	effects []*Effect
	index   map[*Effect]struct{}
}

func NewDepSet() *DepSet {
	return &DepSet{
		index: make(map[*Effect]struct{}),
	}
}

// Add inserts e and reports whether it was not already present.
func (d *DepSet) Add(e *Effect) bool {
	if _, ok := d.index[e]; ok {
		return false
	}

	d.index[e] = struct{}{}
	d.effects = append(d.effects, e)
	return true
}

func (d *DepSet) Remove(e *Effect) {
	if _, ok := d.index[e]; !ok {
		return
	}

	delete(d.index, e)
	if i := slices.Index(d.effects, e); i != -1 {
		d.effects = slices.Delete(d.effects, i, i+1)
	}
}

func (d *DepSet) Has(e *Effect) bool {
	_, ok := d.index[e]
	return ok
}

func (d *DepSet) Len() int {
	return len(d.effects)
}

// Snapshot copies the subscribers, skipping the given effect.
func (d *DepSet) Snapshot(skip *Effect) []*Effect {
	effects := make([]*Effect, 0, len(d.effects))
	for _, e := range d.effects {
		if e != skip {
			effects = append(effects, e)
		}
	}

	return effects
}
