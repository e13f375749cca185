package internal

type Batcher struct {
	// each nested batch increases the depth by 1
	// if depth > 0, triggered effects are held until the outermost batch is complete
	depth int

	pending []*Effect
	queued  map[*Effect]struct{}
}

func NewBatcher() *Batcher {
	return &Batcher{
		depth:  0,
		queued: make(map[*Effect]struct{}),
	}
}

func (b *Batcher) IsBatching() bool {
	return b.depth > 0
}

func (b *Batcher) Enqueue(effects ...*Effect) {
	for _, e := range effects {
		if _, ok := b.queued[e]; !ok {
			b.queued[e] = struct{}{}
			b.pending = append(b.pending, e)
		}
	}
}

func (b *Batcher) Batch(fn func(), onComplete func([]*Effect)) {
	b.depth++
	defer func() {
		b.depth--
		if b.depth == 0 {
			pending := b.pending
			b.pending = nil
			clear(b.queued)

			if onComplete != nil && len(pending) > 0 {
				onComplete(pending)
			}
		}
	}()

	fn()
}

func (r *Runtime) NewBatch(fn func()) {
	r.batcher.Batch(fn, func(effects []*Effect) {
		for _, e := range effects {
			e.dispatch()
		}
	})
}
