package internal

// Scheduler receives effects whose dependencies changed instead of them running inline.
type Scheduler interface {
	Schedule(e *Effect)
}

type SchedulerFunc func(e *Effect)

func (f SchedulerFunc) Schedule(e *Effect) {
	f(e)
}

type inlineScheduler struct{}

func (inlineScheduler) Schedule(e *Effect) {
	e.Run()
}

// Inline runs effects as soon as they are triggered.
var Inline Scheduler = inlineScheduler{}
