package internal

import (
	"errors"
	"fmt"
)

var (
	ErrMaxDepth     = errors.New("reactive: maximum effect depth exceeded")
	ErrHostRejected = errors.New("reactive: microtask host rejected flush")
)

// EffectPanicError carries a value recovered from a panicking effect.
type EffectPanicError struct {
	EffectID   uint64
	EffectName string
	Value      any
}

func (e *EffectPanicError) Error() string {
	if e.EffectName != "" {
		return fmt.Sprintf("reactive: effect %d (%s) panicked: %v", e.EffectID, e.EffectName, e.Value)
	}

	return fmt.Sprintf("reactive: effect %d panicked: %v", e.EffectID, e.Value)
}

func (e *EffectPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
