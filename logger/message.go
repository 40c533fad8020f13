package logger

import "fmt"

// EmptyPlaceholder is emitted in place of an absent message.
const EmptyPlaceholder = "<empty optional>"

// Optional carries a message value that may be absent.
// The zero value is absent.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Optional[T]) resolve() (any, bool) {
	return o.value, o.ok
}

// optional lets describe unwrap any Optional[T] without knowing T.
type optional interface {
	resolve() (any, bool)
}

// describe reduces a message value to the text written on the line.
// It runs when a line is formatted, after the level filter has passed.
// Error and String methods go through fmt, which turns a nil receiver or a
// panicking method into text instead of unwinding into the caller.
func describe(v any) string {
	switch m := v.(type) {
	case nil:
		return EmptyPlaceholder
	case optional:
		inner, ok := m.resolve()
		if !ok {
			return EmptyPlaceholder
		}
		return describe(inner)
	case string:
		return m
	case error, fmt.Stringer:
		return fmt.Sprint(m)
	default:
		return fmt.Sprintf("%+v", m)
	}
}
