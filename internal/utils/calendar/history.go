package calendar

import (
	"slices"
	"time"
)

// History stores a chronological series of values, each associated with a specific day.
// Days are unique and the series is always sorted.
type History[T any] struct {
	days   []time.Time
	values []T
}

// NewHistory returns a History holding the given points. Later points overwrite
// earlier ones on the same day. The input slices are not modified.
func NewHistory[T any](days []time.Time, values []T) *History[T] {
	h := &History[T]{}
	for i := range days {
		h.Append(days[i], values[i])
	}
	return h
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append adds a point to the history. An existing value on that day is overwritten.
func (h *History[T]) Append(on time.Time, v T) *History[T] {
	on = Day(on)
	i, found := slices.BinarySearchFunc(h.days, on, func(d, t time.Time) int { return d.Compare(t) })
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns the zero value and false when there is no point on or before day.
func (h *History[T]) ValueAsOf(day time.Time) (T, bool) {
	day = Day(day)
	i, found := slices.BinarySearchFunc(h.days, day, func(d, t time.Time) int { return d.Compare(t) })
	if found {
		return h.values[i], true
	}
	if i == 0 {
		var zero T
		return zero, false
	}
	return h.values[i-1], true
}
