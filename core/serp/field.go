package serp

import "encoding/json"

// Presence tells how an optional value was found in the source text.
type Presence int

const (
	// Absent means the marker or label for the value never appeared.
	Absent Presence = iota
	// Empty means the marker appeared but its content could not be used.
	Empty
	// Present means the value was extracted.
	Present
)

// String returns the lower-case name of the presence state.
func (p Presence) String() string {
	switch p {
	case Empty:
		return "empty"
	case Present:
		return "present"
	default:
		return "absent"
	}
}

// Field is an optional value tagged with its [Presence].
// The zero value is Absent.
type Field[T any] struct {
	presence Presence
	value    T
}

// AbsentField returns a Field that was never found.
func AbsentField[T any]() Field[T] {
	return Field[T]{}
}

// EmptyField returns a Field whose marker was found but whose content was
// unusable. empty is the value reported by Get, typically an empty slice.
func EmptyField[T any](empty T) Field[T] {
	return Field[T]{presence: Empty, value: empty}
}

// PresentField returns a Field holding v.
func PresentField[T any](v T) Field[T] {
	return Field[T]{presence: Present, value: v}
}

// Presence returns the presence state of the field.
func (f Field[T]) Presence() Presence {
	return f.presence
}

// IsAbsent reports whether the field was never found.
func (f Field[T]) IsAbsent() bool {
	return f.presence == Absent
}

// Get returns the held value. ok is false only when the field is Absent;
// an Empty field returns its empty value with ok set to true.
func (f Field[T]) Get() (value T, ok bool) {
	return f.value, f.presence != Absent
}

// IsZero lets encoding/json omit Absent fields tagged with omitzero.
func (f Field[T]) IsZero() bool {
	return f.presence == Absent
}

// MarshalJSON encodes the held value, or null when the field is Absent.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if f.presence == Absent {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
