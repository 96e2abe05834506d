package tui

// Result is the outcome of a prompt: either a selected value or a cancellation
type Result[T any] struct {
	value    T
	selected bool
}

// Selected wraps a value the user chose or entered
func Selected[T any](value T) Result[T] {
	return Result[T]{value: value, selected: true}
}

// Cancelled reports that the user interrupted or dismissed the prompt
func Cancelled[T any]() Result[T] {
	return Result[T]{}
}

// Value returns the selected value and true, or the zero value and false when cancelled
func (r Result[T]) Value() (T, bool) {
	return r.value, r.selected
}

// IsCancelled reports whether the prompt was cancelled
func (r Result[T]) IsCancelled() bool {
	return !r.selected
}
