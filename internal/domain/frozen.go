// internal/domain/frozen.go
package domain

// Cloner is implemented by records that can duplicate themselves, owned
// fields included.
type Cloner[T any] interface {
	Clone() T
}

// Frozen holds a value that can no longer be mutated through this binding.
// Mutability belongs to the whole value: there is no way to unfreeze a single
// field. Freeze and Get both clone, so neither the caller's original nor any
// value handed out by Get shares state with the frozen one; moving out of a
// copy leaves the frozen value readable.
type Frozen[T Cloner[T]] struct {
	v T
}

// Freeze wraps a clone of v.
func Freeze[T Cloner[T]](v T) Frozen[T] {
	return Frozen[T]{v: v.Clone()}
}

// Get returns a clone of the frozen value.
func (f Frozen[T]) Get() T {
	return f.v.Clone()
}
