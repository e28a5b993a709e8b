// Package fallback provides the try-primary-else-secondary combinator
// shared by the expression normalizer and the docstring dispatcher.
package fallback

// Attempt runs primary and returns its result. If primary reports an
// error the result of secondary is returned instead; the error itself
// is absorbed. Secondary must be total over its inputs.
func Attempt[T any](primary func() (T, error), secondary func() T) T {
	if v, err := primary(); err == nil {
		return v
	}
	return secondary()
}
