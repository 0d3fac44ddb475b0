// SPDX-License-Identifier: MIT

package arrays

// Box returns a []any view holding a copy of every element of s.
// Box(nil) is nil.
func Box[S ~[]E, E any](s S) []any {
	if s == nil {
		return nil
	}
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}

	return out
}

// Unbox converts xs back to a typed slice. Every element must hold exactly
// E; a nil interface counts as a mismatch.
//
// Errors: ErrTypeMismatch.
func Unbox[E any](xs []any) ([]E, error) {
	if xs == nil {
		return nil, nil
	}
	out := make([]E, len(xs))
	for i, x := range xs {
		v, ok := x.(E)
		if !ok {
			return nil, arraysErrorf(opUnbox, ErrTypeMismatch)
		}
		out[i] = v
	}

	return out, nil
}
