package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceOptional keeps current unless the patch carries a value for an optional field.
func CoalesceOptional[T any](next, current *T) *T {
	if next != nil {
		return next
	}
	return current
}
