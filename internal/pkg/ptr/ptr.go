package ptr

func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value, or the zero value for nil.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NonEmpty returns nil for the empty string.
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
