package api

// mapResult converts a decoded payload into the value callers see.
// f runs only for successful results; failures keep the zero value of B.
func mapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	out := Result[B]{
		OK:      r.OK,
		Status:  r.Status,
		Message: r.Message,
		Cookies: r.Cookies,
	}
	if r.OK {
		out.Value = f(r.Value)
	}
	return out
}

// orEmpty returns s, or a non-nil empty slice when s is nil
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
