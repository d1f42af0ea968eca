package utils

// Ptr returns the address of a copy of v, for optional request fields such
// as temperature or output token limits.
func Ptr[T any](v T) *T { return &v }
