package error

// Option configures a CustomError during construction via New().
type Option func(*CustomError)

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *CustomError) { e.cause = cause } }

// WithContext sets the initial context map for the error during New() construction.
// The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(e *CustomError) { e.context = cloneMap(ctx) }
}

// WithContextKV adds a single key/value to the context during New() construction.
func WithContextKV(k string, v any) Option {
	return func(e *CustomError) { e.WithContextKV(k, v) }
}
