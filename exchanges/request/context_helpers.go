package request

import "context"

type (
	verboseKey         struct{}
	delayNotAllowedKey struct{}
)

// WithVerbose marks a single request for verbose logging without enabling it
// for the whole client
func WithVerbose(ctx context.Context) context.Context {
	return context.WithValue(ctx, verboseKey{}, true)
}

// IsVerbose reports whether a request is logged verbosely, either through
// the item setting or a context marked by WithVerbose
func IsVerbose(ctx context.Context, verbose bool) bool {
	if verbose {
		return true
	}
	v, _ := ctx.Value(verboseKey{}).(bool)
	return v
}

// WithDelayNotAllowed makes requests fail with ErrDelayNotAllowed when the
// limiter would otherwise block
func WithDelayNotAllowed(ctx context.Context) context.Context {
	return context.WithValue(ctx, delayNotAllowedKey{}, true)
}

func hasDelayNotAllowed(ctx context.Context) bool {
	v, _ := ctx.Value(delayNotAllowedKey{}).(bool)
	return v
}
