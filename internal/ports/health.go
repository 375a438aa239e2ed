package ports

import "context"

// HealthChecker reports whether one dependency of the service can be relied
// on. The moderation API client and the upload policy implement it.
type HealthChecker interface {
	// Name identifies the dependency in the readiness report, e.g.
	// "moderation-api".
	Name() string

	// HealthCheck returns nil when the dependency is usable. It must return
	// promptly once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and returns its error by name; healthy
	// dependencies map to nil.
	CheckAll(ctx context.Context) map[string]error
}
