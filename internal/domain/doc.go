// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/activity, domain/calendar,
// domain/validation). This root package holds the sentinel errors and the
// field-level ValidationError used for request-shape failures.
package domain
