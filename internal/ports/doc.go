// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Client ports are implemented by outbound adapters and called by the application layer.
// Platform ports (clock, upload policy) are implemented by platform adapters
// and read by the domain through narrower interfaces of its own.
package ports
