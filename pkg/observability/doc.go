// Package observability turns loop lifecycle events into Prometheus metrics and log records.
// Both are plain domain.LifecycleHooks and can be combined with domain.ComposeHooks.
package observability
