// Package http serves an introspection API for a running program: health, menus,
// a mermaid graph, dependency diagnostics, Prometheus metrics and an SSE event feed.
package http
