// Package redis records loop events in a Redis stream.
package redis
