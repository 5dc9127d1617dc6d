/*
Package observability turns engine lifecycle events into Prometheus metrics and
structured log lines.

Both helpers return a domain.LifecycleHooks value, so they plug into the
engines through runtime.WithLifecycleHooks. Use Combine to attach several.
*/
package observability
