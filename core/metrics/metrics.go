// Package metrics holds the backend-agnostic instrumentation primitives that
// ports such as keepalive.Metrics are built from. Adapters (Prometheus)
// live under adapters/ so the core never imports a metrics backend.
package metrics

// Timer measures one operation. Call ObserveDuration when it completes,
// typically as defer m.CommitDuration().ObserveDuration().
type Timer interface {
	ObserveDuration()
}
