// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Listing lifecycle metrics
	IncPetSubmitted()
	IncPetUpdated()
	IncPetDeleted()

	// Adoption form metrics
	IncFormSubmitted()

	// Notification metrics. status is "sent" or "failed".
	IncNotification(status string)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
