package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncPetSubmitted is a no-op.
func (n *NoopRecorder) IncPetSubmitted() {}

// IncPetUpdated is a no-op.
func (n *NoopRecorder) IncPetUpdated() {}

// IncPetDeleted is a no-op.
func (n *NoopRecorder) IncPetDeleted() {}

// IncFormSubmitted is a no-op.
func (n *NoopRecorder) IncFormSubmitted() {}

// IncNotification is a no-op.
func (n *NoopRecorder) IncNotification(status string) {}
