package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	PetsSubmitted       uint64
	PetsUpdated         uint64
	PetsDeleted         uint64
	FormsSubmitted      uint64
	NotificationsSent   uint64
	NotificationsFailed uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	petsSubmitted       uint64
	petsUpdated         uint64
	petsDeleted         uint64
	formsSubmitted      uint64
	notificationsSent   uint64
	notificationsFailed uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		PetsSubmitted:       atomic.LoadUint64(&m.petsSubmitted),
		PetsUpdated:         atomic.LoadUint64(&m.petsUpdated),
		PetsDeleted:         atomic.LoadUint64(&m.petsDeleted),
		FormsSubmitted:      atomic.LoadUint64(&m.formsSubmitted),
		NotificationsSent:   atomic.LoadUint64(&m.notificationsSent),
		NotificationsFailed: atomic.LoadUint64(&m.notificationsFailed),
	}
}

// IncPetSubmitted increments the submitted-listing counter.
func (m *InMemoryRecorder) IncPetSubmitted() {
	atomic.AddUint64(&m.petsSubmitted, 1)
}

// IncPetUpdated increments the updated-listing counter.
func (m *InMemoryRecorder) IncPetUpdated() {
	atomic.AddUint64(&m.petsUpdated, 1)
}

// IncPetDeleted increments the deleted-listing counter.
func (m *InMemoryRecorder) IncPetDeleted() {
	atomic.AddUint64(&m.petsDeleted, 1)
}

// IncFormSubmitted increments the adoption-form counter.
func (m *InMemoryRecorder) IncFormSubmitted() {
	atomic.AddUint64(&m.formsSubmitted, 1)
}

// IncNotification increments the counter for the given delivery status.
func (m *InMemoryRecorder) IncNotification(status string) {
	switch status {
	case "sent":
		atomic.AddUint64(&m.notificationsSent, 1)
	case "failed":
		atomic.AddUint64(&m.notificationsFailed, 1)
	}
}
