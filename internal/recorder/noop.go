package recorder

import "time"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSweepRow(_ *SweepRow) error { return nil }

func (n *NoopRecorder) RecordSignal(_ *SignalEvent) error { return nil }

func (n *NoopRecorder) SignalsSince(_ time.Time) ([]SignalEvent, error) { return nil, nil }

func (n *NoopRecorder) Close() error { return nil }
