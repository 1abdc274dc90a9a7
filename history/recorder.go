package history

// Recorder is the interface for persisting and querying jumps.
type Recorder interface {
	Record(jump Jump)
	Recent(limit int) ([]Jump, error)
	Close() error
}

// nopRecorder is used when history is disabled in config.
type nopRecorder struct{}

// NopRecorder returns a Recorder that discards all jumps.
func NopRecorder() Recorder {
	return &nopRecorder{}
}

func (n *nopRecorder) Record(_ Jump) {}

func (n *nopRecorder) Recent(_ int) ([]Jump, error) {
	return nil, nil
}

func (n *nopRecorder) Close() error {
	return nil
}
