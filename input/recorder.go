package input

import "sync"

// Recorder is a Dispatcher that keeps every submitted batch in memory instead
// of sending it. It applies the same preconditions and encoding as
// SystemDispatcher, which makes it usable for tests and dry runs.
type Recorder struct {
	// Trace, when set, receives each encoded batch.
	Trace func(batch []byte)

	mu      sync.Mutex
	batches [][]Record
	limit   int
	limited bool
}

// NewRecorder returns an empty Recorder that accepts everything.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// AcceptOnly makes later dispatches report that only n records of each batch
// were accepted, simulating a partially blocked SendInput.
func (r *Recorder) AcceptOnly(n int) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = n
	r.limited = true
	return r
}

// Dispatch records a copy of records.
func (r *Recorder) Dispatch(records []Record) error {
	if err := validateBatch(records); err != nil {
		return err
	}
	buf, err := NativeLayout.Encode(records)
	if err != nil {
		return err
	}
	if r.Trace != nil {
		r.Trace(buf)
	}

	batch := make([]Record, len(records))
	copy(batch, records)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, batch)
	if r.limited && r.limit < len(records) {
		return &DeliveryError{Submitted: len(records), Accepted: r.limit}
	}
	return nil
}

// Batches returns every recorded batch in dispatch order.
func (r *Recorder) Batches() [][]Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([][]Record, len(r.batches))
	copy(out, r.batches)
	return out
}

// Records returns all recorded records flattened in dispatch order.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Record
	for _, b := range r.batches {
		out = append(out, b...)
	}
	return out
}

// Reset forgets every recorded batch.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = nil
}
