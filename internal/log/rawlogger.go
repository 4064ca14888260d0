package log

import (
	"bytes"
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger dumps encoded INPUT arrays exactly as they are handed to the OS.
type RawLogger interface {
	LogBatch(data []byte, recordSize int)
}

type rawLogger struct {
	w   io.Writer
	mu  sync.Mutex
	now func() time.Time
}

// NewRaw creates a RawLogger writing to w. A nil writer discards everything.
func NewRaw(w io.Writer) RawLogger {
	return &rawLogger{w: w, now: time.Now}
}

// LogBatch writes one line per batch: timestamp, record count, byte count and
// a hex dump with records separated by " | ".
func (r *rawLogger) LogBatch(data []byte, recordSize int) {
	if r.w == nil || len(data) == 0 {
		return
	}
	if recordSize <= 0 {
		recordSize = len(data)
	}

	var hexbuf bytes.Buffer
	const hexdigits = "0123456789abcdef"
	for i, b := range data {
		switch {
		case i == 0:
		case i%recordSize == 0:
			hexbuf.WriteString(" | ")
		default:
			hexbuf.WriteByte(' ')
		}
		hexbuf.WriteByte(hexdigits[b>>4])
		hexbuf.WriteByte(hexdigits[b&0x0f])
	}

	line := fmt.Sprintf("%s batch: %d records, %d bytes, hex: %s\n",
		r.now().Format("2006/01/02 15:04:05"),
		len(data)/recordSize,
		len(data),
		hexbuf.String())

	r.mu.Lock()
	_, _ = r.w.Write([]byte(line))
	r.mu.Unlock()
}
