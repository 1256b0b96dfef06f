// Package metrics tracks lightweight in-process codec counters: bytes
// seen on each side of a compress/decompress call, codebook sizes, and
// call counts. Counters use sync/atomic, the same lock-free counter
// style the teacher package uses for its parallel encoder's progress
// tracking (internal/lossy/encode_parallel.go's nextRow/done/waiters).
//
// This package deliberately does not depend on
// github.com/prometheus/client_golang: none of the pack's example
// repos import it directly (it appears only as an indirect/vendored
// dependency pulled in by something else), so there is no grounded
// usage pattern to imitate. logrus periodic summaries fill the same
// role at the scale this codec operates at.
package metrics

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Counters holds the running totals for one codec instance. The zero
// value is ready to use.
type Counters struct {
	CompressCalls   atomic.Int64
	DecompressCalls atomic.Int64
	BytesIn         atomic.Int64
	BytesOut        atomic.Int64
	CodebookSymbols atomic.Int64
}

// Global is the package-level counter set that manpack.CompressImage
// and manpack.DecompressImage always record into and that cmd/manpack
// reports from. Those functions take no Counters argument, so their
// counts cannot be routed to a separate Counters value.
var Global Counters

// RecordCompress updates the counters for one CompressImage call.
func (c *Counters) RecordCompress(inBytes, outBytes, symbols int) {
	c.CompressCalls.Add(1)
	c.BytesIn.Add(int64(inBytes))
	c.BytesOut.Add(int64(outBytes))
	c.CodebookSymbols.Add(int64(symbols))
}

// RecordDecompress updates the counters for one DecompressImage call.
func (c *Counters) RecordDecompress(inBytes, outBytes int) {
	c.DecompressCalls.Add(1)
	c.BytesIn.Add(int64(inBytes))
	c.BytesOut.Add(int64(outBytes))
}

// LogSummary emits the running totals at info level, in the field
// style the teacher's daemon code uses for structured logrus calls
// (WithFields followed by a short message).
func (c *Counters) LogSummary(log *logrus.Logger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	log.WithFields(logrus.Fields{
		"compress_calls":   c.CompressCalls.Load(),
		"decompress_calls": c.DecompressCalls.Load(),
		"bytes_in":         c.BytesIn.Load(),
		"bytes_out":        c.BytesOut.Load(),
		"codebook_symbols": c.CodebookSymbols.Load(),
	}).Info("manpack: codec counters")
}
