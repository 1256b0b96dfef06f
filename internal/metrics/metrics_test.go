package metrics

import "testing"

func TestCounters_RecordCompress(t *testing.T) {
	var c Counters
	c.RecordCompress(100, 40, 12)
	c.RecordCompress(200, 80, 20)

	if got := c.CompressCalls.Load(); got != 2 {
		t.Fatalf("CompressCalls = %d, want 2", got)
	}
	if got := c.BytesIn.Load(); got != 300 {
		t.Fatalf("BytesIn = %d, want 300", got)
	}
	if got := c.BytesOut.Load(); got != 120 {
		t.Fatalf("BytesOut = %d, want 120", got)
	}
	if got := c.CodebookSymbols.Load(); got != 32 {
		t.Fatalf("CodebookSymbols = %d, want 32", got)
	}
}

func TestCounters_RecordDecompress(t *testing.T) {
	var c Counters
	c.RecordDecompress(40, 100)
	if got := c.DecompressCalls.Load(); got != 1 {
		t.Fatalf("DecompressCalls = %d, want 1", got)
	}
	if got := c.BytesIn.Load(); got != 40 {
		t.Fatalf("BytesIn = %d, want 40", got)
	}
	if got := c.BytesOut.Load(); got != 100 {
		t.Fatalf("BytesOut = %d, want 100", got)
	}
}

func TestCounters_LogSummary_NilLoggerDoesNotPanic(t *testing.T) {
	var c Counters
	c.RecordCompress(1, 1, 1)
	c.LogSummary(nil)
}
