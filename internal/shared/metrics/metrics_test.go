package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 || snap.sum != 555 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("each observation belongs to one bucket, got %v", snap.counts)
	}

	var buf bytes.Buffer
	writeHistogram(&buf, "h", "test", snap)
	out := buf.String()
	for _, want := range []string{`h_bucket{le="10"} 1`, `h_bucket{le="100"} 2`, `h_bucket{le="+Inf"} 3`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderIncludesLabeledCounters(t *testing.T) {
	IncEdit("update_contact")
	IncEdit("update_contact")
	IncLoad("missing")
	IncExport("failed")
	ObserveExportDurationMs(120)

	out := Render()
	for _, want := range []string{
		`resume_edits_total{kind="update_contact"} 2`,
		`resume_loads_total{result="missing"} 1`,
		`resume_exports_total{result="failed"} 1`,
		`resume_export_duration_ms_bucket{le="250"} 1`,
		`resume_export_duration_ms_bucket{le="+Inf"} 1`,
		"# TYPE resume_saves_total counter",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
