package ingest

import "testing"

func TestTracker(t *testing.T) {
	tr := NewTracker()

	if tr.Seen("R1") {
		t.Error("fresh tracker should not know R1")
	}

	tr.Record("R1")
	if !tr.Seen("R1") {
		t.Error("R1 should be seen after Record")
	}
	if tr.Seen("R2") {
		t.Error("R2 was never recorded")
	}
}

func TestTrackerIgnoresEmptyKeys(t *testing.T) {
	tr := NewTracker()

	tr.Record("")
	if tr.Seen("") {
		t.Error("empty keys must never count as duplicates; they fail validation instead")
	}
}
