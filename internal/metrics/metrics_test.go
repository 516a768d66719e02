package metrics

import (
	"errors"
	"testing"
)

func TestRecordAndRead(t *testing.T) {
	Reset()
	RecordInitialize(nil)
	RecordInitialize(errors.New("boom"))
	RecordPHS(nil)
	RecordPHS(nil)
	RecordTeardown(nil)

	snap := Read()
	if snap.InitializeCalls != 2 || snap.InitializeErrors != 1 {
		t.Fatalf("unexpected initialize counters: %+v", snap)
	}
	if snap.PHSCalls != 2 || snap.PHSErrors != 0 {
		t.Fatalf("unexpected phs counters: %+v", snap)
	}
	if snap.TeardownCalls != 1 || snap.TeardownErrors != 0 {
		t.Fatalf("unexpected teardown counters: %+v", snap)
	}
}
