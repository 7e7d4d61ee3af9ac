package code

import (
	"errors"
	"sync"
	"testing"
)

func TestRecorder_Record_Order(t *testing.T) {
	rec := NewRecorder(0)
	rec.Record(CallRecord{Tool: "first"})
	rec.Record(CallRecord{Tool: "second"})
	rec.Record(CallRecord{Tool: "third"})

	calls := rec.ToolCalls()
	if len(calls) != 3 {
		t.Fatalf("expected 3 records, got %d", len(calls))
	}
	for i, want := range []string{"first", "second", "third"} {
		if calls[i].Tool != want {
			t.Errorf("record %d: expected %q, got %q", i, want, calls[i].Tool)
		}
	}
}

func TestRecorder_AppendLog_Order(t *testing.T) {
	rec := NewRecorder(0)
	rec.AppendLog("a")
	rec.AppendLog("b")
	rec.AppendLog("c")

	logs := rec.Logs()
	if len(logs) != 3 {
		t.Fatalf("expected 3 logs, got %d", len(logs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if logs[i] != want {
			t.Errorf("log %d: expected %q, got %q", i, want, logs[i])
		}
	}
}

func TestRecorder_Reserve_UnderCeiling(t *testing.T) {
	rec := NewRecorder(3)
	for i := 0; i < 3; i++ {
		if err := rec.Reserve(); err != nil {
			t.Fatalf("reserve %d: unexpected error: %v", i, err)
		}
	}
}

func TestRecorder_Reserve_OverCeiling(t *testing.T) {
	rec := NewRecorder(2)
	_ = rec.Reserve()
	_ = rec.Reserve()

	err := rec.Reserve()
	if err == nil {
		t.Fatal("expected error past ceiling")
	}
	if !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("expected ErrLimitExceeded, got %v", err)
	}

	// Later attempts keep failing
	if err := rec.Reserve(); !errors.Is(err, ErrLimitExceeded) {
		t.Errorf("expected ErrLimitExceeded on later attempt, got %v", err)
	}
}

func TestRecorder_Reserve_ZeroMeansUnlimited(t *testing.T) {
	rec := NewRecorder(0)
	for i := 0; i < 500; i++ {
		if err := rec.Reserve(); err != nil {
			t.Fatalf("reserve %d: unexpected error: %v", i, err)
		}
	}
}

func TestRecorder_Record_DeepCopiesArgs(t *testing.T) {
	rec := NewRecorder(0)
	args := map[string]any{
		"name":   "a",
		"nested": map[string]any{"flag": true},
		"items":  []any{1, 2},
	}
	rec.Record(CallRecord{Tool: "tool", Args: args})

	// Mutations after recording must not alter the trace.
	args["name"] = "mutated"
	args["nested"].(map[string]any)["flag"] = false
	args["items"].([]any)[0] = 99

	calls := rec.ToolCalls()
	got := calls[0].Args
	if got["name"] != "a" {
		t.Errorf("expected recorded name 'a', got %v", got["name"])
	}
	if got["nested"].(map[string]any)["flag"] != true {
		t.Errorf("expected recorded nested flag true, got %v", got["nested"])
	}
	if got["items"].([]any)[0] != 1 {
		t.Errorf("expected recorded item 1, got %v", got["items"])
	}
}

func TestRecorder_Record_NilArgs(t *testing.T) {
	rec := NewRecorder(0)
	rec.Record(CallRecord{Tool: "tool"})

	calls := rec.ToolCalls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 record, got %d", len(calls))
	}
	if calls[0].Args != nil {
		t.Errorf("expected nil args recorded, got %v", calls[0].Args)
	}
}

func TestRecorder_Snapshots_NeverNil(t *testing.T) {
	rec := NewRecorder(0)
	if rec.ToolCalls() == nil {
		t.Error("expected non-nil ToolCalls snapshot")
	}
	if rec.Logs() == nil {
		t.Error("expected non-nil Logs snapshot")
	}
}

func TestRecorder_Snapshots_Independent(t *testing.T) {
	rec := NewRecorder(0)
	rec.Record(CallRecord{Tool: "tool"})

	calls := rec.ToolCalls()
	calls[0].Tool = "mutated"

	if rec.ToolCalls()[0].Tool != "tool" {
		t.Error("expected snapshot mutation not to affect recorder state")
	}
}

func TestRecorder_CallCount(t *testing.T) {
	rec := NewRecorder(0)
	if rec.CallCount() != 0 {
		t.Errorf("expected 0 calls, got %d", rec.CallCount())
	}
	rec.Record(CallRecord{Tool: "one"})
	rec.Record(CallRecord{Tool: "two"})
	if rec.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", rec.CallCount())
	}
}

func TestRecorder_ConcurrentAppends(t *testing.T) {
	rec := NewRecorder(0)
	const writers = 20
	const perWriter = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWriter; j++ {
				rec.Record(CallRecord{Tool: "tool"})
				rec.AppendLog("line")
			}
		}()
	}
	wg.Wait()

	if got := rec.CallCount(); got != writers*perWriter {
		t.Errorf("expected %d records, got %d", writers*perWriter, got)
	}
	if got := len(rec.Logs()); got != writers*perWriter {
		t.Errorf("expected %d logs, got %d", writers*perWriter, got)
	}
}
