package code

import (
	"context"
	"testing"

	"github.com/jonwraymond/toolscript/catalog"
)

func TestBindingContract_NilArgsRecorded(t *testing.T) {
	rec := NewRecorder(0)
	b := NewBindings(catalog.Catalog{
		Tools: []catalog.Descriptor{{Kind: catalog.KindTool, Name: "noop"}},
	}, Context{Client: &mockClient{}}, rec)

	_, _ = b.Tools["noop"].Invoke(context.Background(), nil)
	records := rec.ToolCalls()
	if len(records) != 1 {
		t.Fatalf("expected 1 tool call record, got %d", len(records))
	}
	if records[0].Args != nil {
		t.Fatalf("expected nil args recorded, got %v", records[0].Args)
	}
}

func TestExecutorContract_SnippetFailureIsNotAnError(t *testing.T) {
	engine := &mockEngine{executeResult: Result{Success: false, Error: "boom"}}
	exec, err := NewDefaultExecutor(Config{Engine: engine})
	if err != nil {
		t.Fatalf("NewDefaultExecutor failed: %v", err)
	}

	result, err := exec.Execute(context.Background(), pinnedContext(&mockClient{}), ExecuteParams{Code: "throw"})
	if err != nil {
		t.Fatalf("snippet failure must not surface as Go error, got %v", err)
	}
	if result.Success {
		t.Fatal("expected Success false")
	}
	if result.Error != "boom" {
		t.Fatalf("expected Error 'boom', got %q", result.Error)
	}
}

func TestExecutorContract_TraceSurvivesFailure(t *testing.T) {
	client := &mockClient{}
	engine := &failingLoggingEngine{}
	exec, err := NewDefaultExecutor(Config{Engine: engine})
	if err != nil {
		t.Fatalf("NewDefaultExecutor failed: %v", err)
	}

	result, err := exec.Execute(context.Background(), pinnedContext(client), ExecuteParams{Code: "code"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("expected Success false")
	}
	if len(result.Logs) != 1 || result.Logs[0] != "about to fail" {
		t.Fatalf("expected logs preserved on failure, got %v", result.Logs)
	}
}

// failingLoggingEngine logs one line and then reports a snippet failure.
type failingLoggingEngine struct{}

func (e *failingLoggingEngine) Execute(_ context.Context, _ ExecuteParams, env Env) (Result, error) {
	env.Recorder.AppendLog("about to fail")
	return Result{Success: false, Error: "snippet raised"}, nil
}
