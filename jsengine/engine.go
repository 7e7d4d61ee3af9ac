package jsengine

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dop251/goja"

	"github.com/jonwraymond/toolscript/code"
)

// Engine runs snippets on an embedded ECMAScript interpreter. The zero
// value is ready to use; Execute builds a fresh VM per call, so a single
// Engine is safe for concurrent use.
type Engine struct{}

var _ code.Engine = (*Engine)(nil)

// New creates a new Engine.
func New() *Engine {
	return &Engine{}
}

const (
	sourceName = "code.js"

	// The snippet is compiled as the body of an async arrow function so
	// that top-level return and await work. The prefix occupies one line
	// of the compiled unit; syntax error positions are shifted back by
	// one to match the snippet as the author wrote it.
	sourcePrefix = "(async () => {\n"
	sourceSuffix = "\n})()"
)

// Execute compiles and runs a single snippet against the environment's
// bindings. Snippet outcomes, including syntax errors, thrown values, and
// deadline expiry, are reported inside the Result; the error return is
// reserved for failures of the engine itself.
func (e *Engine) Execute(ctx context.Context, params code.ExecuteParams, env code.Env) (code.Result, error) {
	prog, err := goja.Compile(sourceName, sourcePrefix+params.Code+sourceSuffix, false)
	if err != nil {
		return failure(compileError(err).Error()), nil
	}

	vm := goja.New()
	if err := installGlobals(vm, ctx, env); err != nil {
		return code.Result{}, fmt.Errorf("installing globals: %w", err)
	}

	// Preempt the interpreter at the deadline. A late Interrupt on a VM
	// that already finished is harmless since the VM is discarded.
	stop := context.AfterFunc(ctx, func() {
		vm.Interrupt(ctx.Err())
	})
	defer stop()

	value, err := vm.RunProgram(prog)
	if err != nil {
		var interrupted *goja.InterruptedError
		if errors.As(err, &interrupted) {
			return failure(deadlineMessage(ctx, params)), nil
		}
		var exception *goja.Exception
		if errors.As(err, &exception) {
			return failure(thrownMessage(exception.Value())), nil
		}
		return failure(err.Error()), nil
	}

	promise, ok := value.Export().(*goja.Promise)
	if !ok {
		return code.Result{}, fmt.Errorf("code unit did not evaluate to a promise")
	}

	switch promise.State() {
	case goja.PromiseStateFulfilled:
		return code.Result{Success: true, Value: exportValue(promise.Result())}, nil
	case goja.PromiseStateRejected:
		return failure(thrownMessage(promise.Result())), nil
	default:
		// The snippet awaits something that will never settle. Without a
		// deadline that would mean waiting forever, so report it; with
		// one, wait it out and report the expiry.
		if ctx.Done() == nil {
			return failure("execution suspended on a promise that never settles"), nil
		}
		<-ctx.Done()
		return failure(deadlineMessage(ctx, params)), nil
	}
}

func failure(msg string) code.Result {
	return code.Result{Success: false, Error: msg}
}

func deadlineMessage(ctx context.Context, params code.ExecuteParams) string {
	if errors.Is(ctx.Err(), context.Canceled) {
		return "execution canceled"
	}
	if params.Timeout > 0 {
		return fmt.Sprintf("execution timed out after %dms", params.Timeout.Milliseconds())
	}
	return "execution timed out"
}

// thrownMessage renders a thrown or rejected value the way a catch block
// would read it: the message property when present, the string form
// otherwise.
func thrownMessage(v goja.Value) string {
	if v == nil {
		return "unknown error"
	}
	if obj, ok := v.(*goja.Object); ok {
		if msg := obj.Get("message"); msg != nil && !goja.IsUndefined(msg) {
			if s := msg.String(); s != "" {
				return s
			}
		}
	}
	return v.String()
}

func exportValue(v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	return v.Export()
}

var syntaxLoc = regexp.MustCompile(`Line (\d+):(\d+)\s*`)

// compileError converts a goja compilation failure into a CodeError with
// positions relative to the snippet rather than the compiled unit.
func compileError(err error) *code.CodeError {
	raw := strings.TrimSpace(err.Error())
	raw = strings.TrimPrefix(raw, "SyntaxError: ")
	raw = strings.TrimPrefix(raw, sourceName+": ")

	ce := &code.CodeError{Message: raw, Err: err}
	m := syntaxLoc.FindStringSubmatchIndex(raw)
	if m == nil {
		return ce
	}
	line, _ := strconv.Atoi(raw[m[2]:m[3]])
	col, _ := strconv.Atoi(raw[m[4]:m[5]])
	if line > 1 {
		line--
	}
	ce.Line = line
	ce.Column = col
	ce.Message = strings.TrimSpace(raw[:m[0]] + raw[m[1]:])
	return ce
}
