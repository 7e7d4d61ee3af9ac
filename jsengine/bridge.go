package jsengine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dop251/goja"

	"github.com/jonwraymond/toolscript/code"
)

// installGlobals populates the VM's global scope. The snippet sees the
// three capability namespaces, the log function, and the context value,
// and nothing else of the host.
func installGlobals(vm *goja.Runtime, ctx context.Context, env code.Env) error {
	tools, err := namespaceObject(vm, ctx, env.Bindings.Tools, toolArgs)
	if err != nil {
		return err
	}
	agents, err := namespaceObject(vm, ctx, env.Bindings.Agents, agentArgs)
	if err != nil {
		return err
	}
	skills, err := namespaceObject(vm, ctx, env.Bindings.Skills, skillArgs)
	if err != nil {
		return err
	}
	ecObj, err := contextObject(vm, env.Context)
	if err != nil {
		return err
	}

	globals := map[string]any{
		"tools":   tools,
		"agents":  agents,
		"skills":  skills,
		"log":     logFunc(env.Recorder),
		"context": ecObj,
	}
	for name, value := range globals {
		if err := vm.Set(name, value); err != nil {
			return fmt.Errorf("setting global %q: %w", name, err)
		}
	}
	return nil
}

// argsFunc converts the JS call arguments of one capability flavor into
// the argument map handed to the binding.
type argsFunc func(call goja.FunctionCall) (map[string]any, error)

func namespaceObject(vm *goja.Runtime, ctx context.Context, bindings map[string]*code.Binding, argsFn argsFunc) (*goja.Object, error) {
	obj := vm.NewObject()
	for name, b := range bindings {
		if err := obj.Set(name, capabilityFunc(vm, ctx, b, argsFn)); err != nil {
			return nil, fmt.Errorf("binding %q: %w", name, err)
		}
	}
	return obj, nil
}

// capabilityFunc bridges one binding into an async JS function. The host
// call runs synchronously on the VM goroutine, so the returned promise is
// already settled when the call expression evaluates; awaited calls
// therefore settle in initiation order.
func capabilityFunc(vm *goja.Runtime, ctx context.Context, b *code.Binding, argsFn argsFunc) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		promise, resolve, reject := vm.NewPromise()
		args, err := argsFn(call)
		if err != nil {
			// Malformed arguments never reach the binding, so they do
			// not consume a call slot or leave a trace record.
			reject(vm.NewTypeError(err.Error()))
			return vm.ToValue(promise)
		}
		out, err := b.Invoke(ctx, args)
		if err != nil {
			reject(vm.NewGoError(err))
			return vm.ToValue(promise)
		}
		resolve(vm.ToValue(out))
		return vm.ToValue(promise)
	}
}

// toolArgs accepts a single optional object argument.
func toolArgs(call goja.FunctionCall) (map[string]any, error) {
	v := call.Argument(0)
	if goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, nil
	}
	if m, ok := v.Export().(map[string]any); ok {
		return m, nil
	}
	return nil, fmt.Errorf("capability arguments must be an object")
}

// agentArgs accepts a prompt and an optional settings object.
func agentArgs(call goja.FunctionCall) (map[string]any, error) {
	args := map[string]any{}
	if prompt := call.Argument(0); !goja.IsUndefined(prompt) {
		args["prompt"] = prompt.Export()
	}
	if opts := call.Argument(1); !goja.IsUndefined(opts) && !goja.IsNull(opts) {
		args["options"] = opts.Export()
	}
	return args, nil
}

// skillArgs accepts no arguments.
func skillArgs(goja.FunctionCall) (map[string]any, error) {
	return nil, nil
}

// logFunc records one log line per call. String arguments are recorded
// verbatim, other values are JSON-encoded, and multiple arguments join
// with a single space.
func logFunc(rec *code.Recorder) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, renderLogValue(arg))
		}
		rec.AppendLog(strings.Join(parts, " "))
		return goja.Undefined()
	}
}

func renderLogValue(v goja.Value) string {
	if v == nil || goja.IsUndefined(v) {
		return "undefined"
	}
	if goja.IsNull(v) {
		return "null"
	}
	exported := v.Export()
	if s, ok := exported.(string); ok {
		return s
	}
	if data, err := json.Marshal(exported); err == nil {
		return string(data)
	}
	return v.String()
}

// contextObject exposes the request identity to the snippet. The values
// are copies; mutating them from code has no effect on the execution.
func contextObject(vm *goja.Runtime, ec code.Context) (*goja.Object, error) {
	fields := map[string]string{
		"sessionID":  ec.SessionID,
		"messageID":  ec.MessageID,
		"providerID": ec.ProviderID,
		"modelID":    ec.ModelID,
		"agent":      ec.Agent,
		"directory":  ec.Directory,
	}
	obj := vm.NewObject()
	for key, value := range fields {
		if err := obj.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting context field %q: %w", key, err)
		}
	}
	return obj, nil
}
