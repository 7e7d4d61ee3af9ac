// Package jsengine executes code snippets on the dop251/goja ECMAScript
// interpreter, implementing the code.Engine contract.
//
// Each execution builds a throwaway VM whose global scope is populated
// with exactly the capability namespaces (tools, agents, skills), the log
// function, and the context value. Capability calls bridge synchronously
// into the host on the VM goroutine, so promises settle in initiation
// order. The VM is interrupted when the context deadline expires, so a
// timed-out run is preempted instead of lingering in the background.
package jsengine
