// Package tools invokes the external generation tools the pipeline delegates
// to.
//
// Two invocation modes exist. Command runs a tool as an OS process, resolved
// from the simulation toolkit installation when possible. Entry calls a tool
// through its main(args) entry point inside the current process; the bound
// function may be a pure-Go implementation or an adapter around a tool
// script. Both modes are synchronous, and both surface a failure to the
// caller instead of letting the pipeline continue against missing artifacts.
package tools
