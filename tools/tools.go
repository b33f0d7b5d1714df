package tools

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Func is the entry-point contract of a tool linked into the process: the
// same argument vector it would receive on a command line, plus the
// invocation naming the workspace the tool must resolve its own relative
// references against. The generator never changes its working directory, so
// the directory travels with every call.
type Func func(ctx context.Context, inv Invocation) error

// Invocation is a single tool call: the argument vector plus the directory
// the tool must run against. Paths are always passed explicitly; the
// generator never changes its own working directory.
type Invocation struct {
	Dir  string
	Args []string
}

// Runner invokes one external generation tool.
type Runner interface {
	Name() string
	Run(ctx context.Context, inv Invocation) error
}

// Command runs a tool as an OS process. When Home names the simulation
// toolkit installation root, the executable is resolved from its bin
// directory; otherwise the PATH decides.
type Command struct {
	Exe  string
	Home string
}

// Name returns the executable name
func (c Command) Name() string { return c.Exe }

// Run spawns the tool and waits for it. A non-zero exit is an error.
func (c Command) Run(ctx context.Context, inv Invocation) error {
	path := c.Exe
	if c.Home != "" {
		candidate := filepath.Join(c.Home, "bin", c.Exe)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	cmd := exec.CommandContext(ctx, path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.Exe, err)
	}
	return nil
}

// Entry runs a tool through its main(args) entry point in process.
type Entry struct {
	Tool string
	Fn   Func
}

// Name returns the tool name
func (e Entry) Name() string { return e.Tool }

// Run calls the bound entry point synchronously.
func (e Entry) Run(ctx context.Context, inv Invocation) error {
	if e.Fn == nil {
		return fmt.Errorf("%s: no entry point bound", e.Tool)
	}
	if err := e.Fn(ctx, inv); err != nil {
		return fmt.Errorf("%s: %w", e.Tool, err)
	}
	return nil
}

// Script adapts a Python tool script to the entry-point contract. The
// generation toolkit ships most of its tools as scripts; a build that links
// pure-Go ports can bind those instead. The script runs against the
// invocation's directory so relative names inside its inputs resolve to the
// workspace, exactly as for process-mode tools.
func Script(interpreter, script string) Func {
	return func(ctx context.Context, inv Invocation) error {
		cmd := exec.CommandContext(ctx, interpreter, append([]string{script}, inv.Args...)...)
		cmd.Dir = inv.Dir
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(script), err)
		}
		return nil
	}
}

// Home returns the simulation toolkit installation root from the
// environment. An empty value is a fatal precondition: nothing may run
// without it.
func Home() (string, error) {
	home := os.Getenv(homeEnv)
	if home == "" {
		return "", fmt.Errorf("please declare environment variable '%s'", homeEnv)
	}
	return home, nil
}

// homeEnv names the toolkit installation root.
const homeEnv = "SUMO_HOME"
