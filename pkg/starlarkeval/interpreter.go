package starlarkeval

import (
	"bytes"
	"fmt"
	"io"

	"go.starlark.net/starlark"
)

type Interpreter struct {
	// Global state
	globals starlark.StringDict
	// Thread context
	thread *starlark.Thread
	// reporter
	reporter Reporter
}

// Reporter receives the output of starlark print() calls.  It is implemented
// by (*testing.T).Logf.
type Reporter func(format string, args ...interface{})

func NewInterpreter(reporter Reporter) *Interpreter {
	interpreter := &Interpreter{
		reporter: reporter,
		thread: &starlark.Thread{
			Name: "statical",
			Print: func(_ *starlark.Thread, msg string) {
				reporter("%s", msg)
			},
		},
		globals: starlark.StringDict{},
	}

	return interpreter
}

// GetGlobal returns the global value of the given name, or nil.
func (i *Interpreter) GetGlobal(name string) starlark.Value {
	return i.globals[name]
}

// Globals returns the sorted names of the global values.
func (i *Interpreter) Globals() []string {
	return i.globals.Keys()
}

// Exec executes the source.  Globals of previous executions are visible to
// it.
func (i *Interpreter) Exec(filename string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	state, err := starlark.ExecFile(i.thread, filename, bytes.NewReader(data), i.globals)
	if evalErr, ok := err.(*starlark.EvalError); ok {
		return fmt.Errorf("%s: %s", filename, evalErr.Backtrace())
	}
	if err != nil {
		return err
	}
	for name, value := range state {
		i.globals[name] = value
	}
	return nil
}
