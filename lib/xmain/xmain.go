// Package xmain runs a command: it wires up flags, logging and stdio,
// cancels on SIGINT/SIGTERM and maps returned errors to exit codes.
package xmain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	"oss.terrastruct.com/textgraph/lib/log"
)

type RunFunc func(context.Context, *State) error

// shutdownGrace bounds how long run may take to return after a signal.
const shutdownGrace = 10 * time.Second

func Main(run RunFunc) {
	name := filepath.Base(os.Args[0])
	ms := NewState(name, os.Args[1:], os.Environ(), os.Stdin, os.Stdout, os.Stderr)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	ctx := log.Human(context.Background(), os.Stderr)
	err := ms.Main(ctx, sigs, run)
	log.Sync(ctx)
	os.Exit(ms.report(err))
}

type State struct {
	Name string

	Stdin  io.Reader
	Stdout io.WriteCloser
	Stderr io.WriteCloser

	Log  *cmdlog.Logger
	Env  *xos.Env
	Opts *Opts
}

// NewState builds the State for a command named name. environ is in the
// format of os.Environ.
func NewState(name string, args, environ []string, stdin io.Reader, stdout, stderr io.WriteCloser) *State {
	ms := &State{
		Name: name,

		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,

		Env: xos.NewEnv(environ),
	}
	ms.Log = cmdlog.Log(ms.Env, stderr)
	ms.Opts = NewOpts(ms.Env, ms.Log, args)
	return ms
}

// report logs err and returns the exit code for it.
func (ms *State) report(err error) int {
	if err == nil {
		return 0
	}

	var eerr ExitError
	var uerr UsageError
	switch {
	case errors.As(err, &eerr):
		if eerr.Message != "" {
			ms.Log.Error.Print(eerr.Message)
		}
		return eerr.Code
	case errors.As(err, &uerr):
		ms.Log.Error.Printf("%s\nRun with --help to see usage.", err)
		return 1
	default:
		ms.Log.Error.Print(err.Error())
		return 1
	}
}

func (ms *State) Main(ctx context.Context, sigs <-chan os.Signal, run RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- run(ctx, ms)
	}()

	var sig os.Signal
	select {
	case err := <-done:
		return err
	case sig = <-sigs:
	}

	ms.Log.Warn.Printf("received %v, stopping", sig)
	cancel()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("failed to stop cleanly: %w", err)
		}
		if sig == syscall.SIGTERM {
			return nil
		}
		// 128 + SIGINT, as a shell reports it.
		return ExitError{Code: 130}
	case <-time.After(shutdownGrace):
		return ExitErrorf(1, "did not stop within %v, exiting", shutdownGrace)
	}
}

type ExitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ExitErrorf(code int, msg string, v ...interface{}) ExitError {
	return ExitError{
		Code:    code,
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ee ExitError) Error() string {
	s := fmt.Sprintf("exit status %d", ee.Code)
	if ee.Message != "" {
		s += ": " + ee.Message
	}
	return s
}

type UsageError struct {
	Message string `json:"message"`
}

func UsageErrorf(msg string, v ...interface{}) UsageError {
	return UsageError{
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ue UsageError) Error() string {
	return fmt.Sprintf("bad usage: %s", ue.Message)
}

// ReadPath reads fp, or stdin when fp is -.
func (ms *State) ReadPath(fp string) ([]byte, error) {
	if fp == "-" {
		return io.ReadAll(ms.Stdin)
	}
	return os.ReadFile(fp)
}

// WritePath writes p to fp, or to stdout when fp is -. Stdout stays open
// so watch mode can write to it repeatedly.
func (ms *State) WritePath(fp string, p []byte) error {
	if fp == "-" {
		_, err := ms.Stdout.Write(p)
		return err
	}
	return os.WriteFile(fp, p, 0644)
}

// HumanPath shortens paths under $HOME to ~ for messages.
func (ms *State) HumanPath(fp string) string {
	home := ms.Env.Getenv("HOME")
	if home == "" {
		return fp
	}
	rel, err := filepath.Rel(home, fp)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fp
	}
	return filepath.Join("~", rel)
}
