//go:build dev

// Package trace records runtime/trace regions in dev builds.
//
//	go build -tags dev ./cmd/ding
//	echo "curl https://h/pets" | DING_TRACE=trace.out ding --spec openapi.yaml
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"
	"sync"
)

// session is the trace being written, nil when tracing is off
var (
	mu      sync.Mutex
	session *os.File
)

// Init starts a trace into the file named by DING_TRACE and returns the
// function that flushes and closes it. Failures are reported on stderr and
// leave tracing off.
func Init() func() {
	path := os.Getenv("DING_TRACE")
	if path == "" {
		return func() {}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ding: trace disabled: %v\n", err)
		return func() {}
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "ding: trace disabled: %v\n", err)
		return func() {}
	}

	mu.Lock()
	session = f
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if session == nil {
			return
		}
		trace.Stop()
		_ = session.Close()
		session = nil
	}
}

// Region marks one phase of a run; call the result to end it
func Region(ctx context.Context, regionType string) func() {
	if !IsEnabled() {
		return func() {}
	}
	return trace.StartRegion(ctx, regionType).End
}

// Log attaches a message to the current task
func Log(ctx context.Context, category, message string) {
	if IsEnabled() {
		trace.Log(ctx, category, message)
	}
}

// IsEnabled reports whether a trace is being written
func IsEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return session != nil
}
