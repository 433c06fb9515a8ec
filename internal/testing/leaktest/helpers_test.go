package leaktest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingTB captures failures instead of failing the enclosing test
type recordingTB struct {
	testing.TB
	failures []string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestCheck_WaitsForExitingGoroutine(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	go time.Sleep(50 * time.Millisecond)

	checker.Check(0)
	assert.Empty(t, rec.failures)
}

func TestCheck_ReportsBlockedGoroutine(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	release := make(chan struct{})
	defer close(release)
	go func() { <-release }()

	checker.Check(0)
	if assert.Len(t, rec.failures, 1) {
		assert.Contains(t, rec.failures[0], "leaked=1")
	}
}

func TestCheck_Tolerance(t *testing.T) {
	rec := &recordingTB{TB: t}
	checker := NewGoroutineChecker(rec)

	release := make(chan struct{})
	defer close(release)
	go func() { <-release }()

	checker.Check(1)
	assert.Empty(t, rec.failures)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		done := make(chan struct{})
		go close(done)
		<-done
	})
}
