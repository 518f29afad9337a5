// Package testutil provides shared test helpers for the chess rules packages:
// go-cmp based assertions, panic checks and position builders.
package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context if the assertion fails.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}

// AssertNoError stops the test if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		t.Fatalf("%sunexpected error: %v", prefix(msgAndArgs...), err)
	}
}

// AssertErrorIs fails unless err wraps target.
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("%serror = %v; want one wrapping %v", prefix(msgAndArgs...), err, target)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		t.Errorf("%sexpected true but got false", prefix(msgAndArgs...))
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		t.Errorf("%sexpected false but got true", prefix(msgAndArgs...))
	}
}

// AssertPanicsWith runs fn and fails unless it panics with an error wrapping target.
func AssertPanicsWith(t testing.TB, target error, fn func()) {
	t.Helper()
	err := CapturePanic(fn)
	if err == nil {
		t.Errorf("expected a panic wrapping %v", target)
		return
	}
	if !errors.Is(err, target) {
		t.Errorf("panic = %v; want one wrapping %v", err, target)
	}
}

// CapturePanic runs fn and returns the error it panicked with, nil if it returned
// normally. A panic value that is not an error is reported as one.
func CapturePanic(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	fn()
	return nil
}

// prefix formats optional message arguments as "msg: ", or "" when there are none.
func prefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	var msg string
	if format, ok := msgAndArgs[0].(string); ok {
		msg = fmt.Sprintf(format, msgAndArgs[1:]...)
	} else {
		msg = fmt.Sprint(msgAndArgs[0])
	}
	if msg == "" {
		return ""
	}
	return msg + ": "
}
