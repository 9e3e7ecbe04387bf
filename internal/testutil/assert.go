// Package testutil provides shared test helpers for building positions and
// checking results.
package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// AssertEqual reports a cmp.Diff between want and got. msgAndArgs, when
// given, is a format string and its arguments prefixed to the failure.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%smismatch (-want +got):\n%s", prefix(msgAndArgs), diff)
	}
}

// AssertMovesEqual compares move slices field by field, order included.
func AssertMovesEqual(t testing.TB, got, want []chess.Move) {
	t.Helper()
	if diff := cmp.Diff(want, got, MoveComparer); diff != "" {
		t.Errorf("moves mismatch (-want +got):\n%s", diff)
	}
}

// AssertContains fails if substr is not in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		t.Errorf("%s%q does not contain %q", prefix(msgAndArgs), got, substr)
	}
}

// AssertNotContains fails if substr is in got.
func AssertNotContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		t.Errorf("%s%q should not contain %q", prefix(msgAndArgs), got, substr)
	}
}

func prefix(msgAndArgs []interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return fmt.Sprint(msgAndArgs[0]) + ": "
}
