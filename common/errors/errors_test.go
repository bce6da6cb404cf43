package errors

import (
	"fmt"
	"testing"
)

func TestExitCodeOf(t *testing.T) {
	base := fmt.Errorf("no Handler bound")
	tests := []struct {
		err      error
		expected ExitCode
	}{
		{nil, 0},
		{base, UsageFailureExitCode},
		{NewError(base, InjectionFailureExitCode), InjectionFailureExitCode},
		{Wrap(NewError(base, ConfigurationFailureExitCode), "configuring"), ConfigurationFailureExitCode},
	}
	for _, test := range tests {
		if code := ExitCodeOf(test.err, UsageFailureExitCode); code != test.expected {
			t.Fatalf("%v: expected exit code %d; was %d", test.err, test.expected, code)
		}
	}
}

func TestNilError(t *testing.T) {
	e := NewError(nil, InjectionFailureExitCode)
	if e != nil {
		t.Fatalf("expected nil; was %v", e)
	}
	if e.GetExitCode() != 0 {
		t.Fatalf("expected 0 from a nil ExitCodeError; was %d", e.GetExitCode())
	}
}

func TestFind(t *testing.T) {
	base := fmt.Errorf("no Handler bound")
	err := Wrap(NewError(Wrap(base, "Using Provider"), InjectionFailureExitCode), "running")
	isBase := func(e error) bool { return e == base }
	if Find(err, isBase) != base {
		t.Fatalf("expected to find %v in %v", base, err)
	}
	if Find(fmt.Errorf("other"), isBase) != nil {
		t.Fatal("expected nothing found in an unrelated error")
	}
	if Find(nil, isBase) != nil {
		t.Fatal("expected nothing found in nil")
	}
}
