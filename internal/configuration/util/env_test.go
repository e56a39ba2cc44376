package util

import (
	"strings"
	"testing"
)

func TestExpandEnvStrict_SubstitutesSetVariables(t *testing.T) {
	t.Setenv("UNIVERSA_TEST_PORT", "17001")
	t.Setenv("UNIVERSA_TEST_ADDR", "10.0.0.7")

	got, err := ExpandEnvStrict("addr: ${UNIVERSA_TEST_ADDR}:${UNIVERSA_TEST_PORT}")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "addr: 10.0.0.7:17001" {
		t.Fatalf("got %q", got)
	}
}

func TestExpandEnvStrict_FailsOnUnsetVariable(t *testing.T) {
	_, err := ExpandEnvStrict("port: ${UNIVERSA_TEST_UNSET_VAR}")
	if err == nil {
		t.Fatal("expected an error for an unset variable")
	}
	if !strings.Contains(err.Error(), "UNIVERSA_TEST_UNSET_VAR") {
		t.Fatalf("error does not name the variable: %v", err)
	}
}

func TestExpandEnvStrict_EmptyValueIsStillSet(t *testing.T) {
	t.Setenv("UNIVERSA_TEST_EMPTY", "")

	got, err := ExpandEnvStrict("x: ${UNIVERSA_TEST_EMPTY}")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "x: " {
		t.Fatalf("got %q", got)
	}
}

func TestExpandEnvStrict_PlainTextPassesThrough(t *testing.T) {
	got, err := ExpandEnvStrict("no variables here")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != "no variables here" {
		t.Fatalf("got %q", got)
	}
}
