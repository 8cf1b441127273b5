package main

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	if got := getEnv("SOME_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected env value, got %q", got)
	}
	if got := getEnv("UNSET_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
