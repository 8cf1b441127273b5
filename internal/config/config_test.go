package config

import (
	"testing"

	"github.com/medware/medassist/internal/risk"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENABLE_DB", "false")
	t.Setenv("DATABASE_URL", "")
}

func TestLoadUsesDefaults(t *testing.T) {
	setRequired(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Risk.HasTrainedModel {
		t.Fatal("trained-model flag must default to false")
	}
	if cfg.Risk.AlzheimerStrategy != risk.StrategyBanded {
		t.Fatalf("expected banded default strategy, got %s", cfg.Risk.AlzheimerStrategy)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	setRequired(t)
	t.Setenv("ENABLE_DB", "true")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is missing")
	}
}

func TestLoadRejectsUnknownStrategy(t *testing.T) {
	setRequired(t)
	t.Setenv("ALZHEIMER_STRATEGY", "ensemble")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}
