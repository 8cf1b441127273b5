package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/medware/medassist/internal/triage"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(_ context.Context, _ string, _ []Turn) (string, error) {
	s.calls++
	return s.reply, s.err
}

func TestRespond_RuleBasedWithoutModel(t *testing.T) {
	svc := NewService(nil, nil)
	res := svc.Respond(context.Background(), "I have a persistent cough and a mild fever", nil)

	if res.Source != "rule_based" {
		t.Fatalf("expected rule_based source, got %q", res.Source)
	}
	if res.Reply == "" {
		t.Fatal("expected a non-empty reply")
	}
	if res.Urgency != triage.UrgencyNormal {
		t.Fatalf("unexpected urgency: %q", res.Urgency)
	}
}

func TestRespond_ModelReplyUsedWhenAvailable(t *testing.T) {
	stub := &stubCompleter{reply: "Rest and fluids are advised."}
	svc := NewService(stub, nil)
	res := svc.Respond(context.Background(), "I have a headache", nil)

	if res.Source != "llm" || res.Reply != "Rest and fluids are advised." {
		t.Fatalf("expected llm reply, got source=%q reply=%q", res.Source, res.Reply)
	}
	if stub.calls != 1 {
		t.Fatalf("expected one model call, got %d", stub.calls)
	}
}

func TestRespond_FallsBackOnModelError(t *testing.T) {
	svc := NewService(&stubCompleter{err: errors.New("upstream down")}, nil)
	res := svc.Respond(context.Background(), "I have a headache", nil)

	if res.Source != "rule_based" || res.Reply == "" {
		t.Fatalf("expected rule-based fallback, got source=%q reply=%q", res.Source, res.Reply)
	}
}

func TestRespond_EmergencyReplyAndSeverity(t *testing.T) {
	svc := NewService(nil, nil)
	res := svc.Respond(context.Background(), "crushing chest pain, I think it's a heart attack", nil)

	if res.Urgency != triage.UrgencyEmergency {
		t.Fatalf("expected emergency urgency, got %q", res.Urgency)
	}
	if res.Severity != "severe" {
		t.Fatalf("expected severe severity, got %q", res.Severity)
	}
	if !strings.Contains(res.Reply, "MEDICAL EMERGENCY") {
		t.Fatalf("expected emergency reply, got %q", res.Reply)
	}
}

func TestRespond_AttachesMedicineGuidance(t *testing.T) {
	svc := NewService(nil, nil)
	res := svc.Respond(context.Background(), "my blood sugar is high, I think it's diabetes", nil)

	if res.Condition != "diabetes" {
		t.Fatalf("expected diabetes condition, got %q", res.Condition)
	}
	if res.Medicines == nil || len(res.Medicines.Medications) == 0 {
		t.Fatal("expected medication recommendations")
	}
	if res.Summary == "" {
		t.Fatal("expected a medicine summary")
	}
}

func TestRespond_DetectableConditionWithoutCatalogEntry(t *testing.T) {
	svc := NewService(nil, nil)
	res := svc.Respond(context.Background(), "bad diarrhea and constant vomiting since yesterday", nil)

	if res.Condition != "stomach_issues" {
		t.Fatalf("expected stomach_issues condition, got %q", res.Condition)
	}
	if res.Medicines != nil {
		t.Fatal("stomach_issues has no catalog entry, expected no recommendations")
	}
	if res.Reply == "" {
		t.Fatal("expected a reply")
	}
}

func TestRuleBasedReply_TopicBranches(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"I have a high fever today", "high fever"},
		{"just a mild fever", "mild fever"},
		{"terrible migraine again", "headaches"},
		{"my stomach hurts and I feel nausea", "gastrointestinal"},
		{"sore back after lifting", "pain management"},
		{"I feel off lately", "healthcare professional"},
	}
	for _, tc := range cases {
		got := RuleBasedReply(tc.message, triage.UrgencyNormal)
		if !strings.Contains(strings.ToLower(got), strings.ToLower(tc.want)) {
			t.Errorf("RuleBasedReply(%q) = %q, want substring %q", tc.message, got, tc.want)
		}
	}
}
