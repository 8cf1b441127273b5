package triage

import (
	"reflect"
	"testing"
)

func TestClassify_NoKeywords(t *testing.T) {
	m := Classify("hello there, just checking in")
	if m.Condition != ConditionNone {
		t.Fatalf("expected no condition, got %q", m.Condition)
	}
	if m.Urgency != UrgencyNormal {
		t.Fatalf("expected normal urgency, got %s", m.Urgency)
	}
	if len(m.Keywords) != 0 {
		t.Fatalf("expected no keywords, got %v", m.Keywords)
	}
}

func TestClassify_EmergencyOverridesCategory(t *testing.T) {
	m := Classify("I am having chest pain and my heart is racing")
	if m.Urgency != UrgencyEmergency {
		t.Fatalf("expected emergency urgency, got %s", m.Urgency)
	}
	// Emergency detection must not suppress condition matching.
	if m.Condition != ConditionHeartDisease {
		t.Fatalf("expected heart_disease condition, got %q", m.Condition)
	}
}

func TestClassify_UrgentTier(t *testing.T) {
	m := Classify("I have a high fever that won't go down")
	if m.Urgency != UrgencyUrgent {
		t.Fatalf("expected urgent, got %s", m.Urgency)
	}
	if m.Condition != ConditionFever {
		t.Fatalf("expected fever condition, got %q", m.Condition)
	}
}

func TestClassify_EmergencyBeatsUrgent(t *testing.T) {
	m := Classify("severe headache and I can't breathe")
	if m.Urgency != UrgencyEmergency {
		t.Fatalf("emergency patterns must win over urgent, got %s", m.Urgency)
	}
}

func TestClassify_HighestScoreWins(t *testing.T) {
	// Two diabetes keywords vs one depression keyword.
	m := Classify("my blood sugar is high and my glucose readings scare me, feeling sad")
	if m.Condition != ConditionDiabetes {
		t.Fatalf("expected diabetes, got %q", m.Condition)
	}
}

func TestClassify_TieBreakFirstSeen(t *testing.T) {
	// "chest tightness" scores asthma once; "fever" scores fever once.
	// Asthma is enumerated before fever, so the tie goes to asthma.
	m := Classify("chest tightness and a fever")
	if m.Condition != ConditionAsthma {
		t.Fatalf("expected first-seen tie-break (asthma), got %q", m.Condition)
	}
}

func TestClassify_KeywordsCapped(t *testing.T) {
	m := Classify("heart chest blood pressure pulse breathing cough lungs asthma headache dizzy stomach nausea fever pain")
	if len(m.Keywords) > 8 {
		t.Fatalf("keyword list must be capped at 8, got %d", len(m.Keywords))
	}
	seen := map[string]bool{}
	for _, kw := range m.Keywords {
		if seen[kw] {
			t.Fatalf("duplicate keyword %q", kw)
		}
		seen[kw] = true
	}
}

func TestClassify_CategoryDetection(t *testing.T) {
	m := Classify("I keep coughing and my lungs hurt when breathing")
	if m.Category != "respiratory" {
		t.Fatalf("expected respiratory category, got %s", m.Category)
	}
}

func TestClassify_Idempotent(t *testing.T) {
	text := "severe headache with nausea and fever"
	if !reflect.DeepEqual(Classify(text), Classify(text)) {
		t.Fatal("classification is not deterministic")
	}
}
