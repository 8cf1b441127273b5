// Package triage maps free-text symptom descriptions to a medical
// condition, an urgency tier, and a body-system category using weighted
// keyword matching. Classification is pure: fixed tables, no state.
package triage

import (
	"regexp"
	"strings"
)

// Urgency tiers, checked before any category matching.
type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

// Condition tags recognized by the classifier. ConditionNone means no
// keyword table matched; it is a valid result, not an error.
const (
	ConditionNone = ""

	ConditionDiabetes      = "diabetes"
	ConditionHeartDisease  = "heart_disease"
	ConditionHypertension  = "hypertension"
	ConditionAlzheimer     = "alzheimer"
	ConditionDepression    = "depression"
	ConditionAsthma        = "asthma"
	ConditionFever         = "fever"
	ConditionCoughCold     = "cough_cold"
	ConditionHeadache      = "headache"
	ConditionStomachIssues = "stomach_issues"
)

// maxKeywords caps the matched-keyword list on a Match.
const maxKeywords = 8

// Match is the result of classifying one message.
type Match struct {
	Condition string   `json:"condition,omitempty"`
	Urgency   Urgency  `json:"urgency"`
	Category  string   `json:"category"`
	Keywords  []string `json:"keywords"`
}

type conditionTable struct {
	name     string
	keywords []string
}

// conditionTables is ordered: on an exact score tie the first-seen
// condition wins, and downstream medicine lookups depend on that single
// selection staying stable.
var conditionTables = []conditionTable{
	{ConditionDiabetes, []string{
		"diabetes", "diabetic", "blood sugar", "glucose", "insulin",
		"hyperglycemia", "hypoglycemia", "a1c", "hba1c", "type 1", "type 2",
		"diabetic ketoacidosis", "diabetic neuropathy",
	}},
	{ConditionHeartDisease, []string{
		"heart", "cardiac", "chest pain", "angina", "heart attack",
		"cardiovascular", "myocardial infarction", "coronary", "arrhythmia",
		"atrial fibrillation", "heart failure", "cardiac arrest",
	}},
	{ConditionHypertension, []string{
		"blood pressure", "hypertension", "high bp", "hypertensive",
		"elevated blood pressure", "systolic", "diastolic",
	}},
	{ConditionAlzheimer, []string{
		"alzheimer", "dementia", "memory loss", "cognitive", "forgetfulness",
		"confusion", "cognitive decline", "memory problems", "alzheimer's",
	}},
	{ConditionDepression, []string{
		"depression", "depressed", "sad", "anxiety", "mental health",
		"mood", "suicidal", "hopeless", "worthless", "guilt", "fatigue",
		"concentration problems", "sleep problems",
	}},
	{ConditionAsthma, []string{
		"asthma", "wheezing", "shortness of breath", "chest tightness",
		"coughing", "breathing problems", "respiratory", "bronchospasm",
	}},
	{ConditionFever, []string{
		"fever", "high temperature", "pyrexia", "hot", "burning", "chills",
		"sweating", "body temperature", "febrile",
	}},
	{ConditionCoughCold, []string{
		"cough", "cold", "flu", "influenza", "sore throat", "runny nose",
		"congestion", "nasal", "sneezing", "phlegm", "mucus", "chest congestion",
		"upper respiratory", "viral infection", "common cold",
	}},
	{ConditionHeadache, []string{
		"headache", "head pain", "migraine", "tension", "throbbing",
		"pounding", "head ache", "cephalgia",
	}},
	{ConditionStomachIssues, []string{
		"stomach", "stomachache", "stomach pain", "abdominal pain", "belly pain",
		"indigestion", "upset stomach", "nausea", "vomiting", "diarrhea",
		"constipation", "gastric", "gastrointestinal",
	}},
}

// categoryTables groups keywords by body system for the chat response
// metadata; independent of the condition tables above.
var categoryTables = []conditionTable{
	{"cardiovascular", []string{"heart", "chest", "blood pressure", "pulse", "cardiac", "chest pain", "heart attack"}},
	{"respiratory", []string{"breathing", "cough", "lungs", "asthma", "shortness of breath", "can't breathe"}},
	{"neurological", []string{"headache", "dizzy", "confusion", "memory", "brain", "stroke", "migraine"}},
	{"gastrointestinal", []string{"stomach", "nausea", "vomiting", "diarrhea", "digestive", "abdominal pain"}},
	{"musculoskeletal", []string{"pain", "muscle", "joint", "bone", "back", "neck", "ache", "sore"}},
	{"infectious", []string{"fever", "cold", "flu", "infection", "viral", "bacterial"}},
	{"mental_health", []string{"anxiety", "depression", "stress", "panic", "mood", "mental"}},
	{"general", []string{"fatigue", "weakness", "general", "overall"}},
}

// Emergency patterns outrank urgent patterns; the first list with any
// match decides the tier.
var emergencyPatterns = compilePatterns([]string{
	`heart attack|chest pain|severe chest|crushing chest`,
	`stroke|facial droop|slurred speech|weakness on one side`,
	`can't breathe|difficulty breathing|choking|suffocating`,
	`unconscious|passed out|fainted|not responding`,
	`severe bleeding|heavy bleeding|bleeding won't stop`,
	`suicidal|want to die|harm myself`,
})

var urgentPatterns = compilePatterns([]string{
	`high fever|fever over 103|fever with rash`,
	`severe headache|worst headache|thunderclap headache`,
	`severe abdominal pain|acute abdomen`,
	`severe allergic reaction|anaphylaxis`,
	`severe dehydration|can't keep fluids down`,
})

func compilePatterns(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

// Classify maps free text to a Match. Urgency is detected first and is
// orthogonal to condition matching: an emergency message still gets a
// condition so medicine lookup can proceed.
func Classify(text string) Match {
	lower := strings.ToLower(text)

	m := Match{
		Urgency:  detectUrgency(lower),
		Category: detectCategory(lower),
		Keywords: matchedKeywords(lower),
	}
	m.Condition = detectCondition(lower)
	return m
}

func detectUrgency(lower string) Urgency {
	for _, p := range emergencyPatterns {
		if p.MatchString(lower) {
			return UrgencyEmergency
		}
	}
	for _, p := range urgentPatterns {
		if p.MatchString(lower) {
			return UrgencyUrgent
		}
	}
	return UrgencyNormal
}

// detectCondition scores each table by substring-match count; the
// strictly highest count wins, first-seen table keeps priority on ties.
func detectCondition(lower string) string {
	best := ConditionNone
	bestScore := 0
	for _, table := range conditionTables {
		score := 0
		for _, kw := range table.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = table.name
		}
	}
	return best
}

func detectCategory(lower string) string {
	best := "general"
	bestScore := 0
	for _, table := range categoryTables {
		score := 0
		for _, kw := range table.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = table.name
		}
	}
	return best
}

// matchedKeywords collects every category keyword present in the text,
// deduplicated in first-seen order, capped at maxKeywords.
func matchedKeywords(lower string) []string {
	seen := make(map[string]bool)
	keywords := []string{}
	for _, table := range categoryTables {
		for _, kw := range table.keywords {
			if !seen[kw] && strings.Contains(lower, kw) {
				seen[kw] = true
				keywords = append(keywords, kw)
				if len(keywords) == maxKeywords {
					return keywords
				}
			}
		}
	}
	return keywords
}
