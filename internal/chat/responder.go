package chat

import (
	"regexp"
	"strings"

	"github.com/medware/medassist/internal/triage"
)

const (
	emergencyReply = "🚨 MEDICAL EMERGENCY: This requires immediate medical attention! Please call emergency services (911/112) right now or go to the nearest emergency room. Do not delay seeking help."
	urgentReply    = "⚠️ URGENT: This needs prompt medical attention. Please contact your doctor immediately or visit urgent care within the next few hours. Monitor your symptoms closely."
	generalReply   = "I understand you're experiencing health concerns. While I can provide general guidance, it's important to consult with a healthcare professional for proper evaluation and treatment. If symptoms are severe or concerning, please seek medical attention promptly."
)

var (
	feverTopic    = regexp.MustCompile(`fever|cold|flu`)
	feverSevere   = regexp.MustCompile(`high|severe|over 101`)
	headacheTopic = regexp.MustCompile(`headache|migraine`)
	headacheBad   = regexp.MustCompile(`severe|worst|thunderclap`)
	breathTopic   = regexp.MustCompile(`cough|chest|breathing`)
	breathBad     = regexp.MustCompile(`severe|can't breathe|shortness of breath`)
	stomachTopic  = regexp.MustCompile(`stomach|nausea|vomiting|diarrhea`)
	painTopic     = regexp.MustCompile(`pain|ache|sore`)
)

// RuleBasedReply produces a canned clinical-caution reply when no language
// model is configured or the model call fails. Urgency comes from the triage
// classifier so the two stay consistent.
func RuleBasedReply(message string, urgency triage.Urgency) string {
	switch urgency {
	case triage.UrgencyEmergency:
		return emergencyReply
	case triage.UrgencyUrgent:
		return urgentReply
	}

	lower := strings.ToLower(message)
	switch {
	case feverTopic.MatchString(lower):
		if feverSevere.MatchString(lower) {
			return "For high fever (above 101.3°F/38.5°C), monitor closely and consider contacting your doctor. Stay hydrated, rest, and use fever-reducing medications as directed. If fever persists or worsens, seek medical care."
		}
		return "For mild fever, rest, stay hydrated, and monitor your temperature. Over-the-counter fever reducers can help. If symptoms persist beyond 3-5 days or worsen, consult a healthcare provider."
	case headacheTopic.MatchString(lower):
		if headacheBad.MatchString(lower) {
			return "Severe headaches require medical evaluation, especially if sudden onset or 'worst headache ever.' Keep a headache diary and consult your doctor. Consider emergency care if accompanied by fever, neck stiffness, or neurological symptoms."
		}
		return "For mild to moderate headaches, try rest, hydration, and over-the-counter pain relief. Identify and avoid triggers. If headaches are frequent, severe, or changing pattern, consult a healthcare provider."
	case breathTopic.MatchString(lower):
		if breathBad.MatchString(lower) {
			return "Severe breathing difficulties require immediate medical attention. If you're having trouble breathing, call emergency services or go to the ER immediately."
		}
		return "For mild respiratory symptoms, rest, stay hydrated, and use a humidifier. Monitor for worsening symptoms. If cough persists beyond 2-3 weeks or worsens, consult a healthcare provider."
	case stomachTopic.MatchString(lower):
		return "For gastrointestinal symptoms, stay hydrated with clear fluids, eat bland foods, and rest. Avoid dairy and fatty foods. If symptoms persist beyond 2-3 days, include blood, or are severe, consult a healthcare provider."
	case painTopic.MatchString(lower):
		return "For pain management, try rest, ice/heat therapy, and over-the-counter pain relievers. If pain is severe, persistent, or accompanied by other concerning symptoms, consult a healthcare provider."
	}
	return generalReply
}
