package chat

import (
	"context"

	"go.uber.org/zap"

	"github.com/medware/medassist/internal/medicine"
	"github.com/medware/medassist/internal/triage"
)

// Result is the structured outcome of one chat exchange.
type Result struct {
	Reply        string                   `json:"response"`
	Condition    string                   `json:"detected_condition,omitempty"`
	Urgency      triage.Urgency           `json:"urgency"`
	Category     string                   `json:"category"`
	Keywords     []string                 `json:"keywords,omitempty"`
	Severity     string                   `json:"severity"`
	Medicines    *medicine.Recommendation `json:"medicine_recommendations,omitempty"`
	Summary      string                   `json:"medicine_summary,omitempty"`
	Interactions []medicine.Interaction   `json:"drug_interactions,omitempty"`
	Source       string                   `json:"source"` // "llm" or "rule_based"
}

// Service combines symptom triage, medication lookup, and the optional
// language model into one chat pipeline.
type Service struct {
	llm Completer // nil when no model is configured
	log *zap.Logger
}

func NewService(llm Completer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{llm: llm, log: log}
}

// Respond classifies the message, generates a reply, and attaches
// medication guidance when a condition is recognized. The triage and
// medication fields are always rule-derived; only the free-text reply may
// come from the model.
func (s *Service) Respond(ctx context.Context, message string, history []Turn) Result {
	match := triage.Classify(message)

	res := Result{
		Condition: match.Condition,
		Urgency:   match.Urgency,
		Category:  match.Category,
		Keywords:  match.Keywords,
		Severity:  severityFor(match.Urgency),
		Source:    "rule_based",
	}

	if s.llm != nil {
		reply, err := s.llm.Complete(ctx, message, history)
		if err != nil {
			s.log.Warn("llm completion failed, using rule-based reply", zap.Error(err))
		} else {
			res.Reply = reply
			res.Source = "llm"
		}
	}
	if res.Reply == "" {
		res.Reply = RuleBasedReply(message, match.Urgency)
	}

	if match.Condition != "" {
		if rec := medicine.Recommend(match.Condition, res.Severity); rec != nil {
			res.Medicines = rec
			res.Summary = medicine.Summary(match.Condition, rec)
			res.Interactions = medicine.Interactions(rec.Medications)
		}
	}
	return res
}

// severityFor maps triage urgency onto the medication severity scale.
func severityFor(u triage.Urgency) string {
	switch u {
	case triage.UrgencyEmergency:
		return medicine.SeveritySevere
	case triage.UrgencyUrgent:
		return medicine.SeverityUrgent
	default:
		return medicine.SeverityModerate
	}
}
