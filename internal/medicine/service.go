// Package medicine provides condition-based medication recommendations,
// pairwise interaction checks, and summary rendering.
package medicine

import (
	"fmt"
	"strings"
)

// Severity tiers used to trim recommendations. Chat urgency maps onto
// these: emergency→severe, urgent→urgent, normal→moderate.
const (
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeverityUrgent   = "urgent"
	SeveritySevere   = "severe"
)

// Interaction flags a risky medication pair.
type Interaction struct {
	Medicines      []string `json:"medicines"`
	Severity       string   `json:"severity"`
	Description    string   `json:"description"`
	Recommendation string   `json:"recommendation"`
}

// Recommend returns the catalog entry for a condition adjusted for
// severity, or nil when the condition has no entry.
func Recommend(condition, severity string) *Recommendation {
	base, ok := catalog[condition]
	if !ok {
		return nil
	}

	rec := Recommendation{
		Medications: append([]Medication(nil), base.Medications...),
		Lifestyle:   base.Lifestyle,
		Monitoring:  base.Monitoring,
	}
	// Mild cases get the first-line options only; severe keeps everything.
	if severity == SeverityMild && len(rec.Medications) > 2 {
		rec.Medications = rec.Medications[:2]
	}
	return &rec
}

// Interactions runs the pairwise interaction table over a medication
// list. The table is intentionally small; a production deployment would
// call out to a drug-interaction database.
func Interactions(meds []Medication) []Interaction {
	names := make(map[string]bool, len(meds))
	for _, m := range meds {
		names[strings.ToLower(m.Name)] = true
	}

	var out []Interaction
	if names["warfarin"] && names["aspirin"] {
		out = append(out, Interaction{
			Medicines:      []string{"Warfarin", "Aspirin"},
			Severity:       "High",
			Description:    "Increased bleeding risk",
			Recommendation: "Monitor INR closely",
		})
	}
	if names["metformin"] && names["insulin"] {
		out = append(out, Interaction{
			Medicines:      []string{"Metformin", "Insulin"},
			Severity:       "Moderate",
			Description:    "Increased risk of hypoglycemia",
			Recommendation: "Monitor blood glucose closely",
		})
	}
	return out
}

// Summary renders a human-readable markdown summary of a recommendation.
func Summary(condition string, rec *Recommendation) string {
	if rec == nil {
		return "No specific medicine recommendations available for this condition."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Medicine Recommendations for %s:**\n\n", titleCase(condition))

	b.WriteString("**Medications:**\n")
	for _, med := range rec.Medications {
		fmt.Fprintf(&b, "• %s (%s) - %s\n", med.Name, med.Dosage, med.Description)
		if len(med.SideEffects) > 0 {
			fmt.Fprintf(&b, "  Side effects: %s\n", strings.Join(med.SideEffects, ", "))
		}
		b.WriteString("\n")
	}

	if len(rec.Lifestyle) > 0 {
		b.WriteString("**Lifestyle Recommendations:**\n")
		for _, item := range rec.Lifestyle {
			fmt.Fprintf(&b, "• %s\n", item)
		}
		b.WriteString("\n")
	}

	if len(rec.Monitoring) > 0 {
		b.WriteString("**Monitoring Requirements:**\n")
		for _, item := range rec.Monitoring {
			fmt.Fprintf(&b, "• %s\n", item)
		}
	}

	b.WriteString("\n**⚠️ Important:** Always consult with a healthcare professional before starting any new medication.")
	return b.String()
}

func titleCase(condition string) string {
	words := strings.Split(strings.ReplaceAll(condition, "_", " "), " ")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
