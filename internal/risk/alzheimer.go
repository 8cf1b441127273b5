package risk

import "go.uber.org/zap"

// alzheimerFeatureCount: age, educ, ses, mmse, etiv, nwbv, asf.
const alzheimerFeatureCount = 7

const alzheimerMaxRisk = 10.0

// ScoreAlzheimer computes an Alzheimer risk assessment from a 7-field
// feature vector using the configured fallback strategy.
func (e *Engine) ScoreAlzheimer(features []float64) (out Assessment) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("alzheimer scoring failed", zap.Any("panic", r))
			out = degradedAlzheimer()
		}
	}()

	if e.cfg.HasTrainedModel {
		return Assessment{
			Prediction:     "Model not trained",
			RiskPercentage: 50,
			RiskLevel:      LevelUnknown,
			SeverityLevel:  SeverityUnknown,
			Confidence:     0,
			Probabilities:  severityProbs(25, 25, 25, 25),
			ModelUsed:      "Not Trained",
		}
	}

	features, warning := normalizeVector(features, alzheimerFeatureCount)

	if e.cfg.AlzheimerStrategy == StrategyContinuous {
		out = scoreAlzheimerContinuous(features)
	} else {
		out = scoreAlzheimerBanded(features)
	}
	if warning != "" {
		out.Warnings = append(out.Warnings, warning)
	}
	return out
}

// scoreAlzheimerBanded builds an additive risk score from discrete bands.
// MMSE dominates and fixes the severity bucket; demographics and brain
// volume add fractional contributions.
func scoreAlzheimerBanded(features []float64) Assessment {
	age, educ, ses, mmse := features[0], features[1], features[2], features[3]
	etiv, nwbv := features[4], features[5]

	score := 0.0
	var severity string
	switch {
	case mmse < 10:
		score += 4
		severity = SeveritySevere
	case mmse < 18:
		score += 3
		severity = SeverityModerate
	case mmse < 24:
		score += 2
		severity = SeverityMild
	default:
		severity = SeverityNormal
	}

	switch {
	case age > 80:
		score += 2
	case age > 70:
		score++
	case age > 60:
		score += 0.5
	}
	switch {
	case educ < 8:
		score++
	case educ < 12:
		score += 0.5
	}
	switch {
	case ses < 2:
		score++
	case ses < 3:
		score += 0.5
	}
	if nwbv < 0.7 {
		score++
	}
	if etiv > 1500 {
		score += 0.5
	}

	riskPct := min(score/alzheimerMaxRisk*100, 95)

	// Fixed proportional split conditioned on the selected bucket.
	var normal, mild, moderate, severe float64
	switch severity {
	case SeveritySevere:
		severe = riskPct
		normal = 100 - riskPct
	case SeverityModerate:
		severe = riskPct * 0.3
		moderate = riskPct * 0.7
		normal = 100 - riskPct
	case SeverityMild:
		moderate = riskPct * 0.2
		mild = riskPct * 0.8
		normal = 100 - riskPct
	default:
		mild = riskPct * 0.1
		normal = 100 - riskPct
	}

	return Assessment{
		Prediction:     alzheimerLabel(severity),
		RiskPercentage: round1(riskPct),
		RiskLevel:      riskLevelFor(riskPct),
		SeverityLevel:  severity,
		Confidence:     85.0,
		Probabilities:  normalizeProbs(severityProbs(normal, mild, moderate, severe)),
		ModelUsed:      "Rule-Based Analysis",
	}
}

// scoreAlzheimerContinuous is the weighted-sum formula. Its thresholds
// skip the Moderate bucket entirely; preserved as-is.
func scoreAlzheimerContinuous(features []float64) Assessment {
	age, ses, mmse := features[0], features[2], features[3]
	nwbv, asf := features[5], features[6]

	score := age*0.04 + ses*8 + (30-mmse)*3 + (1-nwbv)*60 + asf*30

	var severity string
	var confidence, riskPct float64
	switch {
	case score > 120:
		severity = SeveritySevere
		confidence = 0.89
		riskPct = 85
	case score > 70:
		severity = SeverityMild
		confidence = 0.73
		riskPct = 60
	default:
		severity = SeverityNormal
		confidence = 0.97
		riskPct = 15
	}

	normal := (100 - riskPct) * 0.8
	mild := 10.0
	if riskPct > 30 {
		mild = riskPct * 0.4
	}
	moderate := 5.0
	if riskPct > 60 {
		moderate = riskPct * 0.3
	}
	severe := 0.0
	if riskPct > 80 {
		severe = riskPct * 0.3
	}

	return Assessment{
		Prediction:     "Alzheimer Severity: " + severity,
		RiskPercentage: round1(riskPct),
		RiskLevel:      riskLevelFor(riskPct),
		SeverityLevel:  severity,
		Confidence:     confidence,
		Probabilities:  normalizeProbs(severityProbs(normal, mild, moderate, severe)),
		ModelUsed:      "Hybrid Ensemble (Fallback Engine)",
		Individual: map[string]float64{
			"xgboost": round1(confidence * 100),
			"ann":     round1(confidence * 95),
			"rnn":     round1(confidence * 91),
		},
	}
}

func alzheimerLabel(severity string) string {
	switch severity {
	case SeverityMild:
		return "Mild Cognitive Impairment"
	case SeverityModerate:
		return "Moderate Alzheimer's Disease"
	case SeveritySevere:
		return "Severe Alzheimer's Disease"
	default:
		return "No Alzheimer's Disease"
	}
}

func severityProbs(normal, mild, moderate, severe float64) map[string]float64 {
	return map[string]float64{
		"normal":   normal,
		"mild":     mild,
		"moderate": moderate,
		"severe":   severe,
	}
}

func degradedAlzheimer() Assessment {
	return Assessment{
		Prediction:     "Prediction Error",
		RiskPercentage: 50,
		RiskLevel:      LevelUnknown,
		SeverityLevel:  SeverityUnknown,
		Confidence:     0,
		Probabilities:  severityProbs(25, 25, 25, 25),
		ModelUsed:      "Error",
	}
}
