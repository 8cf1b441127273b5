package risk

import "go.uber.org/zap"

// heartFeatureCount matches the Cleveland dataset layout:
// age, sex, cp, trestbps, chol, fbs, restecg, thalach, exang, oldpeak,
// slope, ca, thal.
const heartFeatureCount = 13

// heartMaxRisk is the denominator for mapping the additive risk score to a
// percentage.
const heartMaxRisk = 20.0

// ScoreHeart computes a heart-disease risk assessment from a 13-field
// feature vector using the weighted-risk-score fallback. Wrong-length
// vectors are repaired (zero-pad / truncate) with a warning on the result.
func (e *Engine) ScoreHeart(features []float64) (out Assessment) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Error("heart scoring failed", zap.Any("panic", r))
			out = degradedHeart()
		}
	}()

	if e.cfg.HasTrainedModel {
		// Trained artifacts never ship with this system; make the gap
		// explicit instead of catching a load failure downstream.
		return Assessment{
			Prediction:     "Model not trained",
			RiskPercentage: 50,
			RiskLevel:      LevelUnknown,
			Confidence:     0,
			Probabilities:  map[string]float64{"disease": 50, "no_disease": 50},
			ModelUsed:      "Not Trained",
		}
	}

	features, warning := normalizeVector(features, heartFeatureCount)
	age, sex, cp := features[0], features[1], features[2]
	trestbps, chol, fbs := features[3], features[4], features[5]
	thalach, exang, oldpeak := features[7], features[8], features[9]
	ca, thal := features[11], features[12]
	_ = thalach // max heart rate carried in the vector but not weighted

	score := 0.0
	switch {
	case age > 65:
		score += 3
	case age > 55:
		score += 2
	case age > 45:
		score += 1
	}
	if sex == 1 {
		score++
	}
	score += cp
	switch {
	case trestbps > 160:
		score += 3
	case trestbps > 140:
		score += 2
	case trestbps > 120:
		score += 1
	}
	switch {
	case chol > 300:
		score += 3
	case chol > 240:
		score += 2
	case chol > 200:
		score += 1
	}
	if fbs == 1 {
		score++
	}
	if exang == 1 {
		score += 2
	}
	switch {
	case oldpeak > 2:
		score += 3
	case oldpeak > 1:
		score += 2
	case oldpeak > 0.5:
		score += 1
	}
	score += ca
	switch thal {
	case 3: // fixed defect
		score += 2
	case 6: // reversible defect
		score++
	}

	diseaseProb := min(score/heartMaxRisk*100, 95)
	noDiseaseProb := 100 - diseaseProb
	level := riskLevelFor(diseaseProb)

	out = Assessment{
		Prediction:     e.heartLabel(diseaseProb, level),
		RiskPercentage: round1(diseaseProb),
		RiskLevel:      level,
		Confidence:     0.85,
		Probabilities: map[string]float64{
			"disease":    round1(diseaseProb),
			"no_disease": round1(noDiseaseProb),
		},
		ModelUsed: "Rule-Based Analysis",
	}
	if warning != "" {
		out.Warnings = append(out.Warnings, warning)
	}
	return out
}

func (e *Engine) heartLabel(diseaseProb float64, level string) string {
	if e.cfg.HeartLabelVariant == VariantSimple {
		switch level {
		case LevelHigh:
			return "Heart Disease Detected"
		case LevelMedium:
			return "Moderate Risk of Heart Disease"
		default:
			return "No Heart Disease"
		}
	}
	if diseaseProb > 50 {
		return "Heart Disease Detected"
	}
	return "No Heart Disease"
}

func degradedHeart() Assessment {
	return Assessment{
		Prediction:     "Prediction Error",
		RiskPercentage: 50,
		RiskLevel:      LevelUnknown,
		Confidence:     0,
		Probabilities:  map[string]float64{"disease": 50, "no_disease": 50},
		ModelUsed:      "Error",
	}
}
