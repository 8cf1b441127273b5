package risk

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"
)

// Risk levels derived by thresholding a continuous risk percentage.
const (
	LevelLow     = "Low"
	LevelMedium  = "Medium"
	LevelHigh    = "High"
	LevelUnknown = "Unknown"
)

// Alzheimer severity buckets.
const (
	SeverityNormal   = "Normal"
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
	SeverityUnknown  = "Unknown"
)

// AlzheimerStrategy selects which fallback formula scores an Alzheimer
// vector. Two divergent formulas shipped in the original system; both are
// kept selectable.
type AlzheimerStrategy string

const (
	// StrategyBanded builds an additive score from discrete MMSE/age/
	// education/SES/volume bands. Default: it is the only formula whose
	// severity buckets cover all four levels.
	StrategyBanded AlzheimerStrategy = "banded"
	// StrategyContinuous is the weighted-sum formula with fixed
	// per-severity confidences. Kept for compatibility.
	StrategyContinuous AlzheimerStrategy = "continuous"
)

// HeartLabelVariant selects the presentation string for the medium band.
type HeartLabelVariant string

const (
	VariantHybrid HeartLabelVariant = "hybrid"
	VariantSimple HeartLabelVariant = "simple"
)

// ErrNonNumericFeature is returned when a feature payload contains values
// that cannot be interpreted as numbers. It is raised before any scoring
// arithmetic runs.
var ErrNonNumericFeature = errors.New("prediction payload must contain numeric values only")

// Assessment is the result of scoring one feature vector. Engines always
// return a well-formed Assessment; internal failures produce a degraded
// one instead of an error.
type Assessment struct {
	Prediction     string             `json:"prediction"`
	RiskPercentage float64            `json:"risk_percentage"`
	RiskLevel      string             `json:"risk_level"`
	SeverityLevel  string             `json:"severity_level,omitempty"`
	Confidence     float64            `json:"confidence"`
	Probabilities  map[string]float64 `json:"probabilities"`
	ModelUsed      string             `json:"model_used"`
	Individual     map[string]float64 `json:"individual_predictions,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
}

// Config carries the capability flags that used to live on module-level
// model singletons. Constructed once at process start.
type Config struct {
	// HasTrainedModel selects the trained path. No trained artifacts ship
	// with this system, so the flag is false in every deployment and the
	// rule-based path always executes.
	HasTrainedModel   bool
	AlzheimerStrategy AlzheimerStrategy
	HeartLabelVariant HeartLabelVariant
}

// Engine scores heart and Alzheimer feature vectors. It is stateless and
// safe for concurrent use.
type Engine struct {
	cfg Config
	log *zap.Logger
}

func NewEngine(cfg Config, log *zap.Logger) *Engine {
	if cfg.AlzheimerStrategy == "" {
		cfg.AlzheimerStrategy = StrategyBanded
	}
	if cfg.HeartLabelVariant == "" {
		cfg.HeartLabelVariant = VariantHybrid
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, log: log}
}

// ParseFeatures converts a decoded JSON array into a feature vector.
// Numbers and numeric strings are accepted; anything else fails with
// ErrNonNumericFeature before scoring begins.
func ParseFeatures(raw []any) ([]float64, error) {
	features := make([]float64, 0, len(raw))
	for i, v := range raw {
		switch x := v.(type) {
		case float64:
			features = append(features, x)
		case float32:
			features = append(features, float64(x))
		case int:
			features = append(features, float64(x))
		case int64:
			features = append(features, float64(x))
		case string:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil, fmt.Errorf("feature %d: %w", i, ErrNonNumericFeature)
			}
			features = append(features, f)
		default:
			return nil, fmt.Errorf("feature %d: %w", i, ErrNonNumericFeature)
		}
	}
	return features, nil
}

// normalizeVector repairs a wrong-length vector: shorter vectors are
// zero-padded on the right, longer ones truncated. Lossy, so the caller
// gets a warning string rather than an error.
func normalizeVector(features []float64, want int) ([]float64, string) {
	if len(features) == want {
		return features, ""
	}
	warning := fmt.Sprintf("expected %d features, got %d", want, len(features))
	out := make([]float64, want)
	copy(out, features)
	return out, warning
}

// normalizeProbs scales a probability breakdown so it sums to 100.
func normalizeProbs(probs map[string]float64) map[string]float64 {
	var total float64
	for _, p := range probs {
		total += p
	}
	if total <= 0 {
		return probs
	}
	out := make(map[string]float64, len(probs))
	for k, p := range probs {
		out[k] = round1(p / total * 100)
	}
	return out
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func riskLevelFor(pct float64) string {
	switch {
	case pct >= 70:
		return LevelHigh
	case pct >= 40:
		return LevelMedium
	default:
		return LevelLow
	}
}
