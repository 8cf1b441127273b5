package risk

import (
	"math"
	"reflect"
	"testing"
)

func newTestEngine(cfg Config) *Engine {
	return NewEngine(cfg, nil)
}

func TestScoreHeart_HighRiskVector(t *testing.T) {
	e := newTestEngine(Config{})
	got := e.ScoreHeart([]float64{70, 1, 3, 165, 310, 1, 1, 140, 1, 2.5, 2, 2, 3})

	if got.RiskPercentage != 95 {
		t.Fatalf("expected capped 95%%, got %v", got.RiskPercentage)
	}
	if got.RiskLevel != LevelHigh {
		t.Fatalf("expected High risk, got %s", got.RiskLevel)
	}
	if got.Prediction != "Heart Disease Detected" {
		t.Fatalf("unexpected label: %s", got.Prediction)
	}
	if got.Confidence != 0.85 {
		t.Fatalf("expected fixed 0.85 confidence, got %v", got.Confidence)
	}
}

func TestScoreHeart_HealthyVector(t *testing.T) {
	e := newTestEngine(Config{})
	got := e.ScoreHeart([]float64{30, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	if got.RiskPercentage != 0 {
		t.Fatalf("expected 0%% risk, got %v", got.RiskPercentage)
	}
	if got.RiskLevel != LevelLow || got.Prediction != "No Heart Disease" {
		t.Fatalf("expected low/no-disease, got %+v", got)
	}
}

func TestScoreHeart_SimpleVariantMediumLabel(t *testing.T) {
	e := newTestEngine(Config{HeartLabelVariant: VariantSimple})
	// score 9: age 60 (+2), cp 3, bp 150 (+2), exang (+2) → 45%, Medium.
	got := e.ScoreHeart([]float64{60, 0, 3, 150, 0, 0, 0, 0, 1, 0, 0, 0, 0})

	if got.RiskLevel != LevelMedium {
		t.Fatalf("expected Medium risk, got %s (%v%%)", got.RiskLevel, got.RiskPercentage)
	}
	if got.Prediction != "Moderate Risk of Heart Disease" {
		t.Fatalf("expected simple-variant medium label, got %s", got.Prediction)
	}
}

func TestScoreHeart_ShortVectorPadded(t *testing.T) {
	e := newTestEngine(Config{})
	got := e.ScoreHeart([]float64{70, 1})

	if len(got.Warnings) == 0 {
		t.Fatal("expected a normalization warning for short vector")
	}
	if got.RiskLevel == "" || got.Prediction == "" {
		t.Fatalf("padded vector should still score fully: %+v", got)
	}
}

func TestScoreHeart_LongVectorTruncated(t *testing.T) {
	e := newTestEngine(Config{})
	long := make([]float64, 20)
	long[0] = 30
	got := e.ScoreHeart(long)

	if len(got.Warnings) == 0 {
		t.Fatal("expected a normalization warning for long vector")
	}
	if got.RiskPercentage != 0 {
		t.Fatalf("extra fields must not contribute, got %v%%", got.RiskPercentage)
	}
}

func TestScoreHeart_NotTrainedPath(t *testing.T) {
	e := newTestEngine(Config{HasTrainedModel: true})
	got := e.ScoreHeart([]float64{70, 1, 3, 165, 310, 1, 1, 140, 1, 2.5, 2, 2, 3})

	if got.ModelUsed != "Not Trained" || got.RiskLevel != LevelUnknown {
		t.Fatalf("expected explicit not-trained result, got %+v", got)
	}
}

func TestScoreAlzheimer_BandedSevere(t *testing.T) {
	e := newTestEngine(Config{AlzheimerStrategy: StrategyBanded})
	got := e.ScoreAlzheimer([]float64{85, 6, 1, 8, 1600, 0.65, 1.0})

	if got.RiskPercentage != 95 {
		t.Fatalf("expected capped 95%%, got %v", got.RiskPercentage)
	}
	if got.RiskLevel != LevelHigh || got.SeverityLevel != SeveritySevere {
		t.Fatalf("expected High/Severe, got %s/%s", got.RiskLevel, got.SeverityLevel)
	}
	if got.Prediction != "Severe Alzheimer's Disease" {
		t.Fatalf("unexpected label: %s", got.Prediction)
	}
	if got.Confidence != 85.0 {
		t.Fatalf("expected fixed 85.0 confidence, got %v", got.Confidence)
	}
}

func TestScoreAlzheimer_BandedNormal(t *testing.T) {
	e := newTestEngine(Config{})
	got := e.ScoreAlzheimer([]float64{55, 16, 4, 29, 1400, 0.8, 1.0})

	if got.SeverityLevel != SeverityNormal || got.RiskLevel != LevelLow {
		t.Fatalf("expected Normal/Low, got %s/%s", got.SeverityLevel, got.RiskLevel)
	}
	if got.Prediction != "No Alzheimer's Disease" {
		t.Fatalf("unexpected label: %s", got.Prediction)
	}
}

func TestScoreAlzheimer_ContinuousStrategy(t *testing.T) {
	e := newTestEngine(Config{AlzheimerStrategy: StrategyContinuous})
	// score = 85*0.04 + 1*8 + (30-8)*3 + (1-0.65)*60 + 1*30 = 128.4 → Severe.
	got := e.ScoreAlzheimer([]float64{85, 6, 1, 8, 1600, 0.65, 1.0})

	if got.SeverityLevel != SeveritySevere {
		t.Fatalf("expected Severe, got %s", got.SeverityLevel)
	}
	if got.Confidence != 0.89 || got.RiskPercentage != 85 || got.RiskLevel != LevelHigh {
		t.Fatalf("expected fixed Severe outputs, got %+v", got)
	}
	if len(got.Individual) != 3 {
		t.Fatalf("expected per-model breakdown, got %v", got.Individual)
	}
}

func TestScoreAlzheimer_ContinuousNeverModerate(t *testing.T) {
	e := newTestEngine(Config{AlzheimerStrategy: StrategyContinuous})
	vectors := [][]float64{
		{60, 12, 2, 30, 1400, 0.9, 0.9},
		{75, 10, 3, 20, 1500, 0.75, 1.1},
		{90, 4, 5, 0, 1700, 0.5, 1.3},
	}
	for _, v := range vectors {
		got := e.ScoreAlzheimer(v)
		if got.SeverityLevel == SeverityModerate {
			t.Fatalf("continuous strategy produced Moderate for %v", v)
		}
	}
}

func TestProbabilitiesSumTo100(t *testing.T) {
	vectors := [][]float64{
		{70, 1, 3, 165, 310, 1, 1, 140, 1, 2.5, 2, 2, 3},
		{30, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	e := newTestEngine(Config{})
	for _, v := range vectors {
		checkProbSum(t, e.ScoreHeart(v))
	}

	alz := [][]float64{
		{85, 6, 1, 8, 1600, 0.65, 1.0},
		{72, 14, 3, 21, 1450, 0.72, 1.1},
		{65, 12, 2, 26, 1300, 0.75, 1.0},
		{55, 16, 4, 29, 1400, 0.8, 1.0},
	}
	for _, strategy := range []AlzheimerStrategy{StrategyBanded, StrategyContinuous} {
		e := newTestEngine(Config{AlzheimerStrategy: strategy})
		for _, v := range alz {
			checkProbSum(t, e.ScoreAlzheimer(v))
		}
	}
}

func checkProbSum(t *testing.T, a Assessment) {
	t.Helper()
	var sum float64
	for _, p := range a.Probabilities {
		sum += p
	}
	if math.Abs(sum-100) > 0.2 {
		t.Fatalf("probabilities sum to %v, want 100±0.2 (%+v)", sum, a)
	}
}

func TestScoreIdempotent(t *testing.T) {
	e := newTestEngine(Config{})
	v := []float64{70, 1, 3, 165, 310, 1, 1, 140, 1, 2.5, 2, 2, 3}
	first := e.ScoreHeart(v)
	second := e.ScoreHeart(v)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated scoring diverged:\n%+v\n%+v", first, second)
	}

	a := []float64{85, 6, 1, 8, 1600, 0.65, 1.0}
	if !reflect.DeepEqual(e.ScoreAlzheimer(a), e.ScoreAlzheimer(a)) {
		t.Fatal("repeated alzheimer scoring diverged")
	}
}

func TestParseFeatures(t *testing.T) {
	got, err := ParseFeatures([]any{float64(70), "2.5", 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{70, 2.5, 1}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseFeatures([]any{"seventy"}); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
	if _, err := ParseFeatures([]any{true}); err == nil {
		t.Fatal("expected error for boolean feature")
	}
}
