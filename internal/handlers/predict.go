package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/medware/medassist/internal/auth"
	"github.com/medware/medassist/internal/repository"
	"github.com/medware/medassist/internal/risk"
)

// Prediction payloads accept either named clinical fields or a raw
// "features" array (numbers or numeric strings). Named fields win the
// ambiguity: the array is only consulted when present.

type heartRequest struct {
	Age      float64 `json:"age"`
	Sex      float64 `json:"sex"`
	Cp       float64 `json:"cp"`
	Trestbps float64 `json:"trestbps"`
	Chol     float64 `json:"chol"`
	Fbs      float64 `json:"fbs"`
	Restecg  float64 `json:"restecg"`
	Thalach  float64 `json:"thalach"`
	Exang    float64 `json:"exang"`
	Oldpeak  float64 `json:"oldpeak"`
	Slope    float64 `json:"slope"`
	Ca       float64 `json:"ca"`
	Thal     float64 `json:"thal"`

	Features []any `json:"features"`
}

func (r heartRequest) vector() ([]float64, error) {
	if len(r.Features) > 0 {
		return risk.ParseFeatures(r.Features)
	}
	return []float64{
		r.Age, r.Sex, r.Cp, r.Trestbps, r.Chol, r.Fbs, r.Restecg,
		r.Thalach, r.Exang, r.Oldpeak, r.Slope, r.Ca, r.Thal,
	}, nil
}

type alzheimerRequest struct {
	Age  float64 `json:"age"`
	Educ float64 `json:"educ"`
	Ses  float64 `json:"ses"`
	MMSE float64 `json:"mmse"`
	ETIV float64 `json:"etiv"`
	NWBV float64 `json:"nwbv"`
	ASF  float64 `json:"asf"`

	Features []any `json:"features"`
}

func (r alzheimerRequest) vector() ([]float64, error) {
	if len(r.Features) > 0 {
		return risk.ParseFeatures(r.Features)
	}
	return []float64{r.Age, r.Educ, r.Ses, r.MMSE, r.ETIV, r.NWBV, r.ASF}, nil
}

func (s *Server) handlePredictHeart(c *gin.Context) {
	var req heartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prediction payload must contain numeric values only"})
		return
	}
	features, err := req.vector()
	if err != nil {
		s.respondFeatureError(c, err)
		return
	}
	assessment := s.Engine.ScoreHeart(features)
	s.finishPrediction(c, repository.PredictionHeart, assessment)
}

func (s *Server) handlePredictAlzheimer(c *gin.Context) {
	var req alzheimerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prediction payload must contain numeric values only"})
		return
	}
	features, err := req.vector()
	if err != nil {
		s.respondFeatureError(c, err)
		return
	}
	assessment := s.Engine.ScoreAlzheimer(features)
	s.finishPrediction(c, repository.PredictionAlzheimer, assessment)
}

func (s *Server) respondFeatureError(c *gin.Context, err error) {
	if errors.Is(err, risk.ErrNonNumericFeature) {
		c.JSON(http.StatusBadRequest, gin.H{"error": risk.ErrNonNumericFeature.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
}

// finishPrediction persists the assessment, fires notifications for
// high-risk results, and writes the response. Persistence problems are
// logged, never surfaced: the assessment itself already succeeded.
func (s *Server) finishPrediction(c *gin.Context, kind string, a risk.Assessment) {
	email := auth.CurrentEmail(c)
	ctx := c.Request.Context()

	if s.Predictions != nil {
		details, err := json.Marshal(a)
		if err != nil {
			s.logger().Warn("assessment marshal failed", zap.Error(err))
		}
		rec := &repository.Prediction{
			UserEmail:      email,
			Kind:           kind,
			Prediction:     a.Prediction,
			RiskLevel:      a.RiskLevel,
			RiskPercentage: a.RiskPercentage,
			Confidence:     a.Confidence,
			ModelUsed:      a.ModelUsed,
			Details:        details,
		}
		if err := s.Predictions.Insert(ctx, rec); err != nil {
			s.logger().Warn("prediction insert failed", zap.Error(err))
		}
	}

	if a.RiskLevel == risk.LevelHigh {
		if s.Hub != nil {
			s.Hub.NotifyUser(email, "high_risk_result", gin.H{
				"kind":            kind,
				"risk_percentage": a.RiskPercentage,
			})
			s.Hub.NotifyAdmins("high_risk_prediction", gin.H{
				"email": email,
				"kind":  kind,
			})
		}
		if s.Mailer != nil {
			if err := s.Mailer.SendHighRiskAlert(email, kind, a.RiskPercentage); err != nil {
				s.logger().Warn("high risk email failed", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"type":            kind,
		"prediction":      a.Prediction,
		"risk_percentage": a.RiskPercentage,
		"risk_level":      a.RiskLevel,
		"confidence":      a.Confidence,
		"model_used":      a.ModelUsed,
		"details":         a,
	})
}
