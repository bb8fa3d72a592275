package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Skufu/multidisease/internal/disease"
	"github.com/Skufu/multidisease/internal/model"
	"github.com/Skufu/multidisease/internal/predict"
	"github.com/Skufu/multidisease/internal/store"
)

type handlers struct {
	predictor *predict.Service
	logger    *logrus.Logger
}

// PredictRequest carries the essential inputs keyed by feature name.
type PredictRequest struct {
	Inputs map[string]float64 `json:"inputs" binding:"required"`
}

type diseaseView struct {
	disease.Disease
	Model *model.Info `json:"model,omitempty"`
}

func (h *handlers) listDiseases(c *gin.Context) {
	infos := h.predictor.Registry().Infos()

	out := make([]diseaseView, 0, 3)
	for _, d := range disease.All() {
		v := diseaseView{Disease: d}
		if info, ok := infos[d.ID]; ok {
			v.Model = &info
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, gin.H{
		"title":    "Multiple Disease Prediction System",
		"diseases": out,
	})
}

func (h *handlers) predict(c *gin.Context) {
	d, err := disease.Lookup(c.Param("disease"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown disease", "details": err.Error()})
		return
	}

	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "payload too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := disease.Validate(d.Spec, req.Inputs); err != nil {
		var verrs disease.ValidationErrors
		errors.As(err, &verrs)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation_failed",
			"message": err.Error(),
			"details": verrs,
		})
		return
	}

	diag := h.predictor.Predict(c.Request.Context(), d, req.Inputs)
	c.JSON(http.StatusOK, diag)
}

func (h *handlers) history(c *gin.Context) {
	var id disease.ID
	if raw := c.Query("disease"); raw != "" {
		d, err := disease.Lookup(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown disease", "details": err.Error()})
			return
		}
		id = d.ID
	}

	limit := store.DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	records, err := h.predictor.History(c.Request.Context(), id, limit)
	if errors.Is(err, store.ErrDisabled) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("failed to load prediction history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "history unavailable"})
		return
	}
	if records == nil {
		records = []store.Prediction{}
	}
	c.JSON(http.StatusOK, gin.H{"predictions": records})
}
