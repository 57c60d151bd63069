// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nileplate/v1/internal/infrastructure/monitoring"
	"github.com/nileplate/v1/internal/ports/inbound"
	"github.com/nileplate/v1/pkg/errors"
)

// PlannerHandlers handles meal-plan REST API requests
type PlannerHandlers struct {
	plannerService inbound.PlannerService
	metrics        *monitoring.MetricsCollector
	logger         *zap.Logger
}

// NewPlannerHandlers creates a new planner handlers instance
func NewPlannerHandlers(
	plannerService inbound.PlannerService,
	metrics *monitoring.MetricsCollector,
	logger *zap.Logger,
) *PlannerHandlers {
	return &PlannerHandlers{
		plannerService: plannerService,
		metrics:        metrics,
		logger:         logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// generatePlanRequest is the POST body for plan generation. All override
// fields are optional; zero values fall back to the planning profile.
type generatePlanRequest struct {
	UserID             string  `json:"user_id"`
	TargetCalories     int     `json:"target_calories,omitempty"`
	DailyBudget        float64 `json:"daily_budget,omitempty"`
	MealsCount         int     `json:"meals_count,omitempty"`
	IncludeUserRecipes bool    `json:"include_user_recipes,omitempty"`
}

// GeneratePlan handles POST /api/v1/plan/generate
func (h *PlannerHandlers) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req generatePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("Invalid JSON body"))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.writeError(w, r, errors.NewValidationError("user_id must be a valid UUID"))
		return
	}

	start := time.Now()
	plan, err := h.plannerService.GeneratePlan(r.Context(), inbound.GeneratePlanCommand{
		UserID:             userID,
		TargetCalories:     req.TargetCalories,
		DailyBudget:        req.DailyBudget,
		MealsCount:         req.MealsCount,
		IncludeUserRecipes: req.IncludeUserRecipes,
	})
	if err != nil {
		if errors.Is(err, errors.CodePlanInfeasible) {
			h.metrics.RecordPlanInfeasible()
		}
		h.writeError(w, r, err)
		return
	}

	h.metrics.RecordPlanGenerated(plan.Strategy, plan.TotalCalories-plan.TargetCalories, time.Since(start))

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    plan,
	})
}

// ListCompositeMeals handles GET /api/v1/catalog/meals
func (h *PlannerHandlers) ListCompositeMeals(w http.ResponseWriter, r *http.Request) {
	meals, err := h.plannerService.ListCompositeMeals(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    meals,
	})
}

// GetMealNutrition handles GET /api/v1/catalog/meals/{key}/nutrition.
// The optional weight query parameter selects a serving weight in grams.
func (h *PlannerHandlers) GetMealNutrition(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		h.writeError(w, r, errors.NewValidationError("meal key is required"))
		return
	}

	weight := 0
	if raw := r.URL.Query().Get("weight"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, errors.NewValidationError("weight must be an integer number of grams"))
			return
		}
		weight = parsed
	}

	nutrition, err := h.plannerService.ComputeMealNutrition(r.Context(), key, weight)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    nutrition,
	})
}

// writeJSON writes a JSON response
func (h *PlannerHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps application errors onto HTTP status codes and the
// structured error envelope
func (h *PlannerHandlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := errors.Wrap(err, "Request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", string(appErr.Code)),
			zap.Error(appErr),
		)
	} else {
		h.logger.Debug("Request rejected",
			zap.String("path", r.URL.Path),
			zap.String("code", string(appErr.Code)),
		)
	}

	requestID := chimiddleware.GetReqID(r.Context())
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
