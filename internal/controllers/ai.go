package controllers

import (
	"log/slog"
	"net/http"

	"gamecatalog/internal/models"

	json "github.com/goccy/go-json"
)

type Recommender interface {
	Moods() []string
	Recommend(req models.RecommendationRequest) ([]models.Recommendation, error)
}

type RecommendResponse struct {
	Mood            string                  `json:"mood"`
	Recommendations []models.Recommendation `json:"recommendations"`
	Count           int                     `json:"count"`
}

type AIController struct {
	service Recommender
	log     *slog.Logger
}

func NewAIController(s Recommender, log *slog.Logger) *AIController {
	return &AIController{
		service: s,
		log:     log,
	}
}

func (c *AIController) GetMoods(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, c.log, http.StatusOK, map[string][]string{"moods": c.service.Moods()})
}

func (c *AIController) Recommend(w http.ResponseWriter, r *http.Request) {
	const op = "controllers.ai.Recommend"

	var request models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondError(w, c.log, http.StatusBadRequest, "invalid request body")
		return
	}

	if request.Mood == "" {
		respondJSON(w, c.log, http.StatusBadRequest, map[string]any{
			"error":          "mood is required",
			"availableMoods": c.service.Moods(),
		})
		return
	}

	recommendations, err := c.service.Recommend(request)
	if err != nil {
		c.log.Error(ErrRecommend.Error(),
			slog.String("operation", op),
			slog.String("mood", request.Mood),
			slog.String("error", err.Error()))
		respondError(w, c.log, http.StatusInternalServerError, ErrRecommend.Error())
		return
	}

	respondJSON(w, c.log, http.StatusOK, RecommendResponse{
		Mood:            request.Mood,
		Recommendations: recommendations,
		Count:           len(recommendations),
	})
}
