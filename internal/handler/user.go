package handler

import (
	"context"
	"net/http"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/errors"
	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type UserService interface {
	GetUserProfile(ctx context.Context, username string) (*models.UserProfile, error)
	FetchUserContributions(ctx context.Context, username string) (*models.UserContributions, error)
	FetchUserRecommendations(ctx context.Context, username string) (*models.UserRecommendations, error)
}

type UserHandler struct {
	service   UserService
	validator *validator.Validate
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *UserHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/users/{username}", h.getProfile).Methods("GET")
	r.HandleFunc("/users/{username}/contributions", h.getContributions).Methods("GET")
	r.HandleFunc("/users/{username}/recommendations", h.getRecommendations).Methods("GET")
}

// * GitHub logins are alphanumeric with single inner hyphens, at most 39 chars
func (h *UserHandler) username(r *http.Request) (string, error) {
	username := mux.Vars(r)["username"]
	if err := h.validator.Var(username, "required,max=39,hostname_rfc1123"); err != nil {
		return "", errors.BadRequest("Invalid GitHub username", err)
	}
	return username, nil
}

// getProfile godoc
// @Summary Get User Profile
// @Tags Users
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} models.UserProfile
// @Failure 400 {object} errors.HTTPErrorResponse
// @Failure 404 {object} errors.HTTPErrorResponse
// @Router /users/{username} [get]
func (h *UserHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	username, err := h.username(r)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	profile, err := h.service.GetUserProfile(r.Context(), username)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeSuccess(w, profile, "Successfully fetched user profile")
}

// getContributions godoc
// @Summary Get User Contributions
// @Description Commits, pull requests and issues the user authored in the organization
// @Tags Users
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} models.UserContributions
// @Failure 400 {object} errors.HTTPErrorResponse
// @Failure 422 {object} errors.HTTPErrorResponse
// @Router /users/{username}/contributions [get]
func (h *UserHandler) getContributions(w http.ResponseWriter, r *http.Request) {
	username, err := h.username(r)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	contributions, err := h.service.FetchUserContributions(r.Context(), username)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	logger.Info("Fetched contributions for %s: %d commits", username, contributions.TotalCommits)
	writeSuccess(w, contributions, "Successfully fetched user contributions")
}

// getRecommendations godoc
// @Summary Get User Recommendations
// @Description Issues and repositories matching the user's languages and stars
// @Tags Users
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} models.UserRecommendations
// @Failure 400 {object} errors.HTTPErrorResponse
// @Router /users/{username}/recommendations [get]
func (h *UserHandler) getRecommendations(w http.ResponseWriter, r *http.Request) {
	username, err := h.username(r)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	recs, err := h.service.FetchUserRecommendations(r.Context(), username)
	if err != nil {
		errors.WriteHTTPError(w, err)
		return
	}

	writeSuccess(w, recs, "Successfully fetched recommendations")
}
