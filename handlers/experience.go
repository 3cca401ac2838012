package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceRepo "urbanpilgrim/database/repository/experience"
	"urbanpilgrim/models"
	"urbanpilgrim/utils"
)

// ExperienceHandler serves the pilgrim-experience catalog.
type ExperienceHandler struct {
	Repo experienceRepo.ExperienceRepository
}

func NewExperienceHandler(repo experienceRepo.ExperienceRepository) *ExperienceHandler {
	return &ExperienceHandler{Repo: repo}
}

// GetExperienceByID returns one experience wrapped in the envelope the web
// client expects: { "pilgrimExperience": ... }.
func (h *ExperienceHandler) GetExperienceByID(c *gin.Context) {
	exp, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	if exp == nil {
		utils.JSONError(c, http.StatusNotFound, "Experience not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"pilgrimExperience": exp})
}

// ListExperiences returns the full catalog.
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	exps, err := h.Repo.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pilgrimExperiences": exps})
}

// CreateExperience inserts a new experience (admin).
func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var exp models.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid experience payload", err.Error())
		return
	}
	if exp.ID == "" {
		exp.ID = uuid.New().String()
	}
	if err := h.Repo.Create(&exp); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"pilgrimExperience": exp})
}

// UpdateExperience replaces an experience document (admin).
func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	var exp models.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid experience payload", err.Error())
		return
	}
	exp.ID = c.Param("id")
	if err := h.Repo.Update(&exp); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"pilgrimExperience": exp})
}

// DeleteExperience removes an experience (admin).
func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	if err := h.Repo.Delete(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "experience deleted"})
}
