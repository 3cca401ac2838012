package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	classRepo "urbanpilgrim/database/repository/wellnessclass"
	"urbanpilgrim/models"
	"urbanpilgrim/services/classwizard"
	"urbanpilgrim/services/storage"
	"urbanpilgrim/utils"
)

// ClassHandler serves wellness-guide classes: the one-shot multipart create
// endpoint the wizard submits to, the guide's own listing, and the admin
// review actions.
type ClassHandler struct {
	Repo    classRepo.ClassRepository
	Storage storage.StorageService
}

func NewClassHandler(repo classRepo.ClassRepository, store storage.StorageService) *ClassHandler {
	return &ClassHandler{Repo: repo, Storage: store}
}

// CreateClass accepts the documented multipart payload (scalar fields,
// JSON-stringified nested objects, up to 5 photo parts), validates the full
// draft, and creates the class once. Validation failures never partially
// persist anything.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart payload", err.Error())
		return
	}

	draft, photoFiles, err := classwizard.ParseClassForm(form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !classwizard.ValidateAll(draft) {
		utils.JSONError(c, http.StatusUnprocessableEntity, classwizard.IncompleteStepMessage, "")
		return
	}

	urls := make([]string, 0, len(photoFiles))
	for _, file := range photoFiles {
		dst := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
			return
		}
		_, url, err := h.Storage.UploadFile(c.Request.Context(), dst, "wellness-classes")
		os.Remove(dst)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Failed to upload photo", err.Error())
			return
		}
		urls = append(urls, url)
	}

	class := &models.WellnessClass{
		ID:        uuid.New().String(),
		GuideID:   c.GetString("userID"),
		Status:    models.ClassStatusPendingReview,
		Draft:     *draft,
		PhotoURLs: urls,
	}
	if err := h.Repo.Create(class); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"wellnessGuideClass": class})
}

// ListMyClasses returns the authenticated guide's classes.
func (h *ClassHandler) ListMyClasses(c *gin.Context) {
	classes, err := h.Repo.GetByGuideID(c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"wellnessGuideClasses": classes})
}

// GetClassByID returns one class.
func (h *ClassHandler) GetClassByID(c *gin.Context) {
	class, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	if class == nil {
		utils.JSONError(c, http.StatusNotFound, "Class not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"wellnessGuideClass": class})
}

// ListPendingClasses returns classes awaiting admin review.
func (h *ClassHandler) ListPendingClasses(c *gin.Context) {
	classes, err := h.Repo.GetByStatus(models.ClassStatusPendingReview)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"wellnessGuideClasses": classes})
}

// ReviewClass approves or rejects a pending class (admin).
func (h *ClassHandler) ReviewClass(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload", err.Error())
		return
	}
	if input.Status != models.ClassStatusApproved && input.Status != models.ClassStatusRejected {
		utils.JSONError(c, http.StatusBadRequest, "Status must be approved or rejected", "")
		return
	}

	if err := h.Repo.UpdateStatus(c.Param("id"), input.Status); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "class " + input.Status})
}

func (h *ClassHandler) respondError(c *gin.Context, err error) {
	var wErr *classwizard.WizardError
	if errors.As(err, &wErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, wErr.Message, "")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
}
