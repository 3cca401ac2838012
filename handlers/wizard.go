package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"urbanpilgrim/models"
	"urbanpilgrim/services/classwizard"
	"urbanpilgrim/utils"
)

// WizardHandler exposes the class-creation wizard over HTTP. The wizard state
// lives in Redis; every endpoint loads, transitions, and saves one session.
type WizardHandler struct {
	Service classwizard.WizardService
}

func NewWizardHandler(svc classwizard.WizardService) *WizardHandler {
	return &WizardHandler{Service: svc}
}

// StartWizard creates a fresh session at step 1 for the authenticated guide.
func (h *WizardHandler) StartWizard(c *gin.Context) {
	guideID := c.GetString("userID")
	session, err := h.Service.StartSession(guideID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetWizard returns the live session.
func (h *WizardHandler) GetWizard(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateDraft replaces the session's draft with the edited one.
func (h *WizardHandler) UpdateDraft(c *gin.Context) {
	var draft models.ClassDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid draft payload", err.Error())
		return
	}

	session, err := h.Service.UpdateDraft(c.Param("sessionID"), draft)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// NextStep advances the wizard if the current step validates. A blocked step
// is not an HTTP error: the session comes back with its error message set and
// the step unchanged.
func (h *WizardHandler) NextStep(c *gin.Context) {
	session, err := h.Service.Next(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// PrevStep moves back one step.
func (h *WizardHandler) PrevStep(c *gin.Context) {
	session, err := h.Service.Prev(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UploadPhotos stages a batch of photos for the session. A batch that would
// exceed the cap is rejected whole before anything is uploaded.
func (h *WizardHandler) UploadPhotos(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid multipart payload", err.Error())
		return
	}

	files := form.File["photos"]
	if len(files) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "No photos in request", "")
		return
	}

	paths := make([]string, 0, len(files))
	defer func() {
		for _, p := range paths {
			os.Remove(p)
		}
	}()
	for _, file := range files {
		dst := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, dst); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
			return
		}
		paths = append(paths, dst)
	}

	session, err := h.Service.StagePhotos(c.Request.Context(), c.Param("sessionID"), paths)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitWizard performs the one-shot class creation from the final step.
func (h *WizardHandler) SubmitWizard(c *gin.Context) {
	class, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"wellnessGuideClass": class})
}

// ResetWizard returns the session to step 1 for another class.
func (h *WizardHandler) ResetWizard(c *gin.Context) {
	session, err := h.Service.Reset(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *WizardHandler) respondError(c *gin.Context, err error) {
	var wErr *classwizard.WizardError
	if errors.As(err, &wErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, wErr.Message, "")
		return
	}
	utils.GetLogger().Error("wizard handler failure: " + err.Error())
	utils.JSONError(c, http.StatusInternalServerError, utils.GenericErrorMessage, err.Error())
}
