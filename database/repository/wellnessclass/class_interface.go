package classRepo

import (
	"urbanpilgrim/models"
)

// ClassRepository defines methods for wellness-guide-class data access.
type ClassRepository interface {
	// GetByID retrieves a class by its unique ID.
	GetByID(id string) (*models.WellnessClass, error)
	// GetByGuideID retrieves all classes created by a guide.
	GetByGuideID(guideID string) ([]models.WellnessClass, error)
	// GetByStatus retrieves classes in a given review status.
	GetByStatus(status string) ([]models.WellnessClass, error)
	// Create inserts a new class record.
	Create(class *models.WellnessClass) error
	// UpdateStatus moves a class through the admin-review workflow.
	UpdateStatus(id, status string) error
	// Delete removes a class record by its ID.
	Delete(id string) error
}
