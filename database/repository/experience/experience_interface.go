package experienceRepo

import (
	"urbanpilgrim/models"
)

// ExperienceRepository defines methods for pilgrim-experience data access.
type ExperienceRepository interface {
	// GetByID retrieves an experience by its unique ID.
	GetByID(id string) (*models.Experience, error)
	// GetAll retrieves all experiences.
	GetAll() ([]models.Experience, error)
	// Create inserts a new experience record.
	Create(exp *models.Experience) error
	// Update modifies an existing experience record.
	Update(exp *models.Experience) error
	// Delete removes an experience record by its ID.
	Delete(id string) error
}
