package repository

import (
	"github.com/synergyspace/idea-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// IdeaRepository defines the interface for idea data access
type IdeaRepository interface {
	// Create creates a new idea
	Create(idea *models.Idea) error

	// FindAll retrieves every idea, regardless of owner
	FindAll() ([]models.Idea, error)

	// FindByID finds an idea by ID
	FindByID(id uint) (*models.Idea, error)

	// Update replaces an idea record
	Update(idea *models.Idea) error

	// Delete removes an idea; it reports whether a record was deleted
	Delete(id uint) (bool, error)
}
