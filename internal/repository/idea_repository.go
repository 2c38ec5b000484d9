package repository

import (
	"github.com/synergyspace/idea-api/internal/models"
	"gorm.io/gorm"
)

// GormIdeaRepository is a GORM implementation of IdeaRepository
type GormIdeaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new IdeaRepository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &GormIdeaRepository{db: db}
}

// Create creates a new idea
func (r *GormIdeaRepository) Create(idea *models.Idea) error {
	return r.db.Create(idea).Error
}

// FindAll retrieves every idea, regardless of owner
func (r *GormIdeaRepository) FindAll() ([]models.Idea, error) {
	var ideas []models.Idea
	if err := r.db.Order("ideas.id").Find(&ideas).Error; err != nil {
		return nil, err
	}
	return ideas, nil
}

// FindByID finds an idea by ID
func (r *GormIdeaRepository) FindByID(id uint) (*models.Idea, error) {
	var idea models.Idea
	if err := r.db.First(&idea, id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// Update replaces an idea record
func (r *GormIdeaRepository) Update(idea *models.Idea) error {
	return r.db.Save(idea).Error
}

// Delete removes an idea; it reports whether a record was deleted
func (r *GormIdeaRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Idea{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
