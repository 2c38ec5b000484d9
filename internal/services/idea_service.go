package services

import (
	"errors"
	"fmt"

	"github.com/synergyspace/idea-api/internal/models"
	"github.com/synergyspace/idea-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrIdeaNotFound  = errors.New("idea not found")
	ErrInvalidStatus = errors.New("invalid idea status")
)

// IdeaService handles idea CRUD. It performs no ownership checks; callers are
// responsible for enforcing ownership before update and delete.
type IdeaService struct {
	ideaRepo repository.IdeaRepository
}

// NewIdeaService creates a new IdeaService.
func NewIdeaService(ideaRepo repository.IdeaRepository) *IdeaService {
	return &IdeaService{
		ideaRepo: ideaRepo,
	}
}

// Create persists a new idea. The caller is expected to have set OwnerID to
// the authenticated principal already.
func (s *IdeaService) Create(idea *models.Idea) error {
	if idea.Status == "" {
		idea.Status = models.IdeaStatusDraft
	}
	if !idea.Status.Valid() {
		return ErrInvalidStatus
	}
	if idea.Tags == nil {
		idea.Tags = models.TagList{}
	}

	if err := s.ideaRepo.Create(idea); err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}
	return nil
}

// List returns every idea, unfiltered by owner.
func (s *IdeaService) List() ([]models.Idea, error) {
	ideas, err := s.ideaRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return ideas, nil
}

// Get retrieves an idea by ID.
func (s *IdeaService) Get(id uint) (*models.Idea, error) {
	idea, err := s.ideaRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdeaNotFound
		}
		return nil, fmt.Errorf("failed to find idea: %w", err)
	}
	return idea, nil
}

// Update replaces the mutable fields of an idea record.
func (s *IdeaService) Update(idea *models.Idea) error {
	if !idea.Status.Valid() {
		return ErrInvalidStatus
	}
	if idea.Tags == nil {
		idea.Tags = models.TagList{}
	}

	if err := s.ideaRepo.Update(idea); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIdeaNotFound
		}
		return fmt.Errorf("failed to update idea: %w", err)
	}
	return nil
}

// Delete removes an idea by ID.
func (s *IdeaService) Delete(id uint) error {
	deleted, err := s.ideaRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete idea: %w", err)
	}
	if !deleted {
		return ErrIdeaNotFound
	}
	return nil
}
