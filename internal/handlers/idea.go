package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/synergyspace/idea-api/internal/constants"
	apierrors "github.com/synergyspace/idea-api/internal/errors"
	"github.com/synergyspace/idea-api/internal/middleware"
	"github.com/synergyspace/idea-api/internal/models"
	"github.com/synergyspace/idea-api/internal/services"
)

// IdeaHandler coordinates idea CRUD HTTP handlers.
type IdeaHandler struct {
	ideaService *services.IdeaService
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(ideaService *services.IdeaService) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// IdeaRequest is the request body for creating or replacing an idea. Any
// client-supplied ownerId is ignored; ownership always comes from the token.
type IdeaRequest struct {
	Title       string            `json:"title" binding:"required"`
	Description string            `json:"description"`
	Tags        []string          `json:"tags"`
	Category    string            `json:"category"`
	Status      models.IdeaStatus `json:"status"`
}

// CreateIdea creates a new idea owned by the authenticated principal.
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	principal, exists := middleware.GetPrincipal(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idea := models.Idea{
		OwnerID:     principal.UserID,
		Title:       req.Title,
		Description: req.Description,
		Tags:        models.TagList(req.Tags),
		Category:    req.Category,
		Status:      req.Status,
	}

	if err := h.ideaService.Create(&idea); err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusCreated, idea)
}

// ListIdeas returns every idea. The list is intentionally not filtered by
// owner; any authenticated caller sees the whole board.
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	ideas, err := h.ideaService.List()
	if err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// GetIdea returns a specific idea by ID.
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apierrors.BadRequest(c, "Invalid idea ID")
		return
	}

	idea, err := h.ideaService.Get(uint(id))
	if err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// UpdateIdea replaces the mutable fields of an idea. The record is loaded and
// ownership-checked by the RequireIdeaOwner middleware; createdAt and ownerId
// are taken from the stored record, never from the request body.
func (h *IdeaHandler) UpdateIdea(c *gin.Context) {
	idea, exists := ideaFromContext(c)
	if !exists {
		apierrors.InternalError(c, "Idea not found in context")
		return
	}

	var req IdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	idea.Title = req.Title
	idea.Description = req.Description
	idea.Tags = models.TagList(req.Tags)
	idea.Category = req.Category
	idea.Status = req.Status
	if idea.Status == "" {
		idea.Status = models.IdeaStatusDraft
	}

	if err := h.ideaService.Update(&idea); err != nil {
		respondIdeaError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// DeleteIdea removes an idea. Ownership was already enforced by middleware.
func (h *IdeaHandler) DeleteIdea(c *gin.Context) {
	idea, exists := ideaFromContext(c)
	if !exists {
		apierrors.InternalError(c, "Idea not found in context")
		return
	}

	if err := h.ideaService.Delete(idea.ID); err != nil {
		respondIdeaError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func ideaFromContext(c *gin.Context) (models.Idea, bool) {
	value, exists := c.Get(constants.ContextKeyIdea)
	if !exists {
		return models.Idea{}, false
	}

	idea, ok := value.(models.Idea)
	return idea, ok
}

func respondIdeaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrIdeaNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
