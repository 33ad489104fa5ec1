package handlers

import (
	"net/http"

	"chalee-api/internal/application/dto"
	"chalee-api/internal/application/service"

	"github.com/gin-gonic/gin"
)

// RepositoryHandler handles GitHub repository proxy requests
type RepositoryHandler struct {
	repositoryService *service.RepositoryService
	errors            *ErrorWriter
}

// NewRepositoryHandler creates a new repository handler
func NewRepositoryHandler(repositoryService *service.RepositoryService, errors *ErrorWriter) *RepositoryHandler {
	return &RepositoryHandler{
		repositoryService: repositoryService,
		errors:            errors,
	}
}

// ListUserRepositories handles GET /api/github/users/:username/repos
// @Summary List a user's repositories
// @Description Returns one page of a GitHub user's public repositories
// @Tags GitHub
// @Produce json
// @Param username path string true "GitHub username"
// @Param per_page query int false "Items per page (1-100)" default(30)
// @Param page query int false "Page number" default(1)
// @Param sort query string false "Sort key" Enums(created, updated, pushed, full_name) default(updated)
// @Param direction query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} dto.RepositoryListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/github/users/{username}/repos [get]
func (h *RepositoryHandler) ListUserRepositories(c *gin.Context) {
	if err := checkQueryKeys(c, "per_page", "page", "sort", "direction"); err != nil {
		h.errors.BadRequest(c, err.Error(), nil)
		return
	}

	var query dto.ListRepositoriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errors.BadRequest(c, "Invalid query parameters", err)
		return
	}

	response, err := h.repositoryService.ListUserRepositories(c.Request.Context(), c.Param("username"), &query)
	if err != nil {
		h.errors.Respond(c, "list user repositories", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetRepository handles GET /api/github/repos/:username/:repo
// @Summary Get repository details
// @Description Returns a single GitHub repository
// @Tags GitHub
// @Produce json
// @Param username path string true "GitHub username"
// @Param repo path string true "Repository name"
// @Success 200 {object} dto.RepositoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/github/repos/{username}/{repo} [get]
func (h *RepositoryHandler) GetRepository(c *gin.Context) {
	response, err := h.repositoryService.GetRepository(c.Request.Context(), c.Param("username"), c.Param("repo"))
	if err != nil {
		h.errors.Respond(c, "get repository", err)
		return
	}

	c.JSON(http.StatusOK, response)
}
