package handlers

import (
	"net/http"
	"strconv"

	"chalee-api/internal/application/dto"
	"chalee-api/internal/application/service"

	"github.com/gin-gonic/gin"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService *service.PostService
	errors      *ErrorWriter
}

// NewPostHandler creates a new post handler
func NewPostHandler(postService *service.PostService, errors *ErrorWriter) *PostHandler {
	return &PostHandler{
		postService: postService,
		errors:      errors,
	}
}

// CreatePost handles POST /api/posts
// @Summary Create a new post
// @Description Creates a post; the slug is lower-cased and whitespace runs become "-"
// @Tags Posts
// @Accept json
// @Produce json
// @Param post body dto.CreatePostRequest true "Post data"
// @Success 201 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, "Invalid request body", err)
		return
	}

	response, err := h.postService.Create(c.Request.Context(), &req)
	if err != nil {
		h.errors.Respond(c, "create post", err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListPosts handles GET /api/posts
// @Summary List posts
// @Description Returns a filtered, sorted page of posts
// @Tags Posts
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (1-100)" default(10)
// @Param search query string false "Case-insensitive match on title, content and summary"
// @Param published query bool false "Only posts with this publication state"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, title) default(createdAt)
// @Param sortOrder query string false "Sort direction" Enums(asc, desc) default(desc)
// @Success 200 {object} dto.PostListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	if err := checkQueryKeys(c, "page", "limit", "search", "published", "sortBy", "sortOrder"); err != nil {
		h.errors.BadRequest(c, err.Error(), nil)
		return
	}

	var query dto.ListPostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errors.BadRequest(c, "Invalid query parameters", err)
		return
	}

	response, err := h.postService.List(c.Request.Context(), &query)
	if err != nil {
		h.errors.Respond(c, "list posts", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPostStats handles GET /api/posts/stats
// @Summary Post statistics
// @Description Returns post counters and the five newest posts
// @Tags Posts
// @Produce json
// @Success 200 {object} dto.PostStatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/posts/stats [get]
func (h *PostHandler) GetPostStats(c *gin.Context) {
	response, err := h.postService.Stats(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, "get post stats", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a post by ID
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	response, err := h.postService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, "get post", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetPostBySlug handles GET /api/posts/slug/:slug
// @Summary Get a post by slug
// @Tags Posts
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/slug/{slug} [get]
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	response, err := h.postService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.errors.Respond(c, "get post by slug", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update a post
// @Description Applies a partial update; omitted fields are unchanged
// @Tags Posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param post body dto.UpdatePostRequest true "Fields to change"
// @Success 200 {object} dto.PostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/posts/{id} [put]
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BadRequest(c, "Invalid request body", err)
		return
	}

	response, err := h.postService.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.errors.Respond(c, "update post", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// PublishPost handles PATCH /api/posts/:id/publish
// @Summary Publish a post
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/{id}/publish [patch]
func (h *PostHandler) PublishPost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	response, err := h.postService.Publish(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, "publish post", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// UnpublishPost handles PATCH /api/posts/:id/unpublish
// @Summary Unpublish a post
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} dto.PostResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/{id}/unpublish [patch]
func (h *PostHandler) UnpublishPost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	response, err := h.postService.Unpublish(c.Request.Context(), id)
	if err != nil {
		h.errors.Respond(c, "unpublish post", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete a post
// @Tags Posts
// @Param id path int true "Post ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /api/posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		h.errors.Respond(c, "delete post", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path segment, writing a 400 when it is not an integer
func (h *PostHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.errors.BadRequest(c, "Validation failed (numeric string is expected)", err)
		return 0, false
	}
	return id, true
}
