package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sharespace/backend/internal/models"
	"github.com/sharespace/backend/internal/services"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes. Listing the feed is
// public; everything else requires a bearer token.
func (h *PostHandler) RegisterPostRoutes(public, protected *echo.Group) {
	public.GET("/posts", h.ListPosts)
	protected.POST("/posts", h.CreatePost)
	protected.GET("/posts/:id", h.GetPost)
	protected.DELETE("/posts/:id", h.DeletePost)
	protected.POST("/posts/:id/like", h.ToggleLike)
}

// CreatePost creates a new post authored by the caller
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	post, err := h.postService.CreatePost(c.Request().Context(), callerID(c), req.Content, req.ImageURL)
	if err != nil {
		return aggregateError(err, "Post not found")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// ListPosts returns the feed, newest first
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postService.ListPosts(c.Request().Context())
	if err != nil {
		return aggregateError(err, "Post not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Posts fetched successfully",
		"posts":   posts,
	})
}

// GetPost retrieves a post by id
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postService.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return aggregateError(err, "Post not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Post fetched successfully",
		"post":    post,
	})
}

// DeletePost deletes a post owned by the caller and cascades to its comments
func (h *PostHandler) DeletePost(c echo.Context) error {
	if err := h.postService.DeletePost(c.Request().Context(), c.Param("id"), callerID(c)); err != nil {
		return aggregateError(err, "Post not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Post deleted successfully"})
}

// ToggleLike flips the caller's kindness on a post
func (h *PostHandler) ToggleLike(c echo.Context) error {
	post, liked, err := h.postService.ToggleLike(c.Request().Context(), c.Param("id"), callerID(c))
	if err != nil {
		return aggregateError(err, "Post not found")
	}

	message := "Kindness removed"
	if liked {
		message = "Kindness added"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message": message,
		"post":    post,
	})
}
