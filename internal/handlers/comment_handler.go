package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sharespace/backend/internal/models"
	"github.com/sharespace/backend/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(protected *echo.Group) {
	protected.POST("/posts/:id/comments", h.AddComment)
	protected.GET("/posts/:id/comments", h.ListComments)
	protected.DELETE("/comments/:id", h.DeleteComment)
}

// AddComment creates a comment on a post
func (h *CommentHandler) AddComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	comment, err := h.commentService.AddComment(c.Request().Context(), c.Param("id"), callerID(c), req.Text)
	if err != nil {
		return aggregateError(err, "Post not found")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Comment added successfully",
		"comment": comment,
	})
}

// ListComments returns a post's comments, oldest first
func (h *CommentHandler) ListComments(c echo.Context) error {
	comments, err := h.commentService.ListComments(c.Request().Context(), c.Param("id"))
	if err != nil {
		return aggregateError(err, "Post not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Comments fetched successfully",
		"comments": comments,
	})
}

// DeleteComment deletes a comment owned by the caller
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	if err := h.commentService.DeleteComment(c.Request().Context(), c.Param("id"), callerID(c)); err != nil {
		return aggregateError(err, "Comment not found")
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Comment deleted successfully"})
}
