package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sharespace/backend/internal/models"
	"github.com/sharespace/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxCommentTextLength bounds comment text after trimming.
const MaxCommentTextLength = 300

// CommentService owns the comment aggregate: validation against the
// parent post and maintenance of the post's comment-id list.
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
	users    repositories.UserRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository, users repositories.UserRepository) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
		users:    users,
	}
}

// AddComment validates and persists a comment on an existing post, then
// appends its id to the parent. The two writes are sequential, not
// transactional: a failed append leaves the comment orphaned and
// surfaces the error to the caller.
func (s *CommentService) AddComment(ctx context.Context, postID, authorID, text string) (*models.CommentResponse, error) {
	post, err := s.posts.GetPostByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if utf8.RuneCountInString(text) > MaxCommentTextLength {
		return nil, models.NewValidationError("Text must be 300 characters or fewer")
	}

	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID: author.ID,
		PostID: post.ID,
		Text:   text,
	}
	if err := s.comments.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	if err := s.posts.PushCommentID(ctx, postID, comment.ID); err != nil {
		return nil, err
	}

	return comment.Response(author.Summary()), nil
}

// ListComments returns all comments on an existing post, oldest first,
// with author summaries joined in
func (s *CommentService) ListComments(ctx context.Context, postID string) ([]*models.CommentResponse, error) {
	if _, err := s.posts.GetPostByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, err := s.comments.GetCommentsByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(comments))
	seen := make(map[primitive.ObjectID]bool, len(comments))
	for _, c := range comments {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			authorIDs = append(authorIDs, c.UserID)
		}
	}
	authors, err := s.users.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, comments[i].Response(summaryFor(authors, comments[i].UserID)))
	}
	return responses, nil
}

// DeleteComment removes a comment owned by callerID and pulls its id
// from the parent post's comment list.
func (s *CommentService) DeleteComment(ctx context.Context, id, callerID string) error {
	comment, err := s.comments.GetCommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.UserID.Hex() != callerID {
		return models.ErrForbidden
	}

	if err := s.comments.DeleteComment(ctx, comment.ID); err != nil {
		return err
	}
	return s.posts.PullCommentID(ctx, comment.PostID.Hex(), comment.ID)
}
