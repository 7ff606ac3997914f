package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/sharespace/backend/internal/models"
	"github.com/sharespace/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxPostContentLength bounds post content after trimming.
const MaxPostContentLength = 500

// PostService owns the post aggregate: validation, ownership checks,
// the kindness toggle and the cascading delete of comments.
type PostService struct {
	posts    repositories.PostRepository
	comments repositories.CommentRepository
	users    repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(posts repositories.PostRepository, comments repositories.CommentRepository, users repositories.UserRepository) *PostService {
	return &PostService{
		posts:    posts,
		comments: comments,
		users:    users,
	}
}

// CreatePost validates and persists a new post for authorID. Content
// must be 1-500 characters after trimming.
func (s *PostService) CreatePost(ctx context.Context, authorID, content, imageURL string) (*models.PostResponse, error) {
	content = strings.TrimSpace(content)
	imageURL = strings.TrimSpace(imageURL)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(content) > MaxPostContentLength {
		return nil, models.NewValidationError("Content must be 500 characters or fewer")
	}

	author, err := s.users.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:   author.ID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return post.Response(author.Summary()), nil
}

// ListPosts returns all posts newest first with author summaries joined in
func (s *PostService) ListPosts(ctx context.Context) ([]*models.PostResponse, error) {
	posts, err := s.posts.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]primitive.ObjectID, 0, len(posts))
	seen := make(map[primitive.ObjectID]bool, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			authorIDs = append(authorIDs, p.UserID)
		}
	}
	authors, err := s.users.GetUsersByIDs(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.PostResponse, 0, len(posts))
	for i := range posts {
		responses = append(responses, posts[i].Response(summaryFor(authors, posts[i].UserID)))
	}
	return responses, nil
}

// GetPost returns a single post with its author summary joined in
func (s *PostService) GetPost(ctx context.Context, id string) (*models.PostResponse, error) {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, post)
}

// DeletePost removes a post owned by callerID along with every comment
// referencing it. Comments go first so they never outlive the post; a
// failure deleting them aborts the post delete.
func (s *PostService) DeletePost(ctx context.Context, id, callerID string) error {
	post, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID.Hex() != callerID {
		return models.ErrForbidden
	}

	if err := s.comments.DeleteCommentsByPostID(ctx, id); err != nil {
		return err
	}
	return s.posts.DeletePost(ctx, id)
}

// ToggleLike flips callerID's kindness on the post and returns the
// updated post plus whether kindness is now present. The mutation is a
// single atomic set add or pull; two toggles in a row restore the
// original membership.
func (s *PostService) ToggleLike(ctx context.Context, id, callerID string) (*models.PostResponse, bool, error) {
	callerOID, err := primitive.ObjectIDFromHex(callerID)
	if err != nil {
		return nil, false, models.ErrUnauthorized
	}

	if _, err := s.posts.GetPostByID(ctx, id); err != nil {
		return nil, false, err
	}

	hasLiked, err := s.posts.HasLiked(ctx, id, callerOID)
	if err != nil {
		return nil, false, err
	}

	var post *models.Post
	if hasLiked {
		post, err = s.posts.RemoveLiker(ctx, id, callerOID)
	} else {
		post, err = s.posts.AddLiker(ctx, id, callerOID)
	}
	if err != nil {
		return nil, false, err
	}

	response, err := s.respond(ctx, post)
	if err != nil {
		return nil, false, err
	}
	return response, !hasLiked, nil
}

func (s *PostService) respond(ctx context.Context, post *models.Post) (*models.PostResponse, error) {
	authors, err := s.users.GetUsersByIDs(ctx, []primitive.ObjectID{post.UserID})
	if err != nil {
		return nil, err
	}
	return post.Response(summaryFor(authors, post.UserID)), nil
}

func summaryFor(users map[primitive.ObjectID]models.User, id primitive.ObjectID) *models.UserSummary {
	if u, ok := users[id]; ok {
		return u.Summary()
	}
	return nil
}
