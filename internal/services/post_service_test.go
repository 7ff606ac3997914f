package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sharespace/backend/internal/models"
	"github.com/sharespace/backend/internal/repositories"
)

type fixture struct {
	users    *repositories.InMemoryUserRepository
	posts    *repositories.InMemoryPostRepository
	comments *repositories.InMemoryCommentRepository
	postSvc  *PostService
	cmtSvc   *CommentService
}

func newFixture() *fixture {
	users := repositories.NewInMemoryUserRepository()
	posts := repositories.NewInMemoryPostRepository()
	comments := repositories.NewInMemoryCommentRepository()
	return &fixture{
		users:    users,
		posts:    posts,
		comments: comments,
		postSvc:  NewPostService(posts, comments, users),
		cmtSvc:   NewCommentService(comments, posts, users),
	}
}

func (f *fixture) mustCreateUser(t *testing.T, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email}
	if err := f.users.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return user
}

func TestCreatePostValidation(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")

	cases := []struct {
		name    string
		content string
		ok      bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t\n", false},
		{"single char", "a", true},
		{"exactly 500", strings.Repeat("a", 500), true},
		{"501 chars", strings.Repeat("a", 501), false},
		{"padded to 500", "  " + strings.Repeat("a", 500) + "  ", true},
	}
	for _, c := range cases {
		_, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), c.content, "")
		if c.ok && err != nil {
			t.Fatalf("%s: expected success, got %v", c.name, err)
		}
		if !c.ok {
			if err == nil {
				t.Fatalf("%s: expected validation error, got nil", c.name)
			}
			if !models.IsValidation(err) {
				t.Fatalf("%s: expected ValidationError, got %v", c.name, err)
			}
		}
	}
}

func TestCreatePostTrimsAndStartsEmpty(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")

	post, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), "  Hello world  ", "  https://img.example/p.png  ")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	if post.Content != "Hello world" {
		t.Fatalf("expected trimmed content, got %q", post.Content)
	}
	if post.ImageURL == nil || *post.ImageURL != "https://img.example/p.png" {
		t.Fatalf("expected trimmed image url, got %v", post.ImageURL)
	}
	if post.LikeCount != 0 || post.CommentCount != 0 {
		t.Fatalf("expected zero counts, got likes=%d comments=%d", post.LikeCount, post.CommentCount)
	}
	if post.User == nil || post.User.Name != "Ana" {
		t.Fatalf("expected author summary joined in, got %+v", post.User)
	}
}

func TestListPostsNewestFirst(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")

	for _, content := range []string{"first", "second", "third"} {
		if _, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), content, ""); err != nil {
			t.Fatalf("create post %q: %v", content, err)
		}
	}

	posts, err := f.postSvc.ListPosts(context.Background())
	if err != nil {
		t.Fatalf("list posts: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("expected 3 posts, got %d", len(posts))
	}
	want := []string{"third", "second", "first"}
	for i, w := range want {
		if posts[i].Content != w {
			t.Fatalf("position %d: expected %q, got %q", i, w, posts[i].Content)
		}
		if posts[i].User == nil || posts[i].User.Name != "Ana" {
			t.Fatalf("position %d: missing author summary", i)
		}
	}
}

func TestGetPostNotFound(t *testing.T) {
	f := newFixture()

	for _, id := range []string{"64b0c1f2a1b2c3d4e5f60718", "not-a-hex-id"} {
		_, err := f.postSvc.GetPost(context.Background(), id)
		if !errors.Is(err, models.ErrNotFound) {
			t.Fatalf("id %q: expected ErrNotFound, got %v", id, err)
		}
	}
}

func TestToggleLikePairIsIdempotent(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")
	liker := f.mustCreateUser(t, "Bob", "bob@example.com")

	post, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), "Hello world", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	updated, liked, err := f.postSvc.ToggleLike(context.Background(), post.ID, liker.ID.Hex())
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked || updated.LikeCount != 1 {
		t.Fatalf("expected kindness added with count 1, got liked=%v count=%d", liked, updated.LikeCount)
	}
	if updated.Likes[0] != liker.ID.Hex() {
		t.Fatalf("expected liker in likes set, got %v", updated.Likes)
	}

	updated, liked, err = f.postSvc.ToggleLike(context.Background(), post.ID, liker.ID.Hex())
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked || updated.LikeCount != 0 {
		t.Fatalf("expected kindness removed with count 0, got liked=%v count=%d", liked, updated.LikeCount)
	}
	if len(updated.Likes) != 0 {
		t.Fatalf("expected empty likes set, got %v", updated.Likes)
	}
}

func TestToggleLikeKeepsOtherLikers(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")
	bob := f.mustCreateUser(t, "Bob", "bob@example.com")
	cleo := f.mustCreateUser(t, "Cleo", "cleo@example.com")

	post, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), "Hello world", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if _, _, err := f.postSvc.ToggleLike(context.Background(), post.ID, bob.ID.Hex()); err != nil {
		t.Fatalf("bob like: %v", err)
	}
	if _, _, err := f.postSvc.ToggleLike(context.Background(), post.ID, cleo.ID.Hex()); err != nil {
		t.Fatalf("cleo like: %v", err)
	}
	updated, _, err := f.postSvc.ToggleLike(context.Background(), post.ID, bob.ID.Hex())
	if err != nil {
		t.Fatalf("bob unlike: %v", err)
	}
	if updated.LikeCount != 1 || updated.Likes[0] != cleo.ID.Hex() {
		t.Fatalf("expected only cleo's kindness left, got %v", updated.Likes)
	}
}

func TestToggleLikeMissingPost(t *testing.T) {
	f := newFixture()
	liker := f.mustCreateUser(t, "Bob", "bob@example.com")

	_, _, err := f.postSvc.ToggleLike(context.Background(), "64b0c1f2a1b2c3d4e5f60718", liker.ID.Hex())
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePostCascadesToComments(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")
	commenter := f.mustCreateUser(t, "Bob", "bob@example.com")

	post, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), "Hello world", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	comment, err := f.cmtSvc.AddComment(context.Background(), post.ID, commenter.ID.Hex(), "Nice!")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}

	if err := f.postSvc.DeletePost(context.Background(), post.ID, author.ID.Hex()); err != nil {
		t.Fatalf("delete post: %v", err)
	}

	if _, err := f.postSvc.GetPost(context.Background(), post.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected post gone, got %v", err)
	}
	if _, err := f.cmtSvc.ListComments(context.Background(), post.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected list comments to fail for deleted post, got %v", err)
	}
	if _, err := f.comments.GetCommentByID(context.Background(), comment.ID); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("expected orphaned comment to be gone, got %v", err)
	}
}

func TestDeletePostOwnership(t *testing.T) {
	f := newFixture()
	author := f.mustCreateUser(t, "Ana", "ana@example.com")
	stranger := f.mustCreateUser(t, "Bob", "bob@example.com")

	post, err := f.postSvc.CreatePost(context.Background(), author.ID.Hex(), "Hello world", "")
	if err != nil {
		t.Fatalf("create post: %v", err)
	}

	if err := f.postSvc.DeletePost(context.Background(), post.ID, stranger.ID.Hex()); !errors.Is(err, models.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if _, err := f.postSvc.GetPost(context.Background(), post.ID); err != nil {
		t.Fatalf("post should survive a forbidden delete: %v", err)
	}

	if err := f.postSvc.DeletePost(context.Background(), post.ID, author.ID.Hex()); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
}
