package repositories

import (
	"context"
	"sync"
	"time"

	"github.com/sharespace/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory implementations of the repository interfaces. They back the
// test suite and database-less development, and mirror the Mongo
// implementations' semantics: set behavior for likes, ordered comment
// ids, models.ErrNotFound for absent or malformed ids.

// InMemoryUserRepository implements UserRepository in process memory
type InMemoryUserRepository struct {
	mutex sync.RWMutex
	users map[primitive.ObjectID]models.User
}

// NewInMemoryUserRepository creates an empty InMemoryUserRepository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[primitive.ObjectID]models.User)}
}

func (r *InMemoryUserRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return models.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	r.users[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	user, ok := r.users[objID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func (r *InMemoryUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *InMemoryUserRepository) GetUserByFirebaseUID(ctx context.Context, firebaseUID string) (*models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, u := range r.users {
		if u.FirebaseUID != "" && u.FirebaseUID == firebaseUID {
			user := u
			return &user, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *InMemoryUserRepository) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.User, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	users := make(map[primitive.ObjectID]models.User, len(ids))
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			users[id] = u
		}
	}
	return users, nil
}

func (r *InMemoryUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return models.ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

// InMemoryPostRepository implements PostRepository in process memory
type InMemoryPostRepository struct {
	mutex sync.RWMutex
	posts map[primitive.ObjectID]*models.Post
	order []primitive.ObjectID // insertion order, oldest first
}

// NewInMemoryPostRepository creates an empty InMemoryPostRepository
func NewInMemoryPostRepository() *InMemoryPostRepository {
	return &InMemoryPostRepository{posts: make(map[primitive.ObjectID]*models.Post)}
}

func (r *InMemoryPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	if post.Comments == nil {
		post.Comments = []primitive.ObjectID{}
	}
	stored := clonePost(post)
	r.posts[post.ID] = stored
	r.order = append(r.order, post.ID)
	return nil
}

func (r *InMemoryPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return clonePost(post), nil
}

func (r *InMemoryPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	posts := make([]models.Post, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		posts = append(posts, *clonePost(r.posts[r.order[i]]))
	}
	return posts, nil
}

func (r *InMemoryPostRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.ErrNotFound
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.posts[objID]; !ok {
		return models.ErrNotFound
	}
	delete(r.posts, objID)
	for i, oid := range r.order {
		if oid == objID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *InMemoryPostRepository) HasLiked(ctx context.Context, postID string, userID primitive.ObjectID) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return false, models.ErrNotFound
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	post, ok := r.posts[objID]
	if !ok {
		return false, nil
	}
	return post.HasLiker(userID), nil
}

func (r *InMemoryPostRepository) AddLiker(ctx context.Context, postID string, userID primitive.ObjectID) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, models.ErrNotFound
	}
	if !post.HasLiker(userID) {
		post.Likes = append(post.Likes, userID)
	}
	return clonePost(post), nil
}

func (r *InMemoryPostRepository) RemoveLiker(ctx context.Context, postID string, userID primitive.ObjectID) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil, models.ErrNotFound
	}
	likes := post.Likes[:0]
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	post.Likes = likes
	return clonePost(post), nil
}

func (r *InMemoryPostRepository) PushCommentID(ctx context.Context, postID string, commentID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.ErrNotFound
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return models.ErrNotFound
	}
	post.Comments = append(post.Comments, commentID)
	return nil
}

func (r *InMemoryPostRepository) PullCommentID(ctx context.Context, postID string, commentID primitive.ObjectID) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.ErrNotFound
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	post, ok := r.posts[objID]
	if !ok {
		return nil
	}
	comments := post.Comments[:0]
	for _, id := range post.Comments {
		if id != commentID {
			comments = append(comments, id)
		}
	}
	post.Comments = comments
	return nil
}

func clonePost(post *models.Post) *models.Post {
	clone := *post
	clone.Likes = append([]primitive.ObjectID{}, post.Likes...)
	clone.Comments = append([]primitive.ObjectID{}, post.Comments...)
	return &clone
}

// InMemoryCommentRepository implements CommentRepository in process memory
type InMemoryCommentRepository struct {
	mutex    sync.RWMutex
	comments map[primitive.ObjectID]models.Comment
	order    []primitive.ObjectID // insertion order, oldest first
}

// NewInMemoryCommentRepository creates an empty InMemoryCommentRepository
func NewInMemoryCommentRepository() *InMemoryCommentRepository {
	return &InMemoryCommentRepository{comments: make(map[primitive.ObjectID]models.Comment)}
}

func (r *InMemoryCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	r.comments[comment.ID] = *comment
	r.order = append(r.order, comment.ID)
	return nil
}

func (r *InMemoryCommentRepository) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	comment, ok := r.comments[objID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &comment, nil
}

func (r *InMemoryCommentRepository) GetCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, models.ErrNotFound
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var comments []models.Comment
	for _, id := range r.order {
		if c, ok := r.comments[id]; ok && c.PostID == objID {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func (r *InMemoryCommentRepository) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.comments[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *InMemoryCommentRepository) DeleteCommentsByPostID(ctx context.Context, postID string) error {
	objID, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return models.ErrNotFound
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, c := range r.comments {
		if c.PostID == objID {
			delete(r.comments, id)
		}
	}
	return nil
}
