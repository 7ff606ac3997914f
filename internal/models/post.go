package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a post document. The likes array is a set (one entry
// per user, maintained with $addToSet/$pull) and the comments array
// lists the ids of live comments on this post in creation order.
type Post struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	UserID    primitive.ObjectID   `bson:"user_id"`
	Content   string               `bson:"content"`
	ImageURL  string               `bson:"image_url,omitempty"`
	Likes     []primitive.ObjectID `bson:"likes"`
	Comments  []primitive.ObjectID `bson:"comments"`
	CreatedAt time.Time            `bson:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post.
// Content bounds are checked after trimming by the post service, not
// with validator tags, so whitespace-only content is rejected too.
type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// PostResponse is the wire shape of a post, author summary joined in
// and counts derived from the array lengths.
type PostResponse struct {
	ID           string       `json:"id"`
	User         *UserSummary `json:"user"`
	Content      string       `json:"content"`
	ImageURL     *string      `json:"imageUrl"`
	Likes        []string     `json:"likes"`
	Comments     []string     `json:"comments"`
	LikeCount    int          `json:"likeCount"`
	CommentCount int          `json:"commentCount"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// Response builds the wire shape for p with the given author summary.
func (p *Post) Response(author *UserSummary) *PostResponse {
	likes := make([]string, 0, len(p.Likes))
	for _, id := range p.Likes {
		likes = append(likes, id.Hex())
	}
	comments := make([]string, 0, len(p.Comments))
	for _, id := range p.Comments {
		comments = append(comments, id.Hex())
	}
	var imageURL *string
	if p.ImageURL != "" {
		u := p.ImageURL
		imageURL = &u
	}
	return &PostResponse{
		ID:           p.ID.Hex(),
		User:         author,
		Content:      p.Content,
		ImageURL:     imageURL,
		Likes:        likes,
		Comments:     comments,
		LikeCount:    len(likes),
		CommentCount: len(comments),
		CreatedAt:    p.CreatedAt,
	}
}

// HasLiker reports whether userID is in the likes set.
func (p *Post) HasLiker(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
