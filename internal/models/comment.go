package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment document. PostID always references a
// live post; the parent post's comments array carries this comment's id
// for as long as the comment exists.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	PostID    primitive.ObjectID `bson:"post_id"`
	Text      string             `bson:"text"`
	CreatedAt time.Time          `bson:"created_at"`
}

// CreateCommentRequest defines the request body for commenting on a post.
// Text bounds are checked after trimming by the comment service.
type CreateCommentRequest struct {
	Text string `json:"text"`
}

// CommentResponse is the wire shape of a comment with its author joined in
type CommentResponse struct {
	ID        string       `json:"id"`
	User      *UserSummary `json:"user"`
	PostID    string       `json:"post"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"createdAt"`
}

// Response builds the wire shape for c with the given author summary.
func (c *Comment) Response(author *UserSummary) *CommentResponse {
	return &CommentResponse{
		ID:        c.ID.Hex(),
		User:      author,
		PostID:    c.PostID.Hex(),
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}
