package model

import "time"

const (
	RatingLike    = "LIKE"
	RatingDislike = "DISLIKE"
)

// QuestionRating is a user's helpfulness vote on a (question, session) pair.
// At most one exists per pair; re-rating overwrites it.
type QuestionRating struct {
	ID        uint      `json:"id"`
	Rating    string    `json:"rating"` // "LIKE" or "DISLIKE"
	CreatedAt time.Time `json:"created_at"`
}
