// ABOUTME: Comment domain model for discussion threads under an article
// ABOUTME: Comments are owned by the backend and only ever replaced wholesale locally

package domain

import "time"

// Comment is a single reader comment on an article
type Comment struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
	Author    Profile   `json:"author"`
}

// NewComment is the payload sent when posting a comment
type NewComment struct {
	Body string `json:"body"`
}
