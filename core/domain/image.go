// ABOUTME: Image domain model for generated illustrations attached to an article
// ABOUTME: Images are produced by the backend's generation endpoint

package domain

import "time"

// Image references a generated image stored by the backend
type Image struct {
	ID        int64     `json:"id,omitempty"`
	URL       string    `json:"url"`
	Prompt    string    `json:"prompt,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// GenerateImagesRequest is the body sent to the image generation endpoint
type GenerateImagesRequest struct {
	ArticleID int64  `json:"articleId"`
	Slug      string `json:"slug"`
	Body      string `json:"body"`
}
