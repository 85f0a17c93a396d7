// ABOUTME: Article domain model mirrors the backend's article resource
// ABOUTME: Provides defaults and copy helpers so the view state never holds nil collections

package domain

import "time"

// Profile is the public author record attached to articles and comments
type Profile struct {
	Username  string `json:"username"`
	Bio       string `json:"bio,omitempty"`
	Image     string `json:"image,omitempty"`
	Following bool   `json:"following"`
}

// Article represents a single article as exchanged with the backend
type Article struct {
	// ID is the backend's numeric identifier, used for image generation
	ID int64 `json:"id,omitempty"`

	// Slug is the URL-safe identifier used by every article endpoint
	Slug string `json:"slug,omitempty"`

	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`

	Favorited      bool `json:"favorited"`
	FavoritesCount int  `json:"favoritesCount"`

	Author Profile `json:"author"`
}

// NewArticle returns the empty article used by a fresh or reset view state
func NewArticle() Article {
	return Article{
		Author:  Profile{},
		TagList: []string{},
	}
}

// Clone returns a copy that shares no slices with the receiver
func (a Article) Clone() Article {
	out := a
	out.TagList = make([]string, len(a.TagList))
	copy(out.TagList, a.TagList)
	return out
}

// Normalize replaces a nil tag list with an empty one
func (a Article) Normalize() Article {
	if a.TagList == nil {
		a.TagList = []string{}
	}
	return a
}

// HasTag reports whether tag is present, matching by exact value
func (a Article) HasTag(tag string) bool {
	for _, t := range a.TagList {
		if t == tag {
			return true
		}
	}
	return false
}
