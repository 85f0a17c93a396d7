// ABOUTME: ViewState is the local projection of article, comments and images
// ABOUTME: Every field always holds a value; nil slices are normalized to empty ones

package domain

// ViewState holds the article page's view model
type ViewState struct {
	Article  Article   `json:"article"`
	Comments []Comment `json:"comments"`
	Images   []Image   `json:"images"`
}

// NewViewState returns a state with every field at its default
func NewViewState() ViewState {
	return ViewState{
		Article:  NewArticle(),
		Comments: []Comment{},
		Images:   []Image{},
	}
}

// Clone returns a deep copy of the state
func (s ViewState) Clone() ViewState {
	return ViewState{
		Article:  s.Article.Clone(),
		Comments: CloneComments(s.Comments),
		Images:   CloneImages(s.Images),
	}
}

// CloneComments copies a comment slice, returning an empty slice for nil
func CloneComments(in []Comment) []Comment {
	out := make([]Comment, len(in))
	copy(out, in)
	return out
}

// CloneImages copies an image slice, returning an empty slice for nil
func CloneImages(in []Image) []Image {
	out := make([]Image, len(in))
	copy(out, in)
	return out
}
