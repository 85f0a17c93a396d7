// ABOUTME: Mutation variants and the pure reducer that applies them to a ViewState
// ABOUTME: Every state change in the store goes through Apply

package article

import "articles-app-client/core/domain"

// Mutation is a synchronous state change. The set of variants is closed.
type Mutation interface {
	// Name identifies the mutation in logs
	Name() string
	isMutation()
}

// SetArticle replaces the article wholesale
type SetArticle struct {
	Article domain.Article
}

// SetComments replaces the comment list wholesale
type SetComments struct {
	Comments []domain.Comment
}

// SetImages replaces the image list wholesale
type SetImages struct {
	Images []domain.Image
}

// AddTag appends a tag to the article's tag list. Duplicates are kept.
type AddTag struct {
	Tag string
}

// RemoveTag drops every tag equal to Tag
type RemoveTag struct {
	Tag string
}

// ResetState restores every field to its default
type ResetState struct{}

func (SetArticle) Name() string  { return "article/set" }
func (SetComments) Name() string { return "comments/set" }
func (SetImages) Name() string   { return "images/set" }
func (AddTag) Name() string      { return "tag/add" }
func (RemoveTag) Name() string   { return "tag/remove" }
func (ResetState) Name() string  { return "state/reset" }

func (SetArticle) isMutation()  {}
func (SetComments) isMutation() {}
func (SetImages) isMutation()   {}
func (AddTag) isMutation()      {}
func (RemoveTag) isMutation()   {}
func (ResetState) isMutation()  {}

// Apply returns the state that results from applying m to state.
// The input state is never modified; slices are copied before they change.
func Apply(state domain.ViewState, m Mutation) domain.ViewState {
	switch m := m.(type) {
	case SetArticle:
		state.Article = m.Article.Clone().Normalize()
	case SetComments:
		state.Comments = domain.CloneComments(m.Comments)
	case SetImages:
		state.Images = domain.CloneImages(m.Images)
	case AddTag:
		tags := make([]string, 0, len(state.Article.TagList)+1)
		tags = append(tags, state.Article.TagList...)
		state.Article.TagList = append(tags, m.Tag)
	case RemoveTag:
		tags := make([]string, 0, len(state.Article.TagList))
		for _, t := range state.Article.TagList {
			if t != m.Tag {
				tags = append(tags, t)
			}
		}
		state.Article.TagList = tags
	case ResetState:
		return domain.NewViewState()
	}
	return state
}
