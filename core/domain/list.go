// ABOUTME: ArticleList domain model for collection views such as the home feed
// ABOUTME: The same article may appear here and in the single-article view

package domain

// ArticleList is a page of articles as returned by list endpoints
type ArticleList struct {
	Articles      []Article `json:"articles"`
	ArticlesCount int       `json:"articlesCount"`
}

// IndexOf returns the position of the article with the given slug, or -1
func (l ArticleList) IndexOf(slug string) int {
	for i, a := range l.Articles {
		if a.Slug == slug {
			return i
		}
	}
	return -1
}
