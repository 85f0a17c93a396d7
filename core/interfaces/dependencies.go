// ABOUTME: Dependencies container provides dependency injection for the store and services
// ABOUTME: Groups the backend services with the ambient logger

package interfaces

// Dependencies holds the collaborators the article store needs
type Dependencies struct {
	Articles  ArticleService
	Comments  CommentService
	Images    ImageService
	Favorites FavoriteService

	// List is notified when a favorite toggle changes an article; optional
	List ArticleListUpdater

	// Logger provides structured logging
	Logger Logger
}
