// Package core contains the client-side logic for the single-article view.
// It is framework-agnostic and talks to the backend only through the
// interfaces it defines.
//
// The core package is organized into several sub-packages:
//
// - domain: Value types (Article, Comment, Image, ViewState, ArticleList)
// - article: The view state store with its actions, mutations and accessors
// - articlelist: The list view that favorite toggles keep in sync
// - errors: Custom error types for better error handling
// - interfaces: Contracts for backend services, cache, HTTP and logger
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - State changes go through pure mutations, so they are testable in isolation
//
// # Usage Example
//
//	import (
//	    "articles-app-client/core/article"
//	    "articles-app-client/core/interfaces"
//	)
//
//	store := article.NewStore(interfaces.Dependencies{
//	    Articles:  articles,  // implements interfaces.ArticleService
//	    Comments:  comments,  // implements interfaces.CommentService
//	    Images:    images,    // implements interfaces.ImageService
//	    Favorites: favorites, // implements interfaces.FavoriteService
//	    Logger:    logger,
//	})
//
//	a, err := store.FetchArticle(ctx, "how-to-train-your-dragon", nil)
//	comments, err := store.FetchComments(ctx, a.Slug)
package core
