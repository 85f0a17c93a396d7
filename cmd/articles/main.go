// ABOUTME: Command line entry point driving the article store against a live backend
// ABOUTME: Loads configuration, wires the client and prints results as indented JSON

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"articles-app-client/client"
	"articles-app-client/core/article"
	"articles-app-client/core/domain"
	coreerrors "articles-app-client/core/errors"
	"articles-app-client/pkg/config"
	"articles-app-client/pkg/utils/html"
)

const (
	excerptLength = 280
	feedPageSize  = 20
)

var errUsage = errors.New("usage")

func main() {
	envFile := flag.String("env", ".env", "optional dotenv file")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := client.DefaultLogger(cfg.Log)

	c, err := client.NewClient(client.WithConfig(cfg), client.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to create client", map[string]interface{}{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = run(ctx, c.Store(), c, flag.Args(), os.Stdout)
	if err == nil {
		return
	}

	// os.Exit skips deferred calls
	stop()
	c.Close()

	if errors.Is(err, errUsage) {
		usage()
		os.Exit(2)
	}
	logger.Error("Command failed", map[string]interface{}{
		"command": flag.Arg(0),
		"error":   err.Error(),
	})
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: articles [flags] <command> [args]

Commands:
  list [limit]                                 list the global feed
  show [-from-feed] <slug>                     article with comments and images
  comments <slug>                              list comments
  images <slug>                                list generated images
  generate-images <id> <slug>                  generate images from the article body
  comment <slug> <body>                        post a comment
  uncomment <slug> <comment-id>                delete a comment
  favorite <slug>                              favorite an article
  unfavorite <slug>                            unfavorite an article
  delete <slug>                                delete an article
  publish <title> <description> <body> [tags]  publish a new article

Flags:
`)
	flag.PrintDefaults()
}

// feedLoader is the part of the client the list and show commands need
type feedLoader interface {
	LoadFeed(ctx context.Context, limit, offset int) ([]domain.Article, error)
	Open(ctx context.Context, slug string) (*client.ArticleView, error)
}

// showOutput is the show command's result with a plain-text excerpt
type showOutput struct {
	*client.ArticleView
	Excerpt string `json:"excerpt"`
}

func run(ctx context.Context, store *article.Store, feed feedLoader, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	cmd, rest := args[0], args[1:]
	var result interface{}
	var err error

	switch cmd {
	case "list":
		limit := feedPageSize
		if len(rest) > 0 {
			if limit, err = strconv.Atoi(rest[0]); err != nil {
				return fmt.Errorf("invalid limit %q: %w", rest[0], err)
			}
		}
		result, err = feed.LoadFeed(ctx, limit, 0)

	case "show":
		result, err = show(ctx, feed, rest)

	case "comments":
		if len(rest) != 1 {
			return errUsage
		}
		result, err = store.Dispatch(ctx, article.FetchCommentsCommand{Slug: rest[0]})

	case "images":
		if len(rest) != 1 {
			return errUsage
		}
		result, err = store.Dispatch(ctx, article.FetchImagesCommand{Slug: rest[0]})

	case "generate-images":
		if len(rest) != 2 {
			return errUsage
		}
		result, err = generateImages(ctx, store, rest[0], rest[1])

	case "comment":
		if len(rest) != 2 {
			return errUsage
		}
		if _, err = store.Dispatch(ctx, article.CreateCommentCommand{
			Slug:    rest[0],
			Comment: domain.NewComment{Body: rest[1]},
		}); err == nil {
			result = store.Comments()
		}

	case "uncomment":
		if len(rest) != 2 {
			return errUsage
		}
		id, perr := strconv.ParseInt(rest[1], 10, 64)
		if perr != nil {
			return fmt.Errorf("invalid comment id %q: %w", rest[1], perr)
		}
		if _, err = store.Dispatch(ctx, article.DestroyCommentCommand{Slug: rest[0], CommentID: id}); err == nil {
			result = store.Comments()
		}

	case "favorite", "unfavorite":
		if len(rest) != 1 {
			return errUsage
		}
		var c article.Command = article.AddFavoriteCommand{Slug: rest[0]}
		if cmd == "unfavorite" {
			c = article.RemoveFavoriteCommand{Slug: rest[0]}
		}
		result, err = store.Dispatch(ctx, c)

	case "delete":
		if len(rest) != 1 {
			return errUsage
		}
		if _, err = store.Dispatch(ctx, article.DeleteArticleCommand{Slug: rest[0]}); err == nil {
			result = map[string]string{"deleted": rest[0]}
		}

	case "publish":
		if len(rest) < 3 {
			return errUsage
		}
		result, err = publish(ctx, store, rest[0], rest[1], rest[2], rest[3:])

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}

	if err != nil {
		return coreerrors.WrapError(err, cmd)
	}
	return writeJSON(out, result)
}

// show opens one article. With -from-feed the feed is loaded first, so an
// article already listed there is shown without fetching it again.
func show(ctx context.Context, feed feedLoader, args []string) (interface{}, error) {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fromFeed := fs.Bool("from-feed", false, "load the feed first and reuse its copy of the article")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return nil, errUsage
	}
	slug := fs.Arg(0)

	if *fromFeed {
		if _, err := feed.LoadFeed(ctx, feedPageSize, 0); err != nil {
			return nil, err
		}
	}

	view, err := feed.Open(ctx, slug)
	if err != nil {
		return nil, err
	}
	return showOutput{ArticleView: view, Excerpt: html.Excerpt(view.Article.Body, excerptLength)}, nil
}

// generateImages fetches the article to read its body, then asks for images
func generateImages(ctx context.Context, store *article.Store, rawID, slug string) (interface{}, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid article id %q: %w", rawID, err)
	}

	if _, err := store.Dispatch(ctx, article.FetchArticleCommand{Slug: slug}); err != nil {
		return nil, err
	}

	return store.Dispatch(ctx, article.GenerateImagesCommand{
		ArticleID: id,
		Slug:      slug,
		Body:      store.Article().Body,
	})
}

// publish builds the draft through the store the way the editor does
func publish(ctx context.Context, store *article.Store, title, description, body string, tags []string) (interface{}, error) {
	commands := []article.Command{
		article.ResetCommand{},
		article.SetArticleDraftCommand{Article: domain.Article{
			Title:       title,
			Description: description,
			Body:        body,
		}},
	}
	for _, c := range commands {
		if _, err := store.Dispatch(ctx, c); err != nil {
			return nil, err
		}
	}

	// repeated tags on the command line are sent once
	for _, tag := range tags {
		if store.Article().HasTag(tag) {
			continue
		}
		if _, err := store.Dispatch(ctx, article.AddTagCommand{Tag: tag}); err != nil {
			return nil, err
		}
	}

	return store.Dispatch(ctx, article.PublishArticleCommand{})
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
