package article

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"articles-app-client/core/domain"
	coreerrors "articles-app-client/core/errors"
	"articles-app-client/core/interfaces"
)

type fixture struct {
	articles  *mockArticleService
	comments  *mockCommentService
	images    *mockImageService
	favorites *mockFavoriteService
	list      *mockListUpdater
	logger    *mockLogger
	store     *Store
}

func newFixture() *fixture {
	f := &fixture{
		articles:  &mockArticleService{},
		comments:  &mockCommentService{},
		images:    &mockImageService{},
		favorites: &mockFavoriteService{},
		list:      &mockListUpdater{},
		logger:    &mockLogger{},
	}
	f.store = NewStore(interfaces.Dependencies{
		Articles:  f.articles,
		Comments:  f.comments,
		Images:    f.images,
		Favorites: f.favorites,
		List:      f.list,
		Logger:    f.logger,
	})
	return f
}

func sampleArticle() domain.Article {
	return domain.Article{
		ID:          42,
		Slug:        "how-to-train-your-dragon",
		Title:       "How to train your dragon",
		Description: "Ever wonder how?",
		Body:        "It takes a Jacobian",
		TagList:     []string{"dragons", "training"},
		Author:      domain.Profile{Username: "jake"},
	}
}

func TestFetchArticle_WithPrevSkipsNetwork(t *testing.T) {
	f := newFixture()
	prev := sampleArticle()

	got, err := f.store.FetchArticle(context.Background(), prev.Slug, &prev)
	if err != nil {
		t.Fatalf("FetchArticle returned error: %v", err)
	}

	if f.articles.getCalls != 0 {
		t.Errorf("Get called %d times, want 0", f.articles.getCalls)
	}
	if !reflect.DeepEqual(got, prev) {
		t.Errorf("returned %+v, want %+v", got, prev)
	}
	if !reflect.DeepEqual(f.store.Article(), prev) {
		t.Errorf("state article = %+v, want %+v", f.store.Article(), prev)
	}
}

func TestFetchArticle_WithoutPrevCallsBackendOnce(t *testing.T) {
	f := newFixture()
	want := sampleArticle()
	f.articles.getFunc = func(ctx context.Context, slug string) (*domain.Article, error) {
		if slug != want.Slug {
			t.Errorf("Get slug = %q, want %q", slug, want.Slug)
		}
		a := want
		return &a, nil
	}

	got, err := f.store.FetchArticle(context.Background(), want.Slug, nil)
	if err != nil {
		t.Fatalf("FetchArticle returned error: %v", err)
	}

	if f.articles.getCalls != 1 {
		t.Errorf("Get called %d times, want 1", f.articles.getCalls)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("returned %+v, want %+v", got, want)
	}
	if !reflect.DeepEqual(f.store.Article(), want) {
		t.Errorf("state article = %+v, want %+v", f.store.Article(), want)
	}
}

func TestFetchArticle_ErrorLeavesStateAndPropagates(t *testing.T) {
	f := newFixture()
	backendErr := &coreerrors.ExternalAPIError{API: "articles", StatusCode: 500, Message: "boom"}
	f.articles.getFunc = func(ctx context.Context, slug string) (*domain.Article, error) {
		return nil, backendErr
	}

	_, err := f.store.FetchArticle(context.Background(), "missing", nil)

	if err != backendErr {
		t.Errorf("error = %v, want the backend error unchanged", err)
	}
	if !reflect.DeepEqual(f.store.State(), domain.NewViewState()) {
		t.Error("state changed after failed fetch")
	}
	if len(f.logger.errors) != 1 || f.logger.errors[0] != NameFetchArticle {
		t.Errorf("logged failures = %v, want [%s]", f.logger.errors, NameFetchArticle)
	}
}

func TestFetchArticle_EmptySlug(t *testing.T) {
	f := newFixture()

	_, err := f.store.FetchArticle(context.Background(), "", nil)

	if !coreerrors.IsValidation(err) {
		t.Errorf("error = %v, want validation error", err)
	}
	if f.articles.getCalls != 0 {
		t.Error("backend should not be called for an empty slug")
	}
}

func TestFetchCommentsAndImages(t *testing.T) {
	f := newFixture()
	comments := []domain.Comment{{ID: 1, Body: "first"}, {ID: 2, Body: "second"}}
	images := []domain.Image{{ID: 9, URL: "https://img.example.com/9.png"}}
	f.comments.getFunc = func(ctx context.Context, slug string) ([]domain.Comment, error) {
		return comments, nil
	}
	f.images.getFunc = func(ctx context.Context, slug string) ([]domain.Image, error) {
		return images, nil
	}

	gotComments, err := f.store.FetchComments(context.Background(), "s")
	if err != nil {
		t.Fatalf("FetchComments returned error: %v", err)
	}
	gotImages, err := f.store.FetchImages(context.Background(), "s")
	if err != nil {
		t.Fatalf("FetchImages returned error: %v", err)
	}

	if !reflect.DeepEqual(gotComments, comments) || !reflect.DeepEqual(f.store.Comments(), comments) {
		t.Errorf("comments = %v / %v, want %v", gotComments, f.store.Comments(), comments)
	}
	if !reflect.DeepEqual(gotImages, images) || !reflect.DeepEqual(f.store.Images(), images) {
		t.Errorf("images = %v / %v, want %v", gotImages, f.store.Images(), images)
	}
}

func TestGenerateImages_ReplacesImages(t *testing.T) {
	f := newFixture()
	f.store.Commit(SetImages{Images: []domain.Image{{URL: "old"}}})

	var gotID int64
	var gotSlug, gotBody string
	f.images.generateFunc = func(ctx context.Context, articleID int64, slug, body string) ([]domain.Image, error) {
		gotID, gotSlug, gotBody = articleID, slug, body
		return []domain.Image{{URL: "new-1"}, {URL: "new-2"}}, nil
	}

	images, err := f.store.GenerateImages(context.Background(), 42, "dragons", "It takes a Jacobian")
	if err != nil {
		t.Fatalf("GenerateImages returned error: %v", err)
	}

	if gotID != 42 || gotSlug != "dragons" || gotBody != "It takes a Jacobian" {
		t.Errorf("Generate called with (%d, %q, %q)", gotID, gotSlug, gotBody)
	}
	if len(images) != 2 || len(f.store.Images()) != 2 || f.store.Images()[0].URL != "new-1" {
		t.Errorf("images = %v, state = %v", images, f.store.Images())
	}
}

func TestCommentWrites_RefetchExactlyOnce(t *testing.T) {
	tests := []struct {
		name string
		run  func(f *fixture) error
	}{
		{
			name: "create",
			run: func(f *fixture) error {
				return f.store.CreateComment(context.Background(), "dragons", domain.NewComment{Body: "hi"})
			},
		},
		{
			name: "destroy",
			run: func(f *fixture) error {
				return f.store.DestroyComment(context.Background(), "dragons", 7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			refreshed := []domain.Comment{{ID: 8, Body: "from backend"}}
			f.comments.getFunc = func(ctx context.Context, slug string) ([]domain.Comment, error) {
				if slug != "dragons" {
					t.Errorf("re-fetch slug = %q", slug)
				}
				return refreshed, nil
			}

			if err := tt.run(f); err != nil {
				t.Fatalf("returned error: %v", err)
			}

			if f.comments.getCalls != 1 {
				t.Errorf("comments fetched %d times, want 1", f.comments.getCalls)
			}
			if !reflect.DeepEqual(f.store.Comments(), refreshed) {
				t.Errorf("comments = %v, want %v", f.store.Comments(), refreshed)
			}
		})
	}
}

func TestCommentWrites_RefetchErrorIsReturned(t *testing.T) {
	tests := []struct {
		name string
		run  func(f *fixture) error
	}{
		{
			name: "create",
			run: func(f *fixture) error {
				return f.store.CreateComment(context.Background(), "dragons", domain.NewComment{Body: "hi"})
			},
		},
		{
			name: "destroy",
			run: func(f *fixture) error {
				return f.store.DestroyComment(context.Background(), "dragons", 7)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			existing := []domain.Comment{{ID: 7, Body: "already here"}}
			f.store.Commit(SetComments{Comments: existing})

			fetchErr := errors.New("comments unavailable")
			f.comments.getFunc = func(ctx context.Context, slug string) ([]domain.Comment, error) {
				return nil, fetchErr
			}

			err := tt.run(f)

			if !errors.Is(err, fetchErr) {
				t.Errorf("error = %v, want %v", err, fetchErr)
			}
			if f.comments.getCalls != 1 {
				t.Errorf("comments fetched %d times, want 1", f.comments.getCalls)
			}
			if !reflect.DeepEqual(f.store.Comments(), existing) {
				t.Errorf("comments = %v, want unchanged %v", f.store.Comments(), existing)
			}
		})
	}
}

func TestCreateComment_PostFailureSkipsRefetch(t *testing.T) {
	f := newFixture()
	postErr := errors.New("connection refused")
	f.comments.postFunc = func(ctx context.Context, slug string, comment domain.NewComment) error {
		return postErr
	}

	err := f.store.CreateComment(context.Background(), "dragons", domain.NewComment{Body: "hi"})

	if !errors.Is(err, postErr) {
		t.Errorf("error = %v, want %v", err, postErr)
	}
	if f.comments.getCalls != 0 {
		t.Errorf("comments fetched %d times after failed post, want 0", f.comments.getCalls)
	}
}

func TestDestroyComment_PassesID(t *testing.T) {
	f := newFixture()
	var gotID int64
	f.comments.destroyFunc = func(ctx context.Context, slug string, commentID int64) error {
		gotID = commentID
		return nil
	}

	if err := f.store.DestroyComment(context.Background(), "dragons", 7); err != nil {
		t.Fatalf("DestroyComment returned error: %v", err)
	}
	if gotID != 7 {
		t.Errorf("Destroy commentID = %d, want 7", gotID)
	}
}

func TestFavorites_UpdateListAndArticle(t *testing.T) {
	tests := []struct {
		name      string
		favorited bool
		run       func(f *fixture) (domain.Article, error)
	}{
		{"add", true, func(f *fixture) (domain.Article, error) {
			return f.store.AddFavorite(context.Background(), "dragons")
		}},
		{"remove", false, func(f *fixture) (domain.Article, error) {
			return f.store.RemoveFavorite(context.Background(), "dragons")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			backend := sampleArticle()
			backend.Favorited = tt.favorited
			backend.FavoritesCount = 3
			respond := func(ctx context.Context, slug string) (*domain.Article, error) {
				a := backend
				return &a, nil
			}
			f.favorites.addFunc = respond
			f.favorites.removeFunc = respond

			got, err := tt.run(f)
			if err != nil {
				t.Fatalf("returned error: %v", err)
			}

			if len(f.list.updates) != 1 {
				t.Fatalf("list updated %d times, want 1", len(f.list.updates))
			}
			if !reflect.DeepEqual(f.list.updates[0], f.store.Article()) {
				t.Errorf("list got %+v, state has %+v", f.list.updates[0], f.store.Article())
			}
			if !reflect.DeepEqual(got, backend) {
				t.Errorf("returned %+v, want %+v", got, backend)
			}
			if f.store.Article().Favorited != tt.favorited {
				t.Errorf("Favorited = %v, want %v", f.store.Article().Favorited, tt.favorited)
			}
		})
	}
}

func TestFavorites_WithoutListUpdater(t *testing.T) {
	favorites := &mockFavoriteService{
		addFunc: func(ctx context.Context, slug string) (*domain.Article, error) {
			a := sampleArticle()
			a.Favorited = true
			return &a, nil
		},
	}
	store := NewStore(interfaces.Dependencies{Favorites: favorites})

	if _, err := store.AddFavorite(context.Background(), "dragons"); err != nil {
		t.Fatalf("AddFavorite returned error: %v", err)
	}
	if !store.Article().Favorited {
		t.Error("article not updated")
	}
}

func TestFavorites_ErrorSkipsUpdates(t *testing.T) {
	f := newFixture()
	f.favorites.addFunc = func(ctx context.Context, slug string) (*domain.Article, error) {
		return nil, &coreerrors.UnauthorizedError{StatusCode: 401, Message: "missing token"}
	}

	_, err := f.store.AddFavorite(context.Background(), "dragons")

	if !coreerrors.IsUnauthorized(err) {
		t.Errorf("error = %v, want unauthorized", err)
	}
	if len(f.list.updates) != 0 {
		t.Error("list updated after failed favorite")
	}
}

func TestPublishArticle_SendsDraft(t *testing.T) {
	f := newFixture()
	f.store.SetArticleDraft(domain.Article{Title: "Draft", Body: "body"})
	f.store.AddTag("go")

	var sent domain.Article
	f.articles.createFunc = func(ctx context.Context, article domain.Article) (*domain.Article, error) {
		sent = article
		created := article
		created.Slug = "draft"
		return &created, nil
	}

	created, err := f.store.PublishArticle(context.Background())
	if err != nil {
		t.Fatalf("PublishArticle returned error: %v", err)
	}

	if sent.Title != "Draft" || !reflect.DeepEqual(sent.TagList, []string{"go"}) {
		t.Errorf("sent %+v", sent)
	}
	if created.Slug != "draft" {
		t.Errorf("created slug = %q, want draft", created.Slug)
	}
	if f.store.Article().Slug != "" {
		t.Error("publish should not change the state")
	}
}

func TestEditArticle_UsesDraftSlug(t *testing.T) {
	f := newFixture()
	f.store.SetArticleDraft(sampleArticle())

	var gotSlug string
	f.articles.updateFunc = func(ctx context.Context, slug string, article domain.Article) (*domain.Article, error) {
		gotSlug = slug
		return &article, nil
	}

	if _, err := f.store.EditArticle(context.Background()); err != nil {
		t.Fatalf("EditArticle returned error: %v", err)
	}
	if gotSlug != "how-to-train-your-dragon" {
		t.Errorf("Update slug = %q", gotSlug)
	}
}

func TestEditArticle_RequiresSlug(t *testing.T) {
	f := newFixture()

	_, err := f.store.EditArticle(context.Background())

	if !coreerrors.IsValidation(err) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestDeleteArticle_PassThrough(t *testing.T) {
	f := newFixture()
	want := &coreerrors.NotFoundError{Resource: "article", ID: "gone"}
	f.articles.destroyFunc = func(ctx context.Context, slug string) error {
		return want
	}

	if err := f.store.DeleteArticle(context.Background(), "gone"); err != want {
		t.Errorf("error = %v, want %v", err, want)
	}
}

func TestReset_AfterMutations(t *testing.T) {
	f := newFixture()
	f.store.SetArticleDraft(sampleArticle())
	f.store.AddTag("extra")
	f.store.Commit(SetComments{Comments: []domain.Comment{{ID: 1}}})
	f.store.Commit(SetImages{Images: []domain.Image{{URL: "x"}}})

	f.store.Reset()

	if !reflect.DeepEqual(f.store.State(), domain.NewViewState()) {
		t.Errorf("state after reset = %+v", f.store.State())
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	f := newFixture()
	f.store.SetArticleDraft(sampleArticle())
	f.store.Commit(SetComments{Comments: []domain.Comment{{ID: 1, Body: "a"}}})

	a := f.store.Article()
	a.TagList[0] = "changed"
	c := f.store.Comments()
	c[0].Body = "changed"

	if f.store.Article().TagList[0] != "dragons" {
		t.Error("Article accessor exposed internal tag list")
	}
	if f.store.Comments()[0].Body != "a" {
		t.Error("Comments accessor exposed internal slice")
	}
}
