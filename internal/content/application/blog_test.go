package application

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pawmart/internal/content/domain"
)

type memBlogRepo struct {
	posts map[string]*domain.BlogPost
}

func newMemBlogRepo() *memBlogRepo {
	return &memBlogRepo{posts: map[string]*domain.BlogPost{}}
}

func (r *memBlogRepo) Find(_ context.Context, q BlogQuery) ([]domain.BlogPost, error) {
	out := []domain.BlogPost{}
	for _, p := range r.posts {
		if p.IsPublished != q.Published {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *memBlogRepo) FindByID(_ context.Context, id string, publishedOnly bool) (*domain.BlogPost, error) {
	p, ok := r.posts[id]
	if !ok || (publishedOnly && !p.IsPublished) {
		return nil, ErrPostNotFound
	}
	return p, nil
}

func (r *memBlogRepo) FindBySlug(_ context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	for _, p := range r.posts {
		if p.Slug == slug {
			if publishedOnly && !p.IsPublished {
				return nil, ErrPostNotFound
			}
			return p, nil
		}
	}
	return nil, ErrPostNotFound
}

func (r *memBlogRepo) Insert(_ context.Context, p *domain.BlogPost) error {
	r.posts[p.ID] = p
	return nil
}

func (r *memBlogRepo) Replace(_ context.Context, p *domain.BlogPost) error {
	if _, ok := r.posts[p.ID]; !ok {
		return ErrPostNotFound
	}
	r.posts[p.ID] = p
	return nil
}

func (r *memBlogRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

type stubNamer struct {
	names map[int]string
}

func (n stubNamer) CategoryName(_ context.Context, id int) (string, error) {
	name, ok := n.names[id]
	if !ok {
		return "", ErrArticleNotFound
	}
	return name, nil
}

func newBlogTestService(blog *memBlogRepo) *Service {
	log := slog.New(slog.DiscardHandler)
	return NewService(log, nil, nil, blog, stubNamer{names: map[int]string{1: "Dog Toys"}})
}

func postInput(slug string, published bool) BlogPostInput {
	return BlogPostInput{
		Title:       "Choosing the Right Chew Toy",
		Slug:        slug,
		Content:     "Long form content.",
		Excerpt:     "Short version.",
		Author:      "Jordan",
		IsPublished: published,
	}
}

func TestCreatePost_RejectsDuplicateSlug(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, postInput("chew-toys", false))
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, postInput("chew-toys", false))
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestCreatePost_DuplicateCheckSeesUnpublishedPosts(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())
	ctx := context.Background()

	// A draft holds the slug even though the public API cannot see it.
	_, err := svc.CreatePost(ctx, postInput("draft-slug", false))
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, postInput("draft-slug", true))
	assert.ErrorIs(t, err, ErrSlugExists)
}

func TestCreatePost_StampsPublishedAtOnlyWhenPublished(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, postInput("draft", false))
	require.NoError(t, err)
	assert.Nil(t, draft.PublishedAt)

	live, err := svc.CreatePost(ctx, postInput("live", true))
	require.NoError(t, err)
	assert.NotNil(t, live.PublishedAt)
}

func TestCreatePost_DenormalizesCategoryName(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())

	in := postInput("with-category", true)
	catID := 1
	in.CategoryID = &catID

	p, err := svc.CreatePost(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Dog Toys", p.CategoryName)
}

func TestCreatePost_ToleratesMissingCategory(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())

	in := postInput("orphan-category", true)
	catID := 42
	in.CategoryID = &catID

	p, err := svc.CreatePost(context.Background(), in)
	require.NoError(t, err)
	assert.Empty(t, p.CategoryName)
}

func TestUpdatePost_PublishedAtStampedOnceOnFirstPublish(t *testing.T) {
	repo := newMemBlogRepo()
	svc := newBlogTestService(repo)
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, postInput("evolving", false))
	require.NoError(t, err)

	published, err := svc.UpdatePost(ctx, draft.ID, postInput("evolving", true))
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	first := *published.PublishedAt

	// Unpublish then republish: the original timestamp is preserved.
	_, err = svc.UpdatePost(ctx, draft.ID, postInput("evolving", false))
	require.NoError(t, err)

	again, err := svc.UpdatePost(ctx, draft.ID, postInput("evolving", true))
	require.NoError(t, err)
	require.NotNil(t, again.PublishedAt)
	assert.Equal(t, first, *again.PublishedAt)
}

func TestUpdatePost_SlugChangeCheckedForConflicts(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())
	ctx := context.Background()

	a, err := svc.CreatePost(ctx, postInput("slug-a", true))
	require.NoError(t, err)
	_, err = svc.CreatePost(ctx, postInput("slug-b", true))
	require.NoError(t, err)

	_, err = svc.UpdatePost(ctx, a.ID, postInput("slug-b", true))
	assert.ErrorIs(t, err, ErrSlugExists)

	// Keeping its own slug is never a conflict.
	_, err = svc.UpdatePost(ctx, a.ID, postInput("slug-a", true))
	assert.NoError(t, err)
}

func TestListPosts_UnpublishedQueryReturnsDraftsOnly(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, postInput("live-post", true))
	require.NoError(t, err)
	draft, err := svc.CreatePost(ctx, postInput("draft-post", false))
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx, BlogQuery{Published: false})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, draft.ID, posts[0].ID)

	posts, err = svc.ListPosts(ctx, BlogQuery{Published: true})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "live-post", posts[0].Slug)
}

func TestGetPost_PublicLookupsHideDrafts(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())
	ctx := context.Background()

	draft, err := svc.CreatePost(ctx, postInput("hidden", false))
	require.NoError(t, err)

	_, err = svc.GetPost(ctx, draft.ID)
	assert.ErrorIs(t, err, ErrPostNotFound)

	_, err = svc.GetPostBySlug(ctx, "hidden")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePost_UnknownID(t *testing.T) {
	svc := newBlogTestService(newMemBlogRepo())

	err := svc.DeletePost(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrPostNotFound)
}
