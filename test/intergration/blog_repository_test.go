package intergration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	contentapp "pawmart/internal/content/application"
	contentdomain "pawmart/internal/content/domain"
	contentmongo "pawmart/internal/content/infrastructure/mongo"
)

func blogPost(slug string, created time.Time, published *time.Time) *contentdomain.BlogPost {
	return &contentdomain.BlogPost{
		ID:          uuid.NewString(),
		Title:       "Post " + slug,
		Slug:        slug,
		Content:     "Body for " + slug,
		Author:      "Jordan",
		Tags:        []string{},
		IsPublished: published != nil,
		CreatedAt:   created,
		UpdatedAt:   created,
		PublishedAt: published,
	}
}

func TestBlogRepositoryQueries(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	require.NoError(t, err)
	defer env.Teardown(ctx)

	repo := contentmongo.NewBlogRepository(env.DB)
	require.NoError(t, repo.EnsureIndexes(ctx))

	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	feb := jan.AddDate(0, 1, 0)
	mar := jan.AddDate(0, 2, 0)

	// Created first but published last: must lead the public listing.
	require.NoError(t, repo.Insert(ctx, blogPost("late-publish", jan, &mar)))
	require.NoError(t, repo.Insert(ctx, blogPost("early-publish", feb, &feb)))
	require.NoError(t, repo.Insert(ctx, blogPost("still-draft", jan.AddDate(0, 0, 9), nil)))

	t.Run("published listing is ordered by publish date", func(t *testing.T) {
		posts, err := repo.Find(ctx, contentapp.BlogQuery{Published: true, Limit: 20})
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "late-publish", posts[0].Slug)
		assert.Equal(t, "early-publish", posts[1].Slug)
	})

	t.Run("unpublished listing returns drafts only", func(t *testing.T) {
		posts, err := repo.Find(ctx, contentapp.BlogQuery{Published: false, Limit: 20})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "still-draft", posts[0].Slug)
	})
}
