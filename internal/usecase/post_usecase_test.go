package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/internal/domain/entity"
	"logisocial/internal/testutil/memstore"
	apperrors "logisocial/pkg/errors"
)

func TestListPostsFilterPrecedence(t *testing.T) {
	store := memstore.New()
	uc := NewPostUseCase(store.Posts)
	ctx := context.Background()

	_, err := uc.Create(ctx, &entity.Post{UserID: "u1", Content: "a", ProviderID: strPtr("p1")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &entity.Post{UserID: "u2", Content: "b", ProviderID: strPtr("p1")})
	require.NoError(t, err)
	_, err = uc.Create(ctx, &entity.Post{UserID: "u2", Content: "c"})
	require.NoError(t, err)

	byUser, err := uc.ListPosts(ctx, entity.PostFilter{UserID: "u1", ProviderID: "p1"})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "a", byUser[0].Content)

	byProvider, err := uc.ListPosts(ctx, entity.PostFilter{ProviderID: "p1"})
	require.NoError(t, err)
	require.Len(t, byProvider, 2)
	assert.Equal(t, "b", byProvider[0].Content, "newest first")

	all, err := uc.ListPosts(ctx, entity.PostFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLikeIncrements(t *testing.T) {
	store := memstore.New()
	uc := NewPostUseCase(store.Posts)
	ctx := context.Background()

	post, err := uc.Create(ctx, &entity.Post{UserID: "u1", Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, []string{}, post.Images)
	assert.Equal(t, []string{}, post.Tags)
	assert.Nil(t, post.ProviderID)

	for i := 0; i < 3; i++ {
		require.NoError(t, uc.Like(ctx, post.ID))
	}

	got, err := uc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Likes)

	err = uc.Like(ctx, primitive.NewObjectID())
	assert.True(t, apperrors.IsNotFound(err))
}
