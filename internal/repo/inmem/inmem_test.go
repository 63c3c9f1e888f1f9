package inmem

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkeeper/internal/domain"
)

func TestUserListAndSearch(t *testing.T) {
	r := NewUserRepo()
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.NoError(t, r.Create(ctx, &domain.User{
			UUID:  fmt.Sprintf("u-%02d", i),
			Name:  fmt.Sprintf("User %02d", i),
			Email: fmt.Sprintf("user%02d@example.com", i),
		}))
	}
	require.NoError(t, r.SoftDelete(ctx, "u-03"))

	res, err := r.List(ctx, domain.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(11), res.Total, "soft-deleted users are excluded")
	assert.Len(t, res.Data, 10)
	assert.Equal(t, 2, res.TotalPages)

	res, err = r.Search(ctx, "USER07@", domain.Page{})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "u-07", res.Data[0].UUID)
}

func TestJoinTableKeepsInsertionOrder(t *testing.T) {
	items := NewItemRepo()
	lists := NewListRepo(items)
	ctx := context.Background()

	for i, name := range []string{"Milk", "Bread", "Eggs"} {
		require.NoError(t, items.Create(ctx, &domain.Item{
			UUID: fmt.Sprintf("it-%d", i), Name: name, UserID: "u1",
		}, ""))
		require.NoError(t, lists.AddItem(ctx, "l1", fmt.Sprintf("it-%d", i)))
	}

	got, err := items.FindByList(ctx, "l1", "u1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Milk", got[0].Name)
	assert.Equal(t, "Eggs", got[2].Name)
}
