package usecase

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listkeeper/internal/domain"
	"listkeeper/internal/repo/inmem"
)

func newItemFixture(t *testing.T) (*ItemService, *inmem.ItemRepo) {
	t.Helper()
	items := inmem.NewItemRepo()
	return NewItemService(items), items
}

func createItem(t *testing.T, svc *ItemService, name, userID string) string {
	t.Helper()
	require.NoError(t, svc.Create(context.Background(), CreateItemInput{
		Name: name, Description: "d", Value: 3.50, UserID: userID,
	}))
	res, err := svc.Search(context.Background(), userID, name, domain.Page{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Data)
	return res.Data[0].UUID
}

func TestCreateItemValidation(t *testing.T) {
	svc, items := newItemFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		in   CreateItemInput
	}{
		{"empty name", CreateItemInput{Description: "d", Value: 1, UserID: "u1"}},
		{"empty description", CreateItemInput{Name: "n", Value: 1, UserID: "u1"}},
		{"zero value", CreateItemInput{Name: "n", Description: "d", Value: 0, UserID: "u1"}},
		{"negative value", CreateItemInput{Name: "n", Description: "d", Value: -2, UserID: "u1"}},
		{"missing user", CreateItemInput{Name: "n", Description: "d", Value: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Create(ctx, tc.in)
			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
		})
	}
	assert.Equal(t, 0, items.HardCount(), "no row may be persisted on validation failure")
}

func TestItemOwnership(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	uuid := createItem(t, svc, "Milk", "owner")

	name := "Oat milk"
	t.Run("foreign update forbidden", func(t *testing.T) {
		err := svc.Update(ctx, UpdateItemInput{UUID: uuid, Name: &name, UserID: "intruder"})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
	t.Run("foreign get forbidden", func(t *testing.T) {
		_, err := svc.Get(ctx, uuid, "intruder")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})
	t.Run("foreign delete forbidden", func(t *testing.T) {
		err := svc.Delete(ctx, uuid, "intruder")
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusOf(t, err))
	})

	// The resource stays unchanged after the rejected mutations.
	it, err := svc.Get(ctx, uuid, "owner")
	require.NoError(t, err)
	assert.Equal(t, "Milk", it.Name)
}

func TestItemUpdateValidation(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	uuid := createItem(t, svc, "Milk", "owner")

	t.Run("no fields", func(t *testing.T) {
		err := svc.Update(ctx, UpdateItemInput{UUID: uuid, UserID: "owner"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
	t.Run("non-positive value", func(t *testing.T) {
		bad := 0.0
		err := svc.Update(ctx, UpdateItemInput{UUID: uuid, Value: &bad, UserID: "owner"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
	})
	t.Run("unknown uuid", func(t *testing.T) {
		v := 2.0
		err := svc.Update(ctx, UpdateItemInput{UUID: "missing", Value: &v, UserID: "owner"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, statusOf(t, err))
	})

	v := 4.20
	require.NoError(t, svc.Update(ctx, UpdateItemInput{UUID: uuid, Value: &v, UserID: "owner"}))
	it, err := svc.Get(ctx, uuid, "owner")
	require.NoError(t, err)
	assert.Equal(t, 4.20, it.Value)
}

func TestItemSoftDelete(t *testing.T) {
	svc, items := newItemFixture(t)
	ctx := context.Background()
	uuid := createItem(t, svc, "Milk", "owner")

	require.NoError(t, svc.Delete(ctx, uuid, "owner"))

	_, err := svc.Get(ctx, uuid, "owner")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	res, err := svc.List(ctx, "owner", domain.Page{})
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 1, items.HardCount(), "soft delete must retain the row")
}

func TestItemPagination(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	for i := 0; i < 15; i++ {
		require.NoError(t, svc.Create(ctx, CreateItemInput{
			Name: fmt.Sprintf("item-%02d", i), Description: "d", Value: 1, UserID: "owner",
		}))
	}

	p1, err := svc.List(ctx, "owner", domain.Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, p1.Data, 10)
	assert.EqualValues(t, 15, p1.Total)
	assert.Equal(t, 2, p1.TotalPages)

	p2, err := svc.List(ctx, "owner", domain.Page{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, p2.Data, 5)
	assert.Equal(t, 2, p2.TotalPages)
}

func TestItemSearch(t *testing.T) {
	svc, _ := newItemFixture(t)
	ctx := context.Background()
	createItem(t, svc, "Whole Milk", "owner")
	createItem(t, svc, "Bread", "owner")
	createItem(t, svc, "Milk Chocolate", "other-user")

	res, err := svc.Search(ctx, "owner", "milk", domain.Page{})
	require.NoError(t, err)
	require.Len(t, res.Data, 1, "search is case-insensitive and user-scoped")
	assert.Equal(t, "Whole Milk", res.Data[0].Name)

	_, err = svc.Search(ctx, "owner", "", domain.Page{})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))
}
