package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering-api/models"
	"catering-api/store"
)

func newStore() *store.Store {
	return store.New(store.NewMemory())
}

func products(s *store.Store) *store.Collection[*models.Product] {
	return store.NewCollection[*models.Product](s, store.KeyProducts)
}

func TestGetEmptyCollection(t *testing.T) {
	col := products(newStore())

	docs, err := col.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestAddRoundTrip(t *testing.T) {
	ctx := context.Background()
	col := products(newStore())

	names := []string{"Thali", "Biryani", "Paneer Tikka"}
	ids := make(map[string]bool)
	for _, name := range names {
		id, err := col.Add(ctx, &models.Product{Name: name, Price: 100, Available: true})
		require.NoError(t, err)
		require.NotEmpty(t, id)
		ids[id] = true
	}
	assert.Len(t, ids, len(names), "every document gets a distinct id")

	docs, err := col.Get(ctx)
	require.NoError(t, err)
	require.Len(t, docs, len(names))
	for _, d := range docs {
		assert.True(t, ids[d.ID])
		assert.False(t, d.CreatedAt.IsZero())
	}
}

func TestWhereOperators(t *testing.T) {
	ctx := context.Background()
	col := products(newStore())

	for _, p := range []*models.Product{
		{Name: "Thali", Price: 199, Category: "Vegetarian", Available: true},
		{Name: "Biryani", Price: 449, Category: "Rice Dishes", Available: true},
		{Name: "Old Special", Price: 99, Category: "Vegetarian", Available: false},
	} {
		_, err := col.Add(ctx, p)
		require.NoError(t, err)
	}

	veg, err := col.Where(ctx, "category", store.OpEq, "Vegetarian")
	require.NoError(t, err)
	assert.Len(t, veg, 2)

	notVeg, err := col.Where(ctx, "category", store.OpNe, "Vegetarian")
	require.NoError(t, err)
	require.Len(t, notVeg, 1)
	assert.Equal(t, "Biryani", notVeg[0].Name)

	pricey, err := col.Where(ctx, "price", store.OpGt, 200)
	require.NoError(t, err)
	require.Len(t, pricey, 1)
	assert.Equal(t, "Biryani", pricey[0].Name)

	cheap, err := col.Where(ctx, "price", store.OpLt, 100)
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Old Special", cheap[0].Name)

	available, err := col.Where(ctx, "available", store.OpEq, true)
	require.NoError(t, err)
	assert.Len(t, available, 2)
}

func TestWhereUserIDExactSubset(t *testing.T) {
	ctx := context.Background()
	orders := store.NewCollection[*models.Order](newStore(), store.KeyOrders)

	for _, userID := range []string{"u1", "u2", "u1", "u3", "u1"} {
		_, err := orders.Add(ctx, &models.Order{UserID: userID, Status: models.StatusPending})
		require.NoError(t, err)
	}

	mine, err := orders.Where(ctx, "userId", store.OpEq, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	for _, o := range mine {
		assert.Equal(t, "u1", o.UserID)
	}
}

func TestWhereUnsupportedOperator(t *testing.T) {
	col := products(newStore())

	_, err := col.Where(context.Background(), "price", ">=", 100)
	require.ErrorIs(t, err, store.ErrUnsupportedOp)
}

func TestFind(t *testing.T) {
	ctx := context.Background()
	col := products(newStore())

	id, err := col.Add(ctx, &models.Product{Name: "Thali", Price: 199})
	require.NoError(t, err)

	p, ok, err := col.Find(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Thali", p.Name)

	_, ok, err = col.Find(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	col := products(newStore())

	id, err := col.Add(ctx, &models.Product{Name: "Thali", Price: 199})
	require.NoError(t, err)
	created, _, err := col.Find(ctx, id)
	require.NoError(t, err)

	err = col.Update(ctx, id, func(p *models.Product) { p.Price = 249 })
	require.NoError(t, err)

	updated, ok, err := col.Find(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(249), updated.Price)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdateMissingDocument(t *testing.T) {
	col := products(newStore())

	err := col.Update(context.Background(), "missing", func(p *models.Product) { p.Price = 1 })
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	col := products(newStore())

	id, err := col.Add(ctx, &models.Product{Name: "Thali", Price: 199})
	require.NoError(t, err)

	require.NoError(t, col.Delete(ctx, id))

	_, ok, err := col.Find(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	require.ErrorIs(t, col.Delete(ctx, id), store.ErrNotFound)
}

func TestCollectionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	a := store.NewCollection[*models.Product](s, store.CartKey("u1"))
	b := store.NewCollection[*models.Product](s, store.CartKey("u2"))

	_, err := a.Add(ctx, &models.Product{Name: "Thali", Price: 199})
	require.NoError(t, err)

	other, err := b.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSingleSessionRecord(t *testing.T) {
	ctx := context.Background()
	session := store.NewSingle[*models.User](newStore(), store.KeySession)

	_, ok, err := session.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, session.Put(ctx, &models.User{Email: "a@b.com", Role: models.RoleUser}))

	u, ok, err := session.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", u.Email)

	require.NoError(t, session.Clear(ctx))
	_, ok, err = session.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}
