package cart_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catering-api/cart"
	"catering-api/models"
	"catering-api/store"
)

func newService() *cart.Service {
	st := store.New(store.NewMemory())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return cart.NewService(st, log)
}

func product(id string, price int64) *models.Product {
	p := &models.Product{Name: "Product " + id, Price: price, Available: true}
	p.ID = id
	return p
}

func TestAddAccumulatesOnOneLine(t *testing.T) {
	ctx := context.Background()
	svc := newService()
	p := product("p1", 199)

	for _, qty := range []int{1, 2, 3} {
		_, err := svc.Add(ctx, "u1", p, qty)
		require.NoError(t, err)
	}

	lines, err := svc.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1, "exactly one line per (user, product)")
	assert.Equal(t, 6, lines[0].Quantity)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "u1", lines[0].UserID)
}

func TestAddRequiresUser(t *testing.T) {
	svc := newService()

	_, err := svc.Add(context.Background(), "", product("p1", 199), 1)
	require.ErrorIs(t, err, cart.ErrUnauthenticated)
}

func TestAddDefaultsQuantityToOne(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	line, err := svc.Add(ctx, "u1", product("p1", 199), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, "u1", product("p1", 199), 2)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(ctx, "u1", "p1", 0))

	lines, err := svc.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestSetQuantityOverwrites(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, "u1", product("p1", 199), 2)
	require.NoError(t, err)

	require.NoError(t, svc.SetQuantity(ctx, "u1", "p1", 7))

	lines, err := svc.Lines(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestRemoveMissingLineIsNoop(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, "u1", product("p1", 199), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, "u1", "nope"))

	lines, err := svc.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, "u1", product("p1", 199), 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", product("p2", 99), 1)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "u1"))

	lines, err := svc.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, "u1", product("p1", 199), 2)
	require.NoError(t, err)

	lines, err := svc.Lines(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, lines, "one user's cart never leaks into another's")
}

func TestTotals(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	_, err := svc.Add(ctx, "u1", product("p1", 199), 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "u1", product("p2", 99), 1)
	require.NoError(t, err)

	lines, err := svc.Lines(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, cart.TotalItems(lines))
	assert.Equal(t, int64(199*2+99), cart.TotalPrice(lines))
}
