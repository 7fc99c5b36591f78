package builder

import (
	"context"
	"testing"
	"time"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/advanced"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHouseBuilder_MissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		builder *HouseBuilder
		want    string
	}{
		{"nothing set", NewHouseBuilder(), "cannot build house: required field is missing: foundation, walls, roof"},
		{"walls only", NewHouseBuilder().Walls("brick"), "cannot build house: required field is missing: foundation, roof"},
		{"no roof", NewHouseBuilder().Foundation("a").Walls("b"), "cannot build house: required field is missing: roof"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			assert.EqualError(t, err, tt.want)
			assert.ErrorIs(t, err, demokit.ErrConstruction)
			assert.ErrorIs(t, err, demokit.ErrMissingField)

			var cerr *demokit.ConstructionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, "house", cerr.Product)
		})
	}
}

func TestHouseBuilder_LastWriteWins(t *testing.T) {
	t.Parallel()
	h, err := NewHouseBuilder().Foundation("a").Foundation("b").Walls("w").Roof("r").Floors(3).Floors(2).Build()
	require.NoError(t, err)
	assert.Equal(t, "b", h.Foundation())
	assert.Equal(t, 2, h.Floors())
	assert.False(t, h.HasGarage())
}

func TestHouseBuilder_InvalidFloorsSticks(t *testing.T) {
	t.Parallel()
	_, err := NewHouseBuilder().Floors(-1).Foundation("a").Walls("w").Roof("r").Build()
	assert.ErrorIs(t, err, demokit.ErrValidation)
}

func TestPizzaBuilder(t *testing.T) {
	t.Parallel()
	p, err := NewPizzaBuilder().Crust("thin").Size(Small).Topping("a").Topping("b", "c").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, p.Toppings())
	assert.InDelta(t, 12.5, p.Price(), 1e-9)

	_, err = NewPizzaBuilder().Topping("x").Build()
	assert.EqualError(t, err, "cannot build pizza: required field is missing: size, crust")

	_, err = NewPizzaBuilder().Size("huge").Crust("thin").Build()
	assert.ErrorIs(t, err, demokit.ErrUnsupportedType)
}

func TestPizza_DefensiveCopies(t *testing.T) {
	t.Parallel()
	input := []string{"olives"}
	p, err := NewPizzaBuilder().Size(Large).Crust("thin").Topping(input...).Build()
	require.NoError(t, err)

	input[0] = "changed"
	out := p.Toppings()
	out[0] = "changed"
	assert.Equal(t, []string{"olives"}, p.Toppings())

	v, err := p.ToBuilder().Topping("ham").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"olives", "ham"}, v.Toppings())
	assert.Equal(t, []string{"olives"}, p.Toppings())
}

func TestBuilder_SealedAfterBuild(t *testing.T) {
	t.Parallel()
	b := NewPizzaBuilder().Size(Small).Crust("thin")
	first, err := b.Build()
	require.NoError(t, err)

	b.Topping("late")
	assert.Empty(t, first.Toppings())

	_, err = b.Build()
	assert.ErrorIs(t, err, ErrBuilderSealed)
}

func TestBuilder_FailedBuildStaysConfigurable(t *testing.T) {
	t.Parallel()
	b := NewQueryBuilder().Select("id")
	_, err := b.Build()
	require.Error(t, err)

	q, err := b.From("t").Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"id"}, q.Columns())
}

func TestQuery_SQL(t *testing.T) {
	t.Parallel()
	q, err := NewQueryBuilder().
		From("users").
		Select("users.id", "orders.total").
		Join("orders", "users.id", "orders.user_id").
		Where("orders.total", ">", 100).
		Where("users.status", "=", "active").
		OrderBy("orders.total", true).
		Limit(10).
		Build()
	require.NoError(t, err)

	sql, err := q.SQL()
	require.NoError(t, err)
	assert.Contains(t, sql, `SELECT "users"."id", "orders"."total" FROM "users"`)
	assert.Contains(t, sql, `INNER JOIN "orders" ON ("users"."id" = "orders"."user_id")`)
	assert.Contains(t, sql, `("orders"."total" > 100)`)
	assert.Contains(t, sql, `("users"."status" = 'active')`)
	assert.Contains(t, sql, `ORDER BY "orders"."total" DESC`)
	assert.Contains(t, sql, `LIMIT 10`)
}

func TestQuery_SQLSelectAll(t *testing.T) {
	t.Parallel()
	q, err := NewQueryBuilder().From("products").Build()
	require.NoError(t, err)

	sql, err := q.SQL()
	require.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "products"`, sql)
}

func TestQueryBuilder_UnknownOperator(t *testing.T) {
	t.Parallel()
	_, err := NewQueryBuilder().From("t").Where("a", "~", 1).Build()
	assert.EqualError(t, err, `unsupported type: operator "~"`)
}

func TestRequestBuilder(t *testing.T) {
	t.Parallel()
	headers := map[string]string{"X-A": "1"}
	req, err := NewRequestBuilder().Method("get").URL("https://example.com/a").Headers(headers).Query("q", "go").Build()
	require.NoError(t, err)

	headers["X-B"] = "2"
	got := req.Headers()
	got["X-C"] = "3"

	assert.Equal(t, map[string]string{"X-A": "1"}, req.Headers())
	assert.Equal(t, "GET", req.Method())
	assert.Equal(t, "https://example.com/a?q=go", req.URL())
	assert.Equal(t, DefaultTimeout, req.Timeout())
}

func TestRequestBuilder_Errors(t *testing.T) {
	t.Parallel()
	_, err := NewRequestBuilder().Method("GET").URL("/relative").Build()
	assert.ErrorIs(t, err, demokit.ErrValidation)

	_, err = NewRequestBuilder().Method("GET").URL("https://x.io").Timeout(-time.Second).Build()
	assert.EqualError(t, err, "invalid timeout -1s: must be positive")

	_, err = NewRequestBuilder().Build()
	assert.EqualError(t, err, "cannot build request: required field is missing: method, url")
}

func TestRequest_Send(t *testing.T) {
	t.Parallel()
	loop := demokit.NewEventLoop(0)
	client := advanced.NewHTTPClient(loop)

	req, err := NewRequestBuilder().Method("POST").URL("https://x.io/items").Body(map[string]int{"n": 1}).Build()
	require.NoError(t, err)
	f, err := req.Send(client)
	require.NoError(t, err)

	resp, err := f.Await(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"method":"POST","url":"https://x.io/items","body":{"n":1}}`, resp.Data)

	del, err := NewRequestBuilder().Method("DELETE").URL("https://x.io/items/1").Build()
	require.NoError(t, err)
	_, err = del.Send(client)
	assert.ErrorIs(t, err, demokit.ErrUnsupportedType)
}
