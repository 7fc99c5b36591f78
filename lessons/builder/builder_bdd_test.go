package builder

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// BuilderBDDTestContext holds the state of one scenario.
type BuilderBDDTestContext struct {
	pizzaBuilder *PizzaBuilder
	pizza        Pizza
	queryBuilder *QueryBuilder
	query        Query
	sql          string
	lastError    error
	secondError  error
}

func (ctx *BuilderBDDTestContext) iHaveANewPizzaBuilder() error {
	ctx.pizzaBuilder = NewPizzaBuilder()
	return nil
}

func (ctx *BuilderBDDTestContext) iChooseTheSize(size string) error {
	ctx.pizzaBuilder.Size(size)
	return nil
}

func (ctx *BuilderBDDTestContext) iChooseTheCrust(crust string) error {
	ctx.pizzaBuilder.Crust(crust)
	return nil
}

func (ctx *BuilderBDDTestContext) iAddTheToppings(list string) error {
	ctx.pizzaBuilder.Topping(splitList(list)...)
	return nil
}

func (ctx *BuilderBDDTestContext) iBuildThePizza() error {
	ctx.pizza, ctx.lastError = ctx.pizzaBuilder.Build()
	return nil
}

func (ctx *BuilderBDDTestContext) iBuildThePizzaAgain() error {
	_, ctx.secondError = ctx.pizzaBuilder.Build()
	return nil
}

func (ctx *BuilderBDDTestContext) theBuildShouldSucceed() error {
	if ctx.lastError != nil {
		return fmt.Errorf("expected build to succeed, got %w", ctx.lastError)
	}
	return nil
}

func (ctx *BuilderBDDTestContext) theBuildShouldFailWith(message string) error {
	if ctx.lastError == nil {
		return errors.New("expected build to fail")
	}
	if ctx.lastError.Error() != message {
		return fmt.Errorf("expected error %q, got %q", message, ctx.lastError.Error())
	}
	return nil
}

func (ctx *BuilderBDDTestContext) theSecondBuildShouldFailBecauseSealed() error {
	if !errors.Is(ctx.secondError, ErrBuilderSealed) {
		return fmt.Errorf("expected ErrBuilderSealed, got %v", ctx.secondError)
	}
	return nil
}

func (ctx *BuilderBDDTestContext) thePizzaToppingsShouldBe(list string) error {
	got := strings.Join(ctx.pizza.Toppings(), ", ")
	if got != list {
		return fmt.Errorf("expected toppings %q, got %q", list, got)
	}
	return nil
}

func (ctx *BuilderBDDTestContext) thePizzaShouldCost(price float64) error {
	if ctx.pizza.Price() != price {
		return fmt.Errorf("expected price %.2f, got %.2f", price, ctx.pizza.Price())
	}
	return nil
}

func (ctx *BuilderBDDTestContext) thePizzaSizeShouldBe(size string) error {
	if ctx.pizza.Size() != size {
		return fmt.Errorf("expected size %q, got %q", size, ctx.pizza.Size())
	}
	return nil
}

func (ctx *BuilderBDDTestContext) iHaveANewQueryBuilder() error {
	ctx.queryBuilder = NewQueryBuilder()
	return nil
}

func (ctx *BuilderBDDTestContext) iQueryTheTable(table string) error {
	ctx.queryBuilder.From(table)
	return nil
}

func (ctx *BuilderBDDTestContext) iJoinOnEquals(table, left, right string) error {
	ctx.queryBuilder.Join(table, left, right)
	return nil
}

func (ctx *BuilderBDDTestContext) iFilter(column, op string, value int) error {
	ctx.queryBuilder.Where(column, op, value)
	return nil
}

func (ctx *BuilderBDDTestContext) iLimitTheQueryTo(n int) error {
	ctx.queryBuilder.Limit(uint(n))
	return nil
}

func (ctx *BuilderBDDTestContext) iBuildTheQuery() error {
	ctx.query, ctx.lastError = ctx.queryBuilder.Build()
	if ctx.lastError != nil {
		return nil
	}
	sql, err := ctx.query.SQL()
	if err != nil {
		return fmt.Errorf("rendering SQL: %w", err)
	}
	ctx.sql = sql
	return nil
}

func (ctx *BuilderBDDTestContext) theSQLShouldBe(want string) error {
	if ctx.sql != want {
		return fmt.Errorf("expected SQL %q, got %q", want, ctx.sql)
	}
	return nil
}

func (ctx *BuilderBDDTestContext) theSQLShouldContain(fragment string) error {
	if !strings.Contains(ctx.sql, fragment) {
		return fmt.Errorf("expected SQL to contain %q, got %q", fragment, ctx.sql)
	}
	return nil
}

func (ctx *BuilderBDDTestContext) theQueryShouldHaveConditions(n int) error {
	if ctx.query.Conditions() != n {
		return fmt.Errorf("expected %d conditions, got %d", n, ctx.query.Conditions())
	}
	return nil
}

func splitList(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func TestBuilderBDD(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: func(ctx *godog.ScenarioContext) {
			testCtx := &BuilderBDDTestContext{}

			// Pizza builder
			ctx.Step(`^I have a new pizza builder$`, testCtx.iHaveANewPizzaBuilder)
			ctx.Step(`^I choose the "([^"]*)" size$`, testCtx.iChooseTheSize)
			ctx.Step(`^I choose the "([^"]*)" crust$`, testCtx.iChooseTheCrust)
			ctx.Step(`^I add the toppings "([^"]*)"$`, testCtx.iAddTheToppings)
			ctx.Step(`^I build the pizza$`, testCtx.iBuildThePizza)
			ctx.Step(`^I build the pizza again$`, testCtx.iBuildThePizzaAgain)
			ctx.Step(`^the build should succeed$`, testCtx.theBuildShouldSucceed)
			ctx.Step("^the build should fail with `(.*)`$", testCtx.theBuildShouldFailWith)
			ctx.Step(`^the second build should fail because the builder is sealed$`, testCtx.theSecondBuildShouldFailBecauseSealed)
			ctx.Step(`^the pizza toppings should be "([^"]*)"$`, testCtx.thePizzaToppingsShouldBe)
			ctx.Step(`^the pizza should cost (\d+\.\d+)$`, testCtx.thePizzaShouldCost)
			ctx.Step(`^the pizza size should be "([^"]*)"$`, testCtx.thePizzaSizeShouldBe)

			// Query builder
			ctx.Step(`^I have a new query builder$`, testCtx.iHaveANewQueryBuilder)
			ctx.Step(`^I query the "([^"]*)" table$`, testCtx.iQueryTheTable)
			ctx.Step(`^I join "([^"]*)" on "([^"]*)" equals "([^"]*)"$`, testCtx.iJoinOnEquals)
			ctx.Step(`^I filter "([^"]*)" "([^"]*)" (\d+)$`, testCtx.iFilter)
			ctx.Step(`^I limit the query to (\d+) rows$`, testCtx.iLimitTheQueryTo)
			ctx.Step(`^I build the query$`, testCtx.iBuildTheQuery)
			ctx.Step("^the SQL should be `(.*)`$", testCtx.theSQLShouldBe)
			ctx.Step("^the SQL should contain `(.*)`$", testCtx.theSQLShouldContain)
			ctx.Step(`^the query should have (\d+) conditions$`, testCtx.theQueryShouldHaveConditions)
			ctx.Step("^the query build should fail with `(.*)`$", testCtx.theBuildShouldFailWith)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
