package builder

import (
	"slices"
	"strings"

	"github.com/GoCodeAlone/demokit"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/doug-martin/goqu/v9/exp"
)

const dialectPostgres = "postgres"

type join struct {
	table       string
	left, right string
}

type condition struct {
	column string
	op     string
	value  any
}

type order struct {
	column string
	desc   bool
}

var operators = map[string]func(c exp.IdentifierExpression, v any) exp.Expression{
	"=":    func(c exp.IdentifierExpression, v any) exp.Expression { return c.Eq(v) },
	"!=":   func(c exp.IdentifierExpression, v any) exp.Expression { return c.Neq(v) },
	">":    func(c exp.IdentifierExpression, v any) exp.Expression { return c.Gt(v) },
	">=":   func(c exp.IdentifierExpression, v any) exp.Expression { return c.Gte(v) },
	"<":    func(c exp.IdentifierExpression, v any) exp.Expression { return c.Lt(v) },
	"<=":   func(c exp.IdentifierExpression, v any) exp.Expression { return c.Lte(v) },
	"like": func(c exp.IdentifierExpression, v any) exp.Expression { return c.Like(v) },
	"in":   func(c exp.IdentifierExpression, v any) exp.Expression { return c.In(v) },
}

// Query is an immutable product of QueryBuilder.
type Query struct {
	table   string
	columns []string
	joins   []join
	wheres  []condition
	orders  []order
	limit   uint
}

func (q Query) Table() string { return q.table }

// Columns returns a copy of the selected columns.
func (q Query) Columns() []string { return slices.Clone(q.columns) }

// Joins returns the joined tables in the order they were added.
func (q Query) Joins() []string {
	tables := make([]string, len(q.joins))
	for i, j := range q.joins {
		tables[i] = j.table
	}
	return tables
}

// Conditions returns how many WHERE conditions the query has.
func (q Query) Conditions() int { return len(q.wheres) }

// SQL renders the query for Postgres with values inlined.
func (q Query) SQL() (string, error) {
	stmt := goqu.Dialect(dialectPostgres).From(q.table)

	if len(q.columns) > 0 {
		cols := make([]any, len(q.columns))
		for i, c := range q.columns {
			cols[i] = goqu.I(c)
		}
		stmt = stmt.Select(cols...)
	}

	for _, j := range q.joins {
		stmt = stmt.InnerJoin(goqu.T(j.table), goqu.On(goqu.I(j.left).Eq(goqu.I(j.right))))
	}

	if len(q.wheres) > 0 {
		exprs := make([]exp.Expression, len(q.wheres))
		for i, w := range q.wheres {
			exprs[i] = operators[w.op](goqu.I(w.column), w.value)
		}
		stmt = stmt.Where(exprs...)
	}

	for _, o := range q.orders {
		if o.desc {
			stmt = stmt.OrderAppend(goqu.I(o.column).Desc())
			continue
		}
		stmt = stmt.OrderAppend(goqu.I(o.column).Asc())
	}

	if q.limit > 0 {
		stmt = stmt.Limit(q.limit)
	}

	sql, _, err := stmt.ToSQL()
	return sql, err
}

// QueryBuilder requires a table. Columns, joins, conditions and orderings
// accumulate in call order; Limit is last-write-wins.
type QueryBuilder struct {
	seal
	query Query
}

// NewQueryBuilder starts an empty query.
func NewQueryBuilder() *QueryBuilder {
	return &QueryBuilder{}
}

func (b *QueryBuilder) From(table string) *QueryBuilder {
	if b.configurable() {
		b.query.table = table
	}
	return b
}

func (b *QueryBuilder) Select(columns ...string) *QueryBuilder {
	if b.configurable() {
		b.query.columns = append(b.query.columns, columns...)
	}
	return b
}

// Join adds an inner join on left = right.
func (b *QueryBuilder) Join(table, left, right string) *QueryBuilder {
	if b.configurable() {
		b.query.joins = append(b.query.joins, join{table: table, left: left, right: right})
	}
	return b
}

// Where adds a condition. op is one of =, !=, >, >=, <, <=, like, in.
func (b *QueryBuilder) Where(column, op string, value any) *QueryBuilder {
	if !b.configurable() {
		return b
	}
	op = strings.ToLower(op)
	if _, ok := operators[op]; !ok {
		b.fail(demokit.UnsupportedType("operator", op))
		return b
	}
	b.query.wheres = append(b.query.wheres, condition{column: column, op: op, value: value})
	return b
}

func (b *QueryBuilder) OrderBy(column string, desc bool) *QueryBuilder {
	if b.configurable() {
		b.query.orders = append(b.query.orders, order{column: column, desc: desc})
	}
	return b
}

func (b *QueryBuilder) Limit(n uint) *QueryBuilder {
	if b.configurable() {
		b.query.limit = n
	}
	return b
}

// Build returns the query with its own copies of every accumulated list.
func (b *QueryBuilder) Build() (Query, error) {
	if err := b.check(); err != nil {
		return Query{}, err
	}
	if m := missing(field{"table", b.query.table != ""}); len(m) > 0 {
		return Query{}, demokit.NewConstructionError("query", m...)
	}
	b.done()

	q := b.query
	q.columns = slices.Clone(q.columns)
	q.joins = slices.Clone(q.joins)
	q.wheres = slices.Clone(q.wheres)
	q.orders = slices.Clone(q.orders)
	return q, nil
}
