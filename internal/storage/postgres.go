package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG implements Gateway on a pgx pool. Table and column names come from
// callers inside this repo, never from user input; values always travel as
// positional parameters.
type PG struct {
	Pool    *pgxpool.Pool
	Timeout time.Duration
}

func NewPG(pool *pgxpool.Pool) *PG {
	return &PG{Pool: pool, Timeout: DefaultTimeout}
}

func (g *PG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	d := g.Timeout
	if d <= 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}

func (g *PG) SelectAll(ctx context.Context, table string, opts SelectOpts) ([]Row, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	sql := "SELECT * FROM " + table
	where, args := whereClause(opts.Filter, 1)
	sql += where
	if opts.OrderBy != nil {
		sql += " ORDER BY " + opts.OrderBy.Column
		if opts.OrderBy.Desc {
			sql += " DESC"
		}
	}
	if opts.Limit > 0 {
		sql += fmt.Sprintf(" LIMIT %d", opts.Limit)
	}

	rows, err := g.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr("select", table, err)
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, storageErr("select", table, err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("select", table, err)
	}
	return out, nil
}

func (g *PG) SelectOne(ctx context.Context, table string, filter Filter) (Row, error) {
	rows, err := g.SelectAll(ctx, table, SelectOpts{Filter: filter, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0], nil
}

func (g *PG) Insert(ctx context.Context, table string, record Row) (Row, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	cols := sortedKeys(record)
	placeholders := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = record[c]
	}
	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	rows, err := g.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr("insert", table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storageErr("insert", table, err)
		}
		return nil, storageErr("insert", table, pgx.ErrNoRows)
	}
	r, err := scanRow(rows)
	if err != nil {
		return nil, storageErr("insert", table, err)
	}
	return r, nil
}

func (g *PG) Update(ctx context.Context, table string, filter Filter, patch Row) (Row, error) {
	if len(patch) == 0 {
		return nil, &ValidationError{Field: "patch", Reason: "empty"}
	}

	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	cols := sortedKeys(patch)
	sets := make([]string, len(cols))
	args := make([]any, 0, len(cols)+len(filter))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
		args = append(args, patch[c])
	}
	where, whereArgs := whereClause(filter, len(cols)+1)
	args = append(args, whereArgs...)

	sql := fmt.Sprintf("UPDATE %s SET %s%s RETURNING *", table, strings.Join(sets, ", "), where)

	rows, err := g.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, storageErr("update", table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, storageErr("update", table, err)
		}
		return nil, ErrNotFound
	}
	r, err := scanRow(rows)
	if err != nil {
		return nil, storageErr("update", table, err)
	}
	return r, nil
}

func whereClause(filter Filter, firstArg int) (string, []any) {
	if len(filter) == 0 {
		return "", nil
	}
	keys := sortedKeys(filter)
	conds := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		conds[i] = fmt.Sprintf("%s = $%d", k, firstArg+i)
		args[i] = filter[k]
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanRow(rows pgx.Rows) (Row, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, err
	}
	fields := rows.FieldDescriptions()
	r := make(Row, len(fields))
	for i, f := range fields {
		r[f.Name] = values[i]
	}
	return r, nil
}
