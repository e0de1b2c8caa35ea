package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ledgerd/internal/core"

	_ "modernc.org/sqlite"
)

// Repository is the SQLite-backed expense store. All methods draw
// connections from one shared pool for the duration of a single call;
// nothing is pinned across operations. SQLite's own single-writer
// serialization is the only concurrency control.
type Repository struct {
	db *sql.DB
}

// Open opens (creating if absent) the store at dbPath and applies the
// schema before returning.
func Open(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert stores one expense and returns the id assigned by the store.
func (r *Repository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (date, amount, category, subcategory, note) VALUES (?, ?, ?, ?, ?)`,
		e.Date, e.Amount, e.Category, e.Subcategory, e.Note)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// ListByDateRange returns expenses whose date falls inside the
// inclusive [startDate, endDate] range, in ascending id order. Dates
// compare lexically, which is correct for YYYY-MM-DD values.
func (r *Repository) ListByDateRange(ctx context.Context, startDate, endDate string) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount, category, subcategory, note
		 FROM expenses
		 WHERE date BETWEEN ? AND ?
		 ORDER BY id ASC`,
		startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]core.Expense, 0)
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount, &e.Category, &e.Subcategory, &e.Note); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}

// DeleteByID removes the expense with the given id and reports how many
// rows went away (0 or 1).
func (r *Repository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete expense: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}

// DeleteAll removes every expense and reports the count.
func (r *Repository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses`)
	if err != nil {
		return 0, fmt.Errorf("delete all expenses: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return deleted, nil
}

// DeleteByIDs removes the given ids with one IN-predicate statement and
// reports which requested ids did not exist. The existence lookup has
// to happen before the delete — the delete alone only reports a row
// count — and both run in one transaction so a concurrent writer can't
// skew the missing set. Duplicate ids are tolerated; missing comes back
// sorted and deduplicated.
func (r *Repository) DeleteByIDs(ctx context.Context, ids []int64) (deleted int64, missing []int64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id FROM expenses WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("select existing ids: %w", err)
	}

	existing := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, nil, fmt.Errorf("scan id: %w", err)
		}
		existing[id] = true
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, nil, fmt.Errorf("iterate ids: %w", err)
	}
	rows.Close()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM expenses WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return 0, nil, fmt.Errorf("delete expenses: %w", err)
	}
	deleted, err = res.RowsAffected()
	if err != nil {
		return 0, nil, fmt.Errorf("rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, nil, fmt.Errorf("commit: %w", err)
	}

	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if !existing[id] && !seen[id] {
			missing = append(missing, id)
			seen[id] = true
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	return deleted, missing, nil
}

// Update applies the supplied fields to the expense with the given id
// and reports how many rows actually changed. The statement only
// matches when at least one supplied value differs from the stored one,
// so an identical-value update reports zero rows, same as a missing id;
// Exists tells the two apart.
func (r *Repository) Update(ctx context.Context, id int64, patch core.ExpensePatch) (int64, error) {
	var assignments []string
	var changed []string
	var values []any

	set := func(column string, value any) {
		assignments = append(assignments, column+" = ?")
		changed = append(changed, column+" IS NOT ?")
		values = append(values, value)
	}
	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.Amount != nil {
		set("amount", *patch.Amount)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.Subcategory != nil {
		set("subcategory", *patch.Subcategory)
	}
	if patch.Note != nil {
		set("note", *patch.Note)
	}
	if len(assignments) == 0 {
		return 0, errors.New("no fields to update")
	}

	query := `UPDATE expenses SET ` + strings.Join(assignments, ", ") +
		` WHERE id = ? AND (` + strings.Join(changed, " OR ") + `)`
	args := make([]any, 0, 2*len(values)+1)
	args = append(args, values...)
	args = append(args, id)
	args = append(args, values...)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update expense: %w", err)
	}

	updated, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return updated, nil
}

// Exists reports whether an expense with the given id is present.
func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, `SELECT 1 FROM expenses WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check expense exists: %w", err)
	}
	return true, nil
}

// SumByCategory aggregates amounts per category over the inclusive date
// range, optionally restricted to one category, sorted ascending by
// category name. Categories with no matching rows are absent.
func (r *Repository) SumByCategory(ctx context.Context, startDate, endDate, category string) ([]core.CategorySummary, error) {
	query := `SELECT category, SUM(amount) AS total_amount
		 FROM expenses
		 WHERE date BETWEEN ? AND ?`
	args := []any{startDate, endDate}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` GROUP BY category ORDER BY category ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("summarize expenses: %w", err)
	}
	defer rows.Close()

	summaries := make([]core.CategorySummary, 0)
	for rows.Next() {
		var s core.CategorySummary
		if err := rows.Scan(&s.Category, &s.TotalAmount); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summaries: %w", err)
	}

	return summaries, nil
}
