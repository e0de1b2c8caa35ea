package service

import (
	"context"
	"fmt"
	"log/slog"

	"ledgerd/internal/core"
	"ledgerd/internal/storage"
)

// Ledger implements the expense operations on top of the SQLite
// repository. Failures come in two tiers: expected misuse (bad ids,
// missing selectors, empty field sets) is caught here and reported as a
// typed result without touching the store; store failures are returned
// as errors for the transport layer to surface.
type Ledger struct {
	repo *storage.Repository
}

func NewLedger(repo *storage.Repository) *Ledger {
	return &Ledger{repo: repo}
}

// Add inserts one expense. date, amount and category are required by
// contract but deliberately not type- or format-checked here; the
// store's own constraints are the only gate. Known gap, kept as-is.
func (l *Ledger) Add(ctx context.Context, e core.Expense) (core.AddResult, error) {
	id, err := l.repo.Insert(ctx, e)
	if err != nil {
		return core.AddResult{}, fmt.Errorf("add expense: %w", err)
	}

	slog.InfoContext(ctx, "Expense added",
		"id", id,
		"date", e.Date,
		"amount", e.Amount,
		"category", e.Category)

	return core.AddResult{Status: core.StatusOK, ID: id}, nil
}

// List returns expenses in the inclusive date range, ascending by id.
func (l *Ledger) List(ctx context.Context, startDate, endDate string) ([]core.Expense, error) {
	expenses, err := l.repo.ListByDateRange(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// Delete removes one expense. rawID is any value coercible to an
// integer; a value that isn't never reaches the store.
func (l *Ledger) Delete(ctx context.Context, rawID any) (core.DeleteResult, error) {
	id, err := core.CoerceID(rawID)
	if err != nil {
		return core.DeleteResult{
			Status:  core.StatusError,
			Message: "expense_id must be an integer",
		}, nil
	}

	deleted, err := l.repo.DeleteByID(ctx, id)
	if err != nil {
		return core.DeleteResult{}, fmt.Errorf("delete expense: %w", err)
	}
	if deleted == 0 {
		return core.DeleteResult{Status: core.StatusNotFound, Deleted: 0}, nil
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return core.DeleteResult{Status: core.StatusOK, Deleted: deleted}, nil
}

// DeleteMany removes all expenses when deleteAll is set, otherwise the
// ids named by rawIDs (a delimited string, a sequence, or a single
// scalar). A single bad token aborts the whole operation before any
// delete. The result reports which requested ids did not exist; status
// is not_found only when nothing was deleted at all.
func (l *Ledger) DeleteMany(ctx context.Context, rawIDs any, deleteAll bool) (core.DeleteManyResult, error) {
	if deleteAll {
		deleted, err := l.repo.DeleteAll(ctx)
		if err != nil {
			return core.DeleteManyResult{}, fmt.Errorf("delete all expenses: %w", err)
		}
		slog.InfoContext(ctx, "All expenses deleted", "deleted", deleted)
		return core.DeleteManyResult{Status: core.StatusOK, Deleted: deleted}, nil
	}

	if rawIDs == nil {
		return core.DeleteManyResult{
			Status:  core.StatusError,
			Message: "provide expense_ids or set delete_all=true",
		}, nil
	}

	ids, invalid := core.NormalizeIDs(rawIDs)
	if len(invalid) > 0 {
		return core.DeleteManyResult{
			Status:  core.StatusError,
			Message: "expense_ids must be integers",
			Invalid: invalid,
		}, nil
	}
	if len(ids) == 0 {
		return core.DeleteManyResult{
			Status:  core.StatusError,
			Message: "no valid expense_ids provided",
		}, nil
	}

	deleted, missing, err := l.repo.DeleteByIDs(ctx, ids)
	if err != nil {
		return core.DeleteManyResult{}, fmt.Errorf("delete expenses: %w", err)
	}

	status := core.StatusOK
	if deleted == 0 {
		status = core.StatusNotFound
	}

	slog.InfoContext(ctx, "Expenses deleted",
		"requested", len(ids),
		"deleted", deleted,
		"missing", len(missing))

	return core.DeleteManyResult{Status: status, Deleted: deleted, Missing: missing}, nil
}

// Update applies the supplied fields to one expense. A nil field is
// left untouched; there is no way to distinguish "clear this field"
// from "don't change it" (documented limitation). When the statement
// changes no rows, a secondary existence check separates not_found from
// no_change.
func (l *Ledger) Update(ctx context.Context, rawID any, patch core.ExpensePatch) (core.UpdateResult, error) {
	id, err := core.CoerceID(rawID)
	if err != nil {
		return core.UpdateResult{
			Status:  core.StatusError,
			Message: "expense_id must be an integer",
		}, nil
	}

	if patch.Empty() {
		return core.UpdateResult{
			Status:  core.StatusError,
			Message: "provide at least one field to update",
		}, nil
	}

	updated, err := l.repo.Update(ctx, id, patch)
	if err != nil {
		return core.UpdateResult{}, fmt.Errorf("update expense: %w", err)
	}
	if updated == 0 {
		exists, err := l.repo.Exists(ctx, id)
		if err != nil {
			return core.UpdateResult{}, fmt.Errorf("check expense exists: %w", err)
		}
		if exists {
			return core.UpdateResult{Status: core.StatusNoChange, Updated: 0}, nil
		}
		return core.UpdateResult{Status: core.StatusNotFound, Updated: 0}, nil
	}

	slog.InfoContext(ctx, "Expense updated", "id", id, "updated", updated)
	return core.UpdateResult{Status: core.StatusOK, Updated: updated}, nil
}

// Summarize returns per-category amount totals over the inclusive date
// range, optionally restricted to one category (exact match), sorted
// ascending by category name.
func (l *Ledger) Summarize(ctx context.Context, startDate, endDate, category string) ([]core.CategorySummary, error) {
	summaries, err := l.repo.SumByCategory(ctx, startDate, endDate, category)
	if err != nil {
		return nil, fmt.Errorf("summarize expenses: %w", err)
	}
	return summaries, nil
}
