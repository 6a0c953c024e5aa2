package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/deppfellow/shoplist/internal/model"
)

// DefaultPageSize is the page size Paginate uses when none is given.
const DefaultPageSize = 6

// ReportRepository runs the read-only reporting queries over shopping_list.
// Each query is independent; none of them shares state with another.
type ReportRepository struct{}

// NewReportRepository returns a ReportRepository.
func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

// PageOffset returns the OFFSET for a 1-indexed page. Page numbers below 1
// produce a negative offset; it is passed to the store unchanged.
func PageOffset(pageNumber, pageSize int) int {
	return pageSize * (pageNumber - 1)
}

func (r *ReportRepository) searchByNameStmt(term string) (statement, error) {
	return render(psql.Select("name").
		From(ShoppingListTable).
		Where(sq.ILike{"name": "%" + term + "%"}).
		OrderBy("id"))
}

func (r *ReportRepository) paginateStmt(pageNumber, pageSize int) (statement, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	// squirrel's Limit/Offset take unsigned values, which would hide a
	// negative offset from the store; bind both as parameters instead.
	return render(psql.Select(itemColumns...).
		From(ShoppingListTable).
		OrderBy("id").
		Suffix("LIMIT ? OFFSET ?", pageSize, PageOffset(pageNumber, pageSize)))
}

func (r *ReportRepository) itemsAfterDateStmt(daysAgo int) (statement, error) {
	return render(psql.Select("name", "price", "category", "date_added").
		From(ShoppingListTable).
		Where(sq.Expr("date_added > now() - make_interval(days => ?)", daysAgo)).
		OrderBy("date_added"))
}

func (r *ReportRepository) totalCostByCategoryStmt() (statement, error) {
	return render(psql.Select("category", "SUM(price) AS total_cost").
		From(ShoppingListTable).
		GroupBy("category").
		OrderBy("MIN(id)"))
}

// SearchByName returns the names containing term, case-insensitively.
// The term is bound as a parameter; LIKE wildcards inside it still apply.
func (r *ReportRepository) SearchByName(ctx context.Context, db DBTX, term string) ([]model.ItemName, error) {
	stmt, err := r.searchByNameStmt(term)
	if err != nil {
		return nil, fmt.Errorf("build search items: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ItemName])
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return names, nil
}

// Paginate returns page pageNumber (1-indexed) of all rows, pageSize rows
// per page. A pageSize of zero or less uses DefaultPageSize.
func (r *ReportRepository) Paginate(ctx context.Context, db DBTX, pageNumber, pageSize int) ([]model.ShoppingItem, error) {
	stmt, err := r.paginateStmt(pageNumber, pageSize)
	if err != nil {
		return nil, fmt.Errorf("build paginate items: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("paginate items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.ShoppingItem])
	if err != nil {
		return nil, fmt.Errorf("paginate items: %w", err)
	}
	return items, nil
}

// ItemsAfterDate returns rows added within the last daysAgo days. The cut-off
// is computed by the store from its own clock.
func (r *ReportRepository) ItemsAfterDate(ctx context.Context, db DBTX, daysAgo int) ([]model.RecentItem, error) {
	stmt, err := r.itemsAfterDateStmt(daysAgo)
	if err != nil {
		return nil, fmt.Errorf("build recent items: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("recent items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.RecentItem])
	if err != nil {
		return nil, fmt.Errorf("recent items: %w", err)
	}
	return items, nil
}

// TotalCostByCategory sums price per category, one row per category, in
// the order categories first appeared.
func (r *ReportRepository) TotalCostByCategory(ctx context.Context, db DBTX) ([]model.CategoryTotal, error) {
	stmt, err := r.totalCostByCategoryStmt()
	if err != nil {
		return nil, fmt.Errorf("build category totals: %w", err)
	}

	rows, err := db.Query(ctx, stmt.sql, stmt.args...)
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}

	totals, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.CategoryTotal])
	if err != nil {
		return nil, fmt.Errorf("category totals: %w", err)
	}
	return totals, nil
}
