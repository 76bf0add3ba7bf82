package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// childIDs returns the ids of table rows owned by scopeID, in id order.
func childIDs(ctx context.Context, db *sqlx.DB, table, scopeColumn, scopeID string) ([]string, error) {
	query, args, err := sq.Select("id").
		From(table).
		Where(sq.Eq{scopeColumn: scopeID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s id query: %w", table, err)
	}

	ids := []string{}
	if err := db.SelectContext(ctx, &ids, db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("list %s ids: %w", table, err)
	}
	return ids, nil
}

// deleteChildren removes the listed rows, never touching rows of another scope.
func deleteChildren(ctx context.Context, db *sqlx.DB, table, scopeColumn, scopeID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sq.Delete(table).
		Where(sq.Eq{scopeColumn: scopeID}).
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", table, err)
	}
	if _, err := db.ExecContext(ctx, db.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}

// deleteScope removes every row owned by scopeID.
func deleteScope(ctx context.Context, db *sqlx.DB, table, scopeColumn, scopeID string) error {
	query, args, err := sq.Delete(table).Where(sq.Eq{scopeColumn: scopeID}).ToSql()
	if err != nil {
		return fmt.Errorf("build %s delete: %w", table, err)
	}
	if _, err := db.ExecContext(ctx, db.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	return nil
}
