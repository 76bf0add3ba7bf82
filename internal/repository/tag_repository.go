package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/cadet-records-api/internal/models"
)

// TagRepository persists per-user notes.
type TagRepository struct {
	db *sqlx.DB
}

// NewTagRepository constructs a TagRepository.
func NewTagRepository(db *sqlx.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListByUser returns the notes of a user.
func (r *TagRepository) ListByUser(ctx context.Context, userID string) ([]models.Tag, error) {
	tags := []models.Tag{}
	query := r.db.Rebind("SELECT id, user_id, title, content FROM tags WHERE user_id = ? ORDER BY title, id")
	if err := r.db.SelectContext(ctx, &tags, query, userID); err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

// Create inserts a note.
func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	const query = `INSERT INTO tags (id, user_id, title, content) VALUES (:id, :user_id, :title, :content)`
	if _, err := r.db.NamedExecContext(ctx, query, tag); err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// Update rewrites a note of its owner. Notes of other users are not matched.
func (r *TagRepository) Update(ctx context.Context, tag *models.Tag) error {
	const query = `UPDATE tags SET title = :title, content = :content WHERE id = :id AND user_id = :user_id`
	if _, err := r.db.NamedExecContext(ctx, query, tag); err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

// Delete removes a note of its owner.
func (r *TagRepository) Delete(ctx context.Context, id, userID string) error {
	if _, err := r.db.ExecContext(ctx, r.db.Rebind("DELETE FROM tags WHERE id = ? AND user_id = ?"), id, userID); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
