package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/mikevskater/sheet-todo/models"
)

var draftColumns = []string{
	"basket", "name", "content", "cursor_line", "cursor_col", "saved_at",
}

// buildSelectDraftQuery builds the lookup for a single basket entry's draft.
func buildSelectDraftQuery(basket, name string) (string, []any, error) {
	return sq.Select(draftColumns...).
		From("drafts").
		Where(sq.Eq{"basket": basket, "name": name}).
		ToSql()
}

// buildUpsertDraftQuery builds the insert-or-replace for a draft. SQLite's
// ON CONFLICT clause keys on the (basket, name) primary key.
func buildUpsertDraftQuery(draft models.Draft) (string, []any, error) {
	return sq.Insert("drafts").
		Columns(draftColumns...).
		Values(draft.Basket, draft.Name, draft.Content, draft.Cursor.Line, draft.Cursor.Col, draft.SavedAt).
		Suffix(`ON CONFLICT(basket, name) DO UPDATE SET
			content = excluded.content,
			cursor_line = excluded.cursor_line,
			cursor_col = excluded.cursor_col,
			saved_at = excluded.saved_at`).
		ToSql()
}

// buildDeleteDraftQuery builds the delete for a single basket entry's draft.
func buildDeleteDraftQuery(basket, name string) (string, []any, error) {
	return sq.Delete("drafts").
		Where(sq.Eq{"basket": basket, "name": name}).
		ToSql()
}
