// Package store persists briefing records and exposes the queries the public
// and admin APIs need.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cquiroga/briefing-wizard/model"
)

var ErrNotFound = errors.New("briefing not found")

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const briefingColumns = `id, created_at, updated_at, status, type,
	client_name, client_email, summary,
	contact_data, content_data, design_data, extra_data`

// Create inserts a new record with a fresh id and status "nuevo".
// The data buckets must already be sanitized.
func (s *Store) Create(ctx context.Context, payload model.SubmissionPayload) (model.Briefing, error) {
	now := time.Now().UTC()
	b := model.Briefing{
		ID:          uuid.NewString(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      model.StatusNuevo,
		Type:        model.BriefingType(payload.Type),
		ClientName:  payload.ClientName,
		ClientEmail: payload.ClientEmail,
	}

	var err error
	if b.ContactData, err = marshalBucket(payload.ContactData); err != nil {
		return model.Briefing{}, err
	}
	if b.ContentData, err = marshalBucket(payload.ContentData); err != nil {
		return model.Briefing{}, err
	}
	if b.DesignData, err = marshalBucket(payload.DesignData); err != nil {
		return model.Briefing{}, err
	}
	if b.ExtraData, err = marshalBucket(payload.ExtraData); err != nil {
		return model.Briefing{}, err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO briefing (`+briefingColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.CreatedAt, b.UpdatedAt, b.Status, b.Type,
		b.ClientName, b.ClientEmail, b.Summary,
		string(b.ContactData), string(b.ContentData), string(b.DesignData), string(b.ExtraData),
	)
	if err != nil {
		return model.Briefing{}, err
	}
	return b, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (model.Briefing, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+briefingColumns+`
		FROM briefing WHERE id = ?`, id)
	return scanBriefing(row)
}

// Patch carries the mutable fields of a record. Nil fields are left untouched.
type Patch struct {
	Status  *model.Status
	Summary *string
}

// Update applies a patch and returns the updated record.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (model.Briefing, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Summary != nil {
		sets = append(sets, "summary = ?")
		args = append(args, *patch.Summary)
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		"UPDATE briefing SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return model.Briefing{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return model.Briefing{}, err
	}
	if n == 0 {
		return model.Briefing{}, ErrNotFound
	}
	return s.FindByID(ctx, id)
}

// Filter narrows and pages a listing. Zero values mean "no filter";
// Page starts at 1.
type Filter struct {
	Type   string
	Status string
	Page   int
	Limit  int
}

// List returns one page of records, newest first, plus the unpaged total.
func (s *Store) List(ctx context.Context, f Filter) ([]model.Briefing, int, error) {
	where, args := filterClause(f)

	var total int
	err := s.db.QueryRowContext(ctx, "SELECT count(*) FROM briefing"+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Page <= 0 {
		f.Page = 1
	}
	args = append(args, f.Limit, (f.Page-1)*f.Limit)

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+briefingColumns+`
		FROM briefing`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items := []model.Briefing{}
	for rows.Next() {
		b, err := scanBriefing(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, b)
	}
	return items, total, rows.Err()
}

// ListAll returns every record matching the filter, newest first. Used by the
// CSV export.
func (s *Store) ListAll(ctx context.Context, f Filter) ([]model.Briefing, error) {
	where, args := filterClause(f)
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+briefingColumns+`
		FROM briefing`+where+`
		ORDER BY created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.Briefing{}
	for rows.Next() {
		b, err := scanBriefing(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func filterClause(f Filter) (string, []any) {
	var conds []string
	var args []any
	if f.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, f.Type)
	}
	if f.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

type scannable interface {
	Scan(dest ...any) error
}

func scanBriefing(row scannable) (b model.Briefing, err error) {
	var contact, content, design, extra string
	err = row.Scan(
		&b.ID, &b.CreatedAt, &b.UpdatedAt, &b.Status, &b.Type,
		&b.ClientName, &b.ClientEmail, &b.Summary,
		&contact, &content, &design, &extra,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return b, ErrNotFound
	}
	if err != nil {
		return b, err
	}
	b.ContactData = json.RawMessage(contact)
	b.ContentData = json.RawMessage(content)
	b.DesignData = json.RawMessage(design)
	b.ExtraData = json.RawMessage(extra)
	return b, nil
}

func marshalBucket(m map[string]any) (json.RawMessage, error) {
	if m == nil {
		return json.RawMessage("{}"), nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal data bucket: %w", err)
	}
	return raw, nil
}
