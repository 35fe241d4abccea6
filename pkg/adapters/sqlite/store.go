package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
	_ "modernc.org/sqlite"
)

// Store implements ports.Store on an embedded SQLite database.
type Store struct {
	db *sql.DB
}

var _ ports.Store = (*Store)(nil)

// Open opens (or creates) the database at dsn and ensures the schema exists.
// dsn is a file path or any DSN accepted by modernc.org/sqlite, e.g.
// "file:canova.db?_pragma=busy_timeout(5000)".
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := createSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func stamp(t time.Time) int64 {
	return t.UnixNano()
}

func (s *Store) getDoc(ctx context.Context, query, id string, v any, notFound error) error {
	var raw string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	if err != nil {
		return fmt.Errorf("failed to query sqlite: %w", err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", id, err)
	}
	return nil
}

func queryDocs[T any](ctx context.Context, db *sql.DB, query string, args ...any) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sqlite: %w", err)
	}
	defer rows.Close()

	out := []*T{}
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		doc := new(T)
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

func emailInUse(ctx context.Context, tx *sql.Tx, email, exceptID string) (bool, error) {
	var n int
	err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE email = ? AND id <> ?`, email, exceptID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to query sqlite: %w", err)
	}
	return n > 0, nil
}

// CreateUser inserts a new account.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	taken, err := emailInUse(ctx, tx, user.Email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (id, email, doc) VALUES (?, ?, ?)`, user.ID, user.Email, string(data)); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return tx.Commit()
}

// GetUser retrieves an account by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := s.getDoc(ctx, `SELECT doc FROM users WHERE id = ?`, id, &u, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail retrieves an account by email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := s.getDoc(ctx, `SELECT doc FROM users WHERE email = ?`, email, &u, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser overwrites an existing account.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	taken, err := emailInUse(ctx, tx, user.Email, user.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE users SET email = ?, doc = ? WHERE id = ?`, user.Email, string(data), user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return tx.Commit()
}

// SaveProject inserts or replaces a project.
func (s *Store) SaveProject(ctx context.Context, project *domain.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO projects (id, owner, created_at, doc) VALUES (?, ?, ?, ?)`,
		project.ID, project.Owner, stamp(project.CreatedAt), string(data))
	if err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}
	return nil
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := s.getDoc(ctx, `SELECT doc FROM projects WHERE id = ?`, id, &p, domain.ErrProjectNotFound); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes a project.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

// ListProjects returns the projects of owner, newest first.
func (s *Store) ListProjects(ctx context.Context, owner string) ([]*domain.Project, error) {
	return queryDocs[domain.Project](ctx, s.db,
		`SELECT doc FROM projects WHERE owner = ? ORDER BY created_at DESC, id DESC`, owner)
}

// SaveForm inserts or replaces a form.
func (s *Store) SaveForm(ctx context.Context, form *domain.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal form: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO forms (id, owner, project_id, created_at, updated_at, doc) VALUES (?, ?, ?, ?, ?, ?)`,
		form.ID, form.Owner, form.ProjectID, stamp(form.CreatedAt), stamp(form.UpdatedAt), string(data))
	if err != nil {
		return fmt.Errorf("failed to save form: %w", err)
	}
	return nil
}

// GetForm retrieves a form by ID.
func (s *Store) GetForm(ctx context.Context, id string) (*domain.Form, error) {
	var f domain.Form
	if err := s.getDoc(ctx, `SELECT doc FROM forms WHERE id = ?`, id, &f, domain.ErrFormNotFound); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteForm removes a form.
func (s *Store) DeleteForm(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM forms WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete form: %w", err)
	}
	return nil
}

// ListFormsByProject returns the forms of a project in creation order.
func (s *Store) ListFormsByProject(ctx context.Context, projectID string) ([]*domain.Form, error) {
	return queryDocs[domain.Form](ctx, s.db,
		`SELECT doc FROM forms WHERE project_id = ? ORDER BY created_at ASC, id ASC`, projectID)
}

// ListFormsByOwner returns the forms of owner, most recently updated first.
func (s *Store) ListFormsByOwner(ctx context.Context, owner string) ([]*domain.Form, error) {
	return queryDocs[domain.Form](ctx, s.db,
		`SELECT doc FROM forms WHERE owner = ? ORDER BY updated_at DESC, id DESC`, owner)
}

// ListFormsSharedWith returns the forms whose share list names userID,
// most recently updated first.
func (s *Store) ListFormsSharedWith(ctx context.Context, userID string) ([]*domain.Form, error) {
	return queryDocs[domain.Form](ctx, s.db, `
		SELECT doc FROM forms
		WHERE EXISTS (
			SELECT 1 FROM json_each(forms.doc, '$.accessSettings.sharedWith') AS shared
			WHERE json_extract(shared.value, '$.userId') = ?
		)
		ORDER BY updated_at DESC, id DESC`, userID)
}

// SaveResponse inserts or replaces a response.
func (s *Store) SaveResponse(ctx context.Context, response *domain.Response) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO responses (id, form_id, created_at, doc) VALUES (?, ?, ?, ?)`,
		response.ID, response.FormID, stamp(response.CreatedAt), string(data))
	if err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}
	return nil
}

// GetResponse retrieves a response by ID.
func (s *Store) GetResponse(ctx context.Context, id string) (*domain.Response, error) {
	var r domain.Response
	if err := s.getDoc(ctx, `SELECT doc FROM responses WHERE id = ?`, id, &r, domain.ErrResponseNotFound); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListResponses returns the responses of a form, oldest first.
func (s *Store) ListResponses(ctx context.Context, formID string) ([]*domain.Response, error) {
	return queryDocs[domain.Response](ctx, s.db,
		`SELECT doc FROM responses WHERE form_id = ? ORDER BY created_at ASC, id ASC`, formID)
}

// DeleteResponses removes every response of a form.
func (s *Store) DeleteResponses(ctx context.Context, formID string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM responses WHERE form_id = ?`, formID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete responses: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted responses: %w", err)
	}
	return int(n), nil
}
