package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/canova/pkg/domain"
	"github.com/aretw0/canova/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.Store using Redis.
//
// Documents are JSON strings under "<prefix><kind>:<id>". Lists are served by
// sorted-set indexes scored with a millisecond timestamp, so equal scores fall
// back to ID order.
type Store struct {
	client *backend.Client
	prefix string
}

var _ ports.Store = (*Store)(nil)

type Option func(*Store)

// WithPrefix sets the key prefix of every document and index.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "canova:",
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

// Client exposes the underlying client, e.g. to build a Locker on the same connection.
func (s *Store) Client() *backend.Client {
	return s.client
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) key(kind, id string) string {
	return s.prefix + kind + ":" + id
}

func (s *Store) emailKey(email string) string     { return s.prefix + "user:email:" + email }
func (s *Store) projectIndex(owner string) string { return s.prefix + "idx:projects:" + owner }
func (s *Store) projectForms(projectID string) string {
	return s.prefix + "idx:forms:project:" + projectID
}
func (s *Store) ownerForms(owner string) string     { return s.prefix + "idx:forms:owner:" + owner }
func (s *Store) sharedForms(userID string) string   { return s.prefix + "idx:forms:shared:" + userID }
func (s *Store) formResponses(formID string) string { return s.prefix + "idx:responses:" + formID }

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}

func (s *Store) get(ctx context.Context, key string, v any, notFound error) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return notFound
		}
		return fmt.Errorf("failed to get from redis: %w", err)
	}
	if err := json.Unmarshal([]byte(val), v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

// load resolves index members into documents. Members whose document is gone
// are skipped.
func load[T any](ctx context.Context, s *Store, kind string, ids []string) ([]*T, error) {
	out := make([]*T, 0, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = s.key(kind, id)
	}
	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		doc := new(T)
		if err := json.Unmarshal([]byte(raw), doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal %s: %w", keys[i], err)
		}
		out = append(out, doc)
	}
	return out, nil
}

// CreateUser reserves the email, then stores the account.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	ok, err := s.client.SetNX(ctx, s.emailKey(user.Email), user.ID, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to reserve email: %w", err)
	}
	if !ok {
		return domain.ErrEmailTaken
	}

	if err := s.client.Set(ctx, s.key("user", user.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// GetUser retrieves an account by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	if err := s.get(ctx, s.key("user", id), &u, domain.ErrUserNotFound); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail retrieves an account through the email index.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	id, err := s.client.Get(ctx, s.emailKey(email)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return s.GetUser(ctx, id)
}

// UpdateUser overwrites an existing account, moving the email index when the email changed.
func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	old, err := s.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	if old.Email != user.Email {
		ok, err := s.client.SetNX(ctx, s.emailKey(user.Email), user.ID, 0).Result()
		if err != nil {
			return fmt.Errorf("failed to reserve email: %w", err)
		}
		if !ok {
			return domain.ErrEmailTaken
		}
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key("user", user.ID), data, 0)
	if old.Email != user.Email {
		pipe.Del(ctx, s.emailKey(old.Email))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// SaveProject stores the project and indexes it under its owner.
func (s *Store) SaveProject(ctx context.Context, project *domain.Project) error {
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key("project", project.ID), data, 0)
	pipe.ZAdd(ctx, s.projectIndex(project.Owner), backend.Z{
		Score:  score(project.CreatedAt),
		Member: project.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// GetProject retrieves a project by ID.
func (s *Store) GetProject(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := s.get(ctx, s.key("project", id), &p, domain.ErrProjectNotFound); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProject removes the project and its index entry.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	p, err := s.GetProject(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key("project", id))
	pipe.ZRem(ctx, s.projectIndex(p.Owner), id)
	_, err = pipe.Exec(ctx)
	return err
}

// ListProjects returns the projects of owner, newest first.
func (s *Store) ListProjects(ctx context.Context, owner string) ([]*domain.Project, error) {
	ids, err := s.client.ZRevRange(ctx, s.projectIndex(owner), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return load[domain.Project](ctx, s, "project", ids)
}

// SaveForm stores the form and refreshes its project, owner and share indexes.
func (s *Store) SaveForm(ctx context.Context, form *domain.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("failed to marshal form: %w", err)
	}

	old, err := s.GetForm(ctx, form.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	pipe := s.client.TxPipeline()
	if old != nil {
		s.unindexForm(ctx, pipe, old)
	}
	pipe.Set(ctx, s.key("form", form.ID), data, 0)
	pipe.ZAdd(ctx, s.projectForms(form.ProjectID), backend.Z{Score: score(form.CreatedAt), Member: form.ID})
	pipe.ZAdd(ctx, s.ownerForms(form.Owner), backend.Z{Score: score(form.UpdatedAt), Member: form.ID})
	for _, shared := range form.AccessSettings.SharedWith {
		pipe.ZAdd(ctx, s.sharedForms(shared.UserID), backend.Z{Score: score(form.UpdatedAt), Member: form.ID})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

func (s *Store) unindexForm(ctx context.Context, pipe backend.Pipeliner, form *domain.Form) {
	pipe.ZRem(ctx, s.projectForms(form.ProjectID), form.ID)
	pipe.ZRem(ctx, s.ownerForms(form.Owner), form.ID)
	for _, shared := range form.AccessSettings.SharedWith {
		pipe.ZRem(ctx, s.sharedForms(shared.UserID), form.ID)
	}
}

// GetForm retrieves a form by ID.
func (s *Store) GetForm(ctx context.Context, id string) (*domain.Form, error) {
	var f domain.Form
	if err := s.get(ctx, s.key("form", id), &f, domain.ErrFormNotFound); err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteForm removes the form and every index entry pointing to it.
func (s *Store) DeleteForm(ctx context.Context, id string) error {
	f, err := s.GetForm(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key("form", id))
	s.unindexForm(ctx, pipe, f)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Store) listForms(ctx context.Context, index string, newestFirst bool) ([]*domain.Form, error) {
	var (
		ids []string
		err error
	)
	if newestFirst {
		ids, err = s.client.ZRevRange(ctx, index, 0, -1).Result()
	} else {
		ids, err = s.client.ZRange(ctx, index, 0, -1).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list forms: %w", err)
	}
	return load[domain.Form](ctx, s, "form", ids)
}

// ListFormsByProject returns the forms of a project in creation order.
func (s *Store) ListFormsByProject(ctx context.Context, projectID string) ([]*domain.Form, error) {
	return s.listForms(ctx, s.projectForms(projectID), false)
}

// ListFormsByOwner returns the forms of owner, most recently updated first.
func (s *Store) ListFormsByOwner(ctx context.Context, owner string) ([]*domain.Form, error) {
	return s.listForms(ctx, s.ownerForms(owner), true)
}

// ListFormsSharedWith returns the forms shared with userID, most recently updated first.
func (s *Store) ListFormsSharedWith(ctx context.Context, userID string) ([]*domain.Form, error) {
	return s.listForms(ctx, s.sharedForms(userID), true)
}

// SaveResponse stores the response and indexes it under its form.
func (s *Store) SaveResponse(ctx context.Context, response *domain.Response) error {
	data, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key("response", response.ID), data, 0)
	pipe.ZAdd(ctx, s.formResponses(response.FormID), backend.Z{
		Score:  score(response.CreatedAt),
		Member: response.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// GetResponse retrieves a response by ID.
func (s *Store) GetResponse(ctx context.Context, id string) (*domain.Response, error) {
	var r domain.Response
	if err := s.get(ctx, s.key("response", id), &r, domain.ErrResponseNotFound); err != nil {
		return nil, err
	}
	return &r, nil
}

// ListResponses returns the responses of a form, oldest first.
func (s *Store) ListResponses(ctx context.Context, formID string) ([]*domain.Response, error) {
	ids, err := s.client.ZRange(ctx, s.formResponses(formID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	return load[domain.Response](ctx, s, "response", ids)
}

// DeleteResponses removes every response of a form together with the index.
func (s *Store) DeleteResponses(ctx context.Context, formID string) (int, error) {
	index := s.formResponses(formID)
	ids, err := s.client.ZRange(ctx, index, 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list responses: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, s.key("response", id))
	}
	keys = append(keys, index)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("failed to delete responses: %w", err)
	}
	return len(ids), nil
}
