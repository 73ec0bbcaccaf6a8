// Package userstore keeps the app's user accounts as a single JSON array
// under one key of the local key-value store.
//
// Every write reads the whole array, changes it in memory and writes it
// back. Store serializes those cycles with a mutex and runs each one inside
// a database transaction, so concurrent AddUser calls cannot overwrite each
// other's additions.
package userstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/smarttraffic/internal/client/models"
	"github.com/dmitrijs2005/smarttraffic/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/smarttraffic/internal/common"
	"github.com/dmitrijs2005/smarttraffic/internal/cryptox"
	"github.com/dmitrijs2005/smarttraffic/internal/dbx"
	"github.com/dmitrijs2005/smarttraffic/internal/logging"
)

// UsersKey is the metadata key holding the serialized user list.
const UsersKey = "users"

// DB is what Store needs from the database: plain queries for lookups and
// transactions for writes. *sql.DB satisfies it.
type DB interface {
	dbx.DBTX
	dbx.Beginner
}

type Store struct {
	mu    sync.Mutex
	db    DB
	key   string
	codec cryptox.PasswordCodec
	log   logging.Logger
}

type Option func(*Store)

// WithCodec sets how passwords are stored. The default is cryptox.PlainCodec.
func WithCodec(c cryptox.PasswordCodec) Option {
	return func(s *Store) { s.codec = c }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithKey overrides UsersKey.
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func New(db DB, opts ...Option) *Store {
	s := &Store{
		db:    db,
		key:   UsersKey,
		codec: cryptox.PlainCodec{},
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With("component", "userstore", "key", s.key)
	return s
}

// AddUser appends {email, password} unless a record with exactly the same
// email exists, in which case it returns an error wrapping
// common.ErrDuplicateUser and leaves the stored list unchanged.
func (s *Store) AddUser(ctx context.Context, email, password string) error {
	stored, err := s.codec.Encode(password)
	if err != nil {
		return fmt.Errorf("error encoding password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var total int
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		users, err := s.load(ctx, repo)
		if err != nil {
			return err
		}
		if indexOf(users, email) >= 0 {
			return fmt.Errorf("add user %q: %w", email, common.ErrDuplicateUser)
		}

		users = append(users, models.UserRecord{Email: email, Password: stored})
		total = len(users)
		return metadata.StoreJSON(ctx, repo, s.key, users)
	})
	if err != nil {
		s.log.Warn(ctx, "add user failed", "email", email, "error", err)
		return err
	}

	s.log.Info(ctx, "user added", "email", email, "total", total)
	return nil
}

// FindUserByEmail returns the first record whose email equals email, or
// nil, nil when there is none. Storage failures are returned as errors
// wrapping common.ErrStorageRead rather than reported as "not found".
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx, metadata.NewSQLiteRepository(s.db))
	if err != nil {
		s.log.Error(ctx, "load users failed", "error", err)
		return nil, err
	}

	i := indexOf(users, email)
	if i < 0 {
		return nil, nil
	}
	u := users[i]
	return &u, nil
}

// Authenticate checks password against the stored record for email using
// the store's codec. Unknown emails and wrong passwords both yield
// common.ErrInvalidCredentials.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.UserRecord, error) {
	u, err := s.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil || !s.codec.Verify(u.Password, password) {
		return nil, common.ErrInvalidCredentials
	}
	return u, nil
}

// Users returns a copy of the stored list in insertion order.
func (s *Store) Users(ctx context.Context) ([]models.UserRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.load(ctx, metadata.NewSQLiteRepository(s.db))
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.UserRecord{}
	}
	return users, nil
}

// load reads the whole list. An absent key is an empty list.
func (s *Store) load(ctx context.Context, repo metadata.Repository) ([]models.UserRecord, error) {
	var users []models.UserRecord
	if _, err := metadata.LoadJSON(ctx, repo, s.key, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func indexOf(users []models.UserRecord, email string) int {
	for i := range users {
		if users[i].Email == email {
			return i
		}
	}
	return -1
}
