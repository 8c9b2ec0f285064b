package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/models"
)

// accountsDocument is the exact on-disk shape of accounts.json.
type accountsDocument struct {
	Users []models.User `json:"users"`
}

// accountRepository is the flat-file implementation of [AccountRepository].
//
// Every operation reloads accounts.json, mutates it in memory, and writes it
// back wholesale, exactly like the original request/render cycle. The mutex
// makes that cycle safe for concurrent handlers within one process; running
// two processes against the same data directory remains unsupported
// (last writer wins).
type accountRepository struct {
	path   string
	mu     sync.Mutex
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] persisting to
// accounts.json inside dataDir.
func NewAccountRepository(dataDir string, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("AccountRepository created")
	return &accountRepository{
		path:   filepath.Join(dataDir, "accounts.json"),
		logger: logger,
	}
}

func (r *accountRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc accountsDocument
	loadDocument(r.path, &doc, r.logger)

	for _, u := range doc.Users {
		if u.Username == user.Username {
			r.logger.Debug().Str("username", user.Username).Msg("duplicate username")
			return models.User{}, ErrUsernameAlreadyExists
		}
	}

	doc.Users = append(doc.Users, user)
	if err := saveDocument(r.path, &doc); err != nil {
		r.logger.Err(err).Str("func", "*accountRepository.CreateUser").Msg("error persisting accounts document")
		return models.User{}, err
	}

	return user, nil
}

func (r *accountRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc accountsDocument
	loadDocument(r.path, &doc, r.logger)

	for _, u := range doc.Users {
		if u.Username == username {
			return u, nil
		}
	}

	return models.User{}, ErrUserNotFound
}

func (r *accountRepository) ListUsernames(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var doc accountsDocument
	loadDocument(r.path, &doc, r.logger)

	usernames := make([]string, 0, len(doc.Users))
	for _, u := range doc.Users {
		usernames = append(usernames, u.Username)
	}

	return usernames, nil
}
