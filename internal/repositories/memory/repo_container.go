package memory

import (
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds process-local user and entry repositories, used
// when DB_DRIVER=memory and by tests.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	users := NewUserRepository()
	return portsrepo.RepositoryProvider{
		UserRepo:  users,
		EntryRepo: NewEntryRepository(users),
	}
}
