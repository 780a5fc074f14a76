package pgsql

import (
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the Postgres-backed repositories. The session store
// and object storage live outside Postgres and are filled in by the caller.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:  newPgxUserRepository(db),
		EntryRepo: newPgxEntryRepository(db),
	}
}
