package services

import (
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, recorder portssvc.EventRecorder) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, cfg.BcryptCost)
	container.Session = NewSessionService(cfg, repos.SessionStore)
	container.Entry = NewEntryService(repos.EntryRepo)
	container.Attachment = NewAttachmentService(repos.Storage)

	container.Journal = NewJournalAppService(
		container.User,
		container.Session,
		container.Entry,
		container.Attachment,
		WithEventRecorder(recorder),
		WithRecentEntriesLimit(cfg.RecentEntriesLimit),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade       = (*userService)(nil)
	_ portssvc.SessionSvcFacade    = (*sessionService)(nil)
	_ portssvc.EntrySvcFacade      = (*entryService)(nil)
	_ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)
	_ portssvc.JournalAppSvcFacade = (*journalAppService)(nil)
)
