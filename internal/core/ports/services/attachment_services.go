package services

import (
	"context"

	"github.com/SscSPs/daily_journal_app/internal/core/domain"
)

// AttachmentSvcFacade stores optional entry attachments.
type AttachmentSvcFacade interface {
	// StoreAttachment returns nil for an empty attachment, otherwise the stored reference.
	// Write failures are reported as apperrors.ErrStorage.
	StoreAttachment(ctx context.Context, ownerID string, attachment *domain.Attachment) (*string, error)

	// DiscardAttachment removes a previously stored attachment.
	DiscardAttachment(ctx context.Context, ref string) error
}
