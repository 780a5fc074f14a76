package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/utils"
	"github.com/gabriel-vasile/mimetype"
)

const (
	attachmentTimeLayout   = "20060102T150405.000000000Z"
	attachmentRandomBytes  = 4
	attachmentFallbackExt  = ".jpg"
	attachmentFallbackType = "image/jpeg"
)

type attachmentService struct {
	BaseService
	storage portsrepo.ObjectStorage
	now     func() time.Time
}

// NewAttachmentService creates an attachment service writing to storage.
func NewAttachmentService(storage portsrepo.ObjectStorage) portssvc.AttachmentSvcFacade {
	return &attachmentService{
		storage: storage,
		now:     time.Now,
	}
}

func (s *attachmentService) StoreAttachment(ctx context.Context, ownerID string, attachment *domain.Attachment) (*string, error) {
	if attachment.IsEmpty() {
		return nil, nil
	}
	if s.storage == nil {
		return nil, fmt.Errorf("%w: no attachment storage configured", apperrors.ErrStorage)
	}

	ext, contentType := detectAttachmentType(attachment)
	key, err := s.attachmentKey(ownerID, ext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	ref, err := s.storage.Put(ctx, key, bytes.NewReader(attachment.Content), contentType)
	if err != nil {
		s.LogError(ctx, err, "Failed to store attachment", slog.String("key", key))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	s.LogDebug(ctx, "Attachment stored", slog.String("ref", ref), slog.Int("bytes", len(attachment.Content)))
	return &ref, nil
}

func (s *attachmentService) DiscardAttachment(ctx context.Context, ref string) error {
	if ref == "" || s.storage == nil {
		return nil
	}
	if err := s.storage.Delete(ctx, ref); err != nil {
		s.LogError(ctx, err, "Failed to discard attachment", slog.String("ref", ref))
		return fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}
	return nil
}

// attachmentKey builds "<owner>_<utc timestamp>_<random hex><ext>". The random
// suffix keeps two uploads from the same owner in the same instant apart.
func (s *attachmentService) attachmentKey(ownerID, ext string) (string, error) {
	suffix, err := utils.RandomHex(attachmentRandomBytes)
	if err != nil {
		return "", err
	}
	stamp := s.now().UTC().Format(attachmentTimeLayout)
	return fmt.Sprintf("%s_%s_%s%s", ownerID, stamp, suffix, ext), nil
}

// detectAttachmentType sniffs the content, then falls back to the client file
// name, then to JPEG.
func detectAttachmentType(attachment *domain.Attachment) (ext, contentType string) {
	mtype := mimetype.Detect(attachment.Content)
	ext, contentType = mtype.Extension(), mtype.String()
	if ext != "" {
		return ext, contentType
	}

	if clientExt := strings.ToLower(filepath.Ext(attachment.OriginalName)); isSafeExtension(clientExt) {
		return clientExt, contentType
	}
	return attachmentFallbackExt, attachmentFallbackType
}

func isSafeExtension(ext string) bool {
	if len(ext) < 2 || len(ext) > 10 {
		return false
	}
	for _, r := range ext[1:] {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
