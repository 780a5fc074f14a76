package services_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/SscSPs/daily_journal_app/internal/adapters/storage"
	"github.com/SscSPs/daily_journal_app/internal/apperrors"
	"github.com/SscSPs/daily_journal_app/internal/core/domain"
	portssvc "github.com/SscSPs/daily_journal_app/internal/core/ports/services"
	"github.com/SscSPs/daily_journal_app/internal/core/services"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var attachmentName = regexp.MustCompile(`^owner-1_\d{8}T\d{6}\.\d{9}Z_[0-9a-f]{8}\.png$`)

type AttachmentServiceTestSuite struct {
	suite.Suite
	fs      afero.Fs
	service portssvc.AttachmentSvcFacade
	ctx     context.Context
}

func (s *AttachmentServiceTestSuite) SetupTest() {
	s.fs = afero.NewMemMapFs()
	local, err := storage.NewLocalStorage(s.fs, "uploads")
	s.Require().NoError(err)
	s.service = services.NewAttachmentService(local)
	s.ctx = context.Background()
}

func (s *AttachmentServiceTestSuite) TestStore_NoContentIsNil() {
	ref, err := s.service.StoreAttachment(s.ctx, "owner-1", nil)
	s.NoError(err)
	s.Nil(ref)

	ref, err = s.service.StoreAttachment(s.ctx, "owner-1", &domain.Attachment{OriginalName: "empty.png"})
	s.NoError(err)
	s.Nil(ref)
}

func (s *AttachmentServiceTestSuite) TestStore_NamesByOwnerTimeAndSniffedType() {
	ref, err := s.service.StoreAttachment(s.ctx, "owner-1", &domain.Attachment{OriginalName: "holiday.jpeg", Content: pngBytes})
	s.Require().NoError(err)
	s.Require().NotNil(ref)
	s.Regexp(attachmentName, *ref)

	data, err := afero.ReadFile(s.fs, "uploads/"+*ref)
	s.Require().NoError(err)
	s.Equal(pngBytes, data)
}

func (s *AttachmentServiceTestSuite) TestStore_ConcurrentUploadsNeverCollide() {
	const uploads = 32
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		refs = map[string]struct{}{}
	)
	for i := 0; i < uploads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref, err := s.service.StoreAttachment(s.ctx, "owner-1", &domain.Attachment{Content: pngBytes})
			if s.NoError(err) && s.NotNil(ref) {
				mu.Lock()
				refs[*ref] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Len(refs, uploads)
}

func (s *AttachmentServiceTestSuite) TestDiscard_RemovesFile() {
	ref, err := s.service.StoreAttachment(s.ctx, "owner-1", &domain.Attachment{Content: pngBytes})
	s.Require().NoError(err)

	s.NoError(s.service.DiscardAttachment(s.ctx, *ref))
	exists, err := afero.Exists(s.fs, "uploads/"+*ref)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *AttachmentServiceTestSuite) TestStore_WriteFailureIsStorageError() {
	failing := new(MockObjectStorage)
	failing.On("Put", mock.Anything, mock.AnythingOfType("string"), mock.Anything, "image/png").
		Return("", errors.New("no space left on device")).Once()
	service := services.NewAttachmentService(failing)

	ref, err := service.StoreAttachment(s.ctx, "owner-1", &domain.Attachment{Content: pngBytes})
	s.ErrorIs(err, apperrors.ErrStorage)
	s.Nil(ref)
	failing.AssertExpectations(s.T())
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
