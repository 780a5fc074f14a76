package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"

	portsrepo "github.com/SscSPs/daily_journal_app/internal/core/ports/repositories"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage uploads attachments to a Cloudinary folder. The reference kept
// on the entry is the secure delivery URL.
type CloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

var _ portsrepo.ObjectStorage = (*CloudinaryStorage)(nil)

func NewCloudinaryStorage(cloudName, apiKey, apiSecret, folder string) (*CloudinaryStorage, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld, folder: strings.Trim(folder, "/")}, nil
}

func (s *CloudinaryStorage) Put(ctx context.Context, key string, body io.Reader, _ string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		PublicID:     publicIDFromKey(key),
		Folder:       s.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if result == nil || result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary returned no URL for %s", key)
	}
	return result.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, ref string) error {
	publicID, err := publicIDFromRef(ref, s.folder)
	if err != nil {
		return err
	}
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete %s from Cloudinary: %w", publicID, err)
	}
	return nil
}

// publicIDFromKey strips the extension; Cloudinary appends its own.
func publicIDFromKey(key string) string {
	return strings.TrimSuffix(key, path.Ext(key))
}

// publicIDFromRef recovers "<folder>/<name>" from a delivery URL.
func publicIDFromRef(ref, folder string) (string, error) {
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return "", fmt.Errorf("invalid cloudinary reference %q", ref)
	}
	name := publicIDFromKey(path.Base(u.Path))
	if folder == "" {
		return name, nil
	}
	return folder + "/" + name, nil
}
