package drive

import (
	"bytes"
	"context"
	"fmt"

	drivev3 "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// UploadedFile is what the pipeline keeps about a stored attachment.
type UploadedFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	ViewURL  string `json:"viewUrl"`
}

type Client struct {
	srv *drivev3.Service
}

// New builds a Drive client from service-account JSON. The key is the
// credential content itself, not a file path.
func New(ctx context.Context, serviceAccountJSON []byte) (*Client, error) {
	srv, err := drivev3.NewService(ctx,
		option.WithCredentialsJSON(serviceAccountJSON),
		option.WithScopes(drivev3.DriveFileScope),
	)
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}
	return &Client{srv: srv}, nil
}

// Upload stores one blob under the given name, optionally inside a target
// folder, and returns the file id and public view link.
func (c *Client) Upload(ctx context.Context, data []byte, name, mimeType, folderID string) (*UploadedFile, error) {
	meta := &drivev3.File{
		Name:     name,
		MimeType: mimeType,
	}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	created, err := c.srv.Files.Create(meta).
		Media(bytes.NewReader(data)).
		Fields("id, name, mimeType, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("drive upload: %w", err)
	}

	if created.Id == "" || created.WebViewLink == "" {
		return nil, fmt.Errorf("drive upload: incomplete response for %q", name)
	}

	return &UploadedFile{
		ID:       created.Id,
		Name:     created.Name,
		MimeType: created.MimeType,
		ViewURL:  created.WebViewLink,
	}, nil
}
