package ports

import (
	"context"
	"io"
)

// Attachment is an upload that already passed the handler-level filter
// (mime-type and size). ContentType is the sniffed type, not the one the
// client declared.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// FileStore persists attachments and returns a path reference by which
// they are served back.
type FileStore interface {
	// Save writes the attachment and returns its public path reference.
	Save(ctx context.Context, att *Attachment) (string, error)
	// Remove deletes a previously saved attachment by its reference.
	// Removing a reference that does not exist is not an error.
	Remove(ctx context.Context, ref string) error
}
