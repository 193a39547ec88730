package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/labstack/echo/v4"

	"github.com/talenthub/accounts-api/internal/api/metrics"
	"github.com/talenthub/accounts-api/internal/core/ports"
)

// documentTypes are the accepted resume mime-types: PDF, legacy Word, and
// OOXML Word.
var documentTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// uploadFilter validates multipart attachments against the configured size
// ceiling and the per-field mime-type allow list. The content type is
// sniffed from the bytes, not taken from the client's header.
type uploadFilter struct {
	maxBytes int64
}

// formAttachment opens the named multipart file field and runs it through
// the filter. kind is "picture" or "resume" and selects the mime allow
// list. A missing field yields (nil, nil); the caller decides whether the
// field is mandatory. A body that does not parse as multipart is a 400.
func (f uploadFilter) formAttachment(c echo.Context, field, kind string) (*ports.Attachment, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid multipart payload")
	}

	if fh.Size > f.maxBytes {
		metrics.UploadsTotal.WithLabelValues(kind, "rejected").Inc()
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s exceeds the %d MB size limit", field, f.maxBytes/(1<<20)))
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %s: %w", field, err)
	}

	mt, err := mimetype.DetectReader(src)
	if err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("sniff upload %s: %w", field, err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		_ = src.Close()
		return nil, fmt.Errorf("rewind upload %s: %w", field, err)
	}

	if !allowedType(kind, mt) {
		_ = src.Close()
		metrics.UploadsTotal.WithLabelValues(kind, "rejected").Inc()
		return nil, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s has unsupported type %s", field, mt.String()))
	}

	metrics.UploadsTotal.WithLabelValues(kind, "accepted").Inc()
	return &ports.Attachment{
		Filename:    fh.Filename,
		ContentType: mt.String(),
		Size:        fh.Size,
		Content:     src,
	}, nil
}

func allowedType(kind string, mt *mimetype.MIME) bool {
	switch kind {
	case "picture":
		return strings.HasPrefix(mt.String(), "image/")
	case "resume":
		for _, t := range documentTypes {
			if mt.Is(t) {
				return true
			}
		}
	}
	return false
}
