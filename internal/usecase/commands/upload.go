package commands

import (
	"bufio"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"ifuut-api/internal/infra/storage"
	"ifuut-api/internal/pkg/errs"
	"ifuut-api/internal/usecase/shared"
)

// sniffLen is how much of a file http.DetectContentType looks at.
const sniffLen = 512

const msgNotAnImage = "Upload a valid image. The file you uploaded was either not an image or a corrupted image."

// storeImage writes the upload under a fresh key and returns that key. field names the form field
// in validation errors.
func storeImage(ctx context.Context, images shared.ImageStorage, prefix, field string, u shared.Upload, now time.Time) (string, error) {
	rc, err := u.Open()
	if err != nil {
		return "", errs.Mark(errs.Wrap(err, "open upload"), errs.ErrInvalidUpload)
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, sniffLen)
	head, _ := br.Peek(sniffLen)
	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.Mark(errs.Field(field, msgNotAnImage), errs.ErrInvalidUpload)
	}

	key := storage.NewKey(prefix, u.Filename, now)
	if err := images.Save(ctx, key, contentType, br, u.Size); err != nil {
		return "", errs.Wrap(err, "store upload")
	}
	return key, nil
}

// discardImages removes blobs whose database rows were never written.
func discardImages(ctx context.Context, images shared.ImageStorage, keys []string) {
	ctx = context.WithoutCancel(ctx)
	for _, key := range keys {
		if err := images.Delete(ctx, key); err != nil {
			slog.Warn("failed to remove orphaned upload", "key", key, "error", err.Error())
		}
	}
}
