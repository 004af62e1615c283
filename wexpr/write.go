package wexpr

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// WriteFile serializes v and persists it to URL as UTF-8 text with one
// trailing newline, overwriting any existing file. URL accepts anything the
// afs storage layer understands (a plain path, file://, mem://, ...).
//
// The full text is buffered before the upload starts, so a serialization
// error never leaves a truncated file behind. Concurrent writers to the
// same URL race at the storage level; coordinating them is the caller's
// concern.
func WriteFile(ctx context.Context, v *Value, URL string, opts Options) error {
	text, err := EmitWithOptions(v, opts)
	if err != nil {
		return err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(text+"\n")); err != nil {
		return fmt.Errorf("wexpr: failed to write %s: %w", URL, err)
	}
	return nil
}
