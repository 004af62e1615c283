package sweep

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// WriteScript builds a submission script and persists it to URL,
// overwriting any existing file and creating parent directories as needed.
// URL accepts anything the afs storage layer understands.
func WriteScript(ctx context.Context, URL string, fields map[string]any, params []Param, order []string) error {
	script, err := Script(fields, params, order)
	if err != nil {
		return err
	}
	fs := afs.New()
	if err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(script)); err != nil {
		return fmt.Errorf("sweep: failed to write %s: %w", URL, err)
	}
	return nil
}
