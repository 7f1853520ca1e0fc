package frames

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
)

// Fetcher retrieves and decodes frame i. Implementations must be safe for
// concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, index int) (image.Image, error)
}

// FetchFunc adapts a function to Fetcher.
type FetchFunc func(ctx context.Context, index int) (image.Image, error)

func (f FetchFunc) Fetch(ctx context.Context, index int) (image.Image, error) {
	return f(ctx, index)
}

// FSFetcher reads frames from a filesystem using an index-templated name
// such as "frame_%d.jpg".
type FSFetcher struct {
	FS      fs.FS
	Pattern string
}

func NewFSFetcher(fsys fs.FS, pattern string) *FSFetcher {
	return &FSFetcher{FS: fsys, Pattern: pattern}
}

// Path returns the file name of frame i.
func (f *FSFetcher) Path(index int) string {
	return fmt.Sprintf(f.Pattern, index)
}

func (f *FSFetcher) Fetch(ctx context.Context, index int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := f.Path(index)
	file, err := f.FS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open frame %d: %w", index, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode frame %d (%s): %w", index, name, err)
	}
	return img, nil
}
