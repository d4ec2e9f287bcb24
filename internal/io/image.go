package ioutils

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
	"golang.org/x/sync/errgroup"
)

// InputKind classifies what an input path points at.
type InputKind int

const (
	InputMissing InputKind = iota
	InputImage
	InputDirectory
	InputOther
)

// InputInfo describes the input file or directory configured for the server.
type InputInfo struct {
	Path string
	Kind InputKind

	// Set for InputImage.
	Format string
	Width  int
	Height int

	// Set for InputDirectory: readable images directly inside the directory.
	ImageCount int
}

// String renders a one-line summary suitable for the form.
func (i InputInfo) String() string {
	switch i.Kind {
	case InputImage:
		return fmt.Sprintf("%s image, %dx%d", i.Format, i.Width, i.Height)
	case InputDirectory:
		if i.ImageCount == 1 {
			return "directory with 1 image"
		}
		return fmt.Sprintf("directory with %d images", i.ImageCount)
	case InputOther:
		return "file is not a readable image"
	default:
		return "does not exist"
	}
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".gif":  true,
	".tif":  true,
	".tiff": true,
}

// ImageService inspects input images without decoding their pixels.
//
// Only image headers are read (image.DecodeConfig), so describing a
// directory of large photos stays cheap. Directory entries are read
// concurrently, bounded by the service's limit.
//
// Example usage:
//
//	svc := NewImageService()
//	info, err := svc.DescribeInput(ctx, "/data/photos")
//	fmt.Println(info) // "directory with 12 images"
type ImageService struct {
	limit int
}

// NewImageService creates a new ImageService that reads up to 8 file headers at a time.
func NewImageService() *ImageService {
	return &ImageService{limit: 8}
}

// DescribeInput reports what path points at.
//
// A missing path is not an error; it yields an InputMissing info. Errors are
// returned only when a directory cannot be listed or ctx is cancelled.
func (s *ImageService) DescribeInput(ctx context.Context, path string) (*InputInfo, error) {
	info := &InputInfo{Path: path}

	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return info, nil
		}
		return nil, errors.Wrapf(err, "stat %s", path)
	}

	if !st.IsDir() {
		// Opening a FIFO or device can block, so only regular files are read.
		if !st.Mode().IsRegular() {
			info.Kind = InputOther
			return info, nil
		}
		cfg, format, err := s.readHeader(path)
		if err != nil {
			info.Kind = InputOther
			return info, nil
		}
		info.Kind = InputImage
		info.Format = format
		info.Width = cfg.Width
		info.Height = cfg.Height
		return info, nil
	}

	count, err := s.countImages(ctx, path)
	if err != nil {
		return nil, err
	}
	info.Kind = InputDirectory
	info.ImageCount = count
	return info, nil
}

func (s *ImageService) countImages(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, "read directory %s", dir)
	}

	var count int32
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit)

	for _, entry := range entries {
		if !imageExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Stat follows symlinks; the target must be a regular file.
			st, err := os.Stat(path)
			if err != nil || !st.Mode().IsRegular() {
				return nil
			}
			if _, _, err := s.readHeader(path); err == nil {
				atomic.AddInt32(&count, 1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *ImageService) readHeader(path string) (image.Config, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()

	return image.DecodeConfig(f)
}
