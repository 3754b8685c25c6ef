// Package disk performs the filesystem operations used by library sync.
package disk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
)

// Provider reads and relocates files on the local filesystem.
type Provider struct {
	log *slog.Logger
}

// NewProvider creates a disk provider.
func NewProvider(log *slog.Logger) *Provider {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Provider{log: log.With("component", "disk")}
}

// GetFiles lists regular files in dir. With recursive set, subdirectories are
// walked as well. Paths are returned in lexical order.
func (p *Provider) GetFiles(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDirectory)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

// GetVideoFiles is GetFiles restricted to video files, skipping samples.
func (p *Provider) GetVideoFiles(dir string, recursive bool) ([]string, error) {
	files, err := p.GetFiles(dir, recursive)
	if err != nil {
		return nil, err
	}
	videos := files[:0]
	for _, f := range files {
		if IsVideoFile(f) && !IsSample(f) {
			videos = append(videos, f)
		}
	}
	return videos, nil
}

// FileExists reports whether path names an existing regular file.
func (p *Provider) FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// FolderExists reports whether path names an existing directory.
func (p *Provider) FolderExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileSize returns the size of a file in bytes.
func (p *Provider) FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return info.Size(), nil
}

// CreateDirectory creates dir and any missing parents.
func (p *Provider) CreateDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}

// NormalizePath cleans a path, collapsing duplicate separators and dot segments.
func (p *Provider) NormalizePath(path string) string {
	return NormalizePath(path)
}

// NormalizePath cleans a path, collapsing duplicate separators and dot segments.
func NormalizePath(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// MoveFile relocates src to dst, creating the destination directory.
// It refuses to overwrite an existing destination. When src and dst are on
// different filesystems the file is copied and the source removed.
func (p *Provider) MoveFile(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("move %s: %w", dst, ErrDestinationExists)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("%w: create directory: %v", ErrMoveFailed, err)
	}

	err := os.Rename(src, dst)
	if err == nil {
		p.log.Debug("file renamed", "from", src, "to", dst)
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return fmt.Errorf("%w: %v", ErrMoveFailed, err)
	}

	if _, err := copyFile(src, dst); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("%w: remove source after copy: %v", ErrMoveFailed, err)
	}
	p.log.Debug("file copied across devices", "from", src, "to", dst)
	return nil
}

// copyFile copies src to a new file at dst. A partial destination is removed on failure.
func copyFile(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("%w: open source: %v", ErrMoveFailed, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, fmt.Errorf("move %s: %w", dst, ErrDestinationExists)
		}
		return 0, fmt.Errorf("%w: create destination: %v", ErrMoveFailed, err)
	}

	size, err := io.Copy(out, in)
	if err == nil {
		err = out.Sync()
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("%w: copy content: %v", ErrMoveFailed, err)
	}
	return size, nil
}

var videoExtensions = map[string]bool{
	".mkv": true, ".mp4": true, ".avi": true, ".m4v": true,
	".wmv": true, ".mov": true, ".ts": true, ".mpg": true,
	".mpeg": true, ".divx": true, ".xvid": true, ".webm": true,
}

// IsVideoFile reports whether path has a known video extension.
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// IsSample reports whether the file name marks a sample clip.
func IsSample(path string) bool {
	return strings.Contains(strings.ToLower(filepath.Base(path)), "sample")
}
