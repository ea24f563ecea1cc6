package filesystem

import (
	"path/filepath"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/paths"
	"github.com/spf13/afero"
)

// Probe implements types.FileProbe using afero
type Probe struct {
	fs afero.Fs
}

// NewProbe creates a probe over the given filesystem
func NewProbe(fs afero.Fs) *Probe {
	return &Probe{fs: fs}
}

// NewOSProbe creates a probe over the OS filesystem
func NewOSProbe() *Probe {
	return NewProbe(afero.NewOsFs())
}

// Fs returns the underlying filesystem
func (p *Probe) Fs() afero.Fs {
	return p.fs
}

// Exists reports whether path names an existing regular file
func (p *Probe) Exists(path string) bool {
	path = strings.TrimSpace(path)
	if path == "" {
		return false
	}
	info, err := p.fs.Stat(paths.ExpandHome(path))
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadFile reads a whole file
func (p *Probe) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(p.fs, paths.ExpandHome(path))
}

// NormalizePath trims surrounding whitespace and quotes, expands ~ and
// returns a cleaned absolute path. A blank path stays blank.
func NormalizePath(path string) string {
	path = strings.Trim(strings.TrimSpace(path), `"`)
	if path == "" {
		return ""
	}
	path = paths.ExpandHome(path)
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return filepath.Clean(path)
}

// SamePath compares two paths after normalization, ignoring case and
// separator style. Blank paths never match.
func SamePath(a, b string) bool {
	na, nb := NormalizePath(a), NormalizePath(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.EqualFold(slashed(na), slashed(nb))
}

func slashed(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}
