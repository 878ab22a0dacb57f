// Package shortcuts lists launchable programs from the platform's shortcuts
// directory for the manual "choose another program" path.
package shortcuts

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
)

// MaxCandidates bounds the number of ranked entries returned.
const MaxCandidates = 50

// fuzzyThreshold is the largest normalised edit distance still considered a
// match when the query is not a substring of the entry name.
const fuzzyThreshold = 0.4

// Picker implements ports.ProgramPicker over one directory tree.
type Picker struct {
	dir  string
	exts []string
}

// New creates a Picker listing dir. With no extensions the platform's
// shortcut extensions are used.
func New(dir string, exts ...string) *Picker {
	if len(exts) == 0 {
		exts = platformExtensions(runtime.GOOS)
	}
	return &Picker{dir: dir, exts: exts}
}

// ForConfig returns a Picker over cfg.ShortcutsDir, or the first existing
// platform default when unset.
func ForConfig(cfg *domain.Config) (*Picker, error) {
	var dirs []string
	if cfg != nil && cfg.ShortcutsDir != "" {
		dirs = []string{cfg.ShortcutsDir}
	} else {
		dirs = DefaultDirs(runtime.GOOS)
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return New(dir), nil
		}
	}
	return nil, zerr.With(domain.ErrShortcutsDirMissing, "searched", strings.Join(dirs, string(os.PathListSeparator)))
}

// DefaultDirs returns the shortcut directories for goos, most specific first.
func DefaultDirs(goos string) []string {
	switch goos {
	case "windows":
		var dirs []string
		if appData := os.Getenv("APPDATA"); appData != "" {
			dirs = append(dirs, filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs"))
		}
		programData := os.Getenv("ProgramData")
		if programData == "" {
			programData = `C:\ProgramData`
		}
		return append(dirs, filepath.Join(programData, "Microsoft", "Windows", "Start Menu", "Programs"))
	case "darwin":
		return []string{"/Applications"}
	default:
		dirs := []string{"/usr/share/applications"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
		}
		return dirs
	}
}

func platformExtensions(goos string) []string {
	switch goos {
	case "windows":
		return []string{".lnk", ".url", ".appref-ms", ".exe"}
	case "darwin":
		return []string{".app"}
	default:
		return []string{".desktop"}
	}
}

// Dir returns the directory being listed.
func (p *Picker) Dir() string {
	return p.dir
}

type candidate struct {
	path     string
	name     string
	contains bool
	distance int
}

// Candidates returns the entries under Dir ranked against query. Substring
// matches come first, then close fuzzy matches; ties sort by distance then
// path. An empty query lists everything by name.
func (p *Picker) Candidates(query string) ([]string, error) {
	if _, err := os.Stat(p.dir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrShortcutsDirMissing.Error()), "dir", p.dir)
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var found []candidate

	err := filepath.WalkDir(p.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped.
			if d != nil && d.IsDir() && path != p.dir {
				return fs.SkipDir
			}
			return nil
		}
		if path == p.dir {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(d.Name()))
		if !slices.Contains(p.exts, ext) {
			return nil
		}

		name := strings.ToLower(strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())))
		c := candidate{path: path, name: name}
		if q != "" {
			c.contains = strings.Contains(name, q)
			c.distance = levenshtein.ComputeDistance(q, name)
			if !c.contains && float64(c.distance)/float64(max(len(q), len(name))) >= fuzzyThreshold {
				return skipBundle(d)
			}
		}
		found = append(found, c)
		return skipBundle(d)
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list shortcuts"), "dir", p.dir)
	}

	slices.SortFunc(found, func(a, b candidate) int {
		if a.contains != b.contains {
			if a.contains {
				return -1
			}
			return 1
		}
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		if a.name != b.name {
			return strings.Compare(a.name, b.name)
		}
		return strings.Compare(a.path, b.path)
	})

	if len(found) > MaxCandidates {
		found = found[:MaxCandidates]
	}
	paths := make([]string, len(found))
	for i, c := range found {
		paths[i] = c.path
	}
	return paths, nil
}

// skipBundle stops descent into matched directories such as macOS .app
// bundles.
func skipBundle(d fs.DirEntry) error {
	if d.IsDir() {
		return fs.SkipDir
	}
	return nil
}
