package install

import (
	"os"
	"path/filepath"

	"go.trai.ch/ppd/internal/core/domain"
	"go.trai.ch/zerr"
)

// ancestors returns path and every parent directory up to the root.
func ancestors(path string) []string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	var dirs []string
	for dir := abs; ; dir = filepath.Dir(dir) {
		dirs = append(dirs, dir)
		if filepath.Dir(dir) == dir {
			return dirs
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LocatePrimary walks up from path to the directory holding the primary
// executable. path may be the executable itself.
func LocatePrimary(path string) (string, error) {
	for _, dir := range ancestors(path) {
		if exists(filepath.Join(dir, domain.PrimaryExecutable)) {
			return dir, nil
		}
	}
	return "", zerr.With(zerr.With(domain.ErrExecutableNotFound, "app", domain.DefaultPrimaryName), "path", path)
}

// LocateSecondary walks up from path to the directory whose readme names a
// version and which holds the executable for that version.
func LocateSecondary(path string) (string, Version, error) {
	for _, dir := range ancestors(path) {
		v, ok := ReadSecondaryVersion(dir)
		if !ok {
			continue
		}
		exe := filepath.Join(dir, filepath.FromSlash(domain.SecondaryExecutable(v.String())))
		if exists(exe) {
			return dir, v, nil
		}
	}
	return "", Version{}, zerr.With(zerr.With(domain.ErrExecutableNotFound, "app", domain.DefaultSecondaryName), "path", path)
}

// ReadSecondaryVersion reads the installed version from the readme in dir.
func ReadSecondaryVersion(dir string) (Version, bool) {
	data, err := os.ReadFile(filepath.Join(dir, domain.SecondaryReadme))
	if err != nil {
		return Version{}, false
	}
	return ParseVersion(string(data))
}
