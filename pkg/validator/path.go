package validator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/requirements/pkg/message"
)

// PathValidator validates a file-system path.
type PathValidator struct {
	core[string]
}

// Path starts validating a file-system path.
func Path(s *Session, name string, value string) *PathValidator {
	return &PathValidator{core: newCore(s, name, value)}
}

func (v *PathValidator) IsEqualTo(expected string, name ...string) *PathValidator {
	v.isEqualTo(expected, name)
	return v
}

func (v *PathValidator) IsNotEqualTo(unwanted string, name ...string) *PathValidator {
	v.isNotEqualTo(unwanted, name)
	return v
}

func (v *PathValidator) IsAbsolute() *PathValidator {
	v.satisfy(filepath.IsAbs, message.IsAbsolutePath)
	return v
}

func (v *PathValidator) IsRelative() *PathValidator {
	v.satisfy(func(p string) bool { return !filepath.IsAbs(p) }, message.IsRelativePath)
	return v
}

// Exists checks that the path references an existing file or directory.
// It stats the file system on every call.
func (v *PathValidator) Exists() *PathValidator {
	if !v.requireValue() {
		return v
	}
	_, err := os.Stat(v.value)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		v.fail(message.Exists(v.subject(), nil))
	default:
		v.fail(message.Exists(v.subject(), err))
	}
	return v
}
