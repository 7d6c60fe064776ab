package message

// IsAbsolutePath reports that a path is relative.
//
//	"dir" must reference an absolute path.
//	dir: "tmp/cache"
func IsAbsolutePath(s Subject) *Builder { return simple(s, "must reference an absolute path") }

func IsRelativePath(s Subject) *Builder { return simple(s, "must reference a relative path") }

// Exists reports that a path does not reference an existing file. A cause
// other than a missing file is added to the context.
func Exists(s Subject, cause error) *Builder {
	b := simple(s, "must exist")
	if cause != nil {
		b.WithContext("cause", cause)
	}
	return b
}
