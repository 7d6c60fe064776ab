package message

// IsURI reports that a string does not parse as a URI.
func IsURI(s Subject, cause error) *Builder {
	b := simple(s, "must be a valid URI")
	if cause != nil {
		b.WithContext("cause", cause)
	}
	return b
}

// IsAbsoluteURI reports that a URI has no scheme.
//
//	"endpoint" must be an absolute URI.
//	endpoint: /v1/users
func IsAbsoluteURI(s Subject) *Builder { return simple(s, "must be an absolute URI") }

func IsRelativeURI(s Subject) *Builder { return simple(s, "must be a relative URI") }
