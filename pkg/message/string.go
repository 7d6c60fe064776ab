package message

func IsEmpty(s Subject) *Builder { return simple(s, "must be empty") }

func IsNotEmpty(s Subject) *Builder { return s.builder(QuoteName(s.Name) + " may not be empty.") }

func IsBlank(s Subject) *Builder { return simple(s, "must be blank") }

func IsNotBlank(s Subject) *Builder {
	return simple(s, "may not be empty or contain only whitespace")
}

func IsTrimmed(s Subject) *Builder {
	return simple(s, "may not contain leading or trailing whitespace")
}

func DoesNotContainWhitespace(s Subject) *Builder {
	return simple(s, "may not contain whitespace")
}

func StartsWith(s Subject, prefixName, prefix string) *Builder {
	return operand(s, "must start with", "", prefixName, "", prefix)
}

func DoesNotStartWith(s Subject, prefixName, prefix string) *Builder {
	return operand(s, "may not start with", "", prefixName, "", prefix)
}

func EndsWith(s Subject, suffixName, suffix string) *Builder {
	return operand(s, "must end with", "", suffixName, "", suffix)
}

func DoesNotEndWith(s Subject, suffixName, suffix string) *Builder {
	return operand(s, "may not end with", "", suffixName, "", suffix)
}

// ContainsText reports that a string lacks a substring.
func ContainsText(s Subject, expectedName, expected string) *Builder {
	return operand(s, "must contain", "", expectedName, "", expected)
}

// DoesNotContainText reports that a string holds an unwanted substring.
func DoesNotContainText(s Subject, unwantedName, unwanted string) *Builder {
	return operand(s, "may not contain", "", unwantedName, "", unwanted)
}

// Matches reports that a string does not match a regular expression.
//
//	"code" must match the regular expression "^[A-Z]{3}$".
//	code: "ab"
func Matches(s Subject, patternName, pattern string) *Builder {
	return operand(s, "must match", "", patternName, "the regular expression ", pattern)
}

// IsUUID reports that a string is not a valid UUID.
func IsUUID(s Subject, cause error) *Builder {
	b := simple(s, "must be a valid UUID")
	if cause != nil {
		b.WithContext("cause", cause)
	}
	return b
}
