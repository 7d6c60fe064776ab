package message

func IsZero(s Subject) *Builder { return simple(s, "must be zero") }

func IsNotZero(s Subject) *Builder { return simple(s, "may not be zero") }

func IsPositive(s Subject) *Builder { return simple(s, "must be positive") }

func IsNotPositive(s Subject) *Builder { return simple(s, "may not be positive") }

func IsNegative(s Subject) *Builder { return simple(s, "must be negative") }

func IsNotNegative(s Subject) *Builder { return simple(s, "may not be negative") }

func IsWholeNumber(s Subject) *Builder { return simple(s, "must be a whole number") }

func IsNotWholeNumber(s Subject) *Builder { return simple(s, "may not be a whole number") }

// IsNumber reports that the value is NaN.
func IsNumber(s Subject) *Builder { return simple(s, "must be a well-defined number") }

// IsNotNumber reports that the value is not NaN.
func IsNotNumber(s Subject) *Builder { return simple(s, "may not be a well-defined number") }

func IsFinite(s Subject) *Builder { return simple(s, "must be a finite number") }

func IsInfinite(s Subject) *Builder { return simple(s, "must be an infinite number") }

// IsMultipleOf reports that the value is not a multiple of factor.
func IsMultipleOf(s Subject, factorName string, factor any) *Builder {
	return operand(s, "must be a multiple of", "", factorName, "", factor)
}

// IsNotMultipleOf reports that the value is a multiple of factor.
func IsNotMultipleOf(s Subject, factorName string, factor any) *Builder {
	return operand(s, "may not be a multiple of", "", factorName, "", factor)
}

// IsTrue reports that a boolean is false.
func IsTrue(s Subject) *Builder { return s.builder(QuoteName(s.Name) + " must be true.") }

// IsFalse reports that a boolean is true.
func IsFalse(s Subject) *Builder { return s.builder(QuoteName(s.Name) + " must be false.") }
