package message

// HasSize reports that a container does not hold the expected number of items.
//
//	"actual" must contain 15 characters.
//	actual     : "hello world"
//	len(actual): 11
func HasSize(s Subject, sizeName string, size int, expectedName string, expected int, p Pluralizer) *Builder {
	var summary string
	if expectedName == "" {
		summary = QuoteName(s.Name) + " must contain " + p.Count(expected) + "."
	} else {
		summary = QuoteName(s.Name) + " must contain " + QuoteName(expectedName) + " " + p.Plural() + "."
	}
	b := s.withValue(s.builder(summary))
	b.WithContext(sizeName, size)
	if expectedName != "" {
		b.WithContext(expectedName, expected)
	}
	return b
}

// SizeIsBetween reports that a container holds too few or too many items.
// Integer bounds are converted to inclusive ones before they are named.
//
//	"actual" must contain at least 4 characters.
//	actual     : "hey"
//	len(actual): 3
//	bounds     : [4, 6]
func SizeIsBetween(s Subject, sizeName string, size, minimum int, minimumInclusive bool,
	maximum int, maximumInclusive bool, p Pluralizer,
) *Builder {
	r := Range{
		Min: Bound{Value: minimum, Inclusive: minimumInclusive},
		Max: Bound{Value: maximum, Inclusive: maximumInclusive},
	}
	low := minimum
	if !minimumInclusive {
		low++
	}
	high := maximum
	if !maximumInclusive {
		high--
	}

	var summary string
	if size < low {
		summary = QuoteName(s.Name) + " must contain at least " + p.Count(low) + "."
	} else {
		summary = QuoteName(s.Name) + " must contain at most " + p.Count(high) + "."
	}
	b := s.withValue(s.builder(summary))
	b.WithContext(sizeName, size)
	b.WithContext("bounds", r.Render(s.mappers()))
	return b
}

// Contains reports that a collection lacks an element.
func Contains(s Subject, expectedName string, expected any) *Builder {
	return operand(s, "must contain", "the same value as ", expectedName, "", expected)
}

// DoesNotContain reports that a collection holds an unwanted element.
func DoesNotContain(s Subject, unwantedName string, unwanted any) *Builder {
	return operand(s, "may not contain", "the same value as ", unwantedName, "", unwanted)
}

// ContainsAny reports that a collection holds none of the expected elements.
//
//	"actual" must contain any of the elements present in the set [2, 3, 4].
func ContainsAny(s Subject, expectedName string, expected any, p Pluralizer) *Builder {
	return operand(s, "must contain any of the "+p.Plural()+" present in", "", expectedName, "the set ", expected)
}

// DoesNotContainAny reports that a collection holds some unwanted elements.
func DoesNotContainAny(s Subject, common any, unwantedName string, unwanted any, p Pluralizer) *Builder {
	b := operand(s, "may not contain any of the "+p.Plural()+" present in", "", unwantedName, "the set ", unwanted)
	if common != nil {
		b.WithContext(p.Plural()+"ToRemove", common)
	}
	return b
}

// ContainsAll reports that a collection misses some expected elements.
//
//	"actual" must contain all the elements present in "expected".
//	actual  : [1, 2, 3]
//	expected: [2, 3, 4]
//	missing : [4]
func ContainsAll(s Subject, missing any, expectedName string, expected any, p Pluralizer) *Builder {
	b := operand(s, "must contain all the "+p.Plural()+" present in", "", expectedName, "the set ", expected)
	if missing != nil {
		b.WithContext("missing", missing)
	}
	return b
}

// DoesNotContainAll reports that a collection holds every unwanted element.
func DoesNotContainAll(s Subject, unwantedName string, unwanted any, p Pluralizer) *Builder {
	return operand(s, "may contain some, but not all, the "+p.Plural()+" present in", "", unwantedName,
		"the set ", unwanted)
}

// ContainsExactly reports that a collection does not consist of the expected
// elements.
//
//	"actual" must consist of the same elements as "expected", regardless of their order.
//	actual  : [1, 2, 3]
//	expected: [2, 3, 4]
//	missing : [4]
//	unwanted: [1]
func ContainsExactly(s Subject, missing, unwanted any, expectedName string, expected any, p Pluralizer) *Builder {
	b := exactly(s, "must", expectedName, expected, p)
	if missing != nil {
		b.WithContext("missing", missing)
	}
	if unwanted != nil {
		b.WithContext("unwanted", unwanted)
	}
	return b
}

// DoesNotContainExactly reports that a collection consists of unwanted elements.
func DoesNotContainExactly(s Subject, unwantedName string, unwanted any, p Pluralizer) *Builder {
	return exactly(s, "may not", unwantedName, unwanted, p)
}

func exactly(s Subject, modal, otherName string, other any, p Pluralizer) *Builder {
	summary := QuoteName(s.Name) + " " + modal + " consist of the "
	if otherName != "" {
		summary += "same "
	}
	summary += p.Plural() + " " + s.nameOrValue("as ", otherName, "", other) + ", regardless of their order."
	b := s.withValue(s.builder(summary))
	if otherName != "" {
		b.WithContext(otherName, other)
	}
	return b
}

// DoesNotContainDuplicates reports the elements that occur more than once.
func DoesNotContainDuplicates(s Subject, duplicates any, p Pluralizer) *Builder {
	b := s.withValue(s.builder(QuoteName(s.Name) + " may not contain any duplicate " + p.Plural() + "."))
	if duplicates != nil {
		b.WithContext("duplicates", duplicates)
	}
	return b
}

// SizeName returns the expression naming the size of a container.
func SizeName(name string) string {
	return "len(" + name + ")"
}
