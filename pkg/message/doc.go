// Package message renders validation failures into human readable text.
//
// A failure message is a single sentence followed by context lines whose
// colons are aligned vertically, optionally followed by a diff:
//
//	"age" must be greater than "minimum".
//	age    : 12
//	minimum: 18
//
// # Architecture
//
// Builder accumulates the sentence, the ordered context pairs and the diff.
// The per-domain factories (comparable.go, object.go, number.go, string.go,
// collection.go, maps.go) decide the wording of each failure and which
// context pairs to attach. They all receive a Subject describing the value
// under validation and render operands through the render.Mappers registry.
//
// Naming rule: when an operand was supplied with a name the sentence refers to
// the name and both values go into the context; otherwise the operand value is
// inlined into the sentence and no context line is added for it.
//
// Count-sensitive nouns are chosen by Pluralizer, backed by the
// golang.org/x/text plural catalog. Diffs use github.com/pmezard/go-difflib for
// text and github.com/google/go-cmp for composite values.
package message
