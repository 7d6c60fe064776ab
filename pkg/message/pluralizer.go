package message

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Pluralizer names the items held by a container.
type Pluralizer int

const (
	Characters Pluralizer = iota
	Elements
	Entries
	Keys
	Values
)

var nouns = map[Pluralizer][2]string{
	Characters: {"character", "characters"},
	Elements:   {"element", "elements"},
	Entries:    {"entry", "entries"},
	Keys:       {"key", "keys"},
	Values:     {"value", "values"},
}

func (p Pluralizer) key() string {
	return "%d " + nouns[p][1]
}

var printer = sync.OnceValue(func() *xmessage.Printer {
	b := catalog.NewBuilder()
	for p, forms := range nouns {
		err := b.Set(language.English, p.key(), plural.Selectf(1, "%d",
			"one", "%d "+forms[0],
			"other", "%d "+forms[1],
		))
		if err != nil {
			panic(fmt.Errorf("plural forms of %q: %w", forms[1], err))
		}
	}
	return xmessage.NewPrinter(language.English, xmessage.Catalog(b))
})

// Noun returns the singular or plural noun for count items.
func (p Pluralizer) Noun(count int) string {
	text := printer().Sprintf(p.key(), count)
	if _, noun, ok := strings.Cut(text, " "); ok {
		return noun
	}
	return nouns[p][1]
}

// Count returns count followed by the matching noun, e.g. "1 element".
func (p Pluralizer) Count(count int) string {
	return strconv.Itoa(count) + " " + p.Noun(count)
}

// Plural returns the plural noun.
func (p Pluralizer) Plural() string {
	return nouns[p][1]
}
