package message

import (
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pmezard/go-difflib/difflib"
)

// Styler decorates a diff before it is attached to a message, for example
// with terminal colors.
type Styler interface {
	StyleDiff(diff string) string
}

// DiffLegend explains the markers used by diffs.
const DiffLegend = "Legend\n" +
	"------\n" +
	"-: present in the expected value only\n" +
	"+: present in the actual value only"

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// TextDiff returns a unified line diff between expected and actual, or an
// empty string when they are equal.
func TextDiff(expectedName, expected, actualName, actual string) string {
	if expected == actual {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		B:        difflib.SplitLines(actual),
		FromFile: expectedName,
		ToFile:   actualName,
		Context:  3,
	})
	if err != nil {
		return ""
	}
	return strings.TrimRight(text, "\n")
}

// ValueDiff returns a structural diff between expected and actual, or an
// empty string when they are equal or cannot be compared.
func ValueDiff(expected, actual any) (diff string) {
	defer func() {
		if recover() != nil {
			diff = ""
		}
	}()
	return strings.TrimRight(cmp.Diff(expected, actual, exportAll), "\n")
}

// Diffable reports whether a diff between two values carries more
// information than their rendered forms.
func Diffable(expected, actual any) bool {
	if expected == nil || actual == nil {
		return false
	}
	if reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return false
	}
	switch reflect.TypeOf(actual).Kind() {
	case reflect.String:
		e, a := reflect.ValueOf(expected).String(), reflect.ValueOf(actual).String()
		return strings.Contains(e, "\n") || strings.Contains(a, "\n")
	case reflect.Struct, reflect.Map, reflect.Slice, reflect.Array, reflect.Pointer:
		return true
	default:
		return false
	}
}

// Diff returns the diff section for an equality failure, styled by styler
// when it is not nil. Strings produce a line diff, other composite values a
// structural diff.
func Diff(expectedName string, expected any, actualName string, actual any, styler Styler) string {
	if !Diffable(expected, actual) {
		return ""
	}
	var body string
	if reflect.TypeOf(actual).Kind() == reflect.String {
		body = TextDiff(expectedName, reflect.ValueOf(expected).String(), actualName, reflect.ValueOf(actual).String())
	} else {
		body = ValueDiff(expected, actual)
	}
	if body == "" {
		return ""
	}
	if styler != nil {
		body = styler.StyleDiff(body)
	}
	return body + "\n\n" + DiffLegend
}
