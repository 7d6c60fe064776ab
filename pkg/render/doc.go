// Package render converts arbitrary values into the strings used by failure
// messages.
//
// A Mappers value is an immutable registry keyed by reflect.Type. Lookups use
// the exact dynamic type of the value first and fall back to a built-in
// rendering that quotes strings, renders slices and maps element by element and
// prints nil as "null". Every mutator returns a new registry, or the receiver
// itself when nothing changed, so a registry can be shared freely between
// goroutines.
//
// # Usage
//
//	mappers := render.Register(render.Default(), func(p Password) string {
//	    return "********"
//	})
//	mappers.String(Password("secret")) // "********"
//
// Container values render their elements through the same registry, so a
// redacting mapper also applies to []Password or map[string]Password.
package render
