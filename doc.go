// Package requirements checks method arguments and object state and reports
// violations with diagnostic messages.
//
// The library is organized as a set of packages:
//
//   - pkg/validator: the engine. Sessions in fail-fast or multi-failure mode,
//     typed validators, the immutable Configuration and error resolution.
//   - pkg/message: failure sentences, aligned context lines and diffs.
//   - pkg/render: per-type rendering of values inside messages.
//   - pkg/difference: set difference used by collection checks.
//   - pkg/terminal: terminal color detection and diff styling.
//   - pkg/config: settings from the environment, .env files or YAML.
//   - pkg/scope: the application scope that wires the above together.
//   - pkg/logger: slog factory and attribute helpers.
//
// A typical program builds one scope at startup and passes its validators
// down:
//
//	app, err := scope.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer app.Close(context.Background())
//
//	s := app.Validators().Check()
//	validator.String(s, "email", email).IsNotBlank().DoesNotContainWhitespace()
//	validator.Number(s, "age", age).IsBetween(18, true, 130, false)
//	if err := s.Err(); err != nil {
//	    return err
//	}
package requirements
