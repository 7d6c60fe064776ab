// Package scope provides the application scope: an explicitly constructed
// owner of the services every validation shares, passed down to the code
// that needs it.
//
// Only one scope may be open per process, since it owns the terminal that
// diagnostics are styled for. New claims it with an atomic compare-and-set
// and Close releases it:
//
//	app, err := scope.New(scope.WithSettings(settings))
//	if err != nil {
//	    return err
//	}
//	defer app.Close(ctx)
//
//	child, err := app.NewChild()
//	if err != nil {
//	    return err
//	}
//	defer child.Close()
//
//	s := child.Validators().Check()
//
// Close stops accepting children and waits for the open ones until its
// context is done. When the wait times out the handle stays claimed until the
// last child closes.
package scope
