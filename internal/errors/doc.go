// Package errors provides structured, actionable error messages for the
// Verdana site.
//
// Errors carry a category naming the originating subsystem (config, live,
// render) and an optional fix suggestion the CLI prints when startup fails:
//
//	err := errors.Newf(errors.CategoryConfig, "invalid port %d", port).
//	    WithSuggestion("set VERDANA_PORT to a value between 1 and 65535")
//
//	fmt.Println(err.Format())
package errors
