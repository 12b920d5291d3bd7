// Package internal provides the conversion engine that rewrites legacy
// circuit descriptions into the acirc line format.
//
// Key components:
//
// Engine: runs every registered LineRule over each trimmed line of a file,
// collects the emitted lines and output names, and appends the trailing
// ":outputs" directive.
//
// LineRule: an independent predicate plus rewrite for one kind of line.
// Rules are not mutually exclusive; a line matching several rules emits
// one line per rule. Drop rules end processing of their line.
//
// SourceCode: the content of a circuit file as a collection of lines.
//
// Usage:
//
//	engine := internal.NewEngine(nil, logger)
//	result, err := engine.Run(ctx, "path/to/circuit")
//	if err != nil {
//	    // handle error
//	}
//	os.Stdout.Write(result.Content)
//
// The engine never writes files; see package convert for write-back.
package internal
