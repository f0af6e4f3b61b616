package document

import (
	"errors"
	"fmt"
)

// ErrMissingShapes is wrapped by the SchemaError returned for documents
// without a "shapes" array.
var ErrMissingShapes = errors.New(`document has no "shapes" array`)

// ErrorKind classifies import failures.
type ErrorKind int

const (
	// ParseError means the input is not valid JSON.
	ParseError ErrorKind = iota + 1
	// SchemaError means the JSON does not describe a valid document.
	SchemaError
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case SchemaError:
		return "schema error"
	default:
		return "unknown error"
	}
}

// ImportError is returned by Parse.
type ImportError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *ImportError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("import document: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("import document: %s: %s: %v", e.Kind, e.Msg, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
