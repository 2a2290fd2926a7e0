package docpath

import "fmt"

// PathError reports an unparseable path expression or an index that cannot be
// addressed.
type PathError struct {
	Expr string
	Msg  string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid path %q: %s", e.Expr, e.Msg)
}

// TypeConflictError reports a segment that does not fit the container found at
// its position, e.g. an index into an object.
type TypeConflictError struct {
	At   Path
	Want string
	Got  string
}

func (e *TypeConflictError) Error() string {
	at := e.At.String()
	if at == "" {
		at = "<root>"
	}
	return fmt.Sprintf("type conflict at %s: want %s, found %s", at, e.Want, e.Got)
}

func conflict(at Path, want string, got any) *TypeConflictError {
	prefix := make(Path, len(at))
	copy(prefix, at)
	return &TypeConflictError{At: prefix, Want: want, Got: kindOf(got)}
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "bool"
	case float64, float32, int, int64, int32:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
