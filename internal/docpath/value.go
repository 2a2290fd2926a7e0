// Package docpath reads and writes JSON documents (the map[string]any / []any
// trees produced by encoding/json) through path expressions.
//
// Writes never modify their input. Set copies only the containers on the
// addressed path and shares every untouched branch with the original tree.
package docpath

import "fmt"

// MaxIndex bounds list indices so a typo cannot allocate a huge sparse list.
const MaxIndex = 1 << 16

// Get returns the value at p. The second result is false when any segment is
// missing, out of range, or addresses the wrong kind of container.
func Get(doc any, p Path) (any, bool) {
	cur := doc
	for _, seg := range p {
		switch seg.Kind {
		case KeySegment:
			obj, ok := cur.(map[string]any)
			if !ok {
				return nil, false
			}
			if cur, ok = obj[seg.Key]; !ok {
				return nil, false
			}
		case IndexSegment:
			list, ok := cur.([]any)
			if !ok || seg.Index >= len(list) {
				return nil, false
			}
			cur = list[seg.Index]
		}
	}
	return cur, true
}

// List returns the list at p, or an empty list when the value is absent, null
// or not a list. Callers never see a nil collection.
func List(doc any, p Path) []any {
	v, ok := Get(doc, p)
	if !ok {
		return []any{}
	}
	list, ok := v.([]any)
	if !ok || list == nil {
		return []any{}
	}
	return list
}

// Set returns a new document equal to doc with the value at p replaced by v.
// Missing or null intermediates are created as an object or list depending on
// the segment that follows them; an index past the end of a list pads it with
// nulls. An empty path replaces the root.
func Set(doc any, p Path, v any) (any, error) {
	if len(p) == 0 {
		return v, nil
	}
	return set(doc, p, 0, v)
}

// Apply parses expr and sets the value at that path.
func Apply(doc any, expr string, v any) (any, error) {
	p, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	return Set(doc, p, v)
}

func set(node any, p Path, i int, v any) (any, error) {
	seg := p[i]
	last := i == len(p)-1

	switch seg.Kind {
	case KeySegment:
		var obj map[string]any
		switch n := node.(type) {
		case nil:
			obj = make(map[string]any, 1)
		case map[string]any:
			obj = cloneObject(n)
		default:
			return nil, conflict(p[:i], "object", n)
		}
		if last {
			obj[seg.Key] = v
			return obj, nil
		}
		child, err := set(obj[seg.Key], p, i+1, v)
		if err != nil {
			return nil, err
		}
		obj[seg.Key] = child
		return obj, nil

	case IndexSegment:
		var list []any
		switch n := node.(type) {
		case nil:
		case []any:
			list = n
		default:
			return nil, conflict(p[:i], "list", n)
		}
		if seg.Index < 0 || seg.Index > MaxIndex {
			return nil, &PathError{Expr: p.String(), Msg: fmt.Sprintf("index %d out of range", seg.Index)}
		}
		size := len(list)
		if seg.Index >= size {
			size = seg.Index + 1
		}
		out := make([]any, size)
		copy(out, list)
		if last {
			out[seg.Index] = v
			return out, nil
		}
		child, err := set(out[seg.Index], p, i+1, v)
		if err != nil {
			return nil, err
		}
		out[seg.Index] = child
		return out, nil
	}

	return nil, &PathError{Expr: p.String(), Msg: "unknown segment kind"}
}

// Append adds v to the end of the list at p, creating the list if it is
// absent, and returns the new document and the index v was stored at.
func Append(doc any, p Path, v any) (any, int, error) {
	current, ok := Get(doc, p)
	var list []any
	if ok && current != nil {
		if list, ok = current.([]any); !ok {
			return nil, 0, conflict(p, "list", current)
		}
	}
	out := make([]any, len(list), len(list)+1)
	copy(out, list)
	out = append(out, v)

	next, err := Set(doc, p, out)
	if err != nil {
		return nil, 0, err
	}
	return next, len(out) - 1, nil
}

// RemoveAt splices element idx out of the list at p.
func RemoveAt(doc any, p Path, idx int) (any, error) {
	current, ok := Get(doc, p)
	if !ok || current == nil {
		return nil, &PathError{Expr: p.String(), Msg: "no list at path"}
	}
	list, ok := current.([]any)
	if !ok {
		return nil, conflict(p, "list", current)
	}
	if idx < 0 || idx >= len(list) {
		return nil, &PathError{Expr: p.String(), Msg: fmt.Sprintf("index %d out of range (len %d)", idx, len(list))}
	}

	out := make([]any, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return Set(doc, p, out)
}

func cloneObject(src map[string]any) map[string]any {
	out := make(map[string]any, len(src)+1)
	for k, v := range src {
		out[k] = v
	}
	return out
}
