package docpath

import (
	"reflect"
	"sort"
)

type ChangeKind int

const (
	Added ChangeKind = iota
	Removed
	Changed
)

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "changed"
	}
}

// Change is one difference between two documents.
type Change struct {
	Path   Path
	Kind   ChangeKind
	Before any
	After  any
}

// Diff lists the leaf-level differences turning a into b. Object keys are
// visited in sorted order, so the output is deterministic.
func Diff(a, b any) []Change {
	var out []Change
	diff(nil, a, b, &out)
	return out
}

func diff(at Path, a, b any, out *[]Change) {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			break
		}
		keys := make([]string, 0, len(av)+len(bv))
		for k := range av {
			keys = append(keys, k)
		}
		for k := range bv {
			if _, seen := av[k]; !seen {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			x, inA := av[k]
			y, inB := bv[k]
			child := at.Child(Key(k))
			switch {
			case !inB:
				*out = append(*out, Change{Path: child, Kind: Removed, Before: x})
			case !inA:
				*out = append(*out, Change{Path: child, Kind: Added, After: y})
			default:
				diff(child, x, y, out)
			}
		}
		return

	case []any:
		bv, ok := b.([]any)
		if !ok {
			break
		}
		n := len(av)
		if len(bv) > n {
			n = len(bv)
		}
		for i := 0; i < n; i++ {
			child := at.Child(Index(i))
			switch {
			case i >= len(bv):
				*out = append(*out, Change{Path: child, Kind: Removed, Before: av[i]})
			case i >= len(av):
				*out = append(*out, Change{Path: child, Kind: Added, After: bv[i]})
			default:
				diff(child, av[i], bv[i], out)
			}
		}
		return
	}

	if !reflect.DeepEqual(a, b) {
		*out = append(*out, Change{Path: at, Kind: Changed, Before: a, After: b})
	}
}
