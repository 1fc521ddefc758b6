package nbt

import (
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// pathStep is one hop of a lookup path: a compound key or a list index.
type pathStep struct {
	key   string
	index int
	isIdx bool
}

// Lookup resolves a path such as `Level.Sections[0].Y` against v. Keys are
// separated by '.', list elements are selected with [n], and keys containing
// '.' or '[' can be double-quoted: `Data."minecraft:stone".count`.
// An empty path returns v itself. A miss yields types.ErrNotFound; bad syntax
// yields types.ErrInvalidPath.
func Lookup(v Value, path string) (Value, error) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	cur := v
	for i, st := range steps {
		var ok bool
		if st.isIdx {
			l, isList := cur.(*List)
			if !isList {
				return nil, types.ErrNotFound.With(nil, "%s: %s is not a list", pathPrefix(steps, i+1), idOf(cur))
			}
			cur, ok = l.At(st.index)
		} else {
			c, isCompound := cur.(*Compound)
			if !isCompound {
				return nil, types.ErrNotFound.With(nil, "%s: %s is not a compound", pathPrefix(steps, i+1), idOf(cur))
			}
			cur, ok = c.Get(st.key)
		}
		if !ok {
			return nil, types.ErrNotFound.With(nil, "%s", pathPrefix(steps, i+1))
		}
	}
	return cur, nil
}

// LookupTag resolves path against t.Value. A leading segment equal to the
// root's name is skipped, so `Level.xPos` works on a root named "Level".
func LookupTag(t Tag, path string) (Value, error) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	if len(steps) > 0 && !steps[0].isIdx && t.Name != "" && steps[0].key == t.Name {
		if _, ok := Get(t.Value, t.Name); !ok {
			path = formatPath(steps[1:])
		}
	}
	return Lookup(t.Value, path)
}

func parsePath(path string) ([]pathStep, error) {
	var steps []pathStep
	i := 0
	expectKey := true
	for i < len(path) {
		switch c := path[i]; {
		case c == '.':
			if expectKey {
				return nil, types.ErrInvalidPath.With(nil, "malformed path %q: empty segment at %d", path, i)
			}
			expectKey = true
			i++
		case c == '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, types.ErrInvalidPath.With(nil, "malformed path %q: unclosed [", path)
			}
			n, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, types.ErrInvalidPath.With(nil, "malformed path %q: bad index %q", path, path[i+1:i+end])
			}
			steps = append(steps, pathStep{index: n, isIdx: true})
			expectKey = false
			i += end + 1
		case c == '"':
			if !expectKey {
				return nil, types.ErrInvalidPath.With(nil, "malformed path %q: missing '.' at %d", path, i)
			}
			end := strings.IndexByte(path[i+1:], '"')
			if end < 0 {
				return nil, types.ErrInvalidPath.With(nil, "malformed path %q: unclosed quote", path)
			}
			steps = append(steps, pathStep{key: path[i+1 : i+1+end]})
			expectKey = false
			i += end + 2
		default:
			if !expectKey {
				return nil, types.ErrInvalidPath.With(nil, "malformed path %q: missing '.' at %d", path, i)
			}
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				j++
			}
			steps = append(steps, pathStep{key: path[i:j]})
			expectKey = false
			i = j
		}
	}
	if expectKey && len(steps) > 0 {
		return nil, types.ErrInvalidPath.With(nil, "malformed path %q: trailing '.'", path)
	}
	return steps, nil
}

func formatPath(steps []pathStep) string {
	var sb strings.Builder
	for i, st := range steps {
		if st.isIdx {
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(st.index))
			sb.WriteByte(']')
			continue
		}
		if i > 0 {
			sb.WriteByte('.')
		}
		if strings.ContainsAny(st.key, ".[\"") || st.key == "" {
			sb.WriteByte('"')
			sb.WriteString(st.key)
			sb.WriteByte('"')
		} else {
			sb.WriteString(st.key)
		}
	}
	return sb.String()
}

func pathPrefix(steps []pathStep, n int) string {
	return formatPath(steps[:n])
}
