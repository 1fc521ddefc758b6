package nbtfile

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/mmfile"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/compress"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Info summarizes an NBT file.
type Info struct {
	Path        string
	Compression compress.Kind
	FileSize    int64 // bytes on disk
	DataSize    int64 // bytes after decompression
	RootName    string
	RootType    types.TagID
	Stats       Stats
}

// Stats counts the values of a tree.
type Stats struct {
	Nodes    int                 // every value, the root included
	MaxDepth int                 // deepest container nesting; the root container is 1
	ByType   map[types.TagID]int // values per type
}

// Stat decodes the file at path and summarizes it.
func Stat(path string, opts *Options) (Info, error) {
	o := opts.orDefault()
	m, err := mmfile.Map(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer m.Close()

	t, kind, size, err := decode(m.Bytes(), o.Decode)
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	name, _ := t.TagName()
	return Info{
		Path:        path,
		Compression: kind,
		FileSize:    int64(m.Len()),
		DataSize:    size,
		RootName:    name,
		RootType:    t.ID(),
		Stats:       Collect(t.Value),
	}, nil
}

// Collect walks v and counts its values. The tree must be acyclic.
func Collect(v nbt.Value) Stats {
	s := Stats{ByType: make(map[types.TagID]int)}
	collect(&s, v, 0)
	return s
}

func collect(s *Stats, v nbt.Value, depth int) {
	if v == nil {
		return
	}
	id := v.ID()
	if id == types.TagEnd {
		return
	}
	s.Nodes++
	s.ByType[id]++
	if !id.IsContainer() {
		return
	}
	depth++
	s.MaxDepth = max(s.MaxDepth, depth)
	switch x := v.(type) {
	case *nbt.List:
		x.Range(func(_ int, e nbt.Value) bool {
			collect(s, e, depth)
			return true
		})
	case *nbt.Compound:
		x.Range(func(_ string, e nbt.Value) bool {
			collect(s, e, depth)
			return true
		})
	}
}
