// Package mmfile gives read-only access to whole input files, memory-mapped
// where the platform supports it.
package mmfile

// Mapping is a read-only view of a file's contents. The slice returned by
// Bytes must not be used after Close.
type Mapping struct {
	data  []byte
	unmap func([]byte) error
}

// Bytes returns the mapped contents.
func (m *Mapping) Bytes() []byte { return m.data }

// Len returns the file size in bytes.
func (m *Mapping) Len() int { return len(m.data) }

// Close releases the mapping. Calling it more than once is a no-op.
func (m *Mapping) Close() error {
	if m == nil || m.unmap == nil {
		return nil
	}
	data, unmap := m.data, m.unmap
	m.data, m.unmap = nil, nil
	return unmap(data)
}
