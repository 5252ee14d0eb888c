package asset

import "io"

// Rope is an immutable sequence of byte segments.
type Rope struct {
	segments [][]byte
	size     int
}

// RopeFrom creates a rope over b. The slice is retained, not copied.
func RopeFrom(b []byte) Rope {
	if len(b) == 0 {
		return Rope{}
	}
	return Rope{segments: [][]byte{b}, size: len(b)}
}

// Len returns the total number of bytes.
func (r Rope) Len() int {
	return r.size
}

// Bytes flattens the rope into a fresh slice.
func (r Rope) Bytes() []byte {
	out := make([]byte, 0, r.size)
	for _, s := range r.segments {
		out = append(out, s...)
	}
	return out
}

// String flattens the rope into a string.
func (r Rope) String() string {
	return string(r.Bytes())
}

// WriteTo writes every segment in order.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, s := range r.segments {
		m, err := w.Write(s)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// RopeBuilder accumulates segments for a new Rope.
type RopeBuilder struct {
	segments [][]byte
	size     int
}

// NewRopeBuilder starts a builder seeded with b.
func NewRopeBuilder(b []byte) *RopeBuilder {
	rb := &RopeBuilder{}
	rb.Push(b)
	return rb
}

// Push appends raw bytes.
func (rb *RopeBuilder) Push(b []byte) *RopeBuilder {
	if len(b) > 0 {
		rb.segments = append(rb.segments, b)
		rb.size += len(b)
	}
	return rb
}

// Concat appends every segment of r without flattening it.
func (rb *RopeBuilder) Concat(r Rope) *RopeBuilder {
	rb.segments = append(rb.segments, r.segments...)
	rb.size += r.size
	return rb
}

// Build returns the accumulated rope.
func (rb *RopeBuilder) Build() Rope {
	segs := make([][]byte, len(rb.segments))
	copy(segs, rb.segments)
	return Rope{segments: segs, size: rb.size}
}
