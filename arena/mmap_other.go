//go:build !unix

package arena

// Mapped falls back to heap allocation on platforms without anonymous
// memory mappings.
type Mapped struct {
	Heap
}

// NewMapped returns a heap-backed arena when mmap is not available.
func NewMapped() *Mapped {
	return &Mapped{}
}
