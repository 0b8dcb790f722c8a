//go:build unix

package arena

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mapped is an arena backed by anonymous memory mappings. Each block
// occupies its own page-aligned mapping, so releasing a block returns its
// pages to the operating system immediately instead of waiting for the
// garbage collector.
//
// Allocation failure (address space or commit limit exhausted) surfaces as
// an error from Alloc/Realloc rather than terminating the process.
type Mapped struct {
	pageSize int

	// live maps the address of each handed-out block to the full mapping,
	// so Release can unmap exactly what Mmap created even though callers
	// hold a length-truncated view.
	live map[*byte][]byte
}

// NewMapped returns an arena whose blocks are anonymous memory mappings.
func NewMapped() *Mapped {
	return &Mapped{
		pageSize: os.Getpagesize(),
		live:     make(map[*byte][]byte),
	}
}

// Alloc maps a zeroed block of exactly n bytes (page-rounded underneath).
func (m *Mapped) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("arena: negative size %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}
	size := ((n + m.pageSize - 1) / m.pageSize) * m.pageSize
	full, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap %d bytes: %w", size, err)
	}
	m.live[unsafe.SliceData(full)] = full
	return full[:n:n], nil
}

// Realloc maps a new block of n bytes, copies the preserved prefix of b,
// and unmaps b. The returned block never aliases b.
func (m *Mapped) Realloc(b []byte, n int) ([]byte, error) {
	next, err := m.Alloc(n)
	if err != nil {
		return nil, err
	}
	copy(next, b)
	if err := m.Release(b); err != nil {
		// Roll back so the failed call leaks nothing.
		_ = m.Release(next)
		return nil, err
	}
	return next, nil
}

// Release unmaps a block previously returned by Alloc or Realloc.
func (m *Mapped) Release(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	addr := unsafe.SliceData(b)
	full, ok := m.live[addr]
	if !ok {
		return ErrForeign
	}
	delete(m.live, addr)
	if err := unix.Munmap(full); err != nil {
		return fmt.Errorf("arena: munmap: %w", err)
	}
	return nil
}
