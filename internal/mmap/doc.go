// Package mmap maps literal files read-only into memory.
//
// A File is mapped whole and advised for sequential access, since the
// blob store hands it to a splitter that walks it once front to back.
//
//	f, err := mmap.Open("literals.txt")
//	if err != nil { ... }
//	defer f.Close()
//
//	data, err := f.Bytes()
//
// On Unix the mapping uses mmap(2) and madvise(2). On Windows it uses
// CreateFileMapping/MapViewOfFile and the advice is skipped.
//
// Close may race with readers: reads after Close fail with ErrClosed, but
// slices returned by Bytes must not be used once Close was called.
package mmap
