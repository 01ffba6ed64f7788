package ui

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"runtime"
)

// ID identifies a widget. IDs are stable across frames for the same widget.
type ID uint64

// NewID derives an ID from a label.
func NewID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// IDFromCaller derives an ID from the file and line that called it, so a
// widget declared in code gets the same ID every frame without a label.
// Two calls on the same line share an ID; use Child or Index to tell them
// apart.
func IDFromCaller() ID {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		return NewID("unknown caller")
	}
	return NewID(fmt.Sprintf("%s:%d", file, line))
}

// Child derives the ID of a widget nested under id.
func (id ID) Child(label string) ID {
	h := fnv.New64a()
	var parent [8]byte
	binary.LittleEndian.PutUint64(parent[:], uint64(id))
	h.Write(parent[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// Index derives the ID of the n-th item of a list owned by id.
func (id ID) Index(n int) ID {
	return id.Child(fmt.Sprintf("#%d", n))
}
