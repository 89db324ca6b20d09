package eval

import (
	"github.com/rowhit/remacs/internal/bridge"
	"github.com/rowhit/remacs/internal/lisp"
)

// Buffer slot fields resolved through the shared slot index table.
// The order fixes the index of each slot in a buffer's locals array.
var bufferSlotFields = []string{
	"name",
	"major-mode",
	"read-only",
	"modified",
}

func (rt *Runtime) registerBufferSlots() {
	for i, field := range bufferSlotFields {
		rt.registerSlot(field, i)
	}
}

// Buffer is a minimal text-holding object with per-buffer local
// slots. Slot positions come from the shared table, never hardcoded
// at call sites.
type Buffer struct {
	Name   string
	locals []lisp.Object
}

func (b *Buffer) Type() lisp.ObjectType { return lisp.BUFFER_OBJ }
func (b *Buffer) Inspect() string       { return "#<buffer " + b.Name + ">" }
func (b *Buffer) Hash() uint32          { return 0 }

// Local reads one per-buffer slot by index.
func (b *Buffer) Local(idx int) lisp.Object {
	if idx < 0 || idx >= len(b.locals) {
		return lisp.Nil
	}
	return b.locals[idx]
}

// SetLocal writes one per-buffer slot by index.
func (b *Buffer) SetLocal(idx int, val lisp.Object) {
	if idx >= 0 && idx < len(b.locals) {
		b.locals[idx] = val
	}
}

func (rt *Runtime) makeBuffer(name string) *Buffer {
	b := &Buffer{Name: name, locals: make([]lisp.Object, len(bufferSlotFields))}
	for i := range b.locals {
		b.locals[i] = lisp.Nil
	}
	b.SetLocal(bridge.SlotIndex(rt, "name"), rt.MakeString([]byte(name)))
	rt.buffers = append(rt.buffers, b)
	return b
}

// GetBufferCreate returns the live buffer with this name, creating it
// if missing.
func (rt *Runtime) GetBufferCreate(name string) *Buffer {
	for _, b := range rt.buffers {
		if b.Name == name {
			return b
		}
	}
	return rt.makeBuffer(name)
}

// CurrentBuffer never returns nil after New.
func (rt *Runtime) CurrentBuffer() *Buffer { return rt.current }

// SetCurrentBuffer switches the current buffer.
func (rt *Runtime) SetCurrentBuffer(b *Buffer) { rt.current = b }
