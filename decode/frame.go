package decode

import "github.com/tagwire/tagwire/value"

// frameKind identifies which container a frame is building.
type frameKind uint8

const (
	frameList frameKind = iota
	frameTuple
	frameSet
	frameMap
)

// frame tracks one in-progress container: its kind, remaining slot count,
// next write position, and (for maps) the pending key.
//
// A tuple is staged as a mutable value.Tuple and is already in its final
// representation when finalized, since Go has no separate mutable sequence
// type to convert from — finalize exists as a named step to keep the frame
// state machine symmetric with a host language that does need the
// conversion (see the decode algorithm's close-frame step).
type frame struct {
	kind frameKind

	remaining int
	next      int

	list     value.List
	tupleBuf value.Tuple
	set      *value.Set
	obj      *value.Map

	pendingKey    string
	hasPendingKey bool
}

func (f *frame) reset() {
	f.kind = 0
	f.remaining = 0
	f.next = 0
	f.list = nil
	f.tupleBuf = nil
	f.set = nil
	f.obj = nil
	f.pendingKey = ""
	f.hasPendingKey = false
}

// finalize converts a closed frame into its immutable value.
func finalize(f *frame) value.Value {
	switch f.kind {
	case frameList:
		return f.list
	case frameTuple:
		return f.tupleBuf
	case frameSet:
		return f.set
	case frameMap:
		return f.obj
	default:
		return nil
	}
}

// install assigns v into f's next slot per the container's installation rule.
func install(f *frame, v value.Value) {
	switch f.kind {
	case frameList:
		f.list[f.next] = v
		f.next++
		f.remaining--
	case frameTuple:
		f.tupleBuf[f.next] = v
		f.next++
		f.remaining--
	case frameSet:
		f.set.Add(v)
		f.remaining--
	case frameMap:
		f.obj.Set(f.pendingKey, v)
		f.pendingKey = ""
		f.hasPendingKey = false
		f.remaining--
	}
}
