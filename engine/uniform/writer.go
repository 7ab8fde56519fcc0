package uniform

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/logger"
)

// truncationSeen tracks which vec4array components have already been reported
// for carrying more elements than their declared count, so the advisory log
// fires once per component rather than once per frame.
var truncationSeen sync.Map // string -> struct{}

// Marshal serializes a fully-populated struct value into a fresh byte buffer
// of exactly SizeOf(v) bytes, ready for GPU uniform upload. The write is
// all-or-nothing: on error no buffer is returned and nothing external is
// touched, so a failed effect can simply skip its draw for the frame.
//
// Parameters:
//   - v: the struct value or pointer to serialize
//
// Returns:
//   - []byte: the serialized bytes, exactly the descriptor's computed size
//   - error: a *DefinitionError for invalid declarations, or a
//     *ConsistencyError if the engine emitted a size that disagrees with the
//     descriptor (an engine bug, never reachable from caller input)
func Marshal(v any) ([]byte, error) {
	desc, err := Describe(v)
	if err != nil {
		return nil, err
	}
	dst := NewBuffer(desc.ByteSize)
	if err := write(dst, desc, v); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

// Write serializes a struct value onto the end of an existing destination
// buffer, advancing its cursor by exactly the struct's computed size. If an
// error is returned the buffer may hold a partial write and must be
// discarded; callers needing per-struct isolation use Marshal.
//
// Parameters:
//   - dst: the destination buffer to append to
//   - v: the struct value or pointer to serialize
//
// Returns:
//   - error: a *DefinitionError or *ConsistencyError, or nil
func Write(dst *Buffer, v any) error {
	desc, err := Describe(v)
	if err != nil {
		return err
	}
	return write(dst, desc, v)
}

// write walks the descriptor's entries in order and appends the value's
// floats, verifying the emitted byte count against the descriptor.
func write(dst *Buffer, desc *Descriptor, v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("uniform: %s: cannot write nil value", desc.TypeName)
		}
		rv = rv.Elem()
	}

	start := dst.Len()
	for i := range desc.Entries {
		if err := writeEntry(dst, desc, &desc.Entries[i], rv); err != nil {
			return err
		}
	}

	if emitted := dst.Len() - start; emitted != desc.ByteSize {
		return &ConsistencyError{Type: desc.TypeName, Want: desc.ByteSize, Got: emitted}
	}
	return nil
}

// writeEntry appends one layout entry's data to the destination buffer.
func writeEntry(dst *Buffer, desc *Descriptor, entry *Entry, rv reflect.Value) error {
	fv := rv.FieldByIndex(entry.index)

	// Regression guard: the descriptor's build-time alignment checks make a
	// misaligned cursor unreachable, but a silent drift here would shift
	// every later field.
	if entry.Kind != KindScalars && !dst.Aligned16() {
		return &ConsistencyError{Type: desc.TypeName, Want: roundUp16(dst.Len()), Got: dst.Len()}
	}

	switch entry.Kind {
	case KindScalars:
		if fv.Kind() == reflect.Float32 {
			dst.PutFloat32(float32(fv.Float()))
		} else {
			for i := 0; i < fv.Len(); i++ {
				dst.PutFloat32(float32(fv.Index(i).Float()))
			}
		}
		if entry.Pad {
			dst.PadTo16()
		}

	case KindVec4:
		return putVec4(dst, desc, entry, fv)

	case KindVec4Array:
		populated := fv.Len()
		if populated > entry.Count {
			noteTruncation(desc, entry, populated)
			populated = entry.Count
		}
		for i := 0; i < populated; i++ {
			if err := putVec4(dst, desc, entry, fv.Index(i)); err != nil {
				return err
			}
		}
		// Unpopulated slots are zero-filled so the entry always occupies
		// exactly count vectors; consumers treat an all-zero slot as an
		// inactive source, never as undefined memory.
		dst.PutZeroFloats(4 * (entry.Count - populated))

	case KindMatrix4:
		// Column-major storage means the four columns are the four
		// consecutive 4-float runs of the backing array.
		for i := 0; i < 16; i++ {
			dst.PutFloat32(float32(fv.Index(i).Float()))
		}
	}

	return nil
}

// putVec4 appends the four components of a single vec4-shaped value.
func putVec4(dst *Buffer, desc *Descriptor, entry *Entry, fv reflect.Value) error {
	if entry.source == vec4FromArray {
		for i := 0; i < 4; i++ {
			dst.PutFloat32(float32(fv.Index(i).Float()))
		}
		return nil
	}

	var vec common.FourVector
	if v, ok := fv.Interface().(common.FourVector); ok {
		vec = v
	} else if fv.CanAddr() {
		if v, ok := fv.Addr().Interface().(common.FourVector); ok {
			vec = v
		}
	}
	if vec == nil {
		return fmt.Errorf("uniform: %s.%s: value does not satisfy the four-vector contract", desc.TypeName, entry.Name)
	}

	dst.PutFloat32(vec.First())
	dst.PutFloat32(vec.Second())
	dst.PutFloat32(vec.Third())
	dst.PutFloat32(vec.Fourth())
	return nil
}

// noteTruncation logs, once per component, that a vec4array was populated
// beyond its declared count. Excess elements are silently truncated to
// preserve the declared wire size.
func noteTruncation(desc *Descriptor, entry *Entry, populated int) {
	key := desc.TypeName + "." + entry.Name
	if _, loaded := truncationSeen.LoadOrStore(key, struct{}{}); loaded {
		return
	}
	if logger.Log != nil {
		logger.Debug("vec4array populated beyond declared count, truncating",
			zap.String("component", key),
			zap.Int("declared", entry.Count),
			zap.Int("populated", populated),
		)
	}
}
