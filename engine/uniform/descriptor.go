package uniform

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/common"
)

// vec4Source identifies how a vec4-kind component's four floats are obtained
// from its Go value.
type vec4Source int

const (
	// vec4FromContract reads components through the common.FourVector accessors.
	vec4FromContract vec4Source = iota
	// vec4FromArray reads components directly from a [4]float32 value.
	vec4FromArray
)

// Entry is one element of a Descriptor: a single declared component with its
// resolved kind, byte size, and offset within the serialized struct.
type Entry struct {
	// Name is the dotted field path of the component (inlined nested struct
	// fields keep their full path, e.g. "Common.Tint").
	Name string

	// Kind is the component's layout category.
	Kind Kind

	// Count is the declared float count for KindScalars or the declared slot
	// count for KindVec4Array. Zero for other kinds.
	Count int

	// Pad reports whether a KindScalars entry zero-fills up to the next
	// 16-byte boundary.
	Pad bool

	// Offset is the byte offset of the component's first float within the
	// serialized struct.
	Offset int

	// ByteSize is the total serialized size of the component, padding
	// included.
	ByteSize int

	index  []int      // reflect field index path from the root struct
	source vec4Source // component resolution for vec4-shaped kinds
}

// Descriptor is the ordered, sized layout plan derived from a struct type's
// declared components. Descriptors are built once per type, on first use, and
// are immutable afterwards.
type Descriptor struct {
	// TypeName is the name of the described struct type.
	TypeName string

	// Entries lists the layout entries in declaration order. The order is the
	// wire order.
	Entries []Entry

	// ByteSize is the exact total serialized size of the struct in bytes.
	ByteSize int
}

var fourVectorType = reflect.TypeOf((*common.FourVector)(nil)).Elem()

// descriptorCache memoizes built descriptors by reflect.Type. Descriptors are
// pure functions of the type's static shape, so racing constructions are
// idempotent and the first stored value wins.
var descriptorCache sync.Map // reflect.Type -> *cacheEntry

type cacheEntry struct {
	desc *Descriptor
	err  error
}

// Describe returns the Descriptor for the struct type of v, building and
// caching it on first use. v may be a struct value or a pointer to one.
// A declaration that cannot be satisfied by its Go type is a fatal
// *DefinitionError carrying the struct type and component name.
//
// Parameters:
//   - v: a struct value or pointer whose type to describe
//
// Returns:
//   - *Descriptor: the cached layout plan for the type
//   - error: a *DefinitionError if the type's declarations are invalid
func Describe(v any) (*Descriptor, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("uniform: cannot describe nil")
	}
	return DescribeType(t)
}

// DescribeType returns the Descriptor for a struct type, building and caching
// it on first use. Pointer types are dereferenced.
//
// Parameters:
//   - t: the struct type to describe
//
// Returns:
//   - *Descriptor: the cached layout plan for the type
//   - error: a *DefinitionError if the type's declarations are invalid
func DescribeType(t reflect.Type) (*Descriptor, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("uniform: %s is not a struct type", t)
	}

	if cached, ok := descriptorCache.Load(t); ok {
		ce := cached.(*cacheEntry)
		return ce.desc, ce.err
	}

	desc, err := buildDescriptor(t)
	actual, _ := descriptorCache.LoadOrStore(t, &cacheEntry{desc: desc, err: err})
	ce := actual.(*cacheEntry)
	return ce.desc, ce.err
}

// SizeOf returns the exact serialized byte size of the struct type of v,
// suitable for pre-allocating the destination buffer. Under-sizing would be a
// buffer overflow, so the value is the precise sum of all entry sizes with
// their padding.
//
// Parameters:
//   - v: a struct value or pointer whose type to size
//
// Returns:
//   - int: the total serialized size in bytes
//   - error: a *DefinitionError if the type's declarations are invalid
func SizeOf(v any) (int, error) {
	desc, err := Describe(v)
	if err != nil {
		return 0, err
	}
	return desc.ByteSize, nil
}

// buildDescriptor walks the struct type's declared fields in order and
// resolves each into a layout entry.
func buildDescriptor(t reflect.Type) (*Descriptor, error) {
	d := &Descriptor{TypeName: t.Name()}
	if err := appendFields(d, t, t, nil, ""); err != nil {
		return nil, err
	}
	return d, nil
}

// appendFields appends layout entries for every declared field of t, inlining
// untagged nested structs. root is the outermost struct type, used for error
// messages; index and prefix accumulate the reflect path and dotted name of
// the enclosing fields.
func appendFields(d *Descriptor, root, t reflect.Type, index []int, prefix string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			// Unexported fields (blank padding and the like) are not part of
			// the declared shape.
			continue
		}

		name := prefix + f.Name
		fieldIndex := make([]int, 0, len(index)+1)
		fieldIndex = append(fieldIndex, index...)
		fieldIndex = append(fieldIndex, i)

		tag, ok := f.Tag.Lookup("uniform")
		if !ok {
			// Nesting: a struct-typed field whose type declares its own
			// uniform components is inlined as if flattened.
			if f.Type.Kind() == reflect.Struct && hasUniformTags(f.Type) {
				if err := appendFields(d, root, f.Type, fieldIndex, name+"."); err != nil {
					return err
				}
				continue
			}
			return &DefinitionError{Type: root.Name(), Field: name, Reason: "no uniform declaration and not an inlinable struct"}
		}
		if tag == "-" {
			continue
		}

		spec, err := parseTag(tag)
		if err != nil {
			return &DefinitionError{Type: root.Name(), Field: name, Reason: err.Error()}
		}

		entry := Entry{
			Name:   name,
			Kind:   spec.kind,
			Pad:    spec.pad,
			Offset: d.ByteSize,
			index:  fieldIndex,
		}

		switch spec.kind {
		case KindScalars:
			n, scErr := scalarCount(f.Type)
			if scErr != nil {
				return &DefinitionError{Type: root.Name(), Field: name, Reason: scErr.Error()}
			}
			entry.Count = n
			entry.ByteSize = 4 * n
			if spec.pad {
				// Padding is cursor-relative: zero floats are appended until
				// the write cursor reaches the next 16-byte boundary.
				entry.ByteSize = roundUp16(entry.Offset+4*n) - entry.Offset
			}

		case KindVec4:
			src, vErr := resolveVec4Source(f.Type)
			if vErr != nil {
				return &DefinitionError{Type: root.Name(), Field: name, Reason: vErr.Error()}
			}
			entry.source = src
			entry.ByteSize = 16

		case KindVec4Array:
			if f.Type.Kind() != reflect.Slice && f.Type.Kind() != reflect.Array {
				return &DefinitionError{Type: root.Name(), Field: name, Reason: fmt.Sprintf("vec4array requires a slice or array field, got %s", f.Type)}
			}
			src, vErr := resolveVec4Source(f.Type.Elem())
			if vErr != nil {
				return &DefinitionError{Type: root.Name(), Field: name, Reason: fmt.Sprintf("vec4array element: %s", vErr)}
			}
			entry.source = src
			entry.Count = spec.count
			entry.ByteSize = 16 * spec.count

		case KindMatrix4:
			if !isMatrixSource(f.Type) {
				return &DefinitionError{Type: root.Name(), Field: name, Reason: fmt.Sprintf("mat4 requires a [16]float32 column-major field, got %s", f.Type)}
			}
			entry.ByteSize = 64
		}

		// Vec4-shaped entries must land on 16-byte boundaries. The descriptor
		// enforces this at build time so the writer is correct by
		// construction: an unpadded scalar group before a vec4 is a
		// declaration mistake, not a runtime surprise.
		if spec.kind != KindScalars && entry.Offset%16 != 0 {
			return &DefinitionError{
				Type:  root.Name(),
				Field: name,
				Reason: fmt.Sprintf("%s entry starts at offset %d, not a 16-byte boundary (pad the preceding scalars)",
					spec.kind, entry.Offset),
			}
		}

		d.ByteSize += entry.ByteSize
		d.Entries = append(d.Entries, entry)
	}
	return nil
}

// hasUniformTags reports whether any exported field of the struct type
// carries a uniform tag, directly or through nesting.
func hasUniformTags(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if _, ok := f.Tag.Lookup("uniform"); ok {
			return true
		}
		if f.Type.Kind() == reflect.Struct && hasUniformTags(f.Type) {
			return true
		}
	}
	return false
}

// scalarCount resolves the float count of a scalars-kind field type:
// a single float32 or a fixed-size array of float32.
func scalarCount(t reflect.Type) (int, error) {
	switch {
	case t.Kind() == reflect.Float32:
		return 1, nil
	case t.Kind() == reflect.Array && t.Elem().Kind() == reflect.Float32:
		return t.Len(), nil
	default:
		return 0, fmt.Errorf("scalars requires float32 or [N]float32, got %s", t)
	}
}

// resolveVec4Source determines how a vec4-kind component type yields its four
// floats: through the FourVector contract or as a raw [4]float32.
func resolveVec4Source(t reflect.Type) (vec4Source, error) {
	if t.Kind() == reflect.Array && t.Len() == 4 && t.Elem().Kind() == reflect.Float32 {
		return vec4FromArray, nil
	}
	if t.Implements(fourVectorType) || reflect.PointerTo(t).Implements(fourVectorType) {
		return vec4FromContract, nil
	}
	return 0, fmt.Errorf("vec4 requires a common.FourVector implementor or [4]float32, got %s", t)
}

// isMatrixSource reports whether the field type is usable as a 4x4
// column-major matrix: any type whose underlying representation is
// [16]float32 (common.Mat4 included).
func isMatrixSource(t reflect.Type) bool {
	return t.Kind() == reflect.Array && t.Len() == 16 && t.Elem().Kind() == reflect.Float32
}
