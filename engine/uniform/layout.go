// Package uniform turns declaratively-tagged Go structs into exact, padded
// byte streams for GPU uniform buffer upload. A struct declares the shape of
// its GPU mirror once, through `uniform:"..."` field tags; the package
// derives the byte layout (std140-style: vec4s and array elements on 16-byte
// boundaries, mat4s as four consecutive column vectors), computes the exact
// buffer size, and serializes instances in declaration order with no
// per-effect offset arithmetic.
//
// Four declaration kinds cover the entire schema language:
//
//	Scalars   `uniform:"scalars"` or `uniform:"scalars,pad"`
//	Vec4      `uniform:"vec4"`
//	Vec4Array `uniform:"vec4array,count=N"`
//	Matrix4   `uniform:"mat4"`
//
// There is no nested-struct kind: an exported, untagged struct field whose
// type carries uniform tags is inlined as if its fields were declared
// directly on the outer struct.
package uniform

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies one of the four layout entry categories. Kind selection
// alone determines an entry's byte size and alignment behavior.
type Kind int

const (
	// KindScalars is a group of raw floats, optionally padded to the next
	// 16-byte boundary.
	KindScalars Kind = iota

	// KindVec4 is exactly four floats sourced from a common.FourVector
	// implementor or a raw [4]float32. Always starts on a 16-byte boundary.
	KindVec4

	// KindVec4Array is a fixed count of consecutive vec4 slots. Slots beyond
	// the populated length are zero-filled so the entry always occupies
	// exactly count vectors in the output.
	KindVec4Array

	// KindMatrix4 is a 4x4 matrix written as four consecutive 16-byte-aligned
	// column vectors.
	KindMatrix4
)

// String returns the tag keyword for the kind.
//
// Returns:
//   - string: the tag keyword ("scalars", "vec4", "vec4array", or "mat4")
func (k Kind) String() string {
	switch k {
	case KindScalars:
		return "scalars"
	case KindVec4:
		return "vec4"
	case KindVec4Array:
		return "vec4array"
	case KindMatrix4:
		return "mat4"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// tagSpec is the parsed form of a `uniform:"..."` field tag.
type tagSpec struct {
	kind  Kind
	pad   bool // scalars only
	count int  // vec4array only
}

// parseTag parses the value of a `uniform` field tag into a tagSpec.
// The first comma-separated element selects the kind; remaining elements are
// kind-specific options ("pad" for scalars, "count=N" for vec4array).
//
// Parameters:
//   - tag: the raw tag value, e.g. "vec4array,count=8"
//
// Returns:
//   - tagSpec: the parsed declaration
//   - error: a description of the malformed tag, or nil
func parseTag(tag string) (tagSpec, error) {
	parts := strings.Split(tag, ",")
	var spec tagSpec

	switch parts[0] {
	case "scalars":
		spec.kind = KindScalars
	case "vec4":
		spec.kind = KindVec4
	case "vec4array":
		spec.kind = KindVec4Array
	case "mat4":
		spec.kind = KindMatrix4
	default:
		return tagSpec{}, fmt.Errorf("unknown kind %q", parts[0])
	}

	for _, opt := range parts[1:] {
		switch {
		case opt == "pad":
			if spec.kind != KindScalars {
				return tagSpec{}, fmt.Errorf("option %q is only valid for scalars", opt)
			}
			spec.pad = true
		case strings.HasPrefix(opt, "count="):
			if spec.kind != KindVec4Array {
				return tagSpec{}, fmt.Errorf("option %q is only valid for vec4array", opt)
			}
			n, err := strconv.Atoi(opt[len("count="):])
			if err != nil || n <= 0 {
				return tagSpec{}, fmt.Errorf("invalid count in %q", opt)
			}
			spec.count = n
		default:
			return tagSpec{}, fmt.Errorf("unknown option %q", opt)
		}
	}

	if spec.kind == KindVec4Array && spec.count == 0 {
		return tagSpec{}, fmt.Errorf("vec4array requires a count option")
	}

	return spec, nil
}

// roundUp16 rounds n up to the next multiple of 16.
func roundUp16(n int) int {
	return (n + 15) &^ 15
}
