// Package shader inspects WGSL shader source text for the uniform struct
// blocks that mirror the host-side effect structs. It backs the advisory
// shape consistency check: the byte layout of a serialized struct is correct
// by construction, so this package exists only to catch human drift between a
// Go struct and its hand-written shader-side mirror.
package shader

import (
	"regexp"
	"strings"
)

// parsedStruct is a struct block extracted from WGSL source.
type parsedStruct struct {
	name   string
	fields []parsedField
}

// parsedField is a single field of a parsed WGSL struct.
type parsedField struct {
	name      string
	typeName  string
	isBuiltin bool
}

var (
	// structBlockRegex matches struct declarations and captures the name and body
	structBlockRegex = regexp.MustCompile(`struct\s+(\w+)\s*\{([^}]*)\}`)

	// builtinRegex matches @builtin(...) attributes
	builtinRegex = regexp.MustCompile(`@builtin\(\w+\)`)

	// fieldRegex matches a struct field line: optional attributes, name, colon, type.
	// The type capture (.+) is greedy to handle parameterized types like array<T, N>.
	fieldRegex = regexp.MustCompile(`(?:(?:@\w+\([^)]*\)\s*)*)*\s*(\w+)\s*:\s*(.+)`)

	// uniformDeclRegex captures the variable name and type of var<uniform>
	// declarations like: @group(0) @binding(0) var<uniform> corona: CoronaParams;
	uniformDeclRegex = regexp.MustCompile(`@group\(\d+\)\s*@binding\(\d+\)\s*var<uniform>\s+(\w+)\s*:\s*([^;]+?)\s*;`)
)

// parseStructBlocks finds all struct { ... } blocks in the cleaned WGSL
// source and parses their fields.
//
// Parameters:
//   - source: WGSL source with comments already stripped
//
// Returns:
//   - []parsedStruct: all struct blocks found in the source
func parseStructBlocks(source string) []parsedStruct {
	matches := structBlockRegex.FindAllStringSubmatch(source, -1)
	structs := make([]parsedStruct, 0, len(matches))

	for _, match := range matches {
		structs = append(structs, parsedStruct{
			name:   match[1],
			fields: parseStructFields(match[2]),
		})
	}

	return structs
}

// parseStructFields parses the body of a struct block into individual fields.
// Fields carrying @builtin attributes are flagged so layout computation can
// skip them.
//
// Parameters:
//   - body: the content between { and } of a WGSL struct declaration
//
// Returns:
//   - []parsedField: all fields found in the struct body
func parseStructFields(body string) []parsedField {
	lines := splitAtTopLevelCommas(body)
	fields := make([]parsedField, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var field parsedField
		if builtinRegex.MatchString(line) {
			field.isBuiltin = true
		}

		fm := fieldRegex.FindStringSubmatch(line)
		if fm == nil {
			continue
		}
		field.name = fm[1]
		field.typeName = strings.TrimSpace(fm[2])

		fields = append(fields, field)
	}

	return fields
}

// DeclaredBlocks returns the names of all struct blocks declared in the
// given WGSL source. Callers scanning many shader files use this to decide
// which registered blocks a file redeclares before running a full check.
//
// Parameters:
//   - source: raw WGSL source text
//
// Returns:
//   - map[string]bool: the set of declared struct names
func DeclaredBlocks(source string) map[string]bool {
	names := make(map[string]bool)
	for _, ps := range parseStructBlocks(stripComments(source)) {
		names[ps.name] = true
	}
	return names
}

// uniformBlockNames returns the set of struct type names bound as
// var<uniform> somewhere in the cleaned source.
func uniformBlockNames(source string) map[string]bool {
	bound := make(map[string]bool)
	for _, match := range uniformDeclRegex.FindAllStringSubmatch(source, -1) {
		bound[strings.TrimSpace(match[2])] = true
	}
	return bound
}

// splitAtTopLevelCommas splits a string at commas that are not nested inside
// angle brackets, so WGSL types like array<vec4<f32>, 6> survive intact.
//
// Parameters:
//   - s: the string to split (typically the body of a WGSL struct)
//
// Returns:
//   - []string: substrings between top-level commas
func splitAtTopLevelCommas(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// stripComments removes both single-line (//) and block (/* */) comments from
// WGSL source. Block comments may be nested per the WGSL specification.
//
// Parameters:
//   - source: raw WGSL source string
//
// Returns:
//   - string: source with all comments removed
func stripComments(source string) string {
	return stripLineComments(stripBlockComments(source))
}

// stripLineComments removes single-line // comments.
func stripLineComments(source string) string {
	var sb strings.Builder
	for line := range strings.SplitSeq(source, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// stripBlockComments removes block comments (/* ... */), handling nesting
// per the WGSL specification.
func stripBlockComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))
	depth := 0
	i := 0
	for i < len(source) {
		if i+1 < len(source) {
			if source[i] == '/' && source[i+1] == '*' {
				depth++
				i += 2
				continue
			}
			if source[i] == '*' && source[i+1] == '/' {
				if depth > 0 {
					depth--
				}
				i += 2
				continue
			}
		}
		if depth == 0 {
			sb.WriteByte(source[i])
		}
		i++
	}
	return sb.String()
}
