package shader

import (
	"go.uber.org/zap"

	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/uniform"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/logger"
)

// CheckResult is the outcome of one shape consistency check between a Go
// uniform struct and the WGSL text that is supposed to mirror it.
type CheckResult struct {
	// BlockName is the WGSL struct block name that was checked.
	BlockName string

	// Found reports whether the shader text declares a struct with that name.
	Found bool

	// Bound reports whether the struct is bound as var<uniform> somewhere in
	// the shader text. A declared-but-unbound block is suspicious but not a
	// size mismatch.
	Bound bool

	// WGSLSize is the byte size of the WGSL block per WGSL layout rules, or 0
	// if the block was not found or could not be resolved.
	WGSLSize int

	// HostSize is the serialized byte size of the Go struct.
	HostSize int
}

// Matches reports whether the check found a declared block of the same byte
// size as the host struct.
//
// Returns:
//   - bool: true if the WGSL block exists and its size matches the host size
func (r CheckResult) Matches() bool {
	return r.Found && r.WGSLSize == r.HostSize
}

// VerifyBlock cross-references a Go uniform struct against WGSL shader text
// that should declare a matching block. This is advisory tooling, not a
// correctness mechanism: the serialized byte layout is correct by
// construction whether or not this check runs. Its only job is to catch human
// drift between the Go struct and its hand-written WGSL mirror, so failures
// are logged and never fatal.
//
// Parameters:
//   - desc: the descriptor of the host-side struct
//   - blockName: the expected WGSL struct name (falls back to the Go type
//     name when empty)
//   - source: the raw WGSL source text to search
//
// Returns:
//   - CheckResult: what was found and how the sizes compare
func VerifyBlock(desc *uniform.Descriptor, blockName, source string) CheckResult {
	if blockName == "" {
		blockName = desc.TypeName
	}
	result := CheckResult{BlockName: blockName, HostSize: desc.ByteSize}

	cleaned := stripComments(source)
	structs := parseStructBlocks(cleaned)
	sizes := computeStructSizes(structs)
	result.Bound = uniformBlockNames(cleaned)[blockName]

	layout, ok := sizes[blockName]
	if !ok {
		logWarn("shader text declares no matching uniform block",
			zap.String("block", blockName),
			zap.Int("host_size", desc.ByteSize),
		)
		return result
	}
	result.Found = true
	result.WGSLSize = int(layout.size)

	if result.WGSLSize != result.HostSize {
		logWarn("uniform block size drift between host struct and shader text",
			zap.String("block", blockName),
			zap.Int("host_size", result.HostSize),
			zap.Int("wgsl_size", result.WGSLSize),
		)
		return result
	}

	if !result.Bound {
		logWarn("uniform block is declared but never bound as var<uniform>",
			zap.String("block", blockName),
		)
	}

	return result
}

// logWarn forwards to the global logger when one has been initialized. The
// check stays usable (returning its result) in processes that never set up
// logging.
func logWarn(msg string, fields ...zap.Field) {
	if logger.Log != nil {
		logger.Warn(msg, fields...)
	}
}
