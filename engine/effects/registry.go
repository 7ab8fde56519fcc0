package effects

import (
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/uniform"
)

// Block pairs a registered uniform struct with the WGSL source that declares
// its shader-side mirror.
type Block struct {
	// Name is the WGSL struct name of the block.
	Name string

	// Source is the embedded WGSL source declaring the block.
	Source string

	prototype any
}

// Describe returns the layout descriptor of the block's host-side struct.
//
// Returns:
//   - *uniform.Descriptor: the cached layout descriptor
//   - error: a definition error if the struct's tags are malformed
func (b Block) Describe() (*uniform.Descriptor, error) {
	return uniform.Describe(b.prototype)
}

// Blocks returns every uniform block the engine serializes, each paired with
// its canonical WGSL source. The shape check tooling iterates this list to
// verify the embedded mirrors, and again for any external shader files that
// redeclare a block.
//
// Returns:
//   - []Block: all registered effect blocks
func Blocks() []Block {
	return []Block{
		{Name: "FrameUniforms", Source: FrameUniformsSource, prototype: FrameUniforms{}},
		{Name: "CoronaUniforms", Source: CoronaUniformsSource, prototype: CoronaUniforms{}},
		{Name: "ShockwaveUniforms", Source: ShockwaveUniformsSource, prototype: ShockwaveUniforms{}},
		{Name: "DecalUniforms", Source: DecalUniformsSource, prototype: DecalUniforms{}},
		{Name: "SmokeUniforms", Source: SmokeUniformsSource, prototype: SmokeUniforms{}},
	}
}
