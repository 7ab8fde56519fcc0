// Package renderer owns the GPU side of the uniform pipeline: a headless
// WebGPU device, uniform buffer creation, and batched queue writes. Effect
// passes and windowing live elsewhere; this package only moves serialized
// bytes into GPU buffers.
package renderer

import (
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/renderer/bind_group_provider"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/uniform"

	"github.com/cogentcore/webgpu/wgpu"
)

type renderer struct {
	backend              RendererBackend
	forceFallbackAdapter bool
}

// Renderer is the interface for uploading serialized uniform blocks to the GPU.
type Renderer interface {
	// InitUniformBuffer creates a uniform buffer of the given size and
	// registers it on the provider under the given binding. Any buffer
	// already registered under that binding is released first.
	//
	// Parameters:
	//   - provider: the bind group provider that will own the buffer
	//   - binding: the binding index the buffer is registered under
	//   - size: the buffer size in bytes
	//
	// Returns:
	//   - error: buffer creation error, if any
	InitUniformBuffer(provider bind_group_provider.BindGroupProvider, binding int, size uint64) error

	// WriteBuffers writes all staged buffer writes to the GPU queue in one
	// batch. Writes targeting a binding with no registered buffer are
	// skipped.
	//
	// Parameters:
	//   - writes: the staged writes to submit
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// UploadBlock serializes a tagged uniform struct and writes the bytes to
	// the provider's buffer at the given binding, creating the buffer on
	// first use. This is the per-frame path: populate the struct, call
	// UploadBlock, bind, draw.
	//
	// Parameters:
	//   - provider: the bind group provider that owns the target buffer
	//   - binding: the binding index of the target buffer
	//   - v: a struct (or pointer to struct) with uniform layout tags
	//
	// Returns:
	//   - error: serialization or buffer creation error, if any
	UploadBlock(provider bind_group_provider.BindGroupProvider, binding int, v any) error

	// Device returns the WebGPU device owned by the renderer's backend.
	//
	// Returns:
	//   - *wgpu.Device: the active device
	Device() *wgpu.Device

	// Queue returns the WebGPU queue used for buffer uploads.
	//
	// Returns:
	//   - *wgpu.Queue: the active queue
	Queue() *wgpu.Queue

	// Release frees the GPU resources owned by the renderer. The renderer
	// must not be used afterwards. Buffers owned by providers are released
	// by the providers themselves.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer backed by the requested GPU backend and
// applies the provided options. Panics if the backend cannot acquire an
// adapter or device, since nothing downstream can work without one.
//
// Parameters:
//   - backendType: the GPU backend to use (currently only BackendTypeWGPU)
//   - options: functional options applied before backend creation
//
// Returns:
//   - Renderer: the constructed renderer
func NewRenderer(backendType RendererBackendType, options ...RendererBuilderOption) Renderer {
	r := &renderer{}
	for _, opt := range options {
		opt(r)
	}

	switch backendType {
	case BackendTypeWGPU:
		r.backend = newWGPURendererBackend(r.forceFallbackAdapter)
	default:
		panic("unsupported renderer backend type")
	}

	return r
}

func (r *renderer) InitUniformBuffer(provider bind_group_provider.BindGroupProvider, binding int, size uint64) error {
	return r.backend.InitUniformBuffer(provider, binding, size)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) UploadBlock(provider bind_group_provider.BindGroupProvider, binding int, v any) error {
	data, err := uniform.Marshal(v)
	if err != nil {
		return err
	}

	if provider.Buffer(binding) == nil {
		if err := r.backend.InitUniformBuffer(provider, binding, uint64(len(data))); err != nil {
			return err
		}
	}

	r.backend.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: provider,
		Binding:  binding,
		Offset:   0,
		Data:     data,
	}})

	return nil
}

func (r *renderer) Device() *wgpu.Device {
	return r.backend.Device()
}

func (r *renderer) Queue() *wgpu.Queue {
	return r.backend.Queue()
}

func (r *renderer) Release() {
	r.backend.Release()
}
