// Package bind_group_provider holds the GPU buffer bindings for one uniform
// block owner. A provider maps binding indices to buffers and owns their
// lifetime; the renderer creates buffers through it and releases them through
// it.
package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

type bindGroupProvider struct {
	label   string
	buffers map[int]*wgpu.Buffer
}

// BindGroupProvider is the interface for an owner of GPU buffer bindings.
//
// Providers are handed to the renderer, which creates uniform buffers on
// them and targets them with batched writes. A provider releases every
// buffer it owns when Release is called.
type BindGroupProvider interface {
	// Label returns the human-readable label for this provider, used in GPU
	// object labels and diagnostics.
	//
	// Returns:
	//   - string: the provider label
	Label() string

	// Buffer returns the buffer registered under the given binding index.
	//
	// Parameters:
	//   - binding: the binding index to look up
	//
	// Returns:
	//   - *wgpu.Buffer: the registered buffer, or nil if none
	Buffer(binding int) *wgpu.Buffer

	// Buffers returns the full binding-to-buffer map.
	//
	// Returns:
	//   - map[int]*wgpu.Buffer: all registered buffers keyed by binding
	Buffers() map[int]*wgpu.Buffer

	// SetBuffer registers a buffer under the given binding index. Any buffer
	// already registered under that binding is released first so GPU memory
	// is never leaked by re-registration.
	//
	// Parameters:
	//   - binding: the binding index for this buffer
	//   - buf: the buffer to register
	SetBuffer(binding int, buf *wgpu.Buffer)

	// Release frees every buffer owned by this provider. The provider can be
	// reused afterwards; new buffers are created on next use.
	Release()
}

var _ BindGroupProvider = &bindGroupProvider{}

// NewBindGroupProvider creates a BindGroupProvider with the given label and
// applies the provided options.
//
// Parameters:
//   - label: the human-readable label for this provider
//   - options: functional options applied during construction
//
// Returns:
//   - BindGroupProvider: the constructed provider
func NewBindGroupProvider(label string, options ...BindGroupProviderOption) BindGroupProvider {
	p := &bindGroupProvider{
		label:   label,
		buffers: make(map[int]*wgpu.Buffer),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *bindGroupProvider) Label() string {
	return p.label
}

func (p *bindGroupProvider) Buffer(binding int) *wgpu.Buffer {
	return p.buffers[binding]
}

func (p *bindGroupProvider) Buffers() map[int]*wgpu.Buffer {
	return p.buffers
}

func (p *bindGroupProvider) SetBuffer(binding int, buf *wgpu.Buffer) {
	if old, ok := p.buffers[binding]; ok && old != nil {
		old.Release()
	}
	if p.buffers == nil {
		p.buffers = make(map[int]*wgpu.Buffer)
	}
	p.buffers[binding] = buf
}

func (p *bindGroupProvider) Release() {
	for i, buf := range p.buffers {
		if buf != nil {
			buf.Release()
			delete(p.buffers, i)
		}
	}
}
