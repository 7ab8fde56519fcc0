package renderer

import (
	"runtime"
	"sync"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cyberpunk042/the-virus-block-mc-sub004/engine/renderer/bind_group_provider"
)

type wgpuRendererBackendImpl struct {
	mu     *sync.Mutex
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
}

type wgpuRendererBackend interface {
	// Device returns the WebGPU device owned by the backend.
	//
	// Returns:
	//   - *wgpu.Device: the active device
	Device() *wgpu.Device

	// Queue returns the WebGPU queue used for buffer uploads.
	//
	// Returns:
	//   - *wgpu.Queue: the active queue
	Queue() *wgpu.Queue

	// Instance returns the WebGPU instance owned by the backend.
	//
	// Returns:
	//   - *wgpu.Instance: the active instance
	Instance() *wgpu.Instance

	// Adapter returns the adapter the device was requested from.
	//
	// Returns:
	//   - *wgpu.Adapter: the active adapter
	Adapter() *wgpu.Adapter

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

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	// Writes targeting a binding with no registered buffer are skipped.
	//
	// Parameters:
	//   - writes: the staged writes to submit
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// Release frees the device, adapter, and instance owned by the backend.
	// The backend must not be used afterwards.
	Release()
}

var _ RendererBackend = &wgpuRendererBackendImpl{}

func newWGPURendererBackend(forceFallbackAdapter bool) wgpuRendererBackend {
	runtime.LockOSThread()
	w := &wgpuRendererBackendImpl{
		mu:       &sync.Mutex{},
		instance: wgpu.CreateInstance(nil),
	}

	// Headless: no surface, the backend only owns buffers and the upload queue.
	a, err := w.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: forceFallbackAdapter,
	})
	if err != nil {
		panic(err)
	}
	w.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Upload Device",
	})
	if err != nil {
		panic(err)
	}
	w.device = d
	w.queue = d.GetQueue()

	return w
}

func (b *wgpuRendererBackendImpl) InitUniformBuffer(provider bind_group_provider.BindGroupProvider, binding int, size uint64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	buf, err := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: provider.Label() + " Uniform Buffer",
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}
	provider.SetBuffer(binding, buf)

	return nil
}

func (b *wgpuRendererBackendImpl) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, w := range writes {
		buf := w.Provider.Buffer(w.Binding)
		if buf == nil {
			continue
		}
		b.queue.WriteBuffer(buf, w.Offset, w.Data)
	}
}

func (b *wgpuRendererBackendImpl) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device != nil {
		b.device.Release()
		b.device = nil
		b.queue = nil
	}
	if b.adapter != nil {
		b.adapter.Release()
		b.adapter = nil
	}
	if b.instance != nil {
		b.instance.Release()
		b.instance = nil
	}
}

func (b *wgpuRendererBackendImpl) Device() *wgpu.Device {
	return b.device
}

func (b *wgpuRendererBackendImpl) Queue() *wgpu.Queue {
	return b.queue
}

func (b *wgpuRendererBackendImpl) Instance() *wgpu.Instance {
	return b.instance
}

func (b *wgpuRendererBackendImpl) Adapter() *wgpu.Adapter {
	return b.adapter
}
