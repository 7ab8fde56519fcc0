package bind_group_provider

// BufferWrite describes a single staged upload of serialized uniform bytes,
// targeting a specific binding on a BindGroupProvider at a given byte offset.
// Writes are collected per frame and submitted in one batch.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
