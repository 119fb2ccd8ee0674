package renderer

// RenderPassColorAttachment is a color target of a render pass. When multisampling, View is the
// multisample texture and ResolveTarget the drawable; otherwise View is the drawable.
type RenderPassColorAttachment struct {
	View          TextureView
	ResolveTarget TextureView
	ClearValue    Color
	LoadOp        LoadOp
	StoreOp       StoreOp
}

// RenderPassDepthStencilAttachment is the depth target of a render pass.
type RenderPassDepthStencilAttachment struct {
	View            TextureView
	DepthClearValue float32
	DepthLoadOp     LoadOp
	DepthStoreOp    StoreOp
}

// RenderPassDescriptor describes the attachments of a render pass.
type RenderPassDescriptor struct {
	Label                  string
	ColorAttachments       []RenderPassColorAttachment
	DepthStencilAttachment *RenderPassDepthStencilAttachment
}
