// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package window

import (
	"errors"
	"image"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init(). Metal, DX12 and GL
	// are used when the program imports them.
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/ggdraw"
	"github.com/gogpu/ggdraw/geom"
	"github.com/gogpu/ggdraw/surface"
)

// GPUName is the name of the wgpu HAL backend.
const GPUName = "gpu"

func init() {
	Register(NewGPUBackend(), PriorityGPU)
}

var (
	errNoHALBackend      = errors.New("window: no HAL backend registered for the requested variants")
	errNoHardwareAdapter = errors.New("window: no hardware adapter")
)

// GPUOption configures NewGPUBackend.
type GPUOption func(*gpuConfig)

type gpuConfig struct {
	variants      []gputypes.Backend
	presentMode   gputypes.PresentMode
	adapterFilter func(gpucontext.AdapterInfo) bool
}

func defaultGPUConfig() gpuConfig {
	return gpuConfig{
		variants: []gputypes.Backend{
			gputypes.BackendVulkan,
			gputypes.BackendMetal,
			gputypes.BackendDX12,
			gputypes.BackendGL,
		},
		presentMode: gputypes.PresentModeFifo,
	}
}

// WithVariants sets the HAL backends to look for, in preference order.
func WithVariants(variants ...gputypes.Backend) GPUOption {
	return func(c *gpuConfig) {
		if len(variants) > 0 {
			c.variants = append([]gputypes.Backend(nil), variants...)
		}
	}
}

// WithPresentMode sets the swapchain present mode. The default is
// PresentModeFifo.
func WithPresentMode(mode gputypes.PresentMode) GPUOption {
	return func(c *gpuConfig) {
		c.presentMode = mode
	}
}

// WithAdapterFilter restricts which adapters may be opened. Software
// adapters are rejected before the filter runs.
func WithAdapterFilter(accept func(gpucontext.AdapterInfo) bool) GPUOption {
	return func(c *gpuConfig) {
		c.adapterFilter = accept
	}
}

// NewGPUBackend returns a backend rendering through the first registered
// wgpu HAL backend among the configured variants.
//
// The backend refuses CPU adapters so that dispatch falls through to the
// software backend instead of emulating a GPU on the CPU.
func NewGPUBackend(opts ...GPUOption) Backend {
	cfg := defaultGPUConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &gpuBackend{cfg: cfg}
}

type gpuBackend struct {
	cfg gpuConfig
}

func (b *gpuBackend) Name() string { return GPUName }

func (b *gpuBackend) NewContext(display DisplayHandle) (ContextBackend, error) {
	raw, err := resolveDisplay(display)
	if err != nil {
		return nil, err
	}

	api, ok := b.halBackend()
	if !ok {
		return nil, ggdraw.FromError(errNoHALBackend)
	}

	// Resources created so far, destroyed in reverse on failure.
	var undo []func()
	fail := func(err error, msg string) (ContextBackend, error) {
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		return nil, ggdraw.FromErrorWithMessage(err, msg)
	}

	instance, err := api.CreateInstance(&hal.InstanceDescriptor{
		Backends: gputypes.Backends(1) << api.Variant(),
	})
	if err != nil {
		return fail(err, "gpu: create instance")
	}
	undo = append(undo, instance.Destroy)

	adapter, ok := b.pickAdapter(instance.EnumerateAdapters(nil))
	if !ok {
		return fail(errNoHardwareAdapter, "gpu: enumerate adapters")
	}
	undo = append(undo, adapter.Adapter.Destroy)

	open, err := adapter.Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		return fail(err, "gpu: open device")
	}
	undo = append(undo, open.Device.Destroy)

	spirv, err := compileShader(presentShaderSource)
	if err != nil {
		return fail(err, "gpu: compile present shader")
	}
	blit, err := newBlitPipeline(open.Device, open.Queue, spirv)
	if err != nil {
		return fail(err, "gpu: build present pipeline")
	}

	ggdraw.Logger().Debug("ggdraw: gpu adapter opened",
		"variant", api.Variant().String(),
		"adapter", adapter.Info.Name)

	return &gpuContext{
		cfg:      b.cfg,
		display:  raw,
		instance: instance,
		adapter:  adapter.Adapter,
		device:   open.Device,
		queue:    open.Queue,
		blit:     blit,
	}, nil
}

func (b *gpuBackend) halBackend() (hal.Backend, bool) {
	for _, v := range b.cfg.variants {
		if api, ok := hal.GetBackend(v); ok {
			return api, true
		}
	}
	return nil, false
}

// pickAdapter returns the first acceptable adapter and destroys the others.
func (b *gpuBackend) pickAdapter(exposed []hal.ExposedAdapter) (hal.ExposedAdapter, bool) {
	chosen := -1
	for i := range exposed {
		info := adapterInfo(exposed[i].Info)
		if info.Type == gpucontext.AdapterTypeSoftware {
			continue
		}
		if b.cfg.adapterFilter != nil && !b.cfg.adapterFilter(info) {
			continue
		}
		chosen = i
		break
	}
	for i := range exposed {
		if i != chosen {
			exposed[i].Adapter.Destroy()
		}
	}
	if chosen < 0 {
		return hal.ExposedAdapter{}, false
	}
	return exposed[chosen], true
}

// adapterInfo classifies a HAL adapter the way gpucontext consumers see it.
func adapterInfo(info gputypes.AdapterInfo) gpucontext.AdapterInfo {
	t := gpucontext.AdapterTypeUnknown
	switch info.DeviceType {
	case gputypes.DeviceTypeDiscreteGPU:
		t = gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		t = gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		t = gpucontext.AdapterTypeSoftware
	}
	return gpucontext.AdapterInfo{Name: info.Name, Type: t}
}

// swapchainFormat is the format of every configured swapchain image.
const swapchainFormat = gputypes.TextureFormatBGRA8Unorm

type gpuContext struct {
	cfg      gpuConfig
	display  uintptr
	instance hal.Instance
	adapter  hal.Adapter
	device   hal.Device
	queue    hal.Queue
	blit     *blitPipeline

	// Present submissions the GPU may still be reading, oldest first.
	inflight []submission
}

// submission is a submitted present pass. Destroying the encoder frees its
// command buffer too.
type submission struct {
	index   uint64
	encoder hal.CommandEncoder
	target  hal.TextureView
}

func (c *gpuContext) free(sub submission) {
	sub.encoder.Destroy()
	c.device.DestroyTextureView(sub.target)
}

func (c *gpuContext) NewSurface(w WindowHandle, width, height int) (SurfaceBackend, error) {
	raw, err := resolveWindow(w)
	if err != nil {
		return nil, err
	}

	halSurface, err := c.instance.CreateSurface(c.display, raw)
	if err != nil {
		return nil, ggdraw.FromErrorWithMessage(err, "gpu: create surface")
	}

	s := &gpuSurface{
		ctx:     c,
		surface: halSurface,
		staging: surface.NewImageSurface(width, height),
	}
	if err := s.configure(width, height); err != nil {
		halSurface.Destroy()
		return nil, err
	}
	return s, nil
}

// submit queues a recorded present pass and keeps its encoder and target
// view until the GPU is done with them.
func (c *gpuContext) submit(encoder hal.CommandEncoder, cmd hal.CommandBuffer, target hal.TextureView) error {
	sub := submission{encoder: encoder, target: target}
	index, err := c.queue.Submit([]hal.CommandBuffer{cmd})
	if err != nil {
		c.free(sub)
		return err
	}
	sub.index = index
	c.inflight = append(c.inflight, sub)
	return nil
}

// retire frees completed submissions, or all of them when all is set.
// all requires an idle device.
func (c *gpuContext) retire(all bool) {
	done := c.queue.PollCompleted()
	n := 0
	for _, sub := range c.inflight {
		if !all && sub.index > done {
			break
		}
		c.free(sub)
		n++
	}
	c.inflight = c.inflight[n:]
}

// drain waits for every in-flight present pass.
func (c *gpuContext) drain() {
	if err := c.device.WaitIdle(); err != nil {
		ggdraw.Logger().Warn("ggdraw: wait idle", "backend", GPUName, "err", err)
	}
	c.retire(true)
}

func (c *gpuContext) Release() {
	c.drain()
	c.blit.destroy(c.device)
	c.device.Destroy()
	c.adapter.Destroy()
	c.instance.Destroy()
}

// gpuSurface draws on a CPU staging image. Present uploads the image to a
// texture and draws it onto the swapchain image with the present pipeline.
type gpuSurface struct {
	ctx        *gpuContext
	surface    hal.Surface
	configured bool
	upload     hal.Texture
	uploadView hal.TextureView
	bindGroup  hal.BindGroup
	staging    *surface.ImageSurface
}

// configure (re)builds the swapchain and the upload texture for the given
// size. On failure the surface is left unconfigured; the next Present
// retries at the staging size.
func (s *gpuSurface) configure(width, height int) error {
	s.unconfigure()

	dev := s.ctx.device
	err := s.surface.Configure(dev, &hal.SurfaceConfiguration{
		Width:       uint32(width),
		Height:      uint32(height),
		Format:      swapchainFormat,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: s.ctx.cfg.presentMode,
		AlphaMode:   gputypes.CompositeAlphaModePremultiplied,
	})
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: configure surface")
	}
	s.configured = true

	if err := s.createUpload(width, height); err != nil {
		s.unconfigure()
		return err
	}
	return nil
}

func (s *gpuSurface) createUpload(width, height int) error {
	dev := s.ctx.device

	tex, err := dev.CreateTexture(&hal.TextureDescriptor{
		Label: "ggdraw upload",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageCopyDst | gputypes.TextureUsageTextureBinding,
	})
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: create upload texture")
	}
	s.upload = tex

	view, err := dev.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "ggdraw upload view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: create upload view")
	}
	s.uploadView = view

	group, err := s.ctx.blit.bindGroup(dev, view)
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: create present bind group")
	}
	s.bindGroup = group
	return nil
}

// unconfigure releases whatever configure built, newest first.
func (s *gpuSurface) unconfigure() {
	dev := s.ctx.device
	if s.bindGroup != nil && len(s.ctx.inflight) > 0 {
		// A submitted pass may still sample the upload texture.
		s.ctx.drain()
	}
	if s.bindGroup != nil {
		dev.DestroyBindGroup(s.bindGroup)
		s.bindGroup = nil
	}
	if s.uploadView != nil {
		dev.DestroyTextureView(s.uploadView)
		s.uploadView = nil
	}
	if s.upload != nil {
		dev.DestroyTexture(s.upload)
		s.upload = nil
	}
	if s.configured {
		s.surface.Unconfigure(dev)
		s.configured = false
	}
}

func (s *gpuSurface) Paint(op geom.CompositeOp, pattern ggdraw.Pattern, clip ggdraw.Clip) error {
	return s.staging.Paint(op, pattern, clip)
}

func (s *gpuSurface) Mask(op geom.CompositeOp, pattern, mask ggdraw.Pattern, clip ggdraw.Clip) error {
	return s.staging.Mask(op, pattern, mask, clip)
}

func (s *gpuSurface) Realize() (*image.RGBA, error) {
	return s.staging.Realize()
}

func (s *gpuSurface) Resize(width, height int) error {
	if err := s.configure(width, height); err != nil {
		return err
	}
	return s.staging.Resize(width, height)
}

func (s *gpuSurface) Present() error {
	s.ctx.retire(false)

	pix := s.staging.Snapshot()
	w, h := pix.Rect.Dx(), pix.Rect.Dy()
	if s.bindGroup == nil {
		if err := s.configure(w, h); err != nil {
			return err
		}
	}
	if err := s.uploadPixels(pix); err != nil {
		return err
	}

	acquired, err := s.surface.AcquireTexture(nil)
	if errors.Is(err, hal.ErrSurfaceOutdated) {
		if err := s.configure(w, h); err != nil {
			return err
		}
		if err := s.uploadPixels(pix); err != nil {
			return err
		}
		acquired, err = s.surface.AcquireTexture(nil)
	}
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: acquire surface texture")
	}

	if err := s.draw(acquired.Texture); err != nil {
		s.surface.DiscardTexture(acquired.Texture)
		return err
	}
	if err := s.ctx.queue.Present(s.surface, acquired.Texture, nil); err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: present")
	}
	if acquired.Suboptimal {
		ggdraw.Logger().Debug("ggdraw: suboptimal surface texture", "backend", GPUName)
	}
	return nil
}

// draw renders the upload texture into the acquired swapchain image and
// submits the pass.
func (s *gpuSurface) draw(target hal.SurfaceTexture) error {
	dev := s.ctx.device
	view, err := dev.CreateTextureView(target, &hal.TextureViewDescriptor{
		Label:         "ggdraw swapchain view",
		Format:        swapchainFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: create swapchain view")
	}

	encoder, cmd, err := s.ctx.blit.record(dev, s.bindGroup, view)
	if err != nil {
		dev.DestroyTextureView(view)
		return ggdraw.FromErrorWithMessage(err, "gpu: record present pass")
	}
	if err := s.ctx.submit(encoder, cmd, view); err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: submit present pass")
	}
	return nil
}

func (s *gpuSurface) uploadPixels(pix *image.RGBA) error {
	w, h := pix.Rect.Dx(), pix.Rect.Dy()
	err := s.ctx.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: s.upload, Aspect: gputypes.TextureAspectAll},
		pix.Pix,
		&hal.ImageDataLayout{BytesPerRow: uint32(4 * w), RowsPerImage: uint32(h)},
		&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1},
	)
	if err != nil {
		return ggdraw.FromErrorWithMessage(err, "gpu: upload pixels")
	}
	return nil
}

func (s *gpuSurface) Release() {
	s.unconfigure()
	s.surface.Destroy()
	_ = s.staging.Close()
}
