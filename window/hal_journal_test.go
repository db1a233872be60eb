// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package window

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// journaledVariant is an unused backend slot the journaling HAL registers
// under.
const journaledVariant gputypes.Backend = 0x40

var errHALFailure = errors.New("hal: injected failure")

// journaledHAL wraps the noop HAL. It journals resource lifetimes and queue
// traffic, and can fail one named device call or a number of swapchain
// configurations.
type journaledHAL struct {
	j             *journal
	fail          string
	failConfigure int
	views         int // texture views alive
}

// journaledGPU registers h and returns a GPU backend that uses it.
func journaledGPU(t *testing.T, h *journaledHAL) Backend {
	t.Helper()
	hal.RegisterBackend(h)
	return NewGPUBackend(WithVariants(journaledVariant))
}

func (h *journaledHAL) Variant() gputypes.Backend { return journaledVariant }

func (h *journaledHAL) CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error) {
	inst, err := noop.API{}.CreateInstance(desc)
	if err != nil {
		return nil, err
	}
	h.j.add("create instance")
	return &journaledInstance{Instance: inst, h: h}, nil
}

// create runs a device call unless it is the one set to fail, and journals
// it on success.
func create[T any](h *journaledHAL, what string, fn func() (T, error)) (T, error) {
	if h.fail == what {
		var zero T
		return zero, errHALFailure
	}
	v, err := fn()
	if err == nil {
		h.j.add("create %s", what)
	}
	return v, err
}

type journaledInstance struct {
	hal.Instance
	h *journaledHAL
}

func (i *journaledInstance) CreateSurface(display, window uintptr) (hal.Surface, error) {
	s, err := i.Instance.CreateSurface(display, window)
	if err != nil {
		return nil, err
	}
	return &journaledSurface{Surface: s, h: i.h}, nil
}

func (i *journaledInstance) EnumerateAdapters(hint hal.Surface) []hal.ExposedAdapter {
	exposed := i.Instance.EnumerateAdapters(hint)
	for k := range exposed {
		exposed[k].Adapter = &journaledAdapter{Adapter: exposed[k].Adapter, h: i.h}
	}
	return exposed
}

func (i *journaledInstance) Destroy() {
	i.h.j.add("destroy instance")
	i.Instance.Destroy()
}

type journaledAdapter struct {
	hal.Adapter
	h *journaledHAL
}

func (a *journaledAdapter) Open(features gputypes.Features, limits gputypes.Limits) (hal.OpenDevice, error) {
	open, err := a.Adapter.Open(features, limits)
	if err != nil {
		return open, err
	}
	a.h.j.add("open device")
	open.Device = &journaledDevice{Device: open.Device, h: a.h}
	open.Queue = &journaledQueue{Queue: open.Queue, h: a.h}
	return open, nil
}

func (a *journaledAdapter) Destroy() {
	a.h.j.add("destroy adapter")
	a.Adapter.Destroy()
}

type journaledDevice struct {
	hal.Device
	h *journaledHAL
}

func (d *journaledDevice) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	return create(d.h, "shader module", func() (hal.ShaderModule, error) { return d.Device.CreateShaderModule(desc) })
}

func (d *journaledDevice) DestroyShaderModule(m hal.ShaderModule) {
	d.h.j.add("destroy shader module")
	d.Device.DestroyShaderModule(m)
}

func (d *journaledDevice) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	return create(d.h, "bind group layout", func() (hal.BindGroupLayout, error) { return d.Device.CreateBindGroupLayout(desc) })
}

func (d *journaledDevice) DestroyBindGroupLayout(l hal.BindGroupLayout) {
	d.h.j.add("destroy bind group layout")
	d.Device.DestroyBindGroupLayout(l)
}

func (d *journaledDevice) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	return create(d.h, "pipeline layout", func() (hal.PipelineLayout, error) { return d.Device.CreatePipelineLayout(desc) })
}

func (d *journaledDevice) DestroyPipelineLayout(l hal.PipelineLayout) {
	d.h.j.add("destroy pipeline layout")
	d.Device.DestroyPipelineLayout(l)
}

func (d *journaledDevice) CreateRenderPipeline(desc *hal.RenderPipelineDescriptor) (hal.RenderPipeline, error) {
	return create(d.h, "render pipeline", func() (hal.RenderPipeline, error) { return d.Device.CreateRenderPipeline(desc) })
}

func (d *journaledDevice) DestroyRenderPipeline(p hal.RenderPipeline) {
	d.h.j.add("destroy render pipeline")
	d.Device.DestroyRenderPipeline(p)
}

func (d *journaledDevice) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	return create(d.h, "sampler", func() (hal.Sampler, error) { return d.Device.CreateSampler(desc) })
}

func (d *journaledDevice) DestroySampler(s hal.Sampler) {
	d.h.j.add("destroy sampler")
	d.Device.DestroySampler(s)
}

func (d *journaledDevice) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	return create(d.h, "buffer", func() (hal.Buffer, error) { return d.Device.CreateBuffer(desc) })
}

func (d *journaledDevice) DestroyBuffer(b hal.Buffer) {
	d.h.j.add("destroy buffer")
	d.Device.DestroyBuffer(b)
}

func (d *journaledDevice) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	return create(d.h, "bind group", func() (hal.BindGroup, error) { return d.Device.CreateBindGroup(desc) })
}

func (d *journaledDevice) CreateTextureView(tex hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	v, err := d.Device.CreateTextureView(tex, desc)
	if err == nil {
		d.h.views++
	}
	return v, err
}

func (d *journaledDevice) DestroyTextureView(v hal.TextureView) {
	d.h.views--
	d.Device.DestroyTextureView(v)
}

func (d *journaledDevice) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	enc, err := d.Device.CreateCommandEncoder(desc)
	if err != nil {
		return nil, err
	}
	return &journaledEncoder{CommandEncoder: enc, h: d.h}, nil
}

func (d *journaledDevice) Destroy() {
	d.h.j.add("destroy device")
	d.Device.Destroy()
}

type journaledEncoder struct {
	hal.CommandEncoder
	h *journaledHAL
}

func (e *journaledEncoder) BeginRenderPass(desc *hal.RenderPassDescriptor) hal.RenderPassEncoder {
	return &journaledPass{RenderPassEncoder: e.CommandEncoder.BeginRenderPass(desc), h: e.h}
}

type journaledPass struct {
	hal.RenderPassEncoder
	h *journaledHAL
}

func (p *journaledPass) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	p.h.j.add("draw %d", vertexCount)
	p.RenderPassEncoder.Draw(vertexCount, instanceCount, firstVertex, firstInstance)
}

type journaledQueue struct {
	hal.Queue
	h *journaledHAL
}

func (q *journaledQueue) Submit(cmds []hal.CommandBuffer) (uint64, error) {
	q.h.j.add("submit")
	return q.Queue.Submit(cmds)
}

func (q *journaledQueue) WriteBuffer(b hal.Buffer, offset uint64, data []byte) error {
	q.h.j.add("write buffer")
	return q.Queue.WriteBuffer(b, offset, data)
}

func (q *journaledQueue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) error {
	q.h.j.add("write texture")
	return q.Queue.WriteTexture(dst, data, layout, size)
}

func (q *journaledQueue) Present(s hal.Surface, tex hal.SurfaceTexture, damage []image.Rectangle) error {
	q.h.j.add("present")
	return q.Queue.Present(s, tex, damage)
}

type journaledSurface struct {
	hal.Surface
	h *journaledHAL
}

func (s *journaledSurface) Configure(dev hal.Device, cfg *hal.SurfaceConfiguration) error {
	if s.h.failConfigure > 0 {
		s.h.failConfigure--
		return errHALFailure
	}
	s.h.j.add("configure %dx%d", cfg.Width, cfg.Height)
	return s.Surface.Configure(dev, cfg)
}

func (s *journaledSurface) Unconfigure(dev hal.Device) {
	s.h.j.add("unconfigure")
	s.Surface.Unconfigure(dev)
}

func (s *journaledSurface) Destroy() {
	s.h.j.add("destroy surface")
	s.Surface.Destroy()
}
