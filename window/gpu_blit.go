// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !nogpu

package window

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

const (
	blitVertexStride = 16 // vec2 position + vec2 uv, float32
	blitVertexCount  = 6
)

// blitQuad covers the whole clip space with two triangles. UV (0,0) is the
// top-left pixel of the upload texture.
var blitQuad = [blitVertexCount][4]float32{
	{-1, -1, 0, 1},
	{1, -1, 1, 1},
	{1, 1, 1, 0},
	{-1, -1, 0, 1},
	{1, 1, 1, 0},
	{-1, 1, 0, 0},
}

// blitPipeline draws an upload texture over a whole swapchain image through
// the present shader. It is shared by every surface of a context.
type blitPipeline struct {
	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	layout     hal.PipelineLayout
	pipeline   hal.RenderPipeline
	sampler    hal.Sampler
	quad       hal.Buffer
}

// newBlitPipeline builds the present pipeline from SPIR-V. On failure every
// resource created so far is destroyed.
func newBlitPipeline(device hal.Device, queue hal.Queue, spirv []uint32) (*blitPipeline, error) {
	p := &blitPipeline{}
	built := false
	defer func() {
		if !built {
			p.destroy(device)
		}
	}()

	var err error

	p.shader, err = device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "ggdraw present",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("create shader module: %w", err)
	}

	p.bindLayout, err = device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "ggdraw present bind layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group layout: %w", err)
	}

	p.layout, err = device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "ggdraw present pipeline layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	p.pipeline, err = device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "ggdraw present pipeline",
		Layout: p.layout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{{
				ArrayStride: blitVertexStride,
				StepMode:    gputypes.VertexStepModeVertex,
				Attributes: []gputypes.VertexAttribute{
					{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
					{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
				},
			}},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    swapchainFormat,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
	})
	if err != nil {
		return nil, fmt.Errorf("create render pipeline: %w", err)
	}

	// Upload and swapchain images have the same size, so nearest sampling
	// copies pixels exactly.
	p.sampler, err = device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "ggdraw present sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}

	vertices := quadBytes()
	p.quad, err = device.CreateBuffer(&hal.BufferDescriptor{
		Label: "ggdraw present quad",
		Size:  uint64(len(vertices)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}
	if err = queue.WriteBuffer(p.quad, 0, vertices); err != nil {
		return nil, fmt.Errorf("write vertex buffer: %w", err)
	}
	built = true
	return p, nil
}

func quadBytes() []byte {
	b := make([]byte, 0, blitVertexCount*blitVertexStride)
	for _, v := range blitQuad {
		for _, f := range v {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
		}
	}
	return b
}

// bindGroup binds an upload texture view for sampling.
func (p *blitPipeline) bindGroup(device hal.Device, view hal.TextureView) (hal.BindGroup, error) {
	return device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "ggdraw present bind group",
		Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()}},
			{Binding: 1, Resource: gputypes.SamplerBinding{Sampler: p.sampler.NativeHandle()}},
		},
	})
}

// record encodes one render pass drawing the bound upload texture into
// target. The returned encoder owns the command buffer.
func (p *blitPipeline) record(device hal.Device, group hal.BindGroup, target hal.TextureView) (hal.CommandEncoder, hal.CommandBuffer, error) {
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "ggdraw present"})
	if err != nil {
		return nil, nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("ggdraw present"); err != nil {
		encoder.Destroy()
		return nil, nil, fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "ggdraw present pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       target,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, group, nil)
	rp.SetVertexBuffer(0, p.quad, 0)
	rp.Draw(blitVertexCount, 1, 0, 0)
	rp.End()

	cmd, err := encoder.EndEncoding()
	if err != nil {
		encoder.DiscardEncoding()
		encoder.Destroy()
		return nil, nil, fmt.Errorf("end encoding: %w", err)
	}
	return encoder, cmd, nil
}

// destroy releases the resources in reverse creation order. Fields left nil
// by a failed build are skipped.
func (p *blitPipeline) destroy(device hal.Device) {
	if p.quad != nil {
		device.DestroyBuffer(p.quad)
	}
	if p.sampler != nil {
		device.DestroySampler(p.sampler)
	}
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
	}
	if p.layout != nil {
		device.DestroyPipelineLayout(p.layout)
	}
	if p.bindLayout != nil {
		device.DestroyBindGroupLayout(p.bindLayout)
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
	}
}
