// Package render draws the animated triangle. It is a pure consumer of
// an acquired frame's color attachment view; surface lifecycle and
// windowing live elsewhere.
package render

import (
	_ "embed"
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/xorbits/trigon/glm"
	"github.com/xorbits/trigon/gpu"
)

//go:embed shader.wgsl
var shaderCode string

const triangleScale = 0.8

type vertex struct {
	Col glm.Vec4f
	Pos glm.Vec2f
	_   glm.Vec2f // pad to a 32 byte stride
}

type triangleUniforms struct {
	MVP glm.Mat4f
}

type trianglePipelineConfig struct {
	format wgpu.TextureFormat
	showUV bool
}

func (c trianglePipelineConfig) Specialize(device *wgpu.Device) (*wgpu.RenderPipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "triangle.wgsl",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaderCode},
	})
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}

	defer module.Release()

	fsEntry := "fs_main"
	if c.showUV {
		fsEntry = "fs_uv"
	}

	blend := wgpu.BlendStateAlphaBlending

	return device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: "TrianglePipeline",
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: uint64(unsafe.Sizeof(vertex{})),
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{
						Format:         wgpu.VertexFormatFloat32x4,
						Offset:         uint64(unsafe.Offsetof(vertex{}.Col)),
						ShaderLocation: 0,
					},
					{
						Format:         wgpu.VertexFormatFloat32x2,
						Offset:         uint64(unsafe.Offsetof(vertex{}.Pos)),
						ShaderLocation: 1,
					},
				},
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: fsEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    c.format,
				Blend:     &blend,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
}

// Renderer owns the triangle's GPU resources.
type Renderer struct {
	ctx *gpu.Context

	vbo         *wgpu.Buffer
	bufUniforms *wgpu.Buffer

	pipelines *PipelineCache[trianglePipelineConfig]
}

func triangleVertices() []vertex {
	third := glm.Rad(2 * math.Pi / 3)
	top := glm.Vec2f{0, -triangleScale}

	return []vertex{
		{Col: glm.Vec4f{1, 0, 0, 1}, Pos: top},
		{Col: glm.Vec4f{0, 1, 0, 1}, Pos: glm.RotateVec2(top, third)},
		{Col: glm.Vec4f{0, 0, 1, 1}, Pos: glm.RotateVec2(glm.RotateVec2(top, third), third)},
	}
}

func New(ctx *gpu.Context) (*Renderer, error) {
	vbo, err := ctx.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "Triangle.Vertices",
		Contents: wgpu.ToBytes(triangleVertices()),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer: %w", err)
	}

	bufUniforms, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Triangle.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(triangleUniforms{})),
	})
	if err != nil {
		vbo.Release()
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	return &Renderer{
		ctx:         ctx,
		vbo:         vbo,
		bufUniforms: bufUniforms,
		pipelines:   NewPipelineCache[trianglePipelineConfig](ctx.Device),
	}, nil
}

// FrameOptions describe one frame.
type FrameOptions struct {
	// Format is the surface's current pixel format. It selects the
	// pipeline and may change after a surface recreation.
	Format wgpu.TextureFormat

	Width  uint32
	Height uint32

	// Uptime rotates the triangle.
	Uptime time.Duration

	// BackgroundAlpha in [0, 1] for the clear color.
	BackgroundAlpha float64

	// ShowUV switches the fragment shader to a UV debug output.
	ShowUV bool
}

// Frame encodes and submits one frame into the given color attachment.
func (r *Renderer) Frame(view *wgpu.TextureView, opts FrameOptions) error {
	aspect := float32(opts.Width) / float32(opts.Height)

	// flipped Y, same as the window coordinate system
	mvp := glm.OrthoMat4[float32](-aspect, aspect, 1, -1, -1, 1).
		RotateZ(glm.Rad(opts.Uptime.Seconds()))

	r.ctx.WriteBuffer(r.bufUniforms, 0, wgpu.ToBytes([]triangleUniforms{{MVP: mvp}}))

	pc, err := r.pipelines.Get(trianglePipelineConfig{
		format: opts.Format,
		showUV: opts.ShowUV,
	})
	if err != nil {
		return err
	}

	bindGroup, err := r.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Triangle.BindGroup",
		Layout: pc.GetBindGroupLayout(0),
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  r.bufUniforms,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		return fmt.Errorf("create bind group: %w", err)
	}

	defer bindGroup.Release()

	encoder, err := r.ctx.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{
		Label: "Triangle",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}

	defer encoder.Release()

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Triangle",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{A: opts.BackgroundAlpha},
		}},
	})

	pass.SetPipeline(pc.Pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.SetVertexBuffer(0, r.vbo, 0, wgpu.WholeSize)
	pass.Draw(3, 1, 0, 0)

	if err := pass.End(); err != nil {
		pass.Release()
		return fmt.Errorf("end render pass: %w", err)
	}

	pass.Release()

	buf, err := encoder.Finish(&wgpu.CommandBufferDescriptor{Label: "Triangle"})
	if err != nil {
		return fmt.Errorf("finish encoder: %w", err)
	}

	defer buf.Release()

	r.ctx.Submit(buf)

	return nil
}

func (r *Renderer) Release() {
	r.pipelines.Purge()
	r.bufUniforms.Release()
	r.vbo.Release()
}
