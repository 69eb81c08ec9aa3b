//go:build !nogpu

package renderer

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/golang/glog"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/df07/go-whitted-raytracer/pkg/camera"
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/intersect"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// gpuFenceTimeout bounds the wait for one dispatch
const gpuFenceTimeout = 30 * time.Second

// GPUBackend renders on a GPU compute device through wgpu/hal. One kernel
// invocation shades one pixel.
type GPUBackend struct {
	mu sync.Mutex

	config Config
	logger core.Logger

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
	adapter  string

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.ComputePipeline
}

// NewGPUBackend opens a GPU device and builds the compute pipeline. It fails
// with ErrGPUUnavailable when no adapter can be opened.
func NewGPUBackend(config Config, logger core.Logger) (*GPUBackend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	config = config.withDefaults()
	if config.MaxDepth > gpuMaxDepth {
		return nil, fmt.Errorf("gpu backend supports max depth up to %d, got %d", gpuMaxDepth, config.MaxDepth)
	}
	if config.HitListCapacity > gpuMaxHits {
		return nil, fmt.Errorf("gpu backend supports hit list capacity up to %d, got %d", gpuMaxHits, config.HitListCapacity)
	}
	if logger == nil {
		logger = nopLogger{}
	}

	b := &GPUBackend{config: config, logger: logger}
	if err := b.initGPU(); err != nil {
		glog.Warningf("gpu: init failed: %v", err)
		b.Close()
		return nil, fmt.Errorf("%w: %v", ErrGPUUnavailable, err)
	}
	return b, nil
}

func (b *GPUBackend) Name() string { return BackendGPU }

// Adapter returns the name of the device in use
func (b *GPUBackend) Adapter() string { return b.adapter }

// Close releases the pipeline and device
func (b *GPUBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.destroyPipeline()
	if b.device != nil {
		b.device.Destroy()
		b.device = nil
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.queue = nil
	return nil
}

// Render uploads the scene, dispatches one invocation per pixel and reads the
// image back. A hit list overflow in any invocation panics with
// *intersect.OverflowError after readback.
func (b *GPUBackend) Render(sc *scene.Scene, cam *camera.Camera) (*Canvas, RenderStats, error) {
	canvas, err := NewCanvas(cam.HSize(), cam.VSize())
	if err != nil {
		return nil, RenderStats{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.device == nil {
		return nil, RenderStats{}, fmt.Errorf("%w: backend closed", ErrGPUUnavailable)
	}

	start := time.Now()
	params := packParams(sc, cam, b.config.MaxDepth, b.config.HitListCapacity)
	shapes := packShapes(sc)
	output, err := b.dispatch(params, shapes, uint32(canvas.Width()), uint32(canvas.Height()))
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("gpu render: %w", err)
	}
	if unpackPixels(output, canvas) {
		panic(&intersect.OverflowError{Capacity: b.config.HitListCapacity})
	}

	tilesX := (canvas.Width() + gpuWorkgroupDim - 1) / gpuWorkgroupDim
	tilesY := (canvas.Height() + gpuWorkgroupDim - 1) / gpuWorkgroupDim
	stats := RenderStats{
		Backend:      b.Name(),
		Width:        canvas.Width(),
		Height:       canvas.Height(),
		TotalPixels:  canvas.Width() * canvas.Height(),
		TotalSamples: canvas.Width() * canvas.Height() * samplesPerPixel(cam),
		Workers:      gpuWorkgroupDim * gpuWorkgroupDim,
		Tiles:        tilesX * tilesY,
		Elapsed:      time.Since(start),
	}
	b.logger.Printf("%s: rendered %dx%d in %v on %s\n", b.Name(), stats.Width, stats.Height, stats.Elapsed, b.adapter)
	return canvas, stats, nil
}

// dispatch runs the kernel once and returns the raw output buffer
func (b *GPUBackend) dispatch(params, shapes []byte, w, h uint32) ([]byte, error) {
	outputSize := uint64(w) * uint64(h) * gpuPixelSize

	paramsBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "raytrace_params", Size: uint64(len(params)),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create params buffer: %w", err)
	}
	defer b.device.DestroyBuffer(paramsBuf)

	shapesBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "raytrace_shapes", Size: uint64(len(shapes)),
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create shapes buffer: %w", err)
	}
	defer b.device.DestroyBuffer(shapesBuf)

	outputBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "raytrace_output", Size: outputSize,
		Usage: gputypes.BufferUsageStorage | gputypes.BufferUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create output buffer: %w", err)
	}
	defer b.device.DestroyBuffer(outputBuf)

	stagingBuf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "raytrace_staging", Size: outputSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer b.device.DestroyBuffer(stagingBuf)

	b.queue.WriteBuffer(paramsBuf, 0, params)
	b.queue.WriteBuffer(shapesBuf, 0, shapes)

	bindGroup, err := b.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label: "raytrace_bind", Layout: b.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{Buffer: paramsBuf.NativeHandle(), Offset: 0, Size: uint64(len(params))}},
			{Binding: 1, Resource: gputypes.BufferBinding{Buffer: shapesBuf.NativeHandle(), Offset: 0, Size: uint64(len(shapes))}},
			{Binding: 2, Resource: gputypes.BufferBinding{Buffer: outputBuf.NativeHandle(), Offset: 0, Size: outputSize}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}
	defer b.device.DestroyBindGroup(bindGroup)

	encoder, err := b.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "raytrace_encoder"})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("raytrace"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	pass := encoder.BeginComputePass(&hal.ComputePassDescriptor{Label: "raytrace_pass"})
	pass.SetPipeline(b.pipeline)
	pass.SetBindGroup(0, bindGroup, nil)
	pass.Dispatch((w+gpuWorkgroupDim-1)/gpuWorkgroupDim, (h+gpuWorkgroupDim-1)/gpuWorkgroupDim, 1)
	pass.End()

	encoder.CopyBufferToBuffer(outputBuf, stagingBuf, []hal.BufferCopy{
		{SrcOffset: 0, DstOffset: 0, Size: outputSize},
	})
	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer b.device.FreeCommandBuffer(cmdBuf)

	fence, err := b.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer b.device.DestroyFence(fence)
	if err := b.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := b.device.Wait(fence, 1, gpuFenceTimeout)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, outputSize)
	if err := b.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}
	return readback, nil
}

func (b *GPUBackend) initGPU() error {
	backend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("vulkan backend not available")
	}
	instance, err := backend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("create instance: %w", err)
	}
	b.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no GPU adapters found")
	}
	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return fmt.Errorf("open device: %w", err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapter = selected.Info.Name

	if err := b.createPipeline(); err != nil {
		return fmt.Errorf("create pipeline: %w", err)
	}
	glog.Infof("gpu: ray tracer initialized (%s)", b.adapter)
	return nil
}

func (b *GPUBackend) createPipeline() error {
	shader, err := b.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "raytrace",
		Source: hal.ShaderSource{WGSL: kernelSource},
	})
	if err != nil {
		return fmt.Errorf("compile raytrace shader: %w", err)
	}
	b.shader = shader

	bindLayout, err := b.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "raytrace_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{Binding: 0, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform}},
			{Binding: 1, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage}},
			{Binding: 2, Visibility: gputypes.ShaderStageCompute, Buffer: &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage}},
		},
	})
	if err != nil {
		return fmt.Errorf("create bind group layout: %w", err)
	}
	b.bindLayout = bindLayout

	pipeLayout, err := b.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label: "raytrace_pipe_layout", BindGroupLayouts: []hal.BindGroupLayout{b.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("create pipeline layout: %w", err)
	}
	b.pipeLayout = pipeLayout

	pipeline, err := b.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label: "raytrace_pipeline", Layout: b.pipeLayout,
		Compute: hal.ComputeState{Module: b.shader, EntryPoint: "main"},
	})
	if err != nil {
		return fmt.Errorf("create compute pipeline: %w", err)
	}
	b.pipeline = pipeline
	return nil
}

func (b *GPUBackend) destroyPipeline() {
	if b.device == nil {
		return
	}
	if b.pipeline != nil {
		b.device.DestroyComputePipeline(b.pipeline)
		b.pipeline = nil
	}
	if b.pipeLayout != nil {
		b.device.DestroyPipelineLayout(b.pipeLayout)
		b.pipeLayout = nil
	}
	if b.bindLayout != nil {
		b.device.DestroyBindGroupLayout(b.bindLayout)
		b.bindLayout = nil
	}
	if b.shader != nil {
		b.device.DestroyShaderModule(b.shader)
		b.shader = nil
	}
}
