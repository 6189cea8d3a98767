package render

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
)

type CachedPipeline struct {
	Pipeline *wgpu.RenderPipeline

	bindGroupLayouts *lru.Cache[uint32, *wgpu.BindGroupLayout]
}

func (pc *CachedPipeline) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	layout, ok := pc.bindGroupLayouts.Get(idx)
	if ok {
		return layout
	}

	layout = pc.Pipeline.GetBindGroupLayout(idx)
	pc.bindGroupLayouts.Add(idx, layout)

	return layout
}

type PipelineConfig interface {
	comparable

	// Specialize creates a pipeline for this exact configuration.
	Specialize(device *wgpu.Device) (*wgpu.RenderPipeline, error)
}

// PipelineCache memoizes specialized pipelines. Rebuilding a pipeline
// is expensive, but the same handful of configurations comes back
// every frame; a surface format change after recreation simply selects
// a different cache entry.
type PipelineCache[C PipelineConfig] struct {
	device *wgpu.Device
	cache  *lru.Cache[C, CachedPipeline]
}

func NewPipelineCache[C PipelineConfig](device *wgpu.Device) *PipelineCache[C] {
	cache, _ := lru.NewWithEvict[C, CachedPipeline](16, releasePipelineOnEviction[C])

	return &PipelineCache[C]{
		device: device,
		cache:  cache,
	}
}

func (p *PipelineCache[C]) Get(conf C) (CachedPipeline, error) {
	cached, ok := p.cache.Get(conf)
	if ok {
		return cached, nil
	}

	pipeline, err := conf.Specialize(p.device)
	if err != nil {
		return CachedPipeline{}, fmt.Errorf("build pipeline: %w", err)
	}

	layoutCache, _ := lru.NewWithEvict[uint32, *wgpu.BindGroupLayout](16, releaseBindGroupLayoutOnEviction)

	pc := CachedPipeline{Pipeline: pipeline, bindGroupLayouts: layoutCache}
	p.cache.Add(conf, pc)

	return pc, nil
}

func (p *PipelineCache[C]) Purge() {
	p.cache.Purge()
}

func releasePipelineOnEviction[C any](_ C, pipe CachedPipeline) {
	pipe.bindGroupLayouts.Purge()
	pipe.Pipeline.Release()
}

func releaseBindGroupLayoutOnEviction(_ uint32, layout *wgpu.BindGroupLayout) {
	layout.Release()
}
