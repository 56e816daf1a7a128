package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains transition timing values.
type Config struct {
	// Duration is the slide length. Text cross-fades start after a third of it.
	Duration time.Duration
	// FrameInterval is the delay between two frame updates.
	FrameInterval time.Duration
	// BounceFraction is the bounce length relative to Duration.
	BounceFraction float64
}

// Engine runs switch transitions and pushes frames to a renderer.
type Engine struct {
	mu          sync.Mutex
	config      Config
	updateFrame func(run uint64, frame Frame)
	run         uint64
	cancel      context.CancelFunc
	done        chan struct{}
}

// New creates a new transition engine. updateFrame receives the id of the
// run that produced the frame; compare it with Current to drop stale frames.
func New(config Config, updateFrame func(run uint64, frame Frame)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &Engine{
		config:      config,
		updateFrame: updateFrame,
	}
}

// SetConfig replaces the timing used by the next transition.
func (engine *Engine) SetConfig(config Config) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if config.FrameInterval <= 0 {
		config.FrameInterval = engine.config.FrameInterval
	}
	engine.config = config
}

// Current returns the id of the latest run. Stop also advances it.
func (engine *Engine) Current() uint64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.run
}

// Start stops any running transition and animates from -> to.
// It returns the id of the new run.
func (engine *Engine) Start(ctx context.Context, from, to Frame) uint64 {
	engine.Stop()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.run++
	run := engine.run
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	engine.cancel = cancel
	engine.done = done
	config := engine.config

	go func() {
		defer close(done)
		engine.animate(runCtx, run, config, from, to)
	}()
	return run
}

// Stop terminates the active transition and waits for its goroutine to
// return. No frame of that run is delivered once Stop returns.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.run++
	cancel := engine.cancel
	done := engine.done
	engine.cancel = nil
	engine.done = nil
	engine.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (engine *Engine) animate(ctx context.Context, run uint64, config Config, from, to Frame) {
	start := time.Now()
	total := config.Total()
	for {
		if ctx.Err() != nil {
			return
		}
		elapsed := time.Since(start)
		engine.updateFrame(run, Sample(config, from, to, elapsed))
		if elapsed >= total {
			return
		}
		if !sleepWithContext(ctx, config.FrameInterval) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
