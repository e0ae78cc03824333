// Package game implements the main loop of the demo.
package game

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/waterscape/internal/assets"
	"github.com/Faultbox/waterscape/internal/config"
	"github.com/Faultbox/waterscape/internal/engine/debug"
	"github.com/Faultbox/waterscape/internal/engine/input"
	"github.com/Faultbox/waterscape/internal/engine/render"
	"github.com/Faultbox/waterscape/internal/engine/renderer"
	"github.com/Faultbox/waterscape/internal/engine/texture"
	"github.com/Faultbox/waterscape/internal/engine/window"
	"github.com/Faultbox/waterscape/internal/game/world"
	"github.com/Faultbox/waterscape/internal/logger"
)

// Title is the window title.
const Title = "Waterscape"

// Game is the main demo instance.
type Game struct {
	config       *config.Config
	window       *window.Window
	device       *renderer.Device
	orchestrator *render.Orchestrator
	world        *world.World
	assets       *assets.Manager
	watcher      *config.Watcher
	textures     []render.Texture
	screenshots  *debug.ScreenshotCapture
	input        input.State
}

// New loads the height map and textures and opens the window. configPath
// is the file to watch for scene changes, or "" for none.
func New(cfg *config.Config, configPath string) (*Game, error) {
	logger.Info("initializing demo",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("heightmap", cfg.Terrain.Heightmap),
	)

	g := &Game{
		config:      cfg,
		assets:      assets.NewManager(),
		screenshots: debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "waterscape"),
	}
	for _, dir := range cfg.Data.Paths {
		if err := g.assets.AddDir(dir); err != nil {
			logger.Warn("skipping data dir", zap.Error(err))
		}
	}
	logger.Debug("data dirs", zap.Strings("search_order", g.assets.Dirs()))

	hm, err := g.assets.LoadHeightmap(cfg.Terrain.Heightmap, cfg.Terrain.MaxHeight)
	if err != nil {
		return nil, fmt.Errorf("loading heightmap: %w", err)
	}
	logger.Info("heightmap loaded", zap.Int("width", hm.Width), zap.Int("height", hm.Height))

	g.world = world.New(hm, cfg.Camera, cfg.Scene)
	g.world.Overlay.ShowMemory = logger.Enabled(zapcore.DebugLevel)

	// Create window (this also creates OpenGL context)
	g.window, err = window.New(window.Config{
		Title:         Title,
		Width:         cfg.Graphics.Width,
		Height:        cfg.Graphics.Height,
		Fullscreen:    cfg.Graphics.Fullscreen,
		VSync:         cfg.Graphics.VSync,
		RelativeMouse: cfg.Graphics.RelativeMouse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	g.device, err = renderer.New(renderer.Config{
		BackBufferSize: g.window.DrawableSize,
		Swap:           g.window.SwapBuffers,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	programs, err := g.device.CompilePrograms()
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("compiling shaders: %w", err)
	}

	textures, err := g.uploadTextures()
	if err != nil {
		g.Close()
		return nil, err
	}

	g.orchestrator, err = render.NewOrchestrator(g.device, programs, textures)
	if err != nil {
		g.Close()
		return nil, err
	}

	if configPath != "" {
		g.watcher, err = config.NewWatcher(configPath)
		if err != nil {
			logger.Warn("config hot reload disabled", zap.Error(err))
		}
	}

	g.input.SetSize(g.window.DrawableSize())

	logger.Info("demo initialized successfully")
	return g, nil
}

// uploadTextures loads the terrain texture and both wave maps, generating
// any that are missing.
func (g *Game) uploadTextures() (render.Textures, error) {
	tc := g.config.Terrain

	terrain := g.assets.LoadImage(tc.Texture, func() *image.RGBA {
		return texture.Checker(256, 16, color.RGBA{94, 124, 62, 255}, color.RGBA{120, 104, 72, 255})
	})
	wave0 := g.assets.LoadImage(tc.WaveMap0, func() *image.RGBA {
		return texture.WaveNormalMap(texture.DefaultWaveMapConfig(tc.WaveSeed))
	})
	wave1 := g.assets.LoadImage(tc.WaveMap1, func() *image.RGBA {
		return texture.WaveNormalMap(texture.DefaultWaveMapConfig(tc.WaveSeed + 1))
	})

	var out [3]render.Texture
	for i, img := range []*image.RGBA{terrain, wave0, wave1} {
		t, err := g.device.UploadTexture(img)
		if err != nil {
			return render.Textures{}, fmt.Errorf("uploading texture: %w", err)
		}
		g.textures = append(g.textures, t)
		out[i] = t
	}

	return render.Textures{Terrain: out[0], WaveMap0: out[1], WaveMap1: out[2]}, nil
}

// Run starts the main loop. It returns when the window is closed, Escape
// is pressed or a frame fails.
func (g *Game) Run() error {
	var frameBudget time.Duration
	if g.config.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.config.Graphics.FPSLimit)
	}

	lastTime := time.Now()

	logger.Info("starting main loop")

	for {
		// Calculate delta time
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Process input
		g.input.BeginFrame()
		g.window.PollInput(&g.input)

		// 2. Pick up config edits
		g.pollConfig()

		// 3. Update world state
		if g.world.Update(dt, &g.input) {
			logger.Info("quit requested")
			return nil
		}

		// 4. Render, unless there is nothing to draw into
		if g.window.IsMinimized() {
			time.Sleep(50 * time.Millisecond)
			continue
		}
		frame := g.world.FrameInput()
		if g.input.Pressed(input.KeyF12) {
			if err := g.renderAndCapture(frame); err != nil {
				return fmt.Errorf("render error: %w", err)
			}
		} else if err := g.orchestrator.RenderFrame(frame); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}
}

// renderAndCapture renders like RenderFrame but saves the back buffer
// before presenting it.
func (g *Game) renderAndCapture(frame render.FrameInput) error {
	if err := g.orchestrator.RefractionPass(frame); err != nil {
		return err
	}
	if err := g.orchestrator.ReflectionPass(frame); err != nil {
		return err
	}
	if err := g.orchestrator.MainPass(frame); err != nil {
		return err
	}

	pixels, w, h := g.device.ReadPixels()
	img, err := debug.FlipPixels(pixels, w, h)
	if err == nil {
		var path string
		if path, err = g.screenshots.Save(img); err == nil {
			logger.Info("screenshot saved", zap.String("path", path))
		}
	}
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
	}

	g.device.Present()
	return nil
}

func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	sc, changed, err := g.watcher.Poll()
	if err != nil {
		logger.Warn("config reload failed, keeping current settings", zap.Error(err))
		return
	}
	if !changed {
		return
	}
	g.world.ApplySceneConfig(sc)
	logger.Info("scene config reloaded", zap.String("path", g.watcher.Path()))
}

// Close cleans up demo resources.
func (g *Game) Close() {
	logger.Info("closing demo")

	if g.watcher != nil {
		g.watcher.Close()
		g.watcher = nil
	}
	if g.orchestrator != nil {
		g.orchestrator.Close()
		g.orchestrator = nil
	}
	for _, t := range g.textures {
		if d, ok := t.(interface{ Delete() }); ok {
			d.Delete()
		}
	}
	g.textures = nil
	if g.device != nil {
		g.device.Close()
		g.device = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
	g.assets.Close()
}
