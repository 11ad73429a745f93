package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"glbview/config"
	"glbview/core"
	"glbview/internal/monitor"
	"glbview/internal/opengl"
	"glbview/scene"
	"glbview/viewer"
)

func main() {
	configPath := flag.String("config", "glbview.toml", "path to the TOML config file")
	monitorAddr := flag.String("monitor", "", "serve live stats on this address (overrides config)")
	flag.Parse()

	if err := run(*configPath, *monitorAddr, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, monitorAddr, modelPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if monitorAddr != "" {
		cfg.Monitor.Addr = monitorAddr
	}

	window, err := core.NewWindow(core.WindowConfig{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		Resizable: true,
		VSync:     cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := opengl.NewRenderer()
	if err != nil {
		return err
	}
	defer renderer.Destroy()

	s := buildScene()

	aspect := float32(cfg.Window.Width) / float32(cfg.Window.Height)
	orbit := scene.NewOrbitCamera(
		mgl32.Vec3{0, 0.5, 0},
		cfg.Camera.Distance,
		mgl32.DegToRad(cfg.Camera.FOVDegrees),
		aspect,
	)
	s.SetCamera(&orbit.Camera)

	v := viewer.New(s, window, orbit)
	v.ExportDir = cfg.Viewer.ExportDir
	if len(cfg.Viewer.Palette) > 0 {
		v.Panel.Palette = cfg.Viewer.Palette
	}
	if tint, err := core.ParseHexColor(cfg.Viewer.HighlightTint); err == nil {
		v.Hover.Tint = tint
	} else {
		log.Printf("config: highlight_tint: %v", err)
	}
	defer v.Loader.Close()

	// Upload new textures on install and free the replaced model's buffers.
	var prevModel *scene.Model
	v.OnInstall = func(m *scene.Model) {
		if prevModel != nil {
			for _, root := range prevModel.Roots {
				renderer.ReleaseNodeTree(root)
			}
			for _, tex := range prevModel.Textures {
				opengl.DeleteTexture(tex)
			}
		}
		prevModel = m
		for _, tex := range m.Textures {
			if err := opengl.UploadTexture(tex); err != nil {
				log.Printf("texture %q: %v", tex.Name, err)
			}
		}
	}

	var mon *monitor.Server
	if cfg.Monitor.Addr != "" {
		mon = monitor.NewServer()
		go func() {
			if err := mon.ListenAndServe(cfg.Monitor.Addr); err != nil {
				log.Printf("monitor: %v", err)
			}
		}()
	}

	if modelPath != "" {
		v.OpenModel(modelPath)
	} else {
		fmt.Println("drop a .glb file onto the window to load it")
	}
	printControls()

	lastTime := glfw.GetTime()
	lastStats := lastTime
	frames := 0
	fps := 0.0

	for !window.ShouldClose() {
		window.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		if window.IsKeyPressed(core.KeyEscape) {
			break
		}

		v.Update(dt)

		fbW, fbH := window.GetFramebufferSize()
		renderer.SetViewport(fbW, fbH)
		s.Camera.UpdateAspectRatio(float32(fbW), float32(fbH))

		renderer.BeginFrame(s.SkyColor, s.Lights, s.Ambient, s.Camera.Position)
		renderer.RenderScene(s)
		window.SwapBuffers()

		frames++
		if now-lastStats >= 1.0 {
			fps = float64(frames) / (now - lastStats)
			frames = 0
			lastStats = now
			window.SetTitle(v.StatusLine(fps))
			if mon != nil {
				mon.Publish(snapshot(v, fps))
			}
		}
	}

	return nil
}

// buildScene assembles the backdrop: a reference grid (excluded from
// picking) and a single directional key light.
func buildScene() *scene.Scene {
	s := scene.NewScene()

	grid := scene.NewNode("Grid")
	grid.Mesh = scene.CreateGrid(10, 20)
	grid.Pickable = false
	s.AddNode(grid)

	s.AddLight(&scene.Light{
		Type:      scene.LightTypeDirectional,
		Direction: mgl32.Vec3{0.5, -1, -0.5}.Normalize(),
		Color:     core.ColorWhite,
		Intensity: 0.8,
	})

	return s
}

func snapshot(v *viewer.Viewer, fps float64) monitor.Snapshot {
	stats := v.Stats()
	snap := monitor.Snapshot{
		Vertices:  stats.Vertices,
		Triangles: stats.Triangles,
		Opacity:   v.Panel.Opacity,
		Wireframe: v.Panel.Wireframe,
		FPS:       fps,
	}
	if m := v.Model(); m != nil {
		snap.Model = m.Name
	}
	if h := v.Hover.Current(); h != nil {
		snap.Hovered = h.Name
	}
	if sel := v.Selected(); sel != nil {
		snap.Selected = sel.Name
		snap.BaseColor = v.Panel.BaseColorHex
	}
	return snap
}

func printControls() {
	fmt.Fprintln(os.Stdout, `controls:
  right-drag   orbit          left-click   select hovered object
  middle-drag  pan            Z            toggle wireframe
  scroll       zoom           T            toggle transparency
  R            reset camera   C            cycle base color
  E            export model.glb            0-9  set opacity`)
}
