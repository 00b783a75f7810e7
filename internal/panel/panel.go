// Package panel is the Dear ImGui front end: the car scene drawn on a
// full-window canvas with a small control window for the turning radius and
// the destination ghost.
package panel

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/movingcar/internal/config"
	"github.com/Faultbox/movingcar/internal/engine/gesture"
	"github.com/Faultbox/movingcar/internal/logger"
	"github.com/Faultbox/movingcar/internal/scene"
	"github.com/Faultbox/movingcar/pkg/math"
)

const title = "Moving Car"

// Panel owns the ImGui backend and the scene it drives.
type Panel struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	scene   *scene.Scene
	style   scene.Style
	taps    *gesture.TapRecognizer
	log     *zap.Logger

	viewport  math.Size
	pressed   bool
	radius    *scene.RadiusControl
	progress  int32
	showGhost bool
}

// New creates the ImGui window.
func New(cfg *config.Config) (*Panel, error) {
	p := &Panel{
		scene:     scene.New(cfg.Vehicle, nil, nil),
		style:     scene.DefaultStyle(),
		taps:      gesture.NewTapRecognizer(),
		log:       logger.Panel.L(),
		showGhost: cfg.Vehicle.ShowDestination,
	}
	p.radius = scene.NewRadiusControl(p.scene.Radius(), cfg.Vehicle.MaxRadius)
	p.progress = int32(p.radius.Progress())

	var err error
	p.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("create backend: %w", err)
	}

	bg := p.style.Background
	p.backend.SetBgColor(imgui.NewVec4(unit(bg.R), unit(bg.G), unit(bg.B), unit(bg.A)))
	p.backend.CreateWindow(title, cfg.Window.Width, cfg.Window.Height)

	p.log.Info("window created",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)
	return p, nil
}

// Run blocks until the window is closed.
func (p *Panel) Run() {
	p.backend.Run(p.render)
}

func (p *Panel) render() {
	vp := imgui.MainViewport()
	pos, size := vp.WorkPos(), vp.WorkSize()

	if s := (math.Size{Width: float64(size.X), Height: float64(size.Y)}); s != p.viewport {
		p.viewport = s
		p.scene.Layout(int(size.X), int(size.Y))
	}

	p.handlePointer(pos)
	p.scene.Update()
	p.drawCanvas(pos, size)
	p.drawControls(pos)
}

// handlePointer feeds left-button edges to the tap recognizer. Clicks that
// land on the control window are left to ImGui.
func (p *Panel) handlePointer(origin imgui.Vec2) {
	mouse := imgui.MousePos()
	x, y := float64(mouse.X-origin.X), float64(mouse.Y-origin.Y)
	now := time.Now()

	down := imgui.IsMouseDown(imgui.MouseButtonLeft)
	switch {
	case down && !p.pressed:
		if !imgui.CurrentIO().WantCaptureMouse() {
			p.taps.Down(x, y, now)
		}
	case down:
		p.taps.Move(x, y)
	case p.pressed:
		if tap, ok := p.taps.Up(x, y, now); ok {
			if err := p.scene.MoveTo(tap.X, tap.Y); err != nil {
				p.log.Warn("move rejected", zap.Error(err))
			}
		}
	}
	p.pressed = down
}

func (p *Panel) drawCanvas(pos, size imgui.Vec2) {
	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)
	imgui.SetNextWindowBgAlpha(0)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	if imgui.BeginV("##Canvas", nil, flags) {
		drawList := imgui.WindowDrawList()
		for _, s := range p.scene.Frame().Shapes(p.style) {
			drawShape(drawList, pos, s)
		}
	}
	imgui.End()
}

func drawShape(drawList *imgui.DrawList, origin imgui.Vec2, s scene.Shape) {
	col := imgui.ColorU32Vec4(imgui.NewVec4(unit(s.Color.R), unit(s.Color.G), unit(s.Color.B), unit(s.Color.A)))
	at := func(i int) imgui.Vec2 {
		return imgui.NewVec2(origin.X+float32(s.Points[i].X), origin.Y+float32(s.Points[i].Y))
	}

	if len(s.Points) == 4 {
		drawList.AddQuadFilled(at(0), at(1), at(2), at(3), col)
		return
	}
	for i := 1; i+1 < len(s.Points); i++ {
		drawList.AddTriangleFilled(at(0), at(i), at(i+1), col)
	}
}

func (p *Panel) drawControls(pos imgui.Vec2) {
	imgui.SetNextWindowPos(imgui.NewVec2(pos.X+10, pos.Y+10))
	imgui.SetNextWindowBgAlpha(0.85)

	flags := imgui.WindowFlagsNoResize | imgui.WindowFlagsNoMove |
		imgui.WindowFlagsAlwaysAutoResize | imgui.WindowFlagsNoCollapse

	if imgui.BeginV("Controls", nil, flags) {
		if imgui.SliderIntV("Radius", &p.progress, 0, 100, "%d%%", imgui.SliderFlagsNone) {
			p.radius.Drag(int(p.progress))
		}
		if imgui.IsItemDeactivatedAfterEdit() {
			if r, changed := p.radius.Commit(); changed {
				p.scene.SetRadius(r)
			}
		}
		imgui.Text(fmt.Sprintf("radius %d", p.radius.Pending()))

		if imgui.Checkbox("Show destination", &p.showGhost) {
			p.scene.SetShowDestination(p.showGhost)
		}

		pose := p.scene.Pose()
		imgui.Text(fmt.Sprintf("car %.0f, %.0f  %.0f deg", pose.X, pose.Y, pose.Degrees()))
	}
	imgui.End()
}

func unit(v uint8) float32 {
	return float32(v) / 255
}
