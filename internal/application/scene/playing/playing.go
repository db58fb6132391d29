// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/younwookim/stride/internal/application/scene"
	"github.com/younwookim/stride/internal/application/session"
	"github.com/younwookim/stride/internal/application/system"
	"github.com/younwookim/stride/internal/domain/entity"
	"github.com/younwookim/stride/internal/domain/vecmath"
	"github.com/younwookim/stride/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorFloor    = color.RGBA{40, 40, 60, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorPlatform = color.RGBA{70, 110, 90, 255}
	colorPatrol   = color.RGBA{200, 100, 100, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorAirborne = color.RGBA{200, 200, 100, 255}
	colorFacing   = color.RGBA{255, 255, 255, 255}
	colorCamera   = color.RGBA{100, 100, 200, 255}
)

// Playing is the main gameplay scene
type Playing struct {
	session  *session.Session
	levelCfg *config.LevelConfig
	log      *zap.Logger
	input    *system.KeyboardInput
	paused   bool

	screenW int
	screenH int
	ppu     float64

	// Hot reload
	loader  *config.Loader
	watcher *config.Watcher

	// Input recording
	recorder       *Recorder
	recordFilename string
}

// New creates a new Playing scene around sess.
// If recordPath is not empty, gameplay will be recorded.
func New(sess *session.Session, levelCfg *config.LevelConfig, log *zap.Logger, recordPath string) *Playing {
	if log == nil {
		log = zap.NewNop()
	}
	display := sess.Config().Display

	p := &Playing{
		session:        sess,
		levelCfg:       levelCfg,
		log:            log,
		input:          system.NewKeyboardInput(),
		screenW:        display.ScreenWidth,
		screenH:        display.ScreenHeight,
		ppu:            display.PixelsPerUnit,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(levelCfg.ID, display.Framerate)
		log.Info("recording enabled", zap.String("path", recordPath))
	}
	return p
}

// EnableHotReload applies config changes reported by watcher, read back through loader
func (p *Playing) EnableHotReload(loader *config.Loader, watcher *config.Watcher) {
	p.loader = loader
	p.watcher = watcher
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	p.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := p.restart(); err != nil {
			return nil, err
		}
	}

	if err := p.stepFrame(p.input.GetInput(), dt); err != nil {
		return nil, err
	}
	return nil, nil // nil = stay on this scene
}

// stepFrame advances the session and records the frame as it was simulated
func (p *Playing) stepFrame(input system.InputState, dt float64) error {
	if _, err := p.session.Step(input, dt); err != nil {
		return err
	}
	if p.recorder != nil {
		cam := p.session.Camera()
		p.recorder.RecordFrame(input, cam.Yaw, cam.Pitch)
	}
	return nil
}

func (p *Playing) pollReload() {
	if p.watcher == nil {
		return
	}
	for {
		path, ok := p.watcher.Poll()
		if !ok {
			return
		}
		p.reload(path)
	}
}

// reload re-reads the changed file. A failed reload keeps the running config.
func (p *Playing) reload(path string) {
	if p.loader == nil {
		return
	}

	if filepath.Base(path) == config.GameFile {
		cfg, err := p.loader.LoadGame()
		if err != nil {
			p.log.Warn("config reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		if err := p.session.Reconfigure(cfg); err != nil {
			p.log.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
			return
		}
		p.log.Info("config reloaded", zap.String("path", path))
		return
	}

	if filepath.Base(path) != p.levelCfg.ID+".yaml" {
		return
	}
	levelCfg, err := p.loader.LoadLevel(p.levelCfg.ID)
	if err != nil {
		p.log.Warn("level reload failed", zap.String("path", path), zap.Error(err))
		return
	}
	p.levelCfg = levelCfg
	if err := p.restart(); err != nil {
		p.log.Warn("level reload rejected", zap.String("path", path), zap.Error(err))
		return
	}
	p.log.Info("level reloaded", zap.String("level", levelCfg.ID))
}

// restart rebuilds the session at the level spawn with the current config
func (p *Playing) restart() error {
	sess, err := session.New(p.session.Config(), p.levelCfg, p.log)
	if err != nil {
		return err
	}
	p.session = sess

	if p.recordFilename != "" {
		p.recorder = NewRecorder(p.levelCfg.ID, p.session.Config().Display.Framerate)
		p.log.Info("recording restarted")
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.Error("failed to save recording", zap.Error(err))
	} else {
		p.log.Info("recording saved", zap.String("path", filename), zap.Int("frames", p.recorder.FrameCount()))
	}
}

// toScreen maps a world point to a north-up view centred on the character
func (p *Playing) toScreen(x, z float64) (float32, float32) {
	pos := p.session.Position()
	sx := float64(p.screenW)/2 + (x-pos.X)*p.ppu
	sy := float64(p.screenH)/2 - (z-pos.Z)*p.ppu
	return float32(sx), float32(sy)
}

func (p *Playing) drawBox(screen *ebiten.Image, b entity.Box, c color.Color) {
	x0, y0 := p.toScreen(b.MinX, b.MaxZ)
	x1, y1 := p.toScreen(b.MaxX, b.MinZ)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, c, false)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	level := p.session.Level()
	p.drawBox(screen, level.Bounds, colorFloor)
	for _, plat := range level.Platforms {
		p.drawBox(screen, plat.Box, platformColor(plat.Height))
	}
	for _, wall := range level.Walls {
		p.drawBox(screen, wall, colorWall)
	}
	p.drawPatrols(screen, level)
	p.drawPlayer(screen)
	p.drawUI(screen)

	if p.paused {
		p.drawPauseOverlay(screen)
	}
}

// platformColor brightens with height
func platformColor(h float64) color.RGBA {
	c := colorPlatform
	lift := uint8(vecmath.Clamp01(h/3) * 100)
	c.R += lift
	c.G += lift
	c.B += lift
	return c
}

func (p *Playing) drawPatrols(screen *ebiten.Image, level *entity.Level) {
	r := float32(p.session.Config().Character.Radius * p.ppu)
	for _, patrol := range level.Patrols {
		x, y := p.toScreen(patrol.Position.X, patrol.Position.Z)
		vector.DrawFilledCircle(screen, x, y, r, colorPatrol, true)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image) {
	pos := p.session.Position()
	last := p.session.Last()
	r := p.session.Config().Character.Radius * p.ppu

	c := colorPlayer
	if !last.Grounded {
		c = colorAirborne
	}
	x, y := p.toScreen(pos.X, pos.Z)
	vector.DrawFilledCircle(screen, x, y, float32(r), c, true)

	// Facing
	f := last.Facing.Forward()
	fx, fy := p.toScreen(pos.X+f.X*1.5*p.session.Config().Character.Radius, pos.Z+f.Z*1.5*p.session.Config().Character.Radius)
	vector.StrokeLine(screen, x, y, fx, fy, 2, colorFacing, true)

	// Camera forward, flattened
	cam := p.session.Camera().Forward()
	cam.Y = 0
	cam = cam.Normalize()
	cx, cy := p.toScreen(pos.X+cam.X*3, pos.Z+cam.Z*3)
	vector.StrokeLine(screen, x, y, cx, cy, 1, colorCamera, false)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	last := p.session.Last()
	motion := p.session.Controller().Motion()
	stats := p.session.Stats()
	pos := p.session.Position()

	status := fmt.Sprintf("%s  speed %.2f  blend %.2f\ngrounded %t  falling %t  y %.2f\njumps %d  falls %d  landings %d  emotes %d",
		last.State, motion.CurrentSpeed, last.SpeedBlend,
		last.Grounded, last.IsFalling, pos.Y,
		stats.Jumps, stats.Falls, stats.Landings, stats.Emotes)
	ebitenutil.DebugPrintAt(screen, status, 10, p.screenH-50)

	// Controls
	debugText := "WASD: Move | Shift: Run | Space: Jump | B: Emote | Q/E: Turn | R: Restart | ESC: Pause"
	ebitenutil.DebugPrint(screen, debugText)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	// Semi-transparent overlay
	overlay := color.RGBA{0, 0, 0, 128}
	vector.DrawFilledRect(screen, 0, 0, float32(p.screenW), float32(p.screenH), overlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

// OnEnter is called when entering this scene (implements scene.Scene)
func (p *Playing) OnEnter() {
	p.log.Debug("playing scene entered", zap.String("level", p.session.Level().Name))
}

// OnExit is called when leaving this scene (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.recorder != nil {
		p.saveRecording()
	}
	if p.watcher != nil {
		_ = p.watcher.Close()
	}
}
