package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/kadewils/slashrush/internal/gesture"
)

const (
	screenWidth  = 1280
	screenHeight = 720

	// celebrationTicks is how long the recognized-shape banner stays up.
	celebrationTicks = 90

	tickDuration = time.Second / 60
)

// categoryColors maps each recognized shape to its celebration colour.
var categoryColors = map[gesture.Category]color.RGBA{
	gesture.Circle:     {R: 255, G: 215, B: 0, A: 255},   // gold
	gesture.Horizontal: {R: 80, G: 200, B: 255, A: 255},  // cyan
	gesture.Vertical:   {R: 80, G: 200, B: 255, A: 255},  // cyan
	gesture.SlashDown:  {R: 255, G: 120, B: 60, A: 255},  // orange
	gesture.SlashUp:    {R: 255, G: 120, B: 60, A: 255},  // orange
	gesture.Zigzag:     {R: 200, G: 80, B: 255, A: 255},  // purple
	gesture.Straight:   {R: 180, G: 220, B: 180, A: 255}, // pale green
}

// Game is the ebiten shell: it captures cursor samples, hands completed
// gestures to the session, and renders targets, the live trail, and the HUD.
type Game struct {
	session *Session
	score   *ScoreKeeper
	feed    *Feed
	targets *TargetField

	showHUD  bool
	prevKeys map[ebiten.Key]bool

	// Celebration banner for the last recognized gesture.
	lastResult gesture.Result
	lastHits   int
	bannerLeft int
}

// New assembles the game. Threshold validation happens here, at the
// composition root: a bad tuning record is a startup failure, not something
// the classifiers deal with per slash.
func New(seed int64) *Game {
	th := gesture.DefaultThresholds()
	if err := th.Validate(); err != nil {
		log.Fatalf("gesture thresholds: %v", err)
	}
	score := NewScoreKeeper()
	feed := NewFeed()
	rec := gesture.New(gesture.WithThresholds(th))
	return &Game{
		session:  NewSession(th, rec, score, feed),
		score:    score,
		feed:     feed,
		targets:  NewTargetField(screenWidth, screenHeight, seed),
		showHUD:  true,
		prevKeys: make(map[ebiten.Key]bool),
	}
}

func (g *Game) Update() error {
	g.handleKeys()

	g.targets.Advance(tickDuration.Seconds())

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	res, done := g.session.Advance(tickDuration, pressed, float64(mx), float64(my))
	if done && res.Category != gesture.None {
		g.lastResult = res
		g.lastHits = g.targets.SlashHits(res.Points)
		g.bannerLeft = celebrationTicks
	}
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}
	return nil
}

// handleKeys processes edge-triggered debug keys: H toggles the HUD, C
// copies the session report to the clipboard.
func (g *Game) handleKeys() {
	for _, k := range []ebiten.Key{ebiten.KeyH, ebiten.KeyC} {
		down := ebiten.IsKeyPressed(k)
		if down && !g.prevKeys[k] {
			switch k {
			case ebiten.KeyH:
				g.showHUD = !g.showHUD
			case ebiten.KeyC:
				if err := g.session.CopyReport(); err != nil {
					log.Printf("clipboard: %v", err)
				}
			}
		}
		g.prevKeys[k] = down
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Backdrop.
	vector.FillRect(screen, 0, 0, screenWidth, screenHeight,
		color.RGBA{R: 16, G: 18, B: 26, A: 255}, false)

	g.drawTargets(screen)
	g.drawTrail(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
	g.drawBanner(screen)
}

func (g *Game) drawTargets(screen *ebiten.Image) {
	for _, t := range g.targets.Targets() {
		x := float32(t.X)
		y := float32(t.Y)
		r := float32(t.R)
		// Soft glow under a solid core.
		vector.FillCircle(screen, x, y, r+5, color.RGBA{R: 120, G: 40, B: 40, A: 70}, false)
		vector.FillCircle(screen, x, y, r, color.RGBA{R: 210, G: 70, B: 70, A: 255}, false)
		vector.FillCircle(screen, x, y, r*0.45, color.RGBA{R: 255, G: 170, B: 150, A: 255}, false)
	}
}

func (g *Game) drawTrail(screen *ebiten.Image) {
	pts := g.session.TrailPoints()
	if len(pts) < 2 {
		return
	}
	trailCol := color.RGBA{R: 240, G: 240, B: 255, A: 220}
	for i := 1; i < len(pts); i++ {
		// Older segments thin out toward the tail.
		w := 1.0 + 2.5*float32(i)/float32(len(pts))
		vector.StrokeLine(screen,
			float32(pts[i-1].X), float32(pts[i-1].Y),
			float32(pts[i].X), float32(pts[i].Y),
			w, trailCol, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("score: %d  combo: x%d  popped: %d", g.score.Total, g.score.Combo, g.targets.Popped),
		8, 8)
	ebitenutil.DebugPrintAt(screen, "[H] hud  [C] copy report", 8, 24)

	for i, e := range g.feed.Recent() {
		ebitenutil.DebugPrintAt(screen, e.String(), 8, 48+i*14)
	}
}

func (g *Game) drawBanner(screen *ebiten.Image) {
	if g.bannerLeft <= 0 || g.lastResult.Category == gesture.None {
		return
	}
	col, ok := categoryColors[g.lastResult.Category]
	if !ok {
		col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	label := fmt.Sprintf("%s!  %.0f%%", g.lastResult.Category, g.lastResult.Confidence*100)
	if g.lastHits > 0 {
		label += fmt.Sprintf("  (%d hit)", g.lastHits)
	}
	bx := float32(screenWidth/2 - 70)
	by := float32(60)
	vector.FillRect(screen, bx-8, by-4, 180, 22, color.RGBA{R: 0, G: 0, B: 0, A: 160}, false)
	vector.StrokeRect(screen, bx-8, by-4, 180, 22, 1.0, col, false)
	ebitenutil.DebugPrintAt(screen, label, int(bx), int(by))

	// Circle results carry their fitted center and radius; echo them back
	// as a ring so the player sees what the recognizer saw.
	if g.lastResult.Category == gesture.Circle {
		vector.StrokeCircle(screen,
			float32(g.lastResult.Center.X), float32(g.lastResult.Center.Y),
			float32(g.lastResult.Radius), 2.0, col, false)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
