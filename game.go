package main

import (
	"flag"
	"image/color"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/gridduel/config"
	"github.com/zucenko/gridduel/model"
	"github.com/zucenko/gridduel/server"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func hexColor(u uint32) color.RGBA {
	return color.RGBA{R: uint8(u >> 16), G: uint8(u >> 8), B: uint8(u), A: 0xff}
}

var (
	COLOR_FREE    = hexColor(0xf0f0f0)
	COLOR_BLOCKED = hexColor(0xfa3636)
	COLOR_BORDER  = hexColor(0xc8c8c8)
	COLORS        = []color.RGBA{hexColor(0x34fbf6), hexColor(0x321ecc), hexColor(0x0abd38), hexColor(0xcb18dd)}
)

// Game is the window side of a session: it turns clicks into cells and
// draws what the session exposes.
type Game struct {
	Session  *server.GameSession
	CellSize int
	Tweens   map[*gween.Tween]*Action

	font        font.Face
	bannerAlpha float32
	lastUpdate  time.Time
}

func newGame(session *server.GameSession, cellSize int) (*Game, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Session:  session,
		CellSize: cellSize,
		Tweens:   make(map[*gween.Tween]*Action),
		font: truetype.NewFace(tt, &truetype.Options{
			Size:    18,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}
	session.Turn.OnFlip = func(next server.TurnState) {
		g.showBanner()
	}
	g.showBanner()
	return g, nil
}

// showBanner fades the turn label out over a second.
func (g *Game) showBanner() {
	t := gween.New(1, 0, 1, ease.InQuad)
	a := &Action{onChange: func(v float32) { g.bannerAlpha = v }}
	a.addOnFinish(func() { g.bannerAlpha = 0 })
	g.Tweens[t] = a
}

// cellAt maps a cursor position to the grid cell under it.
func (g *Game) cellAt(x, y int) model.Cell {
	return model.Cell{Row: y / g.CellSize, Col: x / g.CellSize}
}

func (g *Game) update(screen *ebiten.Image) error {
	now := time.Now()
	if !g.lastUpdate.IsZero() {
		runTweens(g.Tweens, float32(now.Sub(g.lastUpdate).Seconds()))
	}
	g.lastUpdate = now

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.Session.Click(g.cellAt(ebiten.CursorPosition()), now)
	}
	g.Session.Update(now)

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	g.draw(screen, now)
	return nil
}

func (g *Game) draw(screen *ebiten.Image, now time.Time) {
	e := screen.Fill(color.White)
	if e != nil {
		log.Printf("%v", e)
	}
	grid := g.Session.Grid.Wait()
	size := float64(g.CellSize)
	for r := 0; r < grid.Rows; r++ {
		for c := 0; c < grid.Cols; c++ {
			x, y := float64(c)*size, float64(r)*size
			ebitenutil.DrawRect(screen, x, y, size, size, COLOR_BORDER)
			clr := COLOR_FREE
			if grid.Blocked(model.Cell{Row: r, Col: c}) {
				clr = COLOR_BLOCKED
			}
			ebitenutil.DrawRect(screen, x+1, y+1, size-2, size-2, clr)
		}
	}

	snap := g.Session.Snapshot(now)
	for i, a := range snap.Agents {
		p := float64(a.Progress)
		x := (float64(a.Cell.Col) + float64(a.Next.Col-a.Cell.Col)*p) * size
		y := (float64(a.Cell.Row) + float64(a.Next.Row-a.Cell.Row)*p) * size
		ebitenutil.DrawRect(screen, x+2, y+2, size-4, size-4, COLORS[i%len(COLORS)])
	}

	if g.bannerAlpha > 0 {
		label := server.TurnState(snap.Turn).Name()
		text.Draw(screen, label, g.font, 10, 24, color.RGBA{A: uint8(255 * g.bannerAlpha)})
	}
	ebitenutil.DebugPrintAt(screen, g.Session.State.Name(), 10, grid.Rows*g.CellSize-16)
}

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $GRID_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	session, err := server.Load(cfg)
	if err != nil {
		log.Fatal(err)
	}
	game, err := newGame(session, cfg.CellSize)
	if err != nil {
		log.Fatal(err)
	}
	// random grids are still being generated here; a layout is already published
	rows, cols := cfg.Rows, cfg.Cols
	if session.Grid.Ready() {
		grid := session.Grid.Wait()
		rows, cols = grid.Rows, grid.Cols
	}
	if err := ebiten.Run(game.update, cols*cfg.CellSize, rows*cfg.CellSize, 1, "Grid Duel"); err != nil {
		log.Fatal(err)
	}
}
