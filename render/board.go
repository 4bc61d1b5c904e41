package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/card-grove/component"
	"github.com/lixenwraith/card-grove/core"
	"github.com/lixenwraith/card-grove/engine"
)

var (
	styleWoods    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEnemies  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSlot     = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleSlotHot  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleVillager = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkBlue)
	styleResource = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorDarkGoldenrod)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed)
	styleHeld     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	styleBar      = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHearts   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// BoardRenderer paints the world state onto a tcell screen each frame
// It only reads the world; all mutation happens in the systems
type BoardRenderer struct {
	screen tcell.Screen
	camera Camera
	world  *engine.World
}

func NewBoardRenderer(screen tcell.Screen, world *engine.World) *BoardRenderer {
	w, h := screen.Size()
	return &BoardRenderer{
		screen: screen,
		camera: NewCamera(w, h),
		world:  world,
	}
}

// Camera exposes the projection for input hit-testing
func (r *BoardRenderer) Camera() Camera {
	return r.camera
}

// Resize re-centers the projection on the new screen size
func (r *BoardRenderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, h)
}

// Draw renders one frame: tiles first, then progress bars, then cards
// back to front by depth so the held card paints on top
func (r *BoardRenderer) Draw() {
	r.screen.Clear()
	r.drawTiles()
	r.drawProgress()
	r.drawCards()
	r.drawStatus()
	r.screen.Show()
}

func (r *BoardRenderer) drawTiles() {
	w := r.world
	cfg := w.Resources.Config.Tiles
	half := cfg.Size / 2
	slotHalf := cfg.SlotHalf()

	for _, e := range w.Components.Tile.All() {
		tile, _ := w.Components.Tile.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}

		style := styleWoods
		if tile.Kind == component.TileEnemies {
			style = styleEnemies
		}
		r.drawBox(pos.Pos, half, half, style)

		if tile.HasSlot() {
			slotStyle := styleSlot
			if w.Resources.Selection.HoveredTile == e &&
				w.Resources.Selection.Selected != core.NoEntity {
				slotStyle = styleSlotHot
			}
			r.drawBox(pos.Pos, slotHalf.X, slotHalf.Y, slotStyle)
		}
	}
}

func (r *BoardRenderer) drawProgress() {
	w := r.world
	for _, e := range w.Components.Progress.All() {
		pc, _ := w.Components.Progress.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}

		const barCells = 9
		col, row := r.camera.WorldToScreen(pos.Pos)
		filled := int(pc.Timer.Fraction() * float64(barCells))
		for i := 0; i < barCells; i++ {
			ch := '░'
			if i < filled {
				ch = '█'
			}
			r.screen.SetContent(col-barCells/2+i, row, ch, nil, styleBar)
		}
	}
}

func (r *BoardRenderer) drawCards() {
	w := r.world

	cards := w.Components.Card.All()
	order := make([]core.Entity, len(cards))
	copy(order, cards)
	sort.Slice(order, func(i, j int) bool {
		pi, _ := w.Components.Position.Get(order[i])
		pj, _ := w.Components.Position.Get(order[j])
		return pi.Depth < pj.Depth
	})

	for _, e := range order {
		card, _ := w.Components.Card.Get(e)
		pos, ok := w.Components.Position.Get(e)
		if !ok {
			continue
		}

		style := cardStyle(card.Type)
		if w.Resources.Selection.IsSelected(e) {
			style = styleHeld
		}

		col, row := r.camera.WorldToScreen(pos.Pos)
		cellsW := core.CardColliderHalfX * cellsPerUnitX
		cellsH := core.CardColliderHalfY * cellsPerUnitY
		halfW := int(cellsW)
		halfH := int(cellsH)
		for dy := -halfH; dy <= halfH; dy++ {
			for dx := -halfW; dx <= halfW; dx++ {
				r.screen.SetContent(col+dx, row+dy, ' ', nil, style)
			}
		}
		r.screen.SetContent(col, row-1, cardGlyph(card.Type), nil, style)

		// Hearts along the bottom edge for anything that fights
		if card.MaxHealth > 0 {
			for i := 0; i < card.Health; i++ {
				r.screen.SetContent(col-card.Health/2+i, row+halfH, '♥', nil,
					styleHearts.Background(backgroundOf(style)))
			}
		}
	}
}

func (r *BoardRenderer) drawStatus() {
	w := r.world
	msg := "card-grove  drag cards with the mouse, q or esc quits"
	if w.Resources.Selection.Selected != core.NoEntity {
		if card, ok := w.Components.Card.Get(w.Resources.Selection.Selected); ok {
			msg = "holding " + card.Type.String()
		}
	}
	for i, ch := range msg {
		r.screen.SetContent(1+i, 0, ch, nil, styleStatus)
	}
}

// drawBox paints the border of a world-space rectangle
func (r *BoardRenderer) drawBox(center core.Vec2, halfX, halfY float64, style tcell.Style) {
	x0, y0 := r.camera.WorldToScreen(core.Vec2{X: center.X - halfX, Y: center.Y + halfY})
	x1, y1 := r.camera.WorldToScreen(core.Vec2{X: center.X + halfX, Y: center.Y - halfY})

	for col := x0; col <= x1; col++ {
		r.screen.SetContent(col, y0, '─', nil, style)
		r.screen.SetContent(col, y1, '─', nil, style)
	}
	for row := y0; row <= y1; row++ {
		r.screen.SetContent(x0, row, '│', nil, style)
		r.screen.SetContent(x1, row, '│', nil, style)
	}
	r.screen.SetContent(x0, y0, '┌', nil, style)
	r.screen.SetContent(x1, y0, '┐', nil, style)
	r.screen.SetContent(x0, y1, '└', nil, style)
	r.screen.SetContent(x1, y1, '┘', nil, style)
}

func cardStyle(t core.CardType) tcell.Style {
	switch t.Class() {
	case core.ClassVillager:
		return styleVillager
	case core.ClassEnemy:
		return styleEnemy
	default:
		return styleResource
	}
}

func cardGlyph(t core.CardType) rune {
	switch t {
	case core.CardVillager:
		return 'V'
	case core.CardLog:
		return 'L'
	case core.CardGoblin:
		return 'G'
	default:
		return '?'
	}
}

func backgroundOf(s tcell.Style) tcell.Color {
	_, bg, _ := s.Decompose()
	return bg
}
