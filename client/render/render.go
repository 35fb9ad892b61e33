package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/cbodonnell/lanes/client/effects"
	"github.com/cbodonnell/lanes/client/fonts"
	"github.com/cbodonnell/lanes/pkg/game/constants"
	"github.com/cbodonnell/lanes/pkg/log"
	"github.com/cbodonnell/lanes/pkg/renderstate"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	ScreenWidth  = int(constants.ArenaWidth)
	ScreenHeight = int(constants.ArenaHeight)

	baseSize     = 80
	towerSize    = 64
	minionSize   = 32
	playerSize   = 48
	minimapSize  = 100
	minimapInset = 10
	healthBarW   = 40
	healthBarH   = 5
)

var (
	colorBackground = color.RGBA{34, 68, 34, 255}
	colorLane       = color.RGBA{120, 100, 70, 255}
	colorHealthBack = color.RGBA{200, 0, 0, 255}
	colorHealthFill = color.RGBA{0, 200, 60, 255}
	colorCooldown   = color.RGBA{0, 0, 0, 128}
	colorMinimap    = color.RGBA{0, 0, 0, 160}
	colorLocal      = color.RGBA{60, 120, 255, 255}
	colorRemote     = color.RGBA{230, 60, 60, 255}
	colorMinion     = color.RGBA{60, 220, 60, 255}
	colorDamage     = color.RGBA{255, 220, 60, 255}
)

var teamColors = []color.RGBA{
	{70, 130, 230, 255},
	{220, 80, 80, 255},
}

func teamColor(team int32) color.RGBA {
	if team < 0 || int(team) >= len(teamColors) {
		return color.RGBA{180, 180, 180, 255}
	}
	return teamColors[team]
}

// Renderer draws the render state every frame. It only reads from the store.
type Renderer struct {
	store         *renderstate.Store
	localPlayerID int
	damage        *effects.DamageTracker
}

func NewRenderer(store *renderstate.Store) *Renderer {
	return &Renderer{
		store: store,
		damage: effects.NewDamageTracker(effects.NewDamageTrackerOptions{
			PlayerOffset: playerSize / 2,
			TowerOffset:  towerSize / 2,
			BaseOffset:   baseSize / 2,
		}),
	}
}

// SetLocalPlayer sets the player that is highlighted and whose cooldown is shown.
func (r *Renderer) SetLocalPlayer(playerID int) {
	r.localPlayerID = playerID
}

// Update advances the damage text. It is called once per tick while a match is running.
func (r *Renderer) Update() {
	r.damage.Update(r.store.Snapshot(), 1000/ebiten.TPS())
}

func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	vector.DrawFilledRect(screen, 0, constants.LaneY-30, constants.ArenaWidth, 60, colorLane, false)

	if r.store.State() != renderstate.LifecycleReady {
		return
	}

	snapshot := r.store.Snapshot()
	for _, b := range snapshot.Bases {
		r.drawStructure(screen, b, baseSize)
	}
	for _, t := range snapshot.Towers {
		r.drawStructure(screen, t, towerSize)
	}
	for _, m := range snapshot.Minions {
		x, y := m.Position.X, m.Position.Y
		vector.DrawFilledCircle(screen, x, y, minionSize/2, teamColor(m.Team), true)
	}
	for id, p := range snapshot.Players {
		r.drawPlayer(screen, id, p)
	}
	for _, d := range r.damage.Texts() {
		drawCenteredText(screen, d.Text, fonts.LabelFace, d.X, d.Y, colorDamage)
	}

	r.drawAbility(screen)
	r.drawMinimap(screen, snapshot)
}

func (r *Renderer) drawStructure(screen *ebiten.Image, s renderstate.Structure, size float32) {
	x, y := s.Position.X-size/2, s.Position.Y-size/2
	vector.DrawFilledRect(screen, x, y, size, size, teamColor(s.Team), false)
	vector.StrokeRect(screen, x, y, size, size, 2, color.Black, false)
	label := fmt.Sprintf("%d", s.Health)
	drawCenteredText(screen, label, fonts.LabelFace, s.Position.X, y-4, color.White)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, id int, p renderstate.Player) {
	x, y := p.Position.X, p.Position.Y
	outline := colorRemote
	if id == r.localPlayerID {
		outline = colorLocal
	}
	vector.DrawFilledCircle(screen, x, y, playerSize/2, teamColor(p.Team), true)
	vector.StrokeCircle(screen, x, y, playerSize/2, 3, outline, true)

	// health bar above the champion
	fraction := float32(p.Health) / float32(constants.PlayerMaxHealth)
	fraction = float32(math.Max(0, math.Min(1, float64(fraction))))
	vector.DrawFilledRect(screen, x-healthBarW/2, y-30, healthBarW, healthBarH, colorHealthBack, false)
	vector.DrawFilledRect(screen, x-healthBarW/2, y-30, healthBarW*fraction, healthBarH, colorHealthFill, false)
}

func (r *Renderer) drawAbility(screen *ebiten.Image) {
	cooldown, err := r.store.AbilityCooldown(r.localPlayerID)
	if err != nil {
		log.Trace("Failed to read ability cooldown: %v", err)
		return
	}
	vector.StrokeRect(screen, 10, 50, 50, 50, 2, color.White, false)
	text.Draw(screen, "Q", fonts.ButtonFace, 28, 82, color.White)
	if cooldown <= 0 {
		return
	}
	// the shade shrinks as the cooldown runs out
	fraction := float32(math.Min(1, float64(cooldown)/float64(constants.AbilityCooldownTicks)))
	vector.DrawFilledRect(screen, 10, 50+50*(1-fraction), 50, 50*fraction, colorCooldown, false)
	seconds := int(math.Ceil(float64(cooldown) / float64(constants.TicksPerSecond)))
	text.Draw(screen, fmt.Sprintf("%ds", seconds), fonts.LabelFace, 22, 66, color.White)
}

func (r *Renderer) drawMinimap(screen *ebiten.Image, snapshot renderstate.Snapshot) {
	left := float32(ScreenWidth - minimapSize - minimapInset)
	top := float32(minimapInset)
	vector.DrawFilledRect(screen, left, top, minimapSize, minimapSize, colorMinimap, false)

	toMinimap := func(x, y float32) (float32, float32) {
		return left + x/constants.ArenaWidth*minimapSize, top + y/constants.ArenaHeight*minimapSize
	}
	for id, p := range snapshot.Players {
		if !renderstate.ArenaBounds.Contains(p.Position) {
			continue
		}
		x, y := toMinimap(p.Position.X, p.Position.Y)
		c := colorRemote
		if id == r.localPlayerID {
			c = colorLocal
		}
		vector.DrawFilledRect(screen, x-2, y-2, 4, 4, c, false)
	}
	for _, m := range snapshot.Minions {
		if !renderstate.ArenaBounds.Contains(m.Position) {
			continue
		}
		x, y := toMinimap(m.Position.X, m.Position.Y)
		vector.DrawFilledRect(screen, x-1, y-1, 2, 2, colorMinion, false)
	}
}

func drawCenteredText(screen *ebiten.Image, s string, face font.Face, x float32, y float32, clr color.Color) {
	bounds, _ := font.BoundString(face, s)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	text.Draw(screen, s, face, int(x)-width/2, int(y), clr)
}
