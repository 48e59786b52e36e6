package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ortho-arena/internal/core"
	"github.com/vovakirdan/ortho-arena/internal/inventory"
	"github.com/vovakirdan/ortho-arena/internal/sim"
)

// hudRows is the number of terminal rows reserved below the arena.
const hudRows = 3

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps the arena floor (centered on the origin, X east, Z south)
// onto a rectangle of screen cells.
type Viewport struct {
	Area         core.Rect
	Width, Depth float64
}

// Cell returns the screen cell for a floor point and whether it is inside
// the area.
func (v Viewport) Cell(p sim.Point) (x, y int, ok bool) {
	if v.Width <= 0 || v.Depth <= 0 || v.Area.W <= 0 || v.Area.H <= 0 {
		return 0, 0, false
	}
	fx := (p.X + v.Width/2) / v.Width
	fz := (p.Z + v.Depth/2) / v.Depth
	x = v.Area.X + int(math.Round(fx*float64(v.Area.W-1)))
	y = v.Area.Y + int(math.Round(fz*float64(v.Area.H-1)))
	return x, y, v.Area.Contains(x, y)
}

// DrawArena draws a top-down view of the snapshot into area.
func DrawArena(screen *core.Screen, area core.Rect, snap sim.Snapshot) {
	vp := Viewport{Area: area, Width: snap.Width, Depth: snap.Depth}

	for _, o := range snap.Obstacles {
		x0, y0, _ := vp.Cell(o.Min)
		x1, y1, _ := vp.Cell(o.Max)
		x0, x1 = core.Clamp(x0, area.X, area.Right()), core.Clamp(x1, area.X-1, area.Right()-1)
		y0, y1 = core.Clamp(y0, area.Y, area.Bottom()), core.Clamp(y1, area.Y-1, area.Bottom()-1)
		screen.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), '#', core.ColorGray)
	}

	for _, l := range snap.Loot {
		if x, y, ok := vp.Cell(l.Pos); ok {
			glyph := l.Glyph
			if glyph == 0 {
				glyph = '?'
			}
			screen.SetWithColor(x, y, glyph, l.Color)
		}
	}

	for _, p := range snap.Projectiles {
		if x, y, ok := vp.Cell(p.Pos); ok {
			screen.SetWithColor(x, y, '*', core.ColorBrightYellow)
		}
	}

	px, py, ok := vp.Cell(snap.Player)
	if !ok {
		return
	}
	// Facing marker one cell ahead of the player.
	fx, fy := px+sign(snap.Facing.X), py+sign(snap.Facing.Z)
	if (fx != px || fy != py) && area.Contains(fx, fy) {
		screen.SetWithColor(fx, fy, facingGlyph(snap.Facing), core.ColorBrightCyan)
	}
	screen.SetWithColor(px, py, '@', core.ColorBrightGreen)
}

func sign(v float64) int {
	switch {
	case v > 0.38:
		return 1
	case v < -0.38:
		return -1
	}
	return 0
}

func facingGlyph(f sim.Point) rune {
	dx, dz := sign(f.X), sign(f.Z)
	switch {
	case dx == 0:
		return '|'
	case dz == 0:
		return '-'
	case dx == dz:
		return '\\'
	default:
		return '/'
	}
}

var (
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func weaponLabel(w *inventory.WeaponView) string {
	if w == nil {
		return "empty"
	}
	ammo := "inf"
	if w.AmmoTracked {
		ammo = fmt.Sprintf("%d/%d", w.Ammo, w.Magazine)
	}
	return fmt.Sprintf("%s %s (%s) +%d", w.Name, ammo, w.FireMode, w.Reserve)
}

// RenderHUD renders the status lines shown under the arena.
func RenderHUD(snap sim.Snapshot, status string, paused bool, width int) string {
	lo := snap.Loadout

	selected := "> " + weaponLabel(lo.Selected)
	if snap.Burst > 0 {
		selected += fmt.Sprintf(" [burst %d]", snap.Burst)
	}
	weapons := selectedStyle.Render(selected) +
		dimStyle.Render("   "+weaponLabel(lo.Unselected))

	stacks := make([]string, 0, len(lo.Stacks))
	for _, s := range lo.Stacks {
		stacks = append(stacks, fmt.Sprintf("%s %d/%d", s.Name, s.Count, s.Max))
	}
	bag := fmt.Sprintf("bag [%d/%d] %s", len(lo.Stacks), lo.Capacity, strings.Join(stacks, ", "))

	line3 := fmt.Sprintf("tick %d  shots %d  hits %d", snap.Tick, snap.Stats.Shots, snap.Stats.Hits)
	if snap.Nearby != "" {
		line3 += "  E: pick up " + snap.Nearby
	}
	if paused {
		line3 += "  PAUSED (p resume, b menu)"
	}
	if status != "" {
		line3 += "  " + statusStyle.Render(status)
	}

	return lipgloss.NewStyle().MaxWidth(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, weapons, hudStyle.Render(bag), hudStyle.Render(line3)),
	)
}
