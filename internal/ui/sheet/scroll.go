package sheet

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/imgajeed76/gridsheet/internal/grid"
	"github.com/imgajeed76/gridsheet/internal/ui/styles"
)

// ═══════════════════════════════════════════════════════════════════════════
// Viewport geometry
// ═══════════════════════════════════════════════════════════════════════════

func (m sheetModel) visibleRowCount() int {
	return max(1, m.height-chromeLines)
}

func (m sheetModel) renderedRows() int {
	return m.engine.Model().RenderBounds().Rows
}

func (m sheetModel) gutterWidth() int {
	return max(3, len(strconv.Itoa(m.renderedRows()))+1)
}

// gridWidth is the width available to data columns.
func (m sheetModel) gridWidth() int {
	return max(1, m.width-m.gutterWidth()-colGap)
}

// colsFit reports whether columns first..last fit side by side.
func (m sheetModel) colsFit(first, last int) bool {
	total := 0
	for i := first; i <= last && i < len(m.colWidths); i++ {
		total += m.colWidths[i] + colGap
	}
	return total <= m.gridWidth()
}

// visibleColEnd returns one past the last column drawn from scrollX. At
// least one column is always drawn.
func (m sheetModel) visibleColEnd() int {
	end := m.scrollX
	for end < len(m.colWidths) && (end == m.scrollX || m.colsFit(m.scrollX, end)) {
		end++
	}
	return end
}

func (m sheetModel) getMaxScrollX() int {
	last := len(m.colWidths) - 1
	for x := 0; x < last; x++ {
		if m.colsFit(x, last) {
			return x
		}
	}
	return max(0, last)
}

func (m sheetModel) getMaxScrollY() int {
	return max(0, m.renderedRows()-m.visibleRowCount())
}

// applyPadding pads the grid with empty rows down to the viewport bottom,
// or to the configured minimum. A shrinking viewport pulls the active cell
// back onto the rendered rows.
func (m *sheetModel) applyPadding() {
	rows := m.opts.PaddingRows
	if rows <= 0 {
		rows = m.visibleRowCount()
	}
	m.engine.Model().SetPadding(rows)
	m.engine.ClampActive()
}

func (m *sheetModel) clampScroll() {
	m.scrollX = clamp(m.scrollX, 0, m.getMaxScrollX())
	m.scrollY = clamp(m.scrollY, 0, m.getMaxScrollY())
	m.animTargetX = clamp(m.animTargetX, 0, m.getMaxScrollX())
	m.animTargetY = clamp(m.animTargetY, 0, m.getMaxScrollY())
}

// ═══════════════════════════════════════════════════════════════════════════
// Scroll Helpers
// ═══════════════════════════════════════════════════════════════════════════

// scrollTo brings c into view. Nothing scrolls when c is already visible.
// Label coordinates only scroll along their data axis.
func (m *sheetModel) scrollTo(c grid.Coordinate) tea.Cmd {
	x, y := m.scrollX, m.scrollY
	if m.animating {
		x, y = m.animTargetX, m.animTargetY
	}

	if c.Row != grid.LabelIndex {
		visible := m.visibleRowCount()
		if c.Row < y {
			y = c.Row
		} else if c.Row >= y+visible {
			y = c.Row - visible + 1
		}
	}

	if c.Col != grid.LabelIndex && c.Col < len(m.colWidths) {
		if c.Col < x {
			x = c.Col
		} else {
			for x < c.Col && !m.colsFit(x, c.Col) {
				x++
			}
		}
	}

	if styles.IsAccessible() {
		m.scrollX = clamp(x, 0, m.getMaxScrollX())
		m.scrollY = clamp(y, 0, m.getMaxScrollY())
		return nil
	}
	return m.startAnimation(x, y)
}

// ═══════════════════════════════════════════════════════════════════════════
// Animation
// ═══════════════════════════════════════════════════════════════════════════

type animTickMsg time.Time

const animationFrameInterval = 16 * time.Millisecond
const animationFraction = 0.25
const animationSnapThreshold = 1

func animTick() tea.Cmd {
	return tea.Tick(animationFrameInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}

func (m *sheetModel) startAnimation(targetX, targetY int) tea.Cmd {
	targetX = clamp(targetX, 0, m.getMaxScrollX())
	targetY = clamp(targetY, 0, m.getMaxScrollY())

	m.animTargetX = targetX
	m.animTargetY = targetY

	if targetX == m.scrollX && targetY == m.scrollY {
		m.animating = false
		return nil
	}

	if !m.animating {
		m.animating = true
		return animTick()
	}

	return nil
}

func (m *sheetModel) updateAnimation() tea.Cmd {
	if !m.animating {
		return nil
	}

	remainingX := m.animTargetX - m.scrollX
	remainingY := m.animTargetY - m.scrollY

	if abs(remainingX) <= animationSnapThreshold && abs(remainingY) <= animationSnapThreshold {
		m.scrollX = m.animTargetX
		m.scrollY = m.animTargetY
		m.animating = false
		return nil
	}

	m.scrollX += animStep(remainingX)
	m.scrollY += animStep(remainingY)

	return animTick()
}

// animStep moves a fraction of the remaining distance, at least one unit.
func animStep(remaining int) int {
	if remaining == 0 {
		return 0
	}
	delta := int(float64(remaining) * animationFraction)
	if delta == 0 {
		if remaining > 0 {
			return 1
		}
		return -1
	}
	return delta
}

// cancelAnimation jumps to the target so key presses never act on a
// half-scrolled viewport.
func (m *sheetModel) cancelAnimation() {
	if m.animating {
		m.scrollX = m.animTargetX
		m.scrollY = m.animTargetY
	}
	m.animating = false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
