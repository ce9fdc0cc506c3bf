package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/andareed/astrodash/logging"
)

type FooterState struct {
	Mode      Command
	ModeInput string

	ViewName string

	FilterLabel string
	Bucket      string

	Row       string
	TotalRows int

	StatusMessage string
	Legend        string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	StatusBG   lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	ViewNameFG lipgloss.Color
	TextFG     lipgloss.Color
	DimFG      lipgloss.Color
	StatusFG   lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		StatusBG:   lipgloss.Color("#000000"),
		ModePillBG: lipgloss.Color(accentColor),
		ModePillFG: lipgloss.Color("#000000"),
		ViewNameFG: lipgloss.Color("#e0e0e0"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		DimFG:      lipgloss.Color("#a0a0a0"),
		StatusFG:   lipgloss.Color("#9a9a9a"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:        m.ui.command.cmd,
		ViewName:    m.dash.Active().Title(),
		FilterLabel: m.filterLabel(),
		Bucket:      m.dash.Bucket(),
		Row:         m.commandRightContext(),
		TotalRows:   len(m.data.visible),
		Legend:      "(? help · / search · [ ] phase · e export · q quit)",
	}

	switch {
	case m.ui.mode == modeCommand:
		st.ModeInput = m.ui.command.buf
		st.StatusMessage = m.activeCommandLine()
		st.Legend = m.commandHintsLine(m.ui.command.cmd)
	case m.ui.noticeMsg != "":
		st.StatusMessage = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.StatusMessage = fmt.Sprintf("%s [rows %d-%d, slider %.1f]",
			st.StatusMessage, m.ui.visibleStart, m.ui.visibleEnd, m.dash.Slider())
	}

	return RenderFooter(width, st, DefaultFooterStyles())
}

func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}
	if st.FilterLabel == "" {
		st.FilterLabel = "None"
	}
	if st.Legend == "" {
		st.Legend = "(? help)"
	}
	if st.Row == "" {
		st.Row = "0/0"
	}
	if st.TotalRows < 0 {
		st.TotalRows = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st FooterState, styles FooterStyles) string {
	gapW := 1
	filterValW := 14
	bucketW := len("Waning Crescent")
	statusFixedW := runewidth.StringWidth(fmt.Sprintf("[FILTER: %s] · [PHASE: %s]", strings.Repeat("X", filterValW), strings.Repeat("X", bucketW)))

	rightPlain := fmt.Sprintf(" Rows %s", st.Row)
	rightPlain = truncatePlain(rightPlain, width)
	rightW := runewidth.StringWidth(rightPlain)

	leftW := max(0, width-rightW)

	modeColW := clamp(leftW/4, 10, 20)
	statusColW := statusFixedW
	viewColW := leftW - modeColW - statusColW - 2*gapW
	if viewColW < 0 {
		deficit := -viewColW
		if statusColW > 10 {
			shrink := min(deficit, statusColW-10)
			statusColW -= shrink
			deficit -= shrink
		}
		if deficit > 0 && modeColW > 6 {
			shrink := min(deficit, modeColW-6)
			modeColW -= shrink
		}
		viewColW = leftW - modeColW - statusColW - 2*gapW
	}
	if viewColW < 0 {
		// No room for the view name: drop the gaps, keep what fits.
		gapW = 0
		viewColW = 0
		statusColW = min(statusColW, leftW)
		modeColW = min(modeColW, leftW-statusColW)
	}

	modeText := commandLabel(st.Mode)
	if pillW := runewidth.StringWidth(modeText) + 2; pillW < modeColW {
		viewColW += modeColW - pillW
		modeColW = pillW
	}

	modeSeg := renderModeSegment(modeColW, st, styles)
	viewSeg := renderViewSegment(viewColW, st, styles)
	statusSeg := renderFilterSegment(statusColW, st, styles, filterValW, bucketW)

	left := modeSeg + strings.Repeat(" ", gapW) + viewSeg + strings.Repeat(" ", gapW) + statusSeg
	if used := modeColW + viewColW + statusColW + 2*gapW; used < leftW {
		left += strings.Repeat(" ", leftW-used)
	}

	return applyBar(left+rightPlain, styles.BarBG, styles.TextFG)
}

func renderStatusBar(width int, st FooterState, styles FooterStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	leftW := max(0, width-runewidth.StringWidth(legendPlain))

	msgPlain := padRightPlain(truncatePlain(st.StatusMessage, leftW), leftW)

	linePlain := applyFG(msgPlain, styles.StatusFG, styles.StatusFG) + applyFG(legendPlain, styles.LegendFG, styles.StatusFG)
	return applyBar(linePlain, styles.StatusBG, styles.StatusFG)
}

func renderModeSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	content := truncatePlain(commandLabel(st.Mode), max(0, colW-2))
	pillPlain := truncatePlain(" "+content+" ", colW)
	pad := strings.Repeat(" ", colW-runewidth.StringWidth(pillPlain))

	pill := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pillPlain
	pill += ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + pad
	return pill
}

func renderViewSegment(colW int, st FooterState, styles FooterStyles) string {
	if colW <= 0 {
		return ""
	}
	remaining := colW
	viewPlain := truncatePlain("▸ "+st.ViewName, remaining)
	remaining -= runewidth.StringWidth(viewPlain)

	inputPlain := ""
	if input := strings.TrimSpace(st.ModeInput); input != "" && remaining > 0 {
		inputPlain = truncatePlain(" ▸ "+input, remaining)
		remaining -= runewidth.StringWidth(inputPlain)
	}

	return applyFG(viewPlain, styles.ViewNameFG, styles.TextFG) + inputPlain + strings.Repeat(" ", max(0, remaining))
}

func renderFilterSegment(colW int, st FooterState, styles FooterStyles, filterValW, bucketW int) string {
	if colW <= 0 {
		return ""
	}
	filterVal := truncatePlain(strings.TrimSpace(st.FilterLabel), filterValW)
	bucket := truncatePlain(st.Bucket, bucketW)

	plain := fmt.Sprintf("[FILTER: %s] · [PHASE: %s]", filterVal, bucket)
	plain = padRightPlain(truncatePlain(plain, colW), colW)
	return applyFG(plain, styles.DimFG, styles.TextFG)
}

func applyBar(s string, bg lipgloss.Color, baseFG lipgloss.Color) string {
	return ansiBg(bg) + ansiFg(baseFG) + s + "\x1b[0m"
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	default:
		return "NORMAL"
	}
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runewidth.StringWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

// truncatePlain cuts s to w terminal cells; wide glyphs count as two.
func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "")
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
