package loop

import (
	"fmt"
	"io"

	"github.com/tomz197/slither-sprint/internal/config"
	"github.com/tomz197/slither-sprint/internal/draw"
	"github.com/tomz197/slither-sprint/internal/entity"
	"github.com/tomz197/slither-sprint/internal/match"
	"github.com/tomz197/slither-sprint/internal/settings"
)

// hudRows is the number of text rows reserved below the canvas.
const hudRows = 3

// wallWidth is the logical width of the frame and divider columns.
const wallWidth = 1.0

type renderer struct {
	cw       *draw.ChunkWriter
	canvas   *draw.Canvas
	termSize draw.TermSizeFunc
	cfg      *config.Config

	logicalW float64
	logicalH float64
}

func newRenderer(w io.Writer, termSize draw.TermSizeFunc, cfg *config.Config) *renderer {
	// [wall][pane 1][wall][pane 2][wall]
	logicalW := 2*cfg.PaneWidth + 3*wallWidth
	logicalH := cfg.PaneHeight

	tw, th, err := termSize()
	if err != nil || tw < 10 || th < hudRows+2 {
		tw, th = 80, 24
	}
	return &renderer{
		cw:       draw.NewChunkWriter(w, 0, 0),
		canvas:   draw.NewScaledCanvas(tw, th-hudRows, logicalW, logicalH),
		termSize: termSize,
		cfg:      cfg,
		logicalW: logicalW,
		logicalH: logicalH,
	}
}

// render draws one frame from an immutable snapshot. The simulation is
// never touched from here.
func (r *renderer) render(snap match.Snapshot, players settings.Settings, inTitle bool) error {
	tw, th, err := r.termSize()
	if err != nil || tw < 10 || th < hudRows+2 {
		tw, th = 80, 24
	}
	r.canvas.Resize(tw, th-hudRows)
	draw.ClearScreen(r.cw)

	if inTitle {
		r.drawTitle(players)
		return r.cw.Flush()
	}

	r.canvas.Clear()
	r.drawWalls()
	r.drawPane(0, snap.Panes[0], players.P1)
	r.drawPane(1, snap.Panes[1], players.P2)
	r.canvas.Render(r.cw)
	r.drawHUD(snap, players)
	return r.cw.Flush()
}

// paneOriginX returns the logical x of the given pane's left edge.
func (r *renderer) paneOriginX(pane int) float64 {
	return wallWidth + float64(pane)*(r.cfg.PaneWidth+wallWidth)
}

func (r *renderer) drawWalls() {
	r.canvas.FillRect(0, 0, wallWidth, r.logicalH, draw.Gray)
	r.canvas.FillRect(wallWidth+r.cfg.PaneWidth, 0, wallWidth, r.logicalH, draw.Gray)
	r.canvas.FillRect(r.logicalW-wallWidth, 0, wallWidth, r.logicalH, draw.Gray)
}

// fillBox draws a pane-relative box. World y grows upward, canvas y grows
// downward, so boxes are flipped here.
func (r *renderer) fillBox(pane int, b match.BoxView, col draw.Color) {
	x := r.paneOriginX(pane) + b.X
	y := r.logicalH - (b.Y + b.H)
	r.canvas.FillRect(x, y, b.W, b.H, col)
}

func (r *renderer) drawPane(pane int, ps match.PaneSnapshot, player settings.Player) {
	// Finish line, once it scrolls into view.
	if ps.FinishY >= 0 && ps.FinishY <= r.logicalH {
		ox := r.paneOriginX(pane)
		y := r.logicalH - ps.FinishY
		for x := 0.0; x < r.cfg.PaneWidth; x += 2 {
			r.canvas.FillRect(ox+x, y-0.5, 1, 0.5, draw.Gold)
		}
	}

	for _, o := range ps.Obstacles {
		r.fillBox(pane, o, draw.White)
	}
	for _, c := range ps.Collectibles {
		col := draw.Red
		if c.Kind == entity.GoldenApple {
			col = draw.Gold
		}
		r.fillBox(pane, c.BoxView, col)
	}

	r.drawSnake(pane, ps.Snake, player)
}

func (r *renderer) drawSnake(pane int, s match.SnakeView, player settings.Player) {
	headCol := draw.Color(player.Head)
	bodyCol := draw.Color(player.Body)
	if !s.Alive {
		headCol, bodyCol = draw.Gray, draw.Gray
	} else if s.Invincible > 0 {
		// Invincible snakes glow gold; blink during the last second as a
		// warning that the window is closing.
		if s.Invincible > 1 || int(s.Invincible*8)%2 == 0 {
			headCol = draw.Gold
		}
	}

	size := r.cfg.SnakeSize
	tail := 4 * size
	if s.Y < tail {
		tail = s.Y
	}
	if tail > 0 {
		r.fillBox(pane, match.BoxView{X: s.X, Y: s.Y - tail, W: size, H: tail}, bodyCol)
	}
	r.fillBox(pane, match.BoxView{X: s.X, Y: s.Y, W: size, H: size}, headCol)
}

func (r *renderer) drawHUD(snap match.Snapshot, players settings.Settings) {
	_, canvasRows := r.canvas.Size()
	base := canvasRows + 1

	r.hudLine(base, playerStatus(snap.Panes[0], players.P1.Name))
	r.hudLine(base+1, playerStatus(snap.Panes[1], players.P2.Name))

	switch {
	case snap.Phase == match.PhaseFinished && snap.Winner == match.WinnerDraw:
		r.hudLine(base+2, fmt.Sprintf("Draw!  Wins %d:%d  [R] rematch  [Q] quit", snap.Wins[0], snap.Wins[1]))
	case snap.Phase == match.PhaseFinished:
		r.hudLine(base+2, fmt.Sprintf("%s wins!  Wins %d:%d  [R] rematch  [Q] quit", winnerName(snap.Winner, players), snap.Wins[0], snap.Wins[1]))
	case snap.Paused:
		r.hudLine(base+2, "Paused  [P] resume  [Q] quit")
	default:
		r.hudLine(base+2, fmt.Sprintf("Wins %d:%d  [P] pause  [R] restart  [Q] quit", snap.Wins[0], snap.Wins[1]))
	}
}

func (r *renderer) hudLine(row int, text string) {
	r.cw.MoveCursor(1, row)
	r.cw.SetForeground(draw.White)
	r.cw.WriteString(text)
	r.cw.Reset()
}

func playerStatus(ps match.PaneSnapshot, name string) string {
	status := fmt.Sprintf("%s  score %d  apples %d  speed %.1f  height %.0f", name, ps.Snake.Score, ps.Snake.Apples, ps.Snake.Speed, ps.Snake.WorldY)
	if !ps.Snake.Alive {
		return status + "  CRASHED"
	}
	if ps.Snake.Invincible > 0 {
		return status + fmt.Sprintf("  INVINCIBLE %.1fs", ps.Snake.Invincible)
	}
	return status
}

func winnerName(w match.Winner, players settings.Settings) string {
	switch w {
	case match.WinnerP1:
		return players.P1.Name
	case match.WinnerP2:
		return players.P2.Name
	default:
		return w.String()
	}
}

func (r *renderer) drawTitle(players settings.Settings) {
	_, rows := r.canvas.Size()
	mid := rows / 2

	lines := []string{
		"S L I T H E R   S P R I N T",
		"",
		fmt.Sprintf("%s: steer with A / D", players.P1.Name),
		fmt.Sprintf("%s: steer with the arrow keys", players.P2.Name),
		"",
		"Climb, dodge the blocks, grab apples.",
		"Golden apples make you briefly unstoppable.",
		"First to the finish line wins.",
		"",
		"[Space] start   [Q] quit",
	}
	for i, line := range lines {
		r.cw.MoveCursor(3, mid-len(lines)/2+i)
		r.cw.SetForeground(draw.Green)
		r.cw.WriteString(line)
		r.cw.Reset()
	}
}
