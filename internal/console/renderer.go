package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/engine"
)

// Style holds the glyphs and fixed texts the renderer prints.
type Style struct {
	PlayerGlyph    string
	CPUGlyph       string
	EmptyGlyph     string
	Prompt         string
	NoBoardMessage string
}

// DefaultStyle matches the classic console look: X, O and a dot.
func DefaultStyle() Style {
	return Style{
		PlayerGlyph:    "X",
		CPUGlyph:       "O",
		EmptyGlyph:     ".",
		Prompt:         "Choose index(0 to 8):",
		NoBoardMessage: "No moves yet!",
	}
}

// Renderer writes board and score snapshots as text.
type Renderer struct {
	out   io.Writer
	style Style
}

func NewRenderer(out io.Writer, style Style) *Renderer {
	return &Renderer{
		out:   out,
		style: style,
	}
}

// RenderBoard prints the 3x3 grid, three glyphs per row. A nil board
// means no round has started yet and prints the no-board message.
func (that *Renderer) RenderBoard(board *engine.Board) {
	if board == nil {
		fmt.Fprintln(that.out, that.style.NoBoardMessage)
		return
	}

	var grid strings.Builder
	for i, cell := range board {
		grid.WriteString(fmt.Sprintf("%3s", that.glyph(cell)))
		if (i+1)%3 == 0 {
			grid.WriteByte('\n')
		}
	}

	fmt.Fprint(that.out, grid.String())
}

// RenderScore prints the three counters on one line.
func (that *Renderer) RenderScore(score engine.Score) {
	fmt.Fprintf(that.out, "Score { player: %d, cpu: %d, tie: %d }\n", score.Player, score.CPU, score.Tie)
}

// Prompt prints the index prompt.
func (that *Renderer) Prompt() {
	fmt.Fprintln(that.out, that.style.Prompt)
}

// Announce prints a one-off message like a turn banner or an error.
func (that *Renderer) Announce(message string) {
	fmt.Fprintln(that.out, message)
}

func (that *Renderer) glyph(cell string) string {
	switch cell {
	case engine.PlayerMark:
		return that.style.PlayerGlyph
	case engine.CPUMark:
		return that.style.CPUGlyph
	default:
		return that.style.EmptyGlyph
	}
}
