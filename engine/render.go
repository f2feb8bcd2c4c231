package engine

import (
	"fmt"
	"strings"

	"draughts/game"

	"github.com/muesli/termenv"
)

// RenderBoard returns a colored ASCII diagram of the board for terminal
// output, Team1 in red and Team2 in cyan, kings uppercase.
func RenderBoard(b *game.Board) string {
	profile := termenv.ColorProfile()
	team1 := profile.Color("1")
	team2 := profile.Color("6")

	var sb strings.Builder
	for y := 7; y >= 0; y-- {
		sb.WriteString(fmt.Sprintf("%d ", y))
		for x := 0; x < 8; x++ {
			cell := "."
			if p, ok := b.PieceAt(x, y); ok {
				glyph := "o"
				color := team1
				if p.Team == game.Team2 {
					glyph = "x"
					color = team2
				}
				if p.King {
					glyph = strings.ToUpper(glyph)
				}
				cell = termenv.String(glyph).Foreground(color).String()
			}
			sb.WriteString(cell)
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  0 1 2 3 4 5 6 7\n")
	return sb.String()
}
