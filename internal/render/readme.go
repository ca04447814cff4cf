// Package render projects a game onto the repository README.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-readme/internal/entity"
)

const (
	difficultyWorkflow = "vote-difficulty.yml"
	moveWorkflow       = "play-move.yml"

	filePerm = 0o644
)

// Repository identifies the GitHub repository hosting the README.
type Repository struct {
	Owner string
	Name  string
}

type Readme struct {
	repo Repository
	path string
}

func New(repo Repository, path string) *Readme {
	return &Readme{
		repo: repo,
		path: path,
	}
}

// Publish - renders the README and overwrites the file at the configured path.
func (that *Readme) Publish(_ context.Context, game *entity.Game, difficulty string) error {
	var buf bytes.Buffer
	if err := that.Render(&buf, game, difficulty); err != nil {
		return err
	}

	if err := os.WriteFile(that.path, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("failed to write readme: %w", err)
	}

	return nil
}

// Render - difficulty selection until a known tier is chosen, then the result screen or the board.
func (that *Readme) Render(w io.Writer, game *entity.Game, difficulty string) error {
	var sb strings.Builder

	switch {
	case !entity.IsKnownDifficulty(difficulty):
		that.writeDifficultyScreen(&sb)
	case game.IsFinished():
		that.writeGameOverScreen(&sb, game.Winner)
	default:
		that.writeBoardScreen(&sb, game.Board, entity.ParseDifficulty(difficulty))
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to render readme: %w", err)
	}

	return nil
}

func (that *Readme) writeDifficultyScreen(sb *strings.Builder) {
	sb.WriteString("<h1 align=\"center\">🎮 Tic Tac Toe: Choose Difficulty</h1>\n")
	sb.WriteString("<p align=\"center\">Select difficulty to start.</p>\n\n")
	sb.WriteString("<div align=\"center\">\n")

	for i, difficulty := range []entity.Difficulty{entity.EasyDifficulty, entity.MediumDifficulty, entity.HardDifficulty} {
		if i > 0 {
			sb.WriteString(" | ")
		}
		query := url.Values{"difficulty": {difficulty.String()}}
		fmt.Fprintf(sb, "<a href=\"%s\"><b>%s</b></a>", that.workflowURL(difficultyWorkflow, query), title(difficulty.String()))
	}

	sb.WriteString("\n</div>\n")
}

func (that *Readme) writeGameOverScreen(sb *strings.Builder, winner string) {
	sb.WriteString("<h1 align=\"center\">🏁 Game Over</h1>\n\n")

	switch winner {
	case entity.PlayerX:
		sb.WriteString("<h2 align=\"center\">✨❌ YOU WIN! ❌✨</h2>\n")
	case entity.PlayerO:
		sb.WriteString("<h2 align=\"center\">💀⭕ AI WINS! ⭕💀</h2>\n")
	default:
		sb.WriteString("<h2 align=\"center\">😐 It's a Draw 😐</h2>\n")
	}

	fmt.Fprintf(sb, "\n<p align=\"center\"><a href=\"%s\"><b>🔄 PLAY AGAIN</b></a></p>\n", that.workflowURL(difficultyWorkflow, nil))
}

func (that *Readme) writeBoardScreen(sb *strings.Builder, board entity.Board, difficulty entity.Difficulty) {
	sb.WriteString("<h1 align=\"center\">🎮 Tic Tac Toe vs AI</h1>\n")
	sb.WriteString("<p align=\"center\">Click a tile. You are <b>X</b>.</p>\n\n")
	sb.WriteString("<div align=\"center\">\n<table>\n")

	for row := range 3 {
		sb.WriteString("<tr>")
		for col := range 3 {
			cell := row*3 + col
			sb.WriteString("<td align=\"center\" width=\"120\" height=\"120\">")

			switch board[cell] {
			case entity.PlayerX:
				sb.WriteString("❌")
			case entity.PlayerO:
				sb.WriteString("⭕")
			default:
				query := url.Values{"cell": {strconv.Itoa(cell)}}
				fmt.Fprintf(sb, "<a href=\"%s\">⬜<br><small>Play</small></a>", that.workflowURL(moveWorkflow, query))
			}

			sb.WriteString("</td>")
		}
		sb.WriteString("</tr>\n")
	}

	sb.WriteString("</table>\n</div>\n\n")
	fmt.Fprintf(sb, "<p align=\"center\">Difficulty: <b>%s</b></p>\n", difficulty)
}

func (that *Readme) workflowURL(workflow string, query url.Values) string {
	link := url.URL{
		Scheme: "https",
		Host:   "github.com",
		Path:   fmt.Sprintf("/%s/%s/actions/workflows/%s", that.repo.Owner, that.repo.Name, workflow),
	}

	if query != nil {
		link.RawQuery = query.Encode()
	}

	return html.EscapeString(link.String())
}

func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
