package tournament

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists tournament results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(outputDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(outputDir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "games.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "stage", "player1", "player2", "winner", "moves", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID.String(),
			r.Stage,
			r.Player1,
			r.Player2,
			r.Winner,
			strconv.Itoa(r.Moves),
			r.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteStandings(standings []Standing) error {
	path := filepath.Join(w.baseDir, "standings.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create standings file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"player", "points", "wins", "draws", "losses", "games"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write standings header: %w", err)
	}
	for _, s := range standings {
		row := []string{
			s.Player,
			strconv.FormatFloat(s.Points, 'f', 1, 64),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Games),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write standings row: %w", err)
		}
	}
	return nil
}
