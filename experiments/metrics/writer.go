package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the game id.
func NewWriter(dir, gameID string) (*Writer, error) {
	baseDir := filepath.Join(dir, gameID)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGame(metric GameMetric) error {
	header := []string{"id", "players", "territories", "outcome", "winner", "rounds", "attacks", "captures", "rejected", "start_time", "end_time", "duration"}
	row := []string{
		metric.ID,
		strconv.Itoa(metric.Players),
		strconv.Itoa(metric.Territory),
		metric.Outcome,
		metric.Winner,
		strconv.Itoa(metric.Rounds),
		strconv.Itoa(metric.Attacks),
		strconv.Itoa(metric.Captures),
		strconv.Itoa(metric.Rejected),
		metric.StartTime.Format(time.RFC3339),
		metric.EndTime.Format(time.RFC3339),
		metric.Duration.String(),
	}
	return w.write("game.csv", header, [][]string{row})
}

func (w *Writer) WriteRounds(rounds []RoundMetric) error {
	header := []string{"round", "attacker", "defender", "attacker_die", "defender_die", "captured", "rejected"}
	rows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		rows = append(rows, []string{
			strconv.Itoa(r.Round),
			r.Attacker,
			r.Defender,
			strconv.Itoa(r.AttackerDie),
			strconv.Itoa(r.DefenderDie),
			strconv.FormatBool(r.Captured),
			r.Rejected,
		})
	}
	return w.write("rounds.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
