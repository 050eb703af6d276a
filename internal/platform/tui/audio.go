package tui

import (
	"fmt"
	"io"
)

// BellAudio rings the terminal bell on game over. Other cues are silent.
type BellAudio struct {
	w io.Writer
}

// NewBellAudio creates a bell that writes to w.
func NewBellAudio(w io.Writer) *BellAudio {
	return &BellAudio{w: w}
}

func (b *BellAudio) Jump() error      { return nil }
func (b *BellAudio) GameStart() error { return nil }

// GameOver rings the bell.
func (b *BellAudio) GameOver() error {
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("tui: bell: %w", err)
	}
	return nil
}
