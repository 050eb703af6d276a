package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Beeper plays synthesized cues through an ebiten audio context.
type Beeper struct {
	jump, gameOver, start *audio.Player
}

// NewBeeper synthesizes the cues. ebiten allows one audio context per process.
func NewBeeper(ctx *audio.Context) *Beeper {
	return &Beeper{
		jump:     ctx.NewPlayerFromBytes(jumpTone.pcm(ctx.SampleRate())),
		gameOver: ctx.NewPlayerFromBytes(gameOverTone.pcm(ctx.SampleRate())),
		start:    ctx.NewPlayerFromBytes(startTone.pcm(ctx.SampleRate())),
	}
}

func (b *Beeper) Jump() error      { return play(b.jump) }
func (b *Beeper) GameOver() error  { return play(b.gameOver) }
func (b *Beeper) GameStart() error { return play(b.start) }

func play(p *audio.Player) error {
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("window: rewind cue: %w", err)
	}
	p.Play()
	return nil
}
