package web

import (
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/session"
)

// Message types on the wire.
const (
	typeFrame   = "frame"
	typeJump    = "jump"
	typeRestart = "restart"
	typePause   = "pause"
)

// clientMessage is anything the browser sends.
type clientMessage struct {
	Type string `json:"type"`
}

type boxJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type playerJSON struct {
	Box    boxJSON `json:"box"`
	Visual string  `json:"visual"`
}

type obstacleJSON struct {
	Box    boxJSON `json:"box"`
	Flying bool    `json:"flying"`
}

// frameMessage is the board state sent every frame.
type frameMessage struct {
	Type      string         `json:"type"`
	W         float64        `json:"w"`
	H         float64        `json:"h"`
	Player    playerJSON     `json:"player"`
	Obstacles []obstacleJSON `json:"obstacles"`
	Score     int            `json:"score"`
	Level     int            `json:"level"`
	GameOver  bool           `json:"gameOver"`
	Paused    bool           `json:"paused"`
}

func toBox(b core.Box) boxJSON {
	return boxJSON{X: b.Left, Y: b.Top, W: b.Width(), H: b.Height()}
}

func newFrameMessage(f session.Frame) frameMessage {
	msg := frameMessage{
		Type: typeFrame,
		W:    f.Width,
		H:    f.Height,
		Player: playerJSON{
			Box:    toBox(f.Player),
			Visual: f.Visual.String(),
		},
		Obstacles: make([]obstacleJSON, len(f.Obstacles)),
		Score:     f.Score,
		Level:     f.Level,
		GameOver:  f.GameOver,
		Paused:    f.Paused,
	}
	for i, o := range f.Obstacles {
		msg.Obstacles[i] = obstacleJSON{Box: toBox(o.Box), Flying: o.Flying}
	}
	return msg
}
