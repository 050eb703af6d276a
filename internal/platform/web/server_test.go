package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/session"
	"github.com/vovakirdan/tui-jumper/internal/stage"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := Config{TickRate: 100, Game: config.DefaultJumperConfig()}
	srv := httptest.NewServer(NewServer(cfg, nil, nil).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")) //nolint:errcheck
		conn.Close()
	})
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frameMessage {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg frameMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read frame: %v", err)
	}
	return msg
}

func TestServesClient(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("GET / failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET / status = %d, expected 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<canvas") {
		t.Error("client page has no canvas")
	}
}

func TestInitialFrame(t *testing.T) {
	conn := dial(t, newTestServer(t))

	msg := readFrame(t, conn)
	if msg.Type != "frame" {
		t.Errorf("Type = %q, expected frame", msg.Type)
	}
	if msg.W != 800 || msg.H != 500 {
		t.Errorf("size = %vx%v, expected 800x500", msg.W, msg.H)
	}
	if msg.Score != 0 || msg.GameOver {
		t.Errorf("Score = %d GameOver = %v", msg.Score, msg.GameOver)
	}
	if msg.Player.Visual != "running" {
		t.Errorf("Visual = %q, expected running", msg.Player.Visual)
	}
	if len(msg.Obstacles) != 1 {
		t.Errorf("Obstacles = %d, expected the first spawn", len(msg.Obstacles))
	}
}

func TestJumpMessage(t *testing.T) {
	conn := dial(t, newTestServer(t))
	readFrame(t, conn)

	if err := conn.WriteJSON(clientMessage{Type: "jump"}); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	for range 50 {
		if msg := readFrame(t, conn); msg.Player.Visual == "jumping" {
			return
		}
	}
	t.Error("no jumping frame after a jump message")
}

func TestMalformedMessagesIgnored(t *testing.T) {
	conn := dial(t, newTestServer(t))
	readFrame(t, conn)

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("WriteMessage() failed: %v", err)
	}
	if err := conn.WriteJSON(clientMessage{Type: "fly"}); err != nil {
		t.Fatalf("WriteJSON() failed: %v", err)
	}

	// The session keeps streaming frames
	readFrame(t, conn)
	readFrame(t, conn)
}

func TestFrameMessageEncoding(t *testing.T) {
	f := session.Frame{
		Frame: stage.Frame{
			Width:  800,
			Height: 500,
			Player: core.NewBox(50, 350, 150, 150),
			Visual: jumper.VisualCrashed,
			Obstacles: []stage.ObstacleFrame{
				{Box: core.NewBox(100, 420, 80, 80)},
				{Box: core.NewBox(300, 300, 80, 80), Flying: true},
			},
			Restart: true,
		},
		Score:    4,
		Level:    0,
		GameOver: true,
	}

	data, err := json.Marshal(newFrameMessage(f))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	for _, key := range []string{"type", "w", "h", "player", "obstacles", "score", "level", "gameOver"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("frame JSON missing %q", key)
		}
	}

	msg := newFrameMessage(f)
	if msg.Player.Visual != "crashed" || msg.Player.Box != (boxJSON{X: 50, Y: 350, W: 150, H: 150}) {
		t.Errorf("Player = %+v", msg.Player)
	}
	if !msg.Obstacles[1].Flying || msg.Obstacles[1].Box.Y != 300 {
		t.Errorf("Obstacles[1] = %+v", msg.Obstacles[1])
	}
}

func TestApply(t *testing.T) {
	sess := session.New(session.Options{Config: config.DefaultJumperConfig(), Runtime: core.RuntimeConfig{Seed: 1}})
	defer sess.Close()

	apply(sess, "pause")
	if !sess.Paused() {
		t.Error("pause message should pause")
	}
	apply(sess, "pause")
	apply(sess, "jump")
	if !sess.Snapshot().Airborne {
		t.Error("jump message should jump")
	}
	apply(sess, "restart")
	if sess.Snapshot().Mode != jumper.ModePlaying {
		t.Error("restart while playing should change nothing")
	}
	apply(sess, "unknown")
}
