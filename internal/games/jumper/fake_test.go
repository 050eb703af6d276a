package jumper

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/sched"
)

const frame = 10 * time.Millisecond

// fakePresentation keeps obstacle boxes where the test puts them.
// New obstacles appear just past the right edge and never move on their own.
type fakePresentation struct {
	player   core.Box
	boxes    map[ObstacleHandle]core.Box
	next     ObstacleHandle
	created  []ObstacleParams
	removed  []ObstacleHandle
	visual   PlayerVisual
	frozen   bool
	restart  bool
	template bool
}

func newFakePresentation() *fakePresentation {
	return &fakePresentation{
		player:   core.NewBox(50, 350, 150, 150),
		boxes:    make(map[ObstacleHandle]core.Box),
		template: true,
	}
}

func (f *fakePresentation) PlayerBox() core.Box { return f.player }

func (f *fakePresentation) ObstacleBox(h ObstacleHandle) (core.Box, bool) {
	b, ok := f.boxes[h]
	return b, ok
}

func (f *fakePresentation) SetPlayerVisual(v PlayerVisual) { f.visual = v }

func (f *fakePresentation) CreateObstacleVisual(p ObstacleParams) (ObstacleHandle, error) {
	if !f.template {
		return 0, ErrNoTemplate
	}
	f.next++
	f.boxes[f.next] = core.NewBox(800, 420-p.Offset, 80, 80)
	f.created = append(f.created, p)
	return f.next, nil
}

func (f *fakePresentation) RemoveObstacleVisual(h ObstacleHandle) {
	if _, ok := f.boxes[h]; !ok {
		return
	}
	delete(f.boxes, h)
	f.removed = append(f.removed, h)
}

func (f *fakePresentation) FreezeObstacles() { f.frozen = true }
func (f *fakePresentation) ResumeObstacles() { f.frozen = false }
func (f *fakePresentation) ShowRestart()     { f.restart = true }
func (f *fakePresentation) HideRestart()     { f.restart = false }

// place puts a ground-level obstacle with its left edge at x.
func (f *fakePresentation) place(h ObstacleHandle, x float64) {
	f.boxes[h] = core.NewBox(x, 420, 80, 80)
}

type fakeAudio struct {
	jumps, overs, starts int
	err                  error
}

func (a *fakeAudio) Jump() error      { a.jumps++; return a.err }
func (a *fakeAudio) GameOver() error  { a.overs++; return a.err }
func (a *fakeAudio) GameStart() error { a.starts++; return a.err }

type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) { r.events = append(r.events, e) }

func (r *recorder) count(kind EventKind) int {
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type harness struct {
	game  *Game
	pres  *fakePresentation
	clock *sched.Scheduler
	audio *fakeAudio
	rec   *recorder
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		pres:  newFakePresentation(),
		clock: sched.New(),
		audio: &fakeAudio{},
		rec:   &recorder{},
	}
	h.game = New(Options{
		Config:       config.DefaultJumperConfig(),
		Presentation: h.pres,
		Clock:        h.clock,
		Audio:        h.audio,
		Logger:       log.New(io.Discard),
		Seed:         1,
		Observers:    []Observer{h.rec},
	})
	return h
}

// run advances the clock frame by frame for d.
func (h *harness) run(d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += frame {
		h.clock.Advance(frame)
	}
}

var errAudio = errors.New("device busy")
