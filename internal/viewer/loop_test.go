package viewer

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	"github.com/example/mandelview/internal/render"
	"github.com/example/mandelview/internal/viewport"
)

// fakePlatform replays one event batch and one pointer sample per tick.
type fakePlatform struct {
	size     image.Point
	batches  [][]Event
	pointers []viewport.Pointer
	tick     int

	presented []*render.Frame
	overlays  []Overlay
	presentFn func(*render.Frame) error
}

func (f *fakePlatform) Size() image.Point { return f.size }

func (f *fakePlatform) Poll() []Event {
	if f.tick >= len(f.batches) {
		return []Event{{Kind: EventQuit}}
	}
	return f.batches[f.tick]
}

func (f *fakePlatform) Pointer() viewport.Pointer {
	if f.tick < len(f.pointers) {
		return f.pointers[f.tick]
	}
	return viewport.Pointer{}
}

func (f *fakePlatform) Present(fr *render.Frame, o Overlay) error {
	if f.presentFn != nil {
		if err := f.presentFn(fr); err != nil {
			return err
		}
	}
	f.presented = append(f.presented, fr)
	f.overlays = append(f.overlays, o)
	return nil
}

func newTestLoop(p *fakePlatform, opts ...Option) (*Loop, *bytes.Buffer, *[]time.Duration) {
	var out bytes.Buffer
	var sleeps []time.Duration
	base := []Option{
		WithOutput(&out),
		WithRenderer(render.NewRenderer(1, nil)),
		WithSleep(func(d time.Duration) {
			sleeps = append(sleeps, d)
			p.tick++
		}),
	}
	return New(p, append(base, opts...)...), &out, &sleeps
}

func keys(ks ...Key) []Event {
	var evs []Event
	for _, k := range ks {
		evs = append(evs, Event{Kind: EventKeyDown, Key: k})
	}
	return evs
}

func TestRunRendersInitialFrameAndQuits(t *testing.T) {
	p := &fakePlatform{size: image.Pt(8, 6)}
	l, _, sleeps := newTestLoop(p)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 1 {
		t.Fatalf("presented %d frames, want 1", len(p.presented))
	}
	if got := p.presented[0].Size(); got != p.size {
		t.Fatalf("frame size %v, want %v", got, p.size)
	}
	if len(*sleeps) != 0 {
		t.Fatalf("slept %d times before quitting", len(*sleeps))
	}
}

func TestEscapeKeyQuitsBeforeLaterEvents(t *testing.T) {
	p := &fakePlatform{size: image.Pt(4, 4), batches: [][]Event{keys(KeyEscape, KeyPlus)}}
	l, _, _ := newTestLoop(p)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if l.Controller().Depth() != viewport.DefaultDepth {
		t.Fatalf("depth changed after quit: %v", l.Controller().Depth())
	}
}

func TestDepthKeysRender(t *testing.T) {
	p := &fakePlatform{
		size:    image.Pt(4, 4),
		batches: [][]Event{keys(KeyPlus, KeyPlus), keys(KeyMinus, KeyMinus, KeyMinus, KeyMinus)},
	}
	l, out, _ := newTestLoop(p)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// initial + 2 increments + 3 effective decrements (400 -> 300 -> 200 -> 100).
	if len(p.presented) != 6 {
		t.Fatalf("presented %d frames, want 6", len(p.presented))
	}
	if l.Controller().Depth() != 100 {
		t.Fatalf("depth = %v, want 100", l.Controller().Depth())
	}
	for _, want := range []string{
		"Increasing iterations count to 300",
		"Increasing iterations count to 400",
		"Decreasing iterations count to 100",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
	if strings.Contains(out.String(), "Decreasing iterations count to 0") {
		t.Errorf("depth went below the floor:\n%s", out.String())
	}
}

func TestHeldButtonZoomsEveryTick(t *testing.T) {
	held := viewport.Pointer{Pos: image.Pt(2, 2), Left: true}
	p := &fakePlatform{
		size:     image.Pt(4, 4),
		batches:  [][]Event{nil, nil, nil, nil},
		pointers: []viewport.Pointer{held, held, held, {}},
	}
	l, _, sleeps := newTestLoop(p, WithPollRate(30))
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 4 {
		t.Fatalf("presented %d frames, want 4 (initial + 3 held ticks)", len(p.presented))
	}
	for _, d := range *sleeps {
		if d != time.Second/30 {
			t.Fatalf("slept %v, want %v", d, time.Second/30)
		}
	}
	want := viewport.Default()
	for i := 0; i < 3; i++ {
		want = want.ZoomIn(held.Pos, p.size)
	}
	if l.Controller().Viewport() != want {
		t.Fatalf("viewport = %v, want %v", l.Controller().Viewport(), want)
	}
}

func TestEdgeTriggerZoomsOncePerPress(t *testing.T) {
	held := viewport.Pointer{Pos: image.Pt(1, 1), Right: true}
	p := &fakePlatform{
		size:     image.Pt(4, 4),
		batches:  [][]Event{nil, nil, nil},
		pointers: []viewport.Pointer{held, held, held},
	}
	ctrl := viewport.NewController(viewport.WithTrigger(viewport.TriggerEdge))
	l, _, _ := newTestLoop(p, WithController(ctrl))
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 2 {
		t.Fatalf("presented %d frames, want 2", len(p.presented))
	}
	if ctrl.Viewport() != viewport.Default().ZoomOut() {
		t.Fatalf("viewport = %v", ctrl.Viewport())
	}
}

func TestRenderErrorStopsLoop(t *testing.T) {
	sentinel := errors.New("texture lost")
	p := &fakePlatform{
		size:    image.Pt(4, 4),
		batches: [][]Event{keys(KeyPlus), keys(KeyPlus)},
	}
	calls := 0
	p.presentFn = func(*render.Frame) error {
		calls++
		if calls == 2 {
			return sentinel
		}
		return nil
	}
	l, _, _ := newTestLoop(p)
	err := l.Run()
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected render error, got %v", err)
	}
	if p.tick != 0 {
		t.Fatalf("loop kept polling after failure (tick %d)", p.tick)
	}
	if got := err.Error(); got != "present frame: texture lost" {
		t.Fatalf("error = %q", got)
	}
}

func TestExposeRepresentsWithoutRecompute(t *testing.T) {
	p := &fakePlatform{size: image.Pt(4, 4), batches: [][]Event{{{Kind: EventExpose}}}}
	l, _, _ := newTestLoop(p)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 2 || p.presented[0] != p.presented[1] {
		t.Fatalf("expected the same frame presented twice, got %d presents", len(p.presented))
	}
}

func TestResizeRendersAtNewSize(t *testing.T) {
	p := &fakePlatform{size: image.Pt(4, 4), batches: [][]Event{{{Kind: EventResize}}}}
	l, _, _ := newTestLoop(p)
	l.platform = resizing{p}
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 2 {
		t.Fatalf("presented %d frames, want 2", len(p.presented))
	}
	if got := p.presented[1].Size(); got != image.Pt(6, 3) {
		t.Fatalf("resized frame is %v", got)
	}
}

// resizing reports a new size once the first tick starts.
type resizing struct{ *fakePlatform }

func (r resizing) Size() image.Point {
	if len(r.presented) > 0 {
		return image.Pt(6, 3)
	}
	return r.size
}

func TestHUDToggle(t *testing.T) {
	p := &fakePlatform{size: image.Pt(4, 4), batches: [][]Event{keys(KeyHUD), keys(KeyHUD)}}
	l, _, _ := newTestLoop(p)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.overlays) != 3 {
		t.Fatalf("presented %d times, want 3", len(p.overlays))
	}
	if p.overlays[0] != nil || p.overlays[2] != nil {
		t.Fatal("overlay should start and end hidden")
	}
	if len(p.overlays[1]) == 0 || !strings.Contains(p.overlays[1][0], "depth 200") {
		t.Fatalf("unexpected overlay %q", p.overlays[1])
	}
}

type recordingNotifier struct {
	saved  []string
	copied []string
}

func (n *recordingNotifier) Save(path string)   { n.saved = append(n.saved, path) }
func (n *recordingNotifier) Copy(detail string) { n.copied = append(n.copied, detail) }

func TestCopyAndSaveKeys(t *testing.T) {
	p := &fakePlatform{size: image.Pt(4, 4), batches: [][]Event{keys(KeyCopy, KeySave)}}
	var copied, saved image.Image
	n := &recordingNotifier{}
	l, out, _ := newTestLoop(p,
		WithClipboard(func(img image.Image) error { copied = img; return nil }),
		WithSnapshots(func(img image.Image) (string, error) { saved = img; return "/tmp/shot.png", nil }),
		WithNotifier(n),
	)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if copied == nil || saved == nil {
		t.Fatal("expected copy and save to receive the frame")
	}
	if copied.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Fatalf("copied bounds %v", copied.Bounds())
	}
	if len(n.saved) != 1 || n.saved[0] != "/tmp/shot.png" || len(n.copied) != 1 {
		t.Fatalf("notifier saw saved=%v copied=%v", n.saved, n.copied)
	}
	if !strings.Contains(out.String(), "Saved frame to /tmp/shot.png") {
		t.Fatalf("output %q", out.String())
	}
}

func TestExportFailureIsNotFatal(t *testing.T) {
	p := &fakePlatform{size: image.Pt(4, 4), batches: [][]Event{keys(KeySave, KeyCopy)}}
	n := &recordingNotifier{}
	l, _, _ := newTestLoop(p,
		WithClipboard(func(image.Image) error { return errors.New("no display") }),
		WithSnapshots(func(image.Image) (string, error) { return "", errors.New("read-only") }),
		WithNotifier(n),
	)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(n.saved) != 0 || len(n.copied) != 0 {
		t.Fatal("notifier should not fire on failure")
	}
}

// sizedByTick reports sizes[tick] once past the initial render.
type sizedByTick struct {
	*fakePlatform
	sizes []image.Point
}

func (s sizedByTick) Size() image.Point {
	if s.tick < len(s.sizes) {
		return s.sizes[s.tick]
	}
	return s.size
}

func TestMinimisedWindowSkipsRender(t *testing.T) {
	held := viewport.Pointer{Pos: image.Pt(1, 1), Left: true}
	p := &fakePlatform{
		size: image.Pt(5, 4),
		batches: [][]Event{
			nil,
			{{Kind: EventResize}, {Kind: EventExpose}, {Kind: EventKeyDown, Key: KeyPlus}},
			{{Kind: EventResize}},
		},
		pointers: []viewport.Pointer{{}, held, {}},
	}
	l, _, _ := newTestLoop(p)
	l.platform = sizedByTick{p, []image.Point{{5, 4}, {0, 0}, {6, 2}}}
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.presented) != 2 {
		t.Fatalf("presented %d frames, want 2", len(p.presented))
	}
	if got := p.presented[1].Size(); got != image.Pt(6, 2) {
		t.Fatalf("frame after restore is %v", got)
	}
	if l.Controller().Viewport() != viewport.Default() {
		t.Fatal("held button zoomed while minimised")
	}
	if l.Controller().Depth() != viewport.DefaultDepth+viewport.DepthStep {
		t.Fatalf("depth = %v", l.Controller().Depth())
	}
}
