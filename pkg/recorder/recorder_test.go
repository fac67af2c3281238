package recorder

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/user/framecast/pkg/adapters/logger"
	"github.com/user/framecast/pkg/mocks"
	"github.com/user/framecast/pkg/ports"
)

func testConfig() ports.TranscodeConfig {
	return ports.TranscodeConfig{
		OutputPath: "out.mp4",
		Width:      64,
		Height:     64,
		FPS:        30,
		Codec:      ports.CodecH264,
	}
}

func TestRecorder_StartInstallsSession(t *testing.T) {
	transcoder := &mocks.Transcoder{}
	rec := New(transcoder, logger.NewNoop())

	if rec.Active() {
		t.Fatal("expected no active session before start")
	}

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if !rec.Active() {
		t.Error("expected active session after start")
	}
	if len(transcoder.StartCalls) != 1 {
		t.Fatalf("expected 1 transcoder start, got %d", len(transcoder.StartCalls))
	}
	if got := transcoder.StartCalls[0]; got.Width != 64 || got.Height != 64 {
		t.Errorf("unexpected geometry passed to transcoder: %dx%d", got.Width, got.Height)
	}
}

func TestRecorder_StartTwiceFailsAndKeepsFirstSession(t *testing.T) {
	session := &mocks.TranscodeSession{}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("first Start failed: %v", err)
	}

	err := rec.Start(testConfig())
	if !errors.Is(err, ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}

	// The first session must be unaffected: no extra spawn, still writable.
	if len(transcoder.StartCalls) != 1 {
		t.Errorf("expected exactly 1 transcoder start, got %d", len(transcoder.StartCalls))
	}
	if err := rec.SendFrame(make([]byte, 64*64*4)); err != nil {
		t.Errorf("first session rejected a frame after failed second start: %v", err)
	}
}

func TestRecorder_StartFailureLeavesSlotEmpty(t *testing.T) {
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return nil, fmt.Errorf("spawn ffmpeg: permission denied")
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err == nil {
		t.Fatal("expected Start to fail")
	}
	if rec.Active() {
		t.Error("expected no session after failed start")
	}

	// A later start must be possible.
	transcoder.StartFunc = nil
	if err := rec.Start(testConfig()); err != nil {
		t.Errorf("Start after failed start returned %v", err)
	}
}

func TestRecorder_SendFrameBeforeStart(t *testing.T) {
	rec := New(&mocks.Transcoder{}, logger.NewNoop())

	err := rec.SendFrame(make([]byte, 16384))
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestRecorder_SendFrameForwardsBytesInOrder(t *testing.T) {
	session := &mocks.TranscodeSession{}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	first := bytes.Repeat([]byte{0x11}, 64*64*4)
	second := bytes.Repeat([]byte{0x22}, 64*64*4)
	for _, frame := range [][]byte{first, second} {
		if err := rec.SendFrame(frame); err != nil {
			t.Fatalf("SendFrame failed: %v", err)
		}
	}

	if len(session.Frames) != 2 {
		t.Fatalf("expected 2 frames written, got %d", len(session.Frames))
	}
	if !bytes.Equal(session.Frames[0], first) || !bytes.Equal(session.Frames[1], second) {
		t.Error("frames were not forwarded byte-exact in call order")
	}
}

func TestRecorder_SendFrameSizeMismatch(t *testing.T) {
	session := &mocks.TranscodeSession{}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	err := rec.SendFrame(make([]byte, 100))
	var sizeErr *FrameSizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected FrameSizeError, got %v", err)
	}
	if sizeErr.Got != 100 || sizeErr.Expected != 16384 {
		t.Errorf("expected got=100 expected=16384, got got=%d expected=%d",
			sizeErr.Got, sizeErr.Expected)
	}

	// No bytes may reach the pipe on a mismatch.
	if len(session.Frames) != 0 {
		t.Errorf("expected no write after size mismatch, got %d writes", len(session.Frames))
	}

	// The session stays installed and a correctly sized frame is still accepted.
	if err := rec.SendFrame(make([]byte, 16384)); err != nil {
		t.Errorf("correctly sized frame rejected after mismatch: %v", err)
	}
	if !rec.Active() {
		t.Error("session should remain active after a size mismatch")
	}
}

func TestRecorder_SendFrameWriteErrorKeepsSession(t *testing.T) {
	session := &mocks.TranscodeSession{
		WriteFrameFunc: func(data []byte) error {
			return fmt.Errorf("write to ffmpeg stdin: broken pipe")
		},
	}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := rec.SendFrame(make([]byte, 16384)); err == nil {
		t.Fatal("expected write error to surface")
	}

	// The writer does not tear down the session; an explicit Stop still works.
	if !rec.Active() {
		t.Error("session should remain installed after a write error")
	}
	if err := rec.Stop(); err != nil {
		t.Errorf("Stop after write error returned %v", err)
	}
}

func TestRecorder_StopClosesInputThenWaits(t *testing.T) {
	var order []string
	session := &mocks.TranscodeSession{
		CloseInputFunc: func() error {
			order = append(order, "close")
			return nil
		},
		WaitFunc: func() error {
			order = append(order, "wait")
			return nil
		},
	}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := rec.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	if len(order) != 2 || order[0] != "close" || order[1] != "wait" {
		t.Errorf("expected close then wait, got %v", order)
	}
	if rec.Active() {
		t.Error("expected no session after stop")
	}
}

func TestRecorder_StopTwice(t *testing.T) {
	rec := New(&mocks.Transcoder{}, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := rec.Stop(); err != nil {
		t.Fatalf("first Stop failed: %v", err)
	}

	err := rec.Stop()
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession on second stop, got %v", err)
	}
}

func TestRecorder_StopClearsSlotEvenWhenWaitFails(t *testing.T) {
	session := &mocks.TranscodeSession{
		WaitFunc: func() error {
			return fmt.Errorf("ffmpeg exited with status 1")
		},
	}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := rec.Stop(); err == nil {
		t.Fatal("expected Stop to surface the wait failure")
	}

	// The slot must be free regardless of the stop outcome.
	if rec.Active() {
		t.Error("expected slot to be cleared after failed stop")
	}
	if err := rec.Start(testConfig()); err != nil {
		t.Errorf("Start after failed stop returned %v", err)
	}
}

func TestRecorder_SendFrameAfterStop(t *testing.T) {
	rec := New(&mocks.Transcoder{}, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if err := rec.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}

	err := rec.SendFrame(make([]byte, 16384))
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession after stop, got %v", err)
	}
}

func TestRecorder_ConcurrentSendAndStop(t *testing.T) {
	session := &mocks.TranscodeSession{}
	transcoder := &mocks.Transcoder{
		StartFunc: func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
			return session, nil
		},
	}
	rec := New(transcoder, logger.NewNoop())

	if err := rec.Start(testConfig()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	frame := make([]byte, 16384)
	var wg sync.WaitGroup

	// One goroutine drives frames, another stops; every call must return
	// either success or ErrNoSession, never a race or a torn write.
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			if err := rec.SendFrame(frame); err != nil && !errors.Is(err, ErrNoSession) {
				t.Errorf("SendFrame returned unexpected error: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		if err := rec.Stop(); err != nil && !errors.Is(err, ErrNoSession) {
			t.Errorf("Stop returned unexpected error: %v", err)
		}
	}()
	wg.Wait()

	if rec.Active() {
		t.Error("expected no session after concurrent stop")
	}
	// Any frame written must be complete.
	for i, written := range session.Frames {
		if len(written) != 16384 {
			t.Errorf("frame %d was torn: %d bytes", i, len(written))
		}
	}
}
