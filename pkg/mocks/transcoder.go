// Package mocks provides mock implementations for testing.
package mocks

import (
	"github.com/user/framecast/pkg/ports"
)

// Transcoder is a mock implementation of ports.Transcoder.
type Transcoder struct {
	StartFunc func(cfg ports.TranscodeConfig) (ports.TranscodeSession, error)

	// Recorded calls for verification
	StartCalls []ports.TranscodeConfig
}

func (m *Transcoder) Start(cfg ports.TranscodeConfig) (ports.TranscodeSession, error) {
	m.StartCalls = append(m.StartCalls, cfg)
	if m.StartFunc != nil {
		return m.StartFunc(cfg)
	}
	return &TranscodeSession{}, nil
}

// TranscodeSession is a mock implementation of ports.TranscodeSession.
type TranscodeSession struct {
	WriteFrameFunc func(data []byte) error
	CloseInputFunc func() error
	WaitFunc       func() error

	// Recorded calls for verification
	Frames      [][]byte
	InputClosed bool
	WaitCalled  bool
}

func (m *TranscodeSession) WriteFrame(data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	m.Frames = append(m.Frames, buf)
	if m.WriteFrameFunc != nil {
		return m.WriteFrameFunc(data)
	}
	return nil
}

func (m *TranscodeSession) CloseInput() error {
	m.InputClosed = true
	if m.CloseInputFunc != nil {
		return m.CloseInputFunc()
	}
	return nil
}

func (m *TranscodeSession) Wait() error {
	m.WaitCalled = true
	if m.WaitFunc != nil {
		return m.WaitFunc()
	}
	return nil
}

// Ensure the mocks implement the ports
var (
	_ ports.Transcoder       = (*Transcoder)(nil)
	_ ports.TranscodeSession = (*TranscodeSession)(nil)
)
