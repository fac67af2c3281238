package mocks

import (
	"github.com/user/framecast/pkg/ports"
)

// FrameSource is a mock implementation of ports.FrameSource.
type FrameSource struct {
	FrameFunc func(index int) ([]byte, error)

	// Recorded calls for verification
	FrameCalls []int
}

func (m *FrameSource) Frame(index int) ([]byte, error) {
	m.FrameCalls = append(m.FrameCalls, index)
	if m.FrameFunc != nil {
		return m.FrameFunc(index)
	}
	return nil, nil
}

var _ ports.FrameSource = (*FrameSource)(nil)
