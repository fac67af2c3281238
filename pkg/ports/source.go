package ports

// FrameSource produces raw RGBA frames for an encoding session.
type FrameSource interface {
	// Frame renders the frame at the given index as a tightly packed RGBA
	// buffer of exactly width*height*4 bytes, one 8-bit R,G,B,A quad per
	// pixel in row-major order.
	Frame(index int) ([]byte, error)
}
