package game

// Headless is a Frontend without presentation. It never waits and requests
// quit once a match ends.
type Headless struct {
	done   bool
	frames int
	winner *Winner
	last   Frame
}

// NewHeadless creates a headless frontend.
func NewHeadless() *Headless {
	return &Headless{}
}

// Poll requests quit after a victory frame has been presented.
func (h *Headless) Poll() Input {
	return Input{Quit: h.done}
}

// Present keeps the latest frame and notes the end of the match.
func (h *Headless) Present(f *Frame) {
	h.frames++
	h.last = *f
	if f.State == StateVictory {
		h.done = true
		h.winner = f.Winner
	}
}

// Wait returns immediately.
func (h *Headless) Wait() float64 {
	return 0
}

// Close implements Frontend.
func (h *Headless) Close() error {
	return nil
}

// Frames returns how many frames were presented.
func (h *Headless) Frames() int {
	return h.frames
}

// Winner returns the result of the finished match, if any.
func (h *Headless) Winner() (Winner, bool) {
	if h.winner == nil {
		return Winner{}, false
	}
	return *h.winner, true
}

// Last returns the most recently presented frame.
func (h *Headless) Last() Frame {
	return h.last
}
