// SPDX-License-Identifier: MIT

package nnls

// pair is one L-BFGS curvature pair in full variable space:
// s = x_{k+1} − x_k, y = g_{k+1} − g_k.
type pair struct {
	s, y []float64
}

// history is a fixed-capacity FIFO ring of curvature pairs. Pushing into a
// full ring overwrites the oldest pair.
type history struct {
	buf   []pair
	start int // index of the oldest pair
	n     int // number of stored pairs
}

func newHistory(capacity int) *history {
	return &history{buf: make([]pair, capacity)}
}

func (h *history) push(s, y []float64) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = pair{s: s, y: y}
		h.n++
		return
	}
	h.buf[h.start] = pair{s: s, y: y}
	h.start = (h.start + 1) % len(h.buf)
}

// at returns the i-th pair, 0 being the oldest.
func (h *history) at(i int) pair { return h.buf[(h.start+i)%len(h.buf)] }

func (h *history) len() int { return h.n }

func (h *history) reset() {
	clear(h.buf)
	h.start, h.n = 0, 0
}
