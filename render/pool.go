package render

// RenderBufferPool hands out shared renderbuffers keyed by format, size and
// sample count. Depth, stencil and multisample-colour buffers are transient
// (their contents never survive a frame), so unrelated framebuffer targets
// can safely share one buffer as long as the storage matches.
//
// Ownership is checkout/checkin: every Request must be paired with exactly
// one Release. The buffer is destroyed when its last checkout is released.
type RenderBufferPool struct {
	dev     Device
	entries map[*RenderBuffer]*poolEntry
	byKey   map[poolKey][]*poolEntry
}

type poolKey struct {
	format  PixelFormat
	width   int
	height  int
	samples int
}

type poolEntry struct {
	buf  *RenderBuffer
	refs int
}

// NewRenderBufferPool creates an empty pool allocating through dev.
func NewRenderBufferPool(dev Device) *RenderBufferPool {
	return &RenderBufferPool{
		dev:     dev,
		entries: make(map[*RenderBuffer]*poolEntry),
		byKey:   make(map[poolKey][]*poolEntry),
	}
}

// Request checks out a renderbuffer with the given storage, reusing a live
// pooled buffer when one matches and allocating otherwise.
func (p *RenderBufferPool) Request(format PixelFormat, width, height, samples int) Surface {
	key := poolKey{format: format, width: width, height: height, samples: samples}
	if live := p.byKey[key]; len(live) > 0 {
		e := live[0]
		e.refs++
		return Surface{Buffer: e.buf}
	}
	e := &poolEntry{
		buf:  NewRenderBuffer(p.dev, format, width, height, samples),
		refs: 1,
	}
	p.entries[e.buf] = e
	p.byKey[key] = append(p.byKey[key], e)
	return Surface{Buffer: e.buf}
}

// Release checks a surface back in and zeroes it so a second Release of the
// same variable is a no-op. Releasing an empty surface, or one whose buffer
// did not come from this pool, does nothing.
func (p *RenderBufferPool) Release(s *Surface) {
	if s == nil || s.Empty() {
		return
	}
	rb, ok := s.Buffer.(*RenderBuffer)
	*s = Surface{}
	if !ok {
		return
	}
	e, ok := p.entries[rb]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(p.entries, rb)
	key := poolKey{format: rb.format, width: rb.width, height: rb.height, samples: rb.samples}
	live := p.byKey[key]
	for i, le := range live {
		if le == e {
			p.byKey[key] = append(live[:i], live[i+1:]...)
			break
		}
	}
	if len(p.byKey[key]) == 0 {
		delete(p.byKey, key)
	}
	rb.Destroy()
}

// Live returns the number of distinct buffers currently checked out.
func (p *RenderBufferPool) Live() int { return len(p.entries) }
