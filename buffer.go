package turtls

// Buffer is a reusable byte buffer with an explicit writing head.
type Buffer struct {
	data []byte
}

func (b *Buffer) Bytes() []byte {
	return b.data
}

// bufferPool holds two buffers that are swapped between expansion
// generations so the previous generation can be read while the next is
// written, without reallocating per generation.
type bufferPool struct {
	active   *Buffer
	inactive *Buffer

	swap bool
}

func newBufferPool(capacity int) *bufferPool {
	return &bufferPool{
		active:   &Buffer{data: make([]byte, 0, capacity)},
		inactive: &Buffer{data: make([]byte, 0, capacity)},

		swap: false,
	}
}

func (p *bufferPool) Reset() {
	p.active.data = p.active.data[:0]
	p.inactive.data = p.inactive.data[:0]
	p.swap = false
}

func (p *bufferPool) GetActive() *Buffer {
	if p.swap {
		return p.inactive
	}
	return p.active
}

func (p *bufferPool) GetSwap() *Buffer {
	if p.swap {
		return p.active
	}
	return p.inactive
}

func (p *bufferPool) Append(c byte) {
	active := p.GetActive()
	active.data = append(active.data, c)
}

func (p *bufferPool) AppendString(s string) {
	active := p.GetActive()
	active.data = append(active.data, s...)
}

func (p *bufferPool) GetLen() int {
	return len(p.GetActive().data)
}

func (p *bufferPool) Swap() {
	p.swap = !p.swap
}

func (p *bufferPool) ResetWritingHead() {
	active := p.GetActive()
	active.data = active.data[:0]
}
