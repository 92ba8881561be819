package hub75

import "github.com/joduyemi/LedPanel/internal/types"

// Emulator is the receiving end of the panel interface. It samples the data
// line on each rising clock edge and, when the latch rises, decodes the last
// ChainLength bits into the two rows selected by the address lines.
type Emulator struct {
	data  int
	clock int
	latch int
	addr  [AddressLines]int

	chain []bool

	visible types.Frame

	// Clocks and Latches count rising edges since the last Reset
	Clocks  int
	Latches int

	// OnLatch, when set, is called after each latch with the row address
	OnLatch func(row int)
}

// NewEmulator returns an emulator with every line low
func NewEmulator() *Emulator {
	return &Emulator{
		chain: make([]bool, 0, ChainLength),
	}
}

// Pins returns lines wired to the emulator
func (e *Emulator) Pins() Pins {
	p := Pins{
		Data:  lineFunc(func(v int) { e.data = v }),
		Clock: lineFunc(e.setClock),
		Latch: lineFunc(e.setLatch),
	}
	for i := range p.Addr {
		i := i
		p.Addr[i] = lineFunc(func(v int) { e.addr[i] = v })
	}
	return p
}

// Frame returns what the panel currently shows
func (e *Emulator) Frame() types.Frame {
	return e.visible
}

// Row returns the address currently driven on the address lines
func (e *Emulator) Row() int {
	row := 0
	for _, v := range e.addr {
		row = row<<1 | v
	}
	return row
}

// Reset clears the counters and the shift register
func (e *Emulator) Reset() {
	e.Clocks = 0
	e.Latches = 0
	e.chain = e.chain[:0]
}

func (e *Emulator) setClock(v int) {
	if v != 0 && e.clock == 0 {
		e.Clocks++
		if len(e.chain) == ChainLength {
			e.chain = append(e.chain[:0], e.chain[1:]...)
		}
		e.chain = append(e.chain, e.data != 0)
	}
	e.clock = v
}

func (e *Emulator) setLatch(v int) {
	if v != 0 && e.latch == 0 {
		e.Latches++
		e.show()
	}
	e.latch = v
}

func (e *Emulator) show() {
	if len(e.chain) < ChainLength {
		return
	}
	row := e.Row()
	half := ChainLength / 2
	decodeRow(&e.visible[row+types.RowPairs], e.chain[:half])
	decodeRow(&e.visible[row], e.chain[half:])
	if e.OnLatch != nil {
		e.OnLatch(row)
	}
}

func decodeRow(dst *[types.Width]types.Pixel, bits []bool) {
	for col := range dst {
		dst[col] = types.Pixel{
			B: bits[col],
			G: bits[types.Width+col],
			R: bits[2*types.Width+col],
		}
	}
}

type lineFunc func(int)

func (f lineFunc) SetValue(v int) error {
	f(v)
	return nil
}
