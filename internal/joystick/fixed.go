package joystick

// Fixed is an ADC returning a set value per channel. Channels never set read
// as Centre.
type Fixed struct {
	values  map[int]uint16
	channel int
}

// NewFixed creates an ADC with every channel centred
func NewFixed() *Fixed {
	return &Fixed{values: make(map[int]uint16)}
}

// Set sets the value returned for channel
func (f *Fixed) Set(channel int, value uint16) {
	f.values[channel] = value
}

func (f *Fixed) Select(channel int) error {
	f.channel = channel
	return nil
}

func (f *Fixed) Start() error { return nil }

func (f *Fixed) Done() bool { return true }

func (f *Fixed) Read() (uint16, error) {
	if v, ok := f.values[f.channel]; ok {
		return v, nil
	}
	return Centre, nil
}
