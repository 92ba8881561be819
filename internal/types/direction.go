package types

// Direction is the discrete signal produced from a joystick sample
type Direction int

const (
	Neutral Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Neutral"
	}
}

// Player identifies one of the two joysticks
type Player int

const (
	Player1 Player = iota
	Player2
)

func (p Player) String() string {
	if p == Player2 {
		return "player 2"
	}
	return "player 1"
}
