package gpio

import (
	"fmt"
	"log"

	"github.com/warthog618/go-gpiocdev"
)

// Consumer is the label attached to requested lines
const Consumer = "ledpong"

// OpenCdev requests each offset on chip as an output driven low
func OpenCdev(chip string, offsets ...int) ([]Output, error) {
	log.Printf("Requesting %d GPIO lines on %s...", len(offsets), chip)

	lines := make([]Output, 0, len(offsets))
	for _, offset := range offsets {
		line, err := gpiocdev.RequestLine(chip, offset,
			gpiocdev.AsOutput(0),
			gpiocdev.WithConsumer(Consumer))
		if err != nil {
			// Clean up any lines we've already requested
			CloseAll(lines)
			return nil, fmt.Errorf("failed to request %s line %d: %w", chip, offset, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}
