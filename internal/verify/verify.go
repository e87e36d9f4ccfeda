// Package verify loads encoded FEN strings into a real move generator to
// confirm downstream consumers accept them.
package verify

import (
	"errors"
	"fmt"

	gm "github.com/Oliverans/GooseEngineMG/goosemg"
)

// ErrRejected wraps the consumer's reason for refusing a FEN string.
var ErrRejected = errors.New("FEN rejected by consumer")

// Check parses fen with the goosemg board loader.
func Check(fen string) error {
	if _, err := gm.ParseFEN(fen); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return nil
}
