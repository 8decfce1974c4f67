package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Write places text on the system clipboard.
func Write(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
