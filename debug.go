package wicket

import (
	"fmt"
	"os"
)

// globalDebug enables extra validation and stderr warnings.
// Plain bool, no atomic — wicket is single-threaded.
var globalDebug bool

// SetDebug toggles debug mode. When enabled, wicket warns on stderr about
// suspicious inputs (malformed spritesheets, missing atlas regions) that
// would otherwise produce undefined visual results silently.
func SetDebug(enabled bool) {
	globalDebug = enabled
}

// debugCheckSheet warns when a spritesheet's height is not a whole multiple
// of its width. Frames are assumed square; anything else renders garbage.
func debugCheckSheet(sheetW, sheetH float64) {
	if sheetW <= 0 {
		return
	}
	if rem := int(sheetH) % int(sheetW); rem != 0 {
		_, _ = fmt.Fprintf(os.Stderr,
			"[wicket] warning: spritesheet %gx%g is not a whole number of square frames\n",
			sheetW, sheetH)
	}
}
