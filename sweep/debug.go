//go:build voronoidebug

package sweep

import (
	"log"
	"os"
)

var debugLog debugLogger = log.New(os.Stderr, "[voronoi2d DEBUG] ", log.LstdFlags)
