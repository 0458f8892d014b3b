package devicecheck

import (
	"github.com/agiangrant/devicecheck/internal/apple"
)

// hostIdiom asks UIKit for the current device idiom. Must run on the main thread.
func hostIdiom() Idiom {
	raw, err := apple.UserInterfaceIdiom()
	if err != nil {
		logger().Debug().Err(err).Msg("UIKit idiom unavailable")
		return IdiomUnspecified
	}
	return Idiom(raw)
}

// hostMachine returns the hw.machine sysctl
func hostMachine() string {
	machine, err := apple.Machine()
	if err != nil {
		logger().Debug().Err(err).Msg("hw.machine unavailable")
		return ""
	}
	return machine
}
