package apple

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Machine returns the hw.machine sysctl: a model identifier such as
// "iPhone15,2" on devices, the host CPU ("arm64", "x86_64") on simulators and Macs.
func Machine() (string, error) {
	machine, err := unix.Sysctl("hw.machine")
	if err != nil {
		return "", fmt.Errorf("sysctl hw.machine: %w", err)
	}
	return machine, nil
}
