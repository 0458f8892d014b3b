// Package mobile exposes the shared detector to native display code.
//
// iOS Build:
//
//	gomobile bind -target ios -o DeviceCheck.xcframework ./mobile
//
// Mac Catalyst Build:
//
//	gomobile bind -target maccatalyst -o DeviceCheck.xcframework ./mobile
//
// gomobile exports each function with the package name prefix
// (MobileIsIphone, MobileCurrentPlatform, ...). Only bool and string cross
// the boundary.
//
// The first call on iOS reads the device idiom from UIKit, which must happen on
// the main thread. Call CurrentPlatform once from the app delegate or the first
// view before using the package from background queues.
package mobile

import (
	"github.com/agiangrant/devicecheck"
)

// Title is the heading native list screens show
const Title = "Device Checker"

// CurrentPlatform returns the platform label, e.g. "iPhone" or "macCatalyst"
func CurrentPlatform() string {
	return devicecheck.Shared().CurrentPlatform().String()
}

// IsIphone reports whether the app runs on an iPhone
func IsIphone() bool {
	return devicecheck.Shared().IsIPhone()
}

// IsIpad reports whether the app runs on an iPad
func IsIpad() bool {
	return devicecheck.Shared().IsIPad()
}

// IsMac reports whether the app runs natively on macOS. False under Catalyst.
func IsMac() bool {
	return devicecheck.Shared().IsMac()
}

// IsMacCatalyst reports whether the app runs on a Mac through Catalyst
func IsMacCatalyst() bool {
	return devicecheck.Shared().IsMacCatalyst()
}

// IsTV reports whether the app runs on tvOS
func IsTV() bool {
	return devicecheck.Shared().IsTV()
}

// IsWatch reports whether the app runs on watchOS
func IsWatch() bool {
	return devicecheck.Shared().IsWatch()
}

// IsVision reports whether the app runs on visionOS
func IsVision() bool {
	return devicecheck.Shared().IsVision()
}

// IsSimulator reports whether the app runs in a simulator. It is independent of
// the platform and always false for Catalyst and macOS builds.
func IsSimulator() bool {
	return devicecheck.Shared().IsSimulator()
}

// FlagCount returns the number of flags FlagName and FlagValue index
func FlagCount() int {
	return len(devicecheck.Flags(devicecheck.Shared()))
}

// FlagName returns the name of the i-th flag, or "" when out of range
func FlagName(i int) string {
	flags := devicecheck.Flags(devicecheck.Shared())
	if i < 0 || i >= len(flags) {
		return ""
	}
	return flags[i].Name
}

// FlagValue returns the value of the i-th flag, or false when out of range
func FlagValue(i int) bool {
	flags := devicecheck.Flags(devicecheck.Shared())
	if i < 0 || i >= len(flags) {
		return false
	}
	return flags[i].Value
}
