package devicecheck

import (
	"strings"
	"sync"
)

// Platform represents the device platform the app is running on
type Platform string

const (
	PlatformIPhone      Platform = "iPhone"
	PlatformIPad        Platform = "iPad"
	PlatformMacCatalyst Platform = "macCatalyst"
	PlatformMac         Platform = "mac"
	PlatformTV          Platform = "tv"
	PlatformWatch       Platform = "watch"
	PlatformVision      Platform = "vision"
	PlatformUnknown     Platform = "unknown"
)

var allPlatforms = []Platform{
	PlatformIPhone,
	PlatformIPad,
	PlatformMacCatalyst,
	PlatformMac,
	PlatformTV,
	PlatformWatch,
	PlatformVision,
	PlatformUnknown,
}

// String returns the display label of the platform
func (p Platform) String() string {
	return string(p)
}

// Platforms returns every platform in declaration order
func Platforms() []Platform {
	out := make([]Platform, len(allPlatforms))
	copy(out, allPlatforms)
	return out
}

// ParsePlatform maps a label back to its platform. Matching ignores case.
func ParsePlatform(s string) (Platform, bool) {
	for _, p := range allPlatforms {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return PlatformUnknown, false
}

// Checker is the read-only view a display layer consumes
type Checker interface {
	CurrentPlatform() Platform
	IsIPhone() bool
	IsIPad() bool
	IsMac() bool
	IsMacCatalyst() bool
	IsTV() bool
	IsWatch() bool
	IsVision() bool
	IsSimulator() bool
}

// Detector holds the platform resolved for this process. The value is fixed at
// construction and never re-evaluated.
type Detector struct {
	platform Platform
}

var _ Checker = (*Detector)(nil)

var shared = sync.OnceValue(Detect)

// Shared returns the process-wide detector, resolving the platform on first use.
//
// On iOS the first call asks UIKit for the device idiom, and UIKit only answers
// on the main thread. Make the first call from the main thread (app launch or
// the first view), or call it once there before handing work to goroutines.
func Shared() *Detector {
	return shared()
}

// Detect resolves the platform from the host signals and returns a new detector.
// Most callers want Shared instead.
func Detect() *Detector {
	sig := HostSignals()
	p := Resolve(sig)
	logger().Debug().
		Str("platform", p.String()).
		Str("os", sig.OS.String()).
		Bool("catalyst", sig.Catalyst).
		Str("idiom", sig.Idiom.String()).
		Msg("detected platform")
	return &Detector{platform: p}
}

// NewDetector returns an isolated detector pinned to p. It never inspects the
// environment and is not shared; use it in tests and previews.
func NewDetector(p Platform) *Detector {
	return &Detector{platform: p}
}

// CurrentPlatform returns the platform the app is running on
func (d *Detector) CurrentPlatform() Platform {
	return d.platform
}

// IsIPhone returns true if running on an iPhone
func (d *Detector) IsIPhone() bool {
	return d.platform == PlatformIPhone
}

// IsIPad returns true if running on an iPad
func (d *Detector) IsIPad() bool {
	return d.platform == PlatformIPad
}

// IsMac returns true if running natively on macOS (not Catalyst)
func (d *Detector) IsMac() bool {
	return d.platform == PlatformMac
}

// IsMacCatalyst returns true if running via Mac Catalyst
func (d *Detector) IsMacCatalyst() bool {
	return d.platform == PlatformMacCatalyst
}

// IsTV returns true if running on tvOS
func (d *Detector) IsTV() bool {
	return d.platform == PlatformTV
}

// IsWatch returns true if running on watchOS
func (d *Detector) IsWatch() bool {
	return d.platform == PlatformWatch
}

// IsVision returns true if running on visionOS
func (d *Detector) IsVision() bool {
	return d.platform == PlatformVision
}

// IsSimulator returns true if the process runs inside a simulator.
// It does not depend on the detector's platform.
func (d *Detector) IsSimulator() bool {
	return Simulated()
}

// Flag is a named boolean query, in the order a display lists them
type Flag struct {
	Name  string
	Value bool
}

// Flags evaluates every query on c
func Flags(c Checker) []Flag {
	return []Flag{
		{Name: "isIphone", Value: c.IsIPhone()},
		{Name: "isIpad", Value: c.IsIPad()},
		{Name: "isMac", Value: c.IsMac()},
		{Name: "isMacCatalyst", Value: c.IsMacCatalyst()},
		{Name: "isTV", Value: c.IsTV()},
		{Name: "isWatch", Value: c.IsWatch()},
		{Name: "isVision", Value: c.IsVision()},
		{Name: "isSimulator", Value: c.IsSimulator()},
	}
}
