package devicecheck

import (
	"os"
	"runtime"
	"strings"
	"sync"
)

// OSFamily is the operating system family the binary was built for
type OSFamily int

const (
	OSOther OSFamily = iota
	OSIOS
	OSMacOS
	OSTVOS
	OSWatchOS
	OSVisionOS
)

func (f OSFamily) String() string {
	switch f {
	case OSIOS:
		return "ios"
	case OSMacOS:
		return "macos"
	case OSTVOS:
		return "tvos"
	case OSWatchOS:
		return "watchos"
	case OSVisionOS:
		return "visionos"
	default:
		return "other"
	}
}

// isAppleMobile reports whether the family ships a simulator
func (f OSFamily) isAppleMobile() bool {
	switch f {
	case OSIOS, OSTVOS, OSWatchOS, OSVisionOS:
		return true
	default:
		return false
	}
}

// Idiom mirrors UIUserInterfaceIdiom raw values
type Idiom int

const (
	IdiomUnspecified Idiom = -1
	IdiomPhone       Idiom = 0
	IdiomPad         Idiom = 1
	IdiomTV          Idiom = 2
	IdiomCarPlay     Idiom = 3
	IdiomMac         Idiom = 5
	IdiomVision      Idiom = 6
)

func (i Idiom) String() string {
	switch i {
	case IdiomPhone:
		return "phone"
	case IdiomPad:
		return "pad"
	case IdiomTV:
		return "tv"
	case IdiomCarPlay:
		return "carPlay"
	case IdiomMac:
		return "mac"
	case IdiomVision:
		return "vision"
	default:
		return "unspecified"
	}
}

// Signals are the environment inputs platform resolution looks at
type Signals struct {
	// Catalyst is set for Mac Catalyst builds
	Catalyst bool
	OS       OSFamily
	// Idiom is only consulted for OSIOS
	Idiom Idiom
}

// Resolve maps signals to a platform. Checks run in a fixed priority order and
// the first match wins; anything unrecognized is PlatformUnknown.
func Resolve(s Signals) Platform {
	switch {
	case s.Catalyst:
		return PlatformMacCatalyst
	case s.OS == OSIOS:
		switch s.Idiom {
		case IdiomPhone:
			return PlatformIPhone
		case IdiomPad:
			return PlatformIPad
		default:
			return PlatformUnknown
		}
	case s.OS == OSMacOS:
		return PlatformMac
	case s.OS == OSTVOS:
		return PlatformTV
	case s.OS == OSWatchOS:
		return PlatformWatch
	case s.OS == OSVisionOS:
		return PlatformVision
	default:
		return PlatformUnknown
	}
}

// HostSignals reads the signals of the running process. The OS family and
// catalyst mode are fixed at build time; the idiom is asked of UIKit.
func HostSignals() Signals {
	s := Signals{
		Catalyst: catalystBuild,
		OS:       hostOS,
		Idiom:    IdiomUnspecified,
	}
	if s.OS == OSIOS && !s.Catalyst {
		s.Idiom = hostIdiom()
	}
	return s
}

// simulatorEnv is set by the simulator runtime in every launched process
var simulatorEnv = []string{"SIMULATOR_UDID", "SIMULATOR_DEVICE_NAME"}

var simulated = sync.OnceValue(func() bool {
	sim := isSimulator(hostOS, catalystBuild, os.Getenv, hostMachine)
	logger().Debug().
		Bool("simulator", sim).
		Str("os", hostOS.String()).
		Str("arch", runtime.GOARCH).
		Msg("evaluated simulator signal")
	return sim
})

// Simulated reports whether the process runs inside a simulator
func Simulated() bool {
	return simulated()
}

// isSimulator decides the simulator signal. Simulators report the host CPU as
// hw.machine while devices report a model identifier such as "iPhone15,2".
// Catalyst apps run on Mac hardware, which also reports the host CPU.
func isSimulator(family OSFamily, catalyst bool, getenv func(string) string, machine func() string) bool {
	if catalyst || !family.isAppleMobile() {
		return false
	}
	for _, key := range simulatorEnv {
		if getenv(key) != "" {
			return true
		}
	}
	switch strings.TrimSpace(machine()) {
	case "x86_64", "i386", "arm64":
		return true
	default:
		return false
	}
}
