package devicecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		signals Signals
		want    Platform
	}{
		{
			name:    "iOS phone idiom",
			signals: Signals{OS: OSIOS, Idiom: IdiomPhone},
			want:    PlatformIPhone,
		},
		{
			name:    "iOS pad idiom",
			signals: Signals{OS: OSIOS, Idiom: IdiomPad},
			want:    PlatformIPad,
		},
		{
			name:    "iOS unspecified idiom",
			signals: Signals{OS: OSIOS, Idiom: IdiomUnspecified},
			want:    PlatformUnknown,
		},
		{
			name:    "iOS carPlay idiom",
			signals: Signals{OS: OSIOS, Idiom: IdiomCarPlay},
			want:    PlatformUnknown,
		},
		{
			name:    "iOS mac idiom",
			signals: Signals{OS: OSIOS, Idiom: IdiomMac},
			want:    PlatformUnknown,
		},
		{
			name:    "catalyst",
			signals: Signals{Catalyst: true, OS: OSIOS, Idiom: IdiomMac},
			want:    PlatformMacCatalyst,
		},
		{
			name:    "catalyst wins over pad idiom",
			signals: Signals{Catalyst: true, OS: OSIOS, Idiom: IdiomPad},
			want:    PlatformMacCatalyst,
		},
		{
			name:    "catalyst wins over macOS",
			signals: Signals{Catalyst: true, OS: OSMacOS},
			want:    PlatformMacCatalyst,
		},
		{
			name:    "macOS",
			signals: Signals{OS: OSMacOS, Idiom: IdiomUnspecified},
			want:    PlatformMac,
		},
		{
			name:    "macOS ignores idiom",
			signals: Signals{OS: OSMacOS, Idiom: IdiomPhone},
			want:    PlatformMac,
		},
		{
			name:    "tvOS",
			signals: Signals{OS: OSTVOS},
			want:    PlatformTV,
		},
		{
			name:    "watchOS",
			signals: Signals{OS: OSWatchOS},
			want:    PlatformWatch,
		},
		{
			name:    "visionOS",
			signals: Signals{OS: OSVisionOS, Idiom: IdiomVision},
			want:    PlatformVision,
		},
		{
			name:    "other OS",
			signals: Signals{OS: OSOther, Idiom: IdiomPhone},
			want:    PlatformUnknown,
		},
		{
			name:    "zero value",
			signals: Signals{},
			want:    PlatformUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Resolve(tt.signals))
		})
	}
}

func TestHostSignals(t *testing.T) {
	t.Parallel()

	s := HostSignals()
	assert.Equal(t, hostOS, s.OS)
	assert.Equal(t, catalystBuild, s.Catalyst)
	if s.OS != OSIOS || s.Catalyst {
		assert.Equal(t, IdiomUnspecified, s.Idiom)
	}
}

func TestIsSimulator(t *testing.T) {
	t.Parallel()

	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}
	machine := func(m string) func() string {
		return func() string { return m }
	}

	tests := []struct {
		name     string
		family   OSFamily
		catalyst bool
		env      map[string]string
		machine  string
		want     bool
	}{
		{
			name:    "device model identifier",
			family:  OSIOS,
			machine: "iPhone15,2",
			want:    false,
		},
		{
			name:    "simulator udid",
			family:  OSIOS,
			env:     map[string]string{"SIMULATOR_UDID": "4A1B"},
			machine: "iPhone15,2",
			want:    true,
		},
		{
			name:    "simulator device name",
			family:  OSWatchOS,
			env:     map[string]string{"SIMULATOR_DEVICE_NAME": "Apple Watch Ultra"},
			want:    true,
		},
		{
			name:    "arm64 host machine",
			family:  OSVisionOS,
			machine: "arm64",
			want:    true,
		},
		{
			name:    "x86_64 host machine",
			family:  OSTVOS,
			machine: "x86_64\n",
			want:    true,
		},
		{
			name:     "catalyst on Mac hardware",
			family:   OSIOS,
			catalyst: true,
			machine:  "arm64",
			want:     false,
		},
		{
			name:     "catalyst on Intel Mac",
			family:   OSIOS,
			catalyst: true,
			machine:  "x86_64",
			want:     false,
		},
		{
			name:    "macOS never simulated",
			family:  OSMacOS,
			env:     map[string]string{"SIMULATOR_UDID": "4A1B"},
			machine: "arm64",
			want:    false,
		},
		{
			name:    "other OS never simulated",
			family:  OSOther,
			env:     map[string]string{"SIMULATOR_UDID": "4A1B"},
			machine: "x86_64",
			want:    false,
		},
		{
			name:   "unknown machine",
			family: OSIOS,
			want:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isSimulator(tt.family, tt.catalyst, env(tt.env), machine(tt.machine)))
		})
	}
}

func TestSimulatedStable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Simulated(), Simulated())
	if catalystBuild || !hostOS.isAppleMobile() {
		assert.False(t, Simulated())
	}
}

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ios", OSIOS.String())
	assert.Equal(t, "visionos", OSVisionOS.String())
	assert.Equal(t, "other", OSOther.String())
	assert.Equal(t, "pad", IdiomPad.String())
	assert.Equal(t, "unspecified", IdiomUnspecified.String())
	assert.Equal(t, "unspecified", Idiom(42).String())
}
