package reflow

import "sort"

// Profile holds the default output geometry and quality for a target
// reading device. Selecting a profile overwrites width, height, and
// quality; it does not constrain later explicit setter calls.
type Profile struct {
	Name    string
	Width   int // pixels
	Height  int // pixels
	Quality int // 1-3
}

// deviceProfiles maps short device codes to their output defaults.
// Lookup is case-sensitive exact match; there is no fuzzy fallback.
var deviceProfiles = map[string]Profile{
	"kindle": {Name: "kindle", Width: 560, Height: 735, Quality: 2},
	"k2":     {Name: "k2", Width: 560, Height: 735, Quality: 2},
	"dx":     {Name: "dx", Width: 824, Height: 1000, Quality: 2},
	"kpw":    {Name: "kpw", Width: 758, Height: 1024, Quality: 2},
	"kv":     {Name: "kv", Width: 1016, Height: 1364, Quality: 3},
	"kp3":    {Name: "kp3", Width: 1016, Height: 1364, Quality: 3},
	"kbt":    {Name: "kbt", Width: 600, Height: 730, Quality: 2},
	"kbg":    {Name: "kbg", Width: 758, Height: 942, Quality: 2},
	"kao":    {Name: "kao", Width: 1404, Height: 1836, Quality: 3},
	"nook":   {Name: "nook", Width: 600, Height: 730, Quality: 2},
	"prs":    {Name: "prs", Width: 584, Height: 754, Quality: 2},
}

// LookupDevice resolves a device code to its profile.
// The second return value reports whether the code is known.
func LookupDevice(name string) (Profile, bool) {
	p, ok := deviceProfiles[name]
	return p, ok
}

// DeviceNames returns all known device codes in sorted order.
func DeviceNames() []string {
	names := make([]string, 0, len(deviceProfiles))
	for name := range deviceProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
