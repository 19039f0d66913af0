package reflow

// Capability names an optionally compiled-in feature. Availability is
// fixed at build time; Capabilities lets callers query support instead
// of discovering it through a failing setter.
type Capability string

// Known capabilities.
const (
	CapabilityOCR Capability = "ocr"
)

// Capabilities returns the capabilities compiled into this build.
// It needs no session and never fails.
func Capabilities() []Capability {
	var caps []Capability
	if ocrAvailable {
		caps = append(caps, CapabilityOCR)
	}
	return caps
}

// Supports reports whether this build has the given capability.
func Supports(c Capability) bool {
	for _, have := range Capabilities() {
		if have == c {
			return true
		}
	}
	return false
}
