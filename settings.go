package reflow

import "fmt"

// Quality scoring constants. Level 1-3 maps to an internal score used by
// the engine when re-encoding page images: 50, 75, 100.
const (
	MinQuality = 1
	MaxQuality = 3

	qualityBase = 50
	qualityStep = 25
)

// Length bounds for textual settings.
const (
	// MaxPageRangeLen bounds the page-range selector string.
	MaxPageRangeLen = 1023

	// MaxOutputPathLen bounds the staged output path.
	MaxOutputPathLen = 255
)

// Settings is the staged configuration consumed by a conversion call.
// Fields are independent: no setter touches a field other than its own,
// so the final value of each field is whatever the last successful
// setter for it wrote. The zero value is not usable; Init resets a
// session's settings via defaultSettings.
type Settings struct {
	Device       string // device code of the last profile applied, "" if none
	Width        int    // output width, pixels
	Height       int    // output height, pixels
	Quality      int    // quality level, 1-3
	QualityScore int    // derived score, 50/75/100
	OCR          bool
	PageRange    string // opaque selector, e.g. "1-10" or "1,3,5"
	OutputPath   string // staged by Process, overwritten wholesale on each call
}

// defaultSettings returns the engine defaults applied by Init.
// They match the generic kindle profile.
func defaultSettings() Settings {
	return Settings{
		Device:       "",
		Width:        560,
		Height:       735,
		Quality:      2,
		QualityScore: qualityScore(2),
	}
}

func qualityScore(level int) int {
	return qualityBase + (level-1)*qualityStep
}

// SetDevice applies a device profile, overwriting width, height, and
// quality with the profile defaults. Unknown codes leave settings
// unchanged. Applying a profile after explicit SetWidth/SetHeight calls
// overwrites those values: order of calls decides the effective value.
func (s *Session) SetDevice(name string) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	p, ok := LookupDevice(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDevice, name)
	}
	s.settings.Device = p.Name
	s.settings.Width = p.Width
	s.settings.Height = p.Height
	s.settings.Quality = p.Quality
	s.settings.QualityScore = qualityScore(p.Quality)
	return nil
}

// SetWidth sets the output width in pixels. Must be positive.
func (s *Session) SetWidth(px int) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if px <= 0 {
		return fmt.Errorf("%w: width %d, must be positive", ErrInvalidValue, px)
	}
	s.settings.Width = px
	return nil
}

// SetHeight sets the output height in pixels. Must be positive.
func (s *Session) SetHeight(px int) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if px <= 0 {
		return fmt.Errorf("%w: height %d, must be positive", ErrInvalidValue, px)
	}
	s.settings.Height = px
	return nil
}

// SetQuality sets the quality level (1-3, 3 highest). Levels map to
// strictly increasing internal scores.
func (s *Session) SetQuality(level int) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if level < MinQuality || level > MaxQuality {
		return fmt.Errorf("%w: quality %d, must be %d-%d", ErrInvalidValue, level, MinQuality, MaxQuality)
	}
	s.settings.Quality = level
	s.settings.QualityScore = qualityScore(level)
	return nil
}

// SetPageRange stores the page selector verbatim, e.g. "1-10" or
// "1,3,5-8". No syntax validation happens here; a malformed selector
// surfaces as a conversion failure from Process. Input longer than
// MaxPageRangeLen is rejected rather than silently truncated.
func (s *Session) SetPageRange(sel string) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if len(sel) > MaxPageRangeLen {
		return fmt.Errorf("%w: page range is %d bytes, max %d", ErrValueTooLong, len(sel), MaxPageRangeLen)
	}
	s.settings.PageRange = sel
	return nil
}

// SetOCR enables or disables OCR text extraction. Builds without the
// ocr build tag fail with ErrOCRUnavailable regardless of the enable
// value, matching the compile-time capability gate. Use Capabilities
// to query support without a failing call.
func (s *Session) SetOCR(enable bool) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	if !ocrAvailable {
		return ErrOCRUnavailable
	}
	s.settings.OCR = enable
	return nil
}

// SetMargins is a reserved interface slot; margins are not wired into
// the engine in this version and every call fails.
func (s *Session) SetMargins(left, top, right, bottom float64) error {
	if !s.initialized {
		return ErrNotInitialized
	}
	return fmt.Errorf("%w: margins", ErrNotImplemented)
}

// Settings returns a snapshot of the current staged configuration.
func (s *Session) Settings() (Settings, error) {
	if !s.initialized {
		return Settings{}, ErrNotInitialized
	}
	return s.settings, nil
}
