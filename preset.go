package mandel

// Preset is a named workload configuration pairing a resolution with an
// iteration cap. Presets carry no region; combine them with DefaultRegion
// or a landmark region.
type Preset struct {
	Width   int
	Height  int
	MaxIter int
}

// Standard workload presets, ordered by cost.
var (
	// PresetEasy is a small grid at shallow depth.
	PresetEasy = Preset{Width: 800, Height: 600, MaxIter: 100}

	// PresetMedium is a mid-size grid at moderate depth.
	PresetMedium = Preset{Width: 1200, Height: 900, MaxIter: 150}

	// PresetHard is a large grid at full depth.
	PresetHard = Preset{Width: 2000, Height: 1500, MaxIter: 2000}
)

// LookupPreset returns the preset registered under name ("easy", "medium"
// or "hard"). The second return value reports whether the name is known.
func LookupPreset(name string) (Preset, bool) {
	switch name {
	case "easy":
		return PresetEasy, true
	case "medium":
		return PresetMedium, true
	case "hard":
		return PresetHard, true
	}
	return Preset{}, false
}
