package game

import (
	"encoding/json"
	"os"
)

// SettingsFileName is the JSON file kept next to the binary.
const SettingsFileName = "settings_in_a.json"

// Settings holds every user-tunable value. The physics reads it as an
// immutable snapshot per step and never writes it back.
type Settings struct {
	AudioVolume     float64 `json:"audio_volume"`
	GravityStrength float64 `json:"gravity_strength"`
	AirFriction     float64 `json:"air_friction"`
	MaxVelocity     float64 `json:"max_velocity"`

	BallBounciness float64 `json:"ball_bounciness"`
	BallRadius     float64 `json:"ball_radius"`
	BallWeight     float64 `json:"ball_weight"`
	BallFriction   float64 `json:"ball_friction"`

	// Box dimensions double as the window size in pixels and the container
	// half extents in simulation units (the box spans [-w, w] x [-h, h]).
	BoxWidth     float64 `json:"box_width"`
	BoxHeight    float64 `json:"box_height"`
	BoxThickness float64 `json:"box_thickness"`
	BoxDepth     float64 `json:"box_depth"`

	// BoxWeight is the drag smoothing time constant; 0 disables smoothing.
	BoxWeight     float64 `json:"box_weight"`
	HideSmoothing bool    `json:"hide_smoothing"`
	QuickTurn     bool    `json:"quick_turn"`
	DelayFrames   int     `json:"delay_frames"`

	SoundDensity float64 `json:"sound_density"`
	MinHitSpeed  float64 `json:"min_hit_speed"`

	SpeedMul float64 `json:"speed_mul"`
	MaxFPS   int     `json:"max_fps"`
	Vsync    bool    `json:"vsync"`

	UnderstandsMoving bool `json:"understands_moving"`
}

// DefaultSettings returns the stock tuning.
func DefaultSettings() Settings {
	return Settings{
		AudioVolume:     0.6,
		GravityStrength: 3,
		AirFriction:     0.17,
		MaxVelocity:     100,

		BallBounciness: 0.9,
		BallRadius:     90,
		BallWeight:     0.65,
		BallFriction:   0.75,

		BoxWidth:     640,
		BoxHeight:    480,
		BoxThickness: 20,
		BoxDepth:     20,

		BoxWeight:     0.03,
		HideSmoothing: false,
		QuickTurn:     false,
		DelayFrames:   2,

		SoundDensity: 0.32,
		MinHitSpeed:  120,

		SpeedMul: 1,
		MaxFPS:   fpsLimit,
		Vsync:    true,
	}
}

// BoxHalf returns the container half extents in simulation units.
func (s *Settings) BoxHalf() vec2 {
	return vec2{s.BoxWidth, s.BoxHeight}
}

// deserializeSettings mirrors Settings with optional fields so a partial or
// hand-edited file degrades per field instead of failing whole.
type deserializeSettings struct {
	AudioVolume     *float64 `json:"audio_volume"`
	GravityStrength *float64 `json:"gravity_strength"`
	AirFriction     *float64 `json:"air_friction"`
	MaxVelocity     *float64 `json:"max_velocity"`

	BallBounciness *float64 `json:"ball_bounciness"`
	BallRadius     *float64 `json:"ball_radius"`
	BallWeight     *float64 `json:"ball_weight"`
	BallFriction   *float64 `json:"ball_friction"`

	BoxWidth     *float64 `json:"box_width"`
	BoxHeight    *float64 `json:"box_height"`
	BoxThickness *float64 `json:"box_thickness"`
	BoxDepth     *float64 `json:"box_depth"`

	BoxWeight     *float64 `json:"box_weight"`
	HideSmoothing *bool    `json:"hide_smoothing"`
	QuickTurn     *bool    `json:"quick_turn"`
	DelayFrames   *int     `json:"delay_frames"`

	SoundDensity *float64 `json:"sound_density"`
	MinHitSpeed  *float64 `json:"min_hit_speed"`

	SpeedMul *float64 `json:"speed_mul"`
	MaxFPS   *int     `json:"max_fps"`
	Vsync    *bool    `json:"vsync"`

	UnderstandsMoving *bool `json:"understands_moving"`
}

func pickFloat(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

// pickFloatMin rejects values below floor as if they were absent.
func pickFloatMin(v *float64, floor, fallback float64) float64 {
	if v == nil || *v < floor {
		return fallback
	}
	return *v
}

func pickBool(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func pickInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// toSettings fills in defaults for missing fields and reports whether any
// field was missing, so the caller can rewrite a completed file.
func (d *deserializeSettings) toSettings() (Settings, bool) {
	def := DefaultSettings()

	incomplete := d.AudioVolume == nil || d.GravityStrength == nil ||
		d.AirFriction == nil || d.MaxVelocity == nil ||
		d.BallBounciness == nil || d.BallRadius == nil ||
		d.BallWeight == nil || d.BallFriction == nil ||
		d.BoxWidth == nil || d.BoxHeight == nil ||
		d.BoxThickness == nil || d.BoxDepth == nil ||
		d.BoxWeight == nil || d.HideSmoothing == nil ||
		d.QuickTurn == nil || d.DelayFrames == nil ||
		d.SoundDensity == nil || d.MinHitSpeed == nil ||
		d.SpeedMul == nil || d.MaxFPS == nil || d.Vsync == nil ||
		d.UnderstandsMoving == nil

	s := Settings{
		AudioVolume:     pickFloat(d.AudioVolume, def.AudioVolume),
		GravityStrength: pickFloat(d.GravityStrength, def.GravityStrength),
		AirFriction:     pickFloat(d.AirFriction, def.AirFriction),
		MaxVelocity:     pickFloat(d.MaxVelocity, def.MaxVelocity),

		BallBounciness: pickFloat(d.BallBounciness, def.BallBounciness),
		BallRadius:     pickFloatMin(d.BallRadius, 1, def.BallRadius),
		BallWeight:     pickFloat(d.BallWeight, def.BallWeight),
		BallFriction:   pickFloat(d.BallFriction, def.BallFriction),

		BoxWidth:     pickFloatMin(d.BoxWidth, 0, def.BoxWidth),
		BoxHeight:    pickFloatMin(d.BoxHeight, 0, def.BoxHeight),
		BoxThickness: pickFloatMin(d.BoxThickness, 1, def.BoxThickness),
		BoxDepth:     pickFloatMin(d.BoxDepth, 1, def.BoxDepth),

		BoxWeight:     pickFloat(d.BoxWeight, def.BoxWeight),
		HideSmoothing: pickBool(d.HideSmoothing, def.HideSmoothing),
		QuickTurn:     pickBool(d.QuickTurn, def.QuickTurn),
		DelayFrames:   pickInt(d.DelayFrames, def.DelayFrames),

		SoundDensity: pickFloat(d.SoundDensity, def.SoundDensity),
		MinHitSpeed:  pickFloat(d.MinHitSpeed, def.MinHitSpeed),

		SpeedMul: pickFloat(d.SpeedMul, def.SpeedMul),
		MaxFPS:   pickInt(d.MaxFPS, def.MaxFPS),
		Vsync:    pickBool(d.Vsync, def.Vsync),

		UnderstandsMoving: pickBool(d.UnderstandsMoving, def.UnderstandsMoving),
	}

	return s, incomplete
}

// ReadSettingsFile loads settings from path. The incomplete flag tells the
// caller the file was readable but missing fields (defaults were filled in
// and the file should be rewritten). An error means the file was unreadable
// or not JSON at all.
func ReadSettingsFile(path string) (Settings, bool, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, false, err
	}

	var de deserializeSettings
	if err := json.Unmarshal(bytes, &de); err != nil {
		return Settings{}, false, err
	}

	s, incomplete := de.toSettings()
	return s, incomplete, nil
}

// WriteSettingsFile stores settings as indented JSON at path.
func WriteSettingsFile(path string, s Settings) error {
	bytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, bytes, 0o644)
}
