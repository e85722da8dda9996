// Package config provides YAML-based configuration loading and
// difficulty management for the runner. Every simulation tunable lives
// here; the simulation core treats a loaded config as immutable input.
package config

// RunnerConfig contains every tunable of the runner simulation.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Collision  CollisionConfig  `yaml:"collision"`
	Speed      SpeedConfig      `yaml:"speed"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the fixed logical world the simulation runs in.
// The renderer projects this onto whatever screen is available.
type WorldConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PhysicsConfig defines vertical movement parameters.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"`
	JumpHoldForce    float64 `yaml:"jump_hold_force"`
	MaxJumpHoldTicks int     `yaml:"max_jump_hold_ticks"`
	JumpBufferTicks  int     `yaml:"jump_buffer_ticks"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
}

// PlayerConfig defines the player's fixed position and the two hitbox
// heights. HitboxPadding insets the collision rect on all sides.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	StandHeight   float64 `yaml:"stand_height"`
	DuckHeight    float64 `yaml:"duck_height"`
	HitboxPadding float64 `yaml:"hitbox_padding"`
}

// VariantRule is one entry of the ordered obstacle selection table.
// The scheduler walks the table in order and picks the first variant
// whose MinSpeed is exceeded and whose weight roll passes; table order
// is part of the tuning and must be preserved.
type VariantRule struct {
	Kind     string  `yaml:"kind"`
	MinSpeed float64 `yaml:"min_speed"`
	Weight   float64 `yaml:"weight"`
}

// SpacingRule adds a forward x-offset when Next spawns immediately
// after Prev, preserving a traversable gap between conflicting kinds.
type SpacingRule struct {
	Prev   string  `yaml:"prev"`
	Next   string  `yaml:"next"`
	ExtraX float64 `yaml:"extra_x"`
}

// SpawnConfig defines spawn cadence, the variant table, anti-softlock
// spacing, and per-variant geometry.
type SpawnConfig struct {
	MinInterval int     `yaml:"min_interval"`
	MaxInterval int     `yaml:"max_interval"`
	SpawnX      float64 `yaml:"spawn_x"`
	RetireX     float64 `yaml:"retire_x"`

	Variants []VariantRule `yaml:"variants"`
	Spacing  []SpacingRule `yaml:"spacing"`

	Ground        GroundSpawn        `yaml:"ground"`
	Aerial        AerialSpawn        `yaml:"aerial"`
	Platform      PlatformSpawn      `yaml:"platform"`
	Spike         SpikeSpawn         `yaml:"spike"`
	HazardZone    HazardZoneSpawn    `yaml:"hazard_zone"`
	FallingDrop   FallingDropSpawn   `yaml:"falling_drop"`
	RotatingLaser RotatingLaserSpawn `yaml:"rotating_laser"`
	LaserGrid     LaserGridSpawn     `yaml:"laser_grid"`
	Slanted       SlantedSpawn       `yaml:"slanted"`

	Motion MotionConfig `yaml:"motion"`
}

// GroundSpawn defines size ranges for ground obstacles.
type GroundSpawn struct {
	MinWidth  float64 `yaml:"min_width"`
	MaxWidth  float64 `yaml:"max_width"`
	MinHeight float64 `yaml:"min_height"`
	MaxHeight float64 `yaml:"max_height"`
}

// AerialSpawn defines geometry for aerial and movingAerial obstacles,
// which spawn at one of two fixed heights.
type AerialSpawn struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	LowY   float64 `yaml:"low_y"`
	HighY  float64 `yaml:"high_y"`
}

// PlatformSpawn defines geometry for platform and movingPlatform.
type PlatformSpawn struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"`
}

// SpikeSpawn defines geometry for triangular ground spikes.
type SpikeSpawn struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HazardZoneSpawn defines geometry for oscillating hazard zones.
type HazardZoneSpawn struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"`
}

// FallingDropSpawn defines geometry for free-falling drops, which
// always start above the visible area.
type FallingDropSpawn struct {
	Size    float64 `yaml:"size"`
	StartY  float64 `yaml:"start_y"`
	Gravity float64 `yaml:"gravity"`
}

// RotatingLaserSpawn defines geometry for rotating beam obstacles.
// The initial angle is random; rotation speed is drawn uniformly from
// [MinRotSpeed, MaxRotSpeed].
type RotatingLaserSpawn struct {
	Size        float64 `yaml:"size"`
	BeamLength  float64 `yaml:"beam_length"`
	LowY        float64 `yaml:"low_y"`
	HighY       float64 `yaml:"high_y"`
	MinRotSpeed float64 `yaml:"min_rot_speed"`
	MaxRotSpeed float64 `yaml:"max_rot_speed"`
}

// LaserGridSpawn defines geometry for full-height laser columns with a
// randomized vertical safe gap.
type LaserGridSpawn struct {
	Width     float64 `yaml:"width"`
	MinGapY   float64 `yaml:"min_gap_y"`
	MaxGapY   float64 `yaml:"max_gap_y"`
	GapHeight float64 `yaml:"gap_height"`
}

// SlantedSpawn defines geometry for slanted-surface obstacles whose
// collision shape is a single diagonal.
type SlantedSpawn struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// MotionConfig defines per-variant motion parameters applied by the
// obstacle field every tick.
type MotionConfig struct {
	OscAmplitude  float64 `yaml:"osc_amplitude"`
	OscFrequency  float64 `yaml:"osc_frequency"`
	PlatformDrift float64 `yaml:"platform_drift"`
}

// PowerUpBands are the spawn probabilities per power-up kind. The four
// bands are expected to sum to 1.0.
type PowerUpBands struct {
	Shield     float64 `yaml:"shield"`
	Multiplier float64 `yaml:"multiplier"`
	TimeWarp   float64 `yaml:"time_warp"`
	Magnet     float64 `yaml:"magnet"`
}

// PowerUpConfig defines power-up spawn cadence, placement, effect
// durations and effect strengths.
type PowerUpConfig struct {
	MinInterval int     `yaml:"min_interval"`
	MaxInterval int     `yaml:"max_interval"`
	Size        float64 `yaml:"size"`
	HeightA     float64 `yaml:"height_a"`
	HeightB     float64 `yaml:"height_b"`

	Bands PowerUpBands `yaml:"bands"`

	MultiplierValue   float64 `yaml:"multiplier_value"`
	MultiplierTicks   int     `yaml:"multiplier_ticks"`
	TimeWarpTicks     int     `yaml:"time_warp_ticks"`
	TimeWarpFactor    float64 `yaml:"time_warp_factor"`
	MagnetTicks       int     `yaml:"magnet_ticks"`
	MagnetRadius      float64 `yaml:"magnet_radius"`
	MagnetPull        float64 `yaml:"magnet_pull"`
	FloatAmplitude    float64 `yaml:"float_amplitude"`
	FloatFrequency    float64 `yaml:"float_frequency"`
	ShieldBreakTicks  int     `yaml:"shield_break_ticks"`
	ReviveInvincTicks int     `yaml:"revive_invinc_ticks"`
}

// CollisionConfig defines detection tolerances and graze scoring.
type CollisionConfig struct {
	Epsilon          float64 `yaml:"epsilon"`
	GrazeDistance    float64 `yaml:"graze_distance"`
	GrazeBonus       int     `yaml:"graze_bonus"`
	LaserGridPadding float64 `yaml:"laser_grid_padding"`
	DropRadiusAdjust float64 `yaml:"drop_radius_adjust"`
	CenterTolerance  float64 `yaml:"center_tolerance"`
}

// SpeedConfig defines the scroll speed band the difficulty ramp moves
// through. Speed is expressed in world units per tick.
type SpeedConfig struct {
	Base float64 `yaml:"base"`
	Max  float64 `yaml:"max"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Fraction of the base-to-max band covered at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
