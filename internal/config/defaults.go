package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// Kept in lock-step with defaults/runner.yaml; used only if the
// embedded YAML fails to parse.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:   800,
			Height:  450,
			GroundY: 390,
		},
		Physics: PhysicsConfig{
			Gravity:          0.6,
			JumpForce:        10,
			JumpHoldForce:    0.5,
			MaxJumpHoldTicks: 18,
			JumpBufferTicks:  8,
			MaxFallSpeed:     14,
		},
		Player: PlayerConfig{
			X:             50,
			Width:         40,
			StandHeight:   40,
			DuckHeight:    25,
			HitboxPadding: 4,
		},
		Spawn: SpawnConfig{
			MinInterval: 55,
			MaxInterval: 110,
			SpawnX:      820,
			RetireX:     -80,
			Variants: []VariantRule{
				{Kind: "laserGrid", MinSpeed: 10.5, Weight: 0.93},
				{Kind: "rotatingLaser", MinSpeed: 9.5, Weight: 0.90},
				{Kind: "fallingDrop", MinSpeed: 9.0, Weight: 0.88},
				{Kind: "slantedSurface", MinSpeed: 8.5, Weight: 0.85},
				{Kind: "movingPlatform", MinSpeed: 8.0, Weight: 0.82},
				{Kind: "hazardZone", MinSpeed: 7.5, Weight: 0.80},
				{Kind: "movingAerial", MinSpeed: 7.2, Weight: 0.75},
				{Kind: "spike", MinSpeed: 7.0, Weight: 0.70},
				{Kind: "platform", MinSpeed: 6.8, Weight: 0.65},
				{Kind: "aerial", MinSpeed: 6.5, Weight: 0.50},
			},
			Spacing: []SpacingRule{
				{Prev: "hazardZone", Next: "hazardZone", ExtraX: 120},
				{Prev: "laserGrid", Next: "laserGrid", ExtraX: 150},
				{Prev: "ground", Next: "aerial", ExtraX: 60},
				{Prev: "spike", Next: "aerial", ExtraX: 60},
				{Prev: "ground", Next: "movingAerial", ExtraX: 70},
				{Prev: "spike", Next: "movingAerial", ExtraX: 70},
				{Prev: "fallingDrop", Next: "spike", ExtraX: 80},
				{Prev: "laserGrid", Next: "hazardZone", ExtraX: 100},
			},
			Ground: GroundSpawn{
				MinWidth:  20,
				MaxWidth:  45,
				MinHeight: 25,
				MaxHeight: 55,
			},
			Aerial: AerialSpawn{
				Width:  30,
				Height: 30,
				LowY:   330,
				HighY:  270,
			},
			Platform: PlatformSpawn{
				Width:  60,
				Height: 14,
				MinY:   280,
				MaxY:   330,
			},
			Spike: SpikeSpawn{
				Width:  34,
				Height: 30,
			},
			HazardZone: HazardZoneSpawn{
				Width:  40,
				Height: 60,
				MinY:   300,
				MaxY:   330,
			},
			FallingDrop: FallingDropSpawn{
				Size:    26,
				StartY:  -40,
				Gravity: 0.35,
			},
			RotatingLaser: RotatingLaserSpawn{
				Size:        24,
				BeamLength:  70,
				LowY:        300,
				HighY:       230,
				MinRotSpeed: 0.03,
				MaxRotSpeed: 0.08,
			},
			LaserGrid: LaserGridSpawn{
				Width:     18,
				MinGapY:   150,
				MaxGapY:   290,
				GapHeight: 90,
			},
			Slanted: SlantedSpawn{
				Width:  70,
				Height: 50,
			},
			Motion: MotionConfig{
				OscAmplitude:  25,
				OscFrequency:  0.05,
				PlatformDrift: 1.5,
			},
		},
		PowerUps: PowerUpConfig{
			MinInterval: 420,
			MaxInterval: 780,
			Size:        24,
			HeightA:     330,
			HeightB:     250,
			Bands: PowerUpBands{
				Shield:     0.35,
				Multiplier: 0.30,
				TimeWarp:   0.20,
				Magnet:     0.15,
			},
			MultiplierValue:   2.0,
			MultiplierTicks:   600,
			TimeWarpTicks:     360,
			TimeWarpFactor:    0.5,
			MagnetTicks:       480,
			MagnetRadius:      140,
			MagnetPull:        3.5,
			FloatAmplitude:    6,
			FloatFrequency:    0.08,
			ShieldBreakTicks:  45,
			ReviveInvincTicks: 90,
		},
		Collision: CollisionConfig{
			Epsilon:          0.001,
			GrazeDistance:    18,
			GrazeBonus:       25,
			LaserGridPadding: 6,
			DropRadiusAdjust: 4,
			CenterTolerance:  5,
		},
		Speed: SpeedConfig{
			Base: 6,
			Max:  13,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.0,
				SpacingReduction: 30,
			},
		},
	}
}
