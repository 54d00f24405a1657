package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	JumpStrength float64

	// Shell dash mode
	ShellFrames          int     // Frames the shell mode lasts
	ShellSpeedMultiplier float64 // Horizontal speed multiplier while shelled
	ShellHeight          float64 // Reduced body height during shell mode

	// Damage
	HurtGraceFrames int // Invulnerability after taking a hit; 0 matches the original

	// Lives
	StartingLives int

	// Spawn position (level start, also used on respawn after a hit)
	SpawnX float64
	SpawnY float64

	// Dimensions
	Width  float64
	Height float64
}

// KoopaConfig contains enemy configuration values
type KoopaConfig struct {
	PatrolSpeed float64
	ShellSpeed  float64 // Slide speed when kicked

	ShellIdleFrames  int     // Frames a stomped shell stays idle
	ShellSlideFrames int     // Frames a kicked shell keeps sliding
	KickImpulseY     float64 // Small upward impulse on kick

	// Ledge probe distance below the feet
	EdgeProbeDepth float64

	// Dimensions
	Width  float64
	Height float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64
	MaxFallSpeed float64
}

// ScoreConfig contains the score awards
type ScoreConfig struct {
	Stomp int
	Kick  int
	Coin  int
}

// LevelConfig contains level/session configuration values
type LevelConfig struct {
	CompleteMargin float64 // Distance from the right edge that completes a level
	SpaceCellSize  int     // resolv space cell size in pixels
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64
}

// BackgroundConfig contains the parallax backdrop layout
type BackgroundConfig struct {
	LayerCount   int
	BandBaseY    float64 // Top of the first color band
	BandStepY    float64 // Vertical offset between bands
	HillBaseY    float64 // Top of the nearest hill row
	HillStepY    float64 // Vertical offset between hill rows
	HillSpacing  float64 // Horizontal distance between hills
	ParallaxBase float64 // Scroll factor of the farthest layer
	ParallaxStep float64 // Scroll factor increase per layer
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64
	LineStep  float64
	TextColor color.RGBA
}

// MenuConfig contains menu scene configuration
type MenuConfig struct {
	Title     string
	StartHint string
}

// GameOverConfig contains game-over/win scene configuration
type GameOverConfig struct {
	GameOverTitle string
	WinTitle      string
	RestartHint   string
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Default is the single entity/renderer layer.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Player PlayerConfig
var Koopa KoopaConfig
var Physics PhysicsConfig
var Score ScoreConfig
var Level LevelConfig
var Camera CameraConfig
var Background BackgroundConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed   = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	DarkGreen = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	Brown     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	DarkBrown = color.RGBA{R: 100, G: 50, B: 10, A: 255}
	ShellGold = color.RGBA{R: 200, G: 180, B: 0, A: 255}
	SkyBlue   = color.RGBA{R: 107, G: 140, B: 255, A: 255}
	HillGreen = color.RGBA{R: 0, G: 80, B: 0, A: 255}
)

// Direction constants for facing/kicks
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
	}

	Physics = PhysicsConfig{
		Gravity:      0.5,
		MaxFallSpeed: 10.0,
	}

	Player = PlayerConfig{
		MoveSpeed:    6.0,
		JumpStrength: -12.0,

		ShellFrames:          300,
		ShellSpeedMultiplier: 1.2,
		ShellHeight:          24.0,

		HurtGraceFrames: 0,

		StartingLives: 3,

		SpawnX: 100,
		SpawnY: 100,

		Width:  32,
		Height: 32,
	}

	Koopa = KoopaConfig{
		PatrolSpeed: 2.0,
		ShellSpeed:  10.0,

		ShellIdleFrames:  180,
		ShellSlideFrames: 300,
		KickImpulseY:     -5.0,

		EdgeProbeDepth: 2.0,

		Width:  32,
		Height: 32,
	}

	Score = ScoreConfig{
		Stomp: 100,
		Kick:  200,
		Coin:  50,
	}

	Level = LevelConfig{
		CompleteMargin: 100.0,
		SpaceCellSize:  32,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
	}

	Background = BackgroundConfig{
		LayerCount:   3,
		BandBaseY:    float64(C.Height) / 2,
		BandStepY:    100,
		HillBaseY:    400,
		HillStepY:    50,
		HillSpacing:  100,
		ParallaxBase: 0.2,
		ParallaxStep: 0.1,
	}

	HUD = HUDConfig{
		Margin:    10,
		LineStep:  20,
		TextColor: White,
	}

	Menu = MenuConfig{
		Title:     "KOOPA ENGINE",
		StartHint: "Press Enter to start",
	}

	GameOver = GameOverConfig{
		GameOverTitle: "Game Over!",
		WinTitle:      "You Win!",
		RestartHint:   "Press Enter for menu",
	}
}
