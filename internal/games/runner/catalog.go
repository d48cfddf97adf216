package runner

import "github.com/vovakirdan/campus-runner/internal/core"

// ObstacleType identifies an obstacle definition.
type ObstacleType string

const (
	ObstacleLabWork ObstacleType = "labWork"
	ObstacleTest    ObstacleType = "test"
	ObstacleProject ObstacleType = "project"
	ObstacleExam    ObstacleType = "exam"
	ObstacleFlying  ObstacleType = "flyingObstacle"
)

// ObstacleDef describes one kind of obstacle.
type ObstacleDef struct {
	Type   ObstacleType
	Width  float64
	Height float64
	Points int
	Rarity float64 // Relative spawn weight
	Flying bool    // Occupies the elevated band, duckable
}

// Effect is what a powerup does when collected.
type Effect string

const (
	EffectSpeed         Effect = "speed"
	EffectInvincibility Effect = "invincibility"
	EffectPoints        Effect = "points"
)

// PowerupType identifies a powerup definition.
type PowerupType string

const (
	PowerupCoffee     PowerupType = "coffee"
	PowerupCheatSheet PowerupType = "cheatSheet"
	PowerupNotes      PowerupType = "notes"
)

// PowerupDef describes one kind of powerup.
type PowerupDef struct {
	Type       PowerupType
	Effect     Effect
	DurationMS int // Effect length for timed effects
	Rarity     float64
	Points     int // Bonus for instant-points powerups
}

// CharacterID identifies a playable character.
type CharacterID string

const (
	CharacterStem       CharacterID = "stem"
	CharacterHumanities CharacterID = "humanities"
	CharacterMedical    CharacterID = "medical"
)

// StarterCharacter is always unlocked.
const StarterCharacter = CharacterStem

// Character holds the per-character constants.
type Character struct {
	ID                      CharacterID
	Name                    string
	Perk                    string
	JumpForce               float64 // Initial vertical velocity of a jump (negative = up)
	SpeedMultiplier         float64 // Applied to the initial scroll speed
	InvincibilityMultiplier float64 // Applied to invincibility powerup durations
	UnlockCost              int     // Knowledge needed to unlock
}

// Semester is a visual theme tier.
type Semester struct {
	Name      string
	Sky       core.Color
	Buildings core.Color
	Ground    core.Color
}

var obstacleDefs = []ObstacleDef{
	{Type: ObstacleLabWork, Width: 30, Height: 40, Points: 10, Rarity: 0.4},
	{Type: ObstacleTest, Width: 40, Height: 60, Points: 20, Rarity: 0.3},
	{Type: ObstacleProject, Width: 35, Height: 80, Points: 30, Rarity: 0.2},
	{Type: ObstacleExam, Width: 50, Height: 70, Points: 50, Rarity: 0.1},
	{Type: ObstacleFlying, Width: 40, Height: 30, Points: 15, Rarity: 0.2, Flying: true},
}

var powerupDefs = []PowerupDef{
	{Type: PowerupCoffee, Effect: EffectSpeed, DurationMS: 5000, Rarity: 0.4},
	{Type: PowerupCheatSheet, Effect: EffectInvincibility, DurationMS: 3000, Rarity: 0.2},
	{Type: PowerupNotes, Effect: EffectPoints, Points: 50, Rarity: 0.4},
}

var characters = []Character{
	{
		ID:                      CharacterStem,
		Name:                    "STEM Major",
		Perk:                    "Higher jump",
		JumpForce:               -22,
		SpeedMultiplier:         1,
		InvincibilityMultiplier: 1,
	},
	{
		ID:                      CharacterHumanities,
		Name:                    "Humanities Major",
		Perk:                    "Faster runner",
		JumpForce:               -15,
		SpeedMultiplier:         1.2,
		InvincibilityMultiplier: 1,
		UnlockCost:              50,
	},
	{
		ID:                      CharacterMedical,
		Name:                    "Medical Student",
		Perk:                    "Longer invincibility",
		JumpForce:               -15,
		SpeedMultiplier:         1,
		InvincibilityMultiplier: 1.5,
		UnlockCost:              150,
	},
}

var semesters = []Semester{
	{Name: "Freshman Year", Sky: core.ColorCyan, Buildings: core.ColorGray, Ground: core.ColorOrange},
	{Name: "Sophomore Year", Sky: core.ColorBrightCyan, Buildings: core.ColorWhite, Ground: core.ColorGreen},
	{Name: "Junior Year", Sky: core.ColorBlue, Buildings: core.ColorBrightWhite, Ground: core.ColorRed},
	{Name: "Senior Year", Sky: core.ColorBrightBlue, Buildings: core.ColorBrightWhite, Ground: core.ColorMagenta},
}

// Obstacles returns a copy of the obstacle table.
func Obstacles() []ObstacleDef {
	return append([]ObstacleDef(nil), obstacleDefs...)
}

// ObstacleByType looks up an obstacle definition.
func ObstacleByType(t ObstacleType) (ObstacleDef, bool) {
	for _, d := range obstacleDefs {
		if d.Type == t {
			return d, true
		}
	}
	return ObstacleDef{}, false
}

// Powerups returns a copy of the powerup table.
func Powerups() []PowerupDef {
	return append([]PowerupDef(nil), powerupDefs...)
}

// PowerupByType looks up a powerup definition.
func PowerupByType(t PowerupType) (PowerupDef, bool) {
	for _, d := range powerupDefs {
		if d.Type == t {
			return d, true
		}
	}
	return PowerupDef{}, false
}

// Characters returns a copy of the character table in display order.
func Characters() []Character {
	return append([]Character(nil), characters...)
}

// CharacterByID looks up a character profile.
func CharacterByID(id CharacterID) (Character, bool) {
	for _, c := range characters {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// Semesters returns a copy of the semester themes in order.
func Semesters() []Semester {
	return append([]Semester(nil), semesters...)
}

// LastSemester is the index of the final theme.
func LastSemester() int {
	return len(semesters) - 1
}

// SemesterAt returns the theme for an index, clamped to the defined range.
func SemesterAt(i int) Semester {
	return semesters[min(max(i, 0), LastSemester())]
}
