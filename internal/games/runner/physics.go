package runner

import "github.com/vovakirdan/campus-runner/internal/core"

// Player is the runner's body. Y grows downwards; Y is the top edge.
type Player struct {
	X, Y            float64
	Width, Height   float64
	VelocityY       float64
	Jumping         bool // Airborne
	Crouching       bool
	Invincible      bool
	JumpForce       float64
	SpeedMultiplier float64
}

// Box returns the standing bounds of the player.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Hitbox returns the effective collision bounds.
// Crouching halves the height and moves the top down by the same half.
func (p Player) Hitbox() core.Box {
	if p.Crouching {
		half := p.Height / 2
		return core.NewBox(p.X, p.Y+half, p.Width, half)
	}
	return p.Box()
}

// Jump launches the player. Returns false if already airborne.
func (p *Player) Jump() bool {
	if p.Jumping {
		return false
	}
	p.Jumping = true
	p.VelocityY = p.JumpForce
	return true
}

// Collider is anything the player can run into.
type Collider interface {
	Bounds() core.Box
	IsFlying() bool
}

// Obstacle is an active obstacle on the field.
type Obstacle struct {
	Type   ObstacleType
	X, Y   float64
	Width  float64
	Height float64
	Points int
	Flying bool
}

// Bounds returns the obstacle's box.
func (o Obstacle) Bounds() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// IsFlying reports whether the obstacle can be ducked under.
func (o Obstacle) IsFlying() bool {
	return o.Flying
}

// Powerup is an active powerup on the field.
type Powerup struct {
	Type       PowerupType
	Effect     Effect
	X, Y       float64
	Width      float64
	Height     float64
	DurationMS int
	Points     int
}

// Bounds returns the powerup's box.
func (p Powerup) Bounds() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// IsFlying is always false; powerups are collected regardless of height.
func (p Powerup) IsFlying() bool {
	return false
}

// AdvancePlayer integrates vertical motion over dt ticks.
// Landing on or through groundY clamps the player to the ground.
func AdvancePlayer(p Player, groundY, gravity, dt float64) Player {
	if !p.Jumping {
		return p
	}

	p.VelocityY += gravity * dt
	p.Y += p.VelocityY * dt

	if rest := groundY - p.Height; p.Y >= rest {
		p.Y = rest
		p.Jumping = false
		p.VelocityY = 0
	}
	return p
}

// CheckCollision reports whether the player's effective hitbox overlaps the
// entity. A crouching player never collides with a flying entity.
func CheckCollision(p Player, e Collider) bool {
	if p.Crouching && e.IsFlying() {
		return false
	}
	return p.Hitbox().Intersects(e.Bounds())
}
