package config

import "time"

// MovementConfig contains hero movement tuning. Speeds are pixels per tick.
type MovementConfig struct {
	MoveSpeed float64 `yaml:"moveSpeed"`
	JumpForce float64 `yaml:"jumpForce"`

	// Ground probe
	GroundCheckRadius  float64 `yaml:"groundCheckRadius"`
	GroundCheckOffsetY float64 `yaml:"groundCheckOffsetY"` // below the body's bottom edge

	// Platform drop
	PlatformDropWindow time.Duration `yaml:"platformDropWindow"` // collision with the platform stays off this long

	// Presentation thresholds
	RisingThreshold float64 `yaml:"risingThreshold"` // upward speed that counts as rising
	RunThreshold    float64 `yaml:"runThreshold"`    // input magnitude that counts as running

	// Dimensions
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`
}

// CombatConfig contains combo, special attack and projectile tuning.
type CombatConfig struct {
	// Combo
	ComboLength   int           `yaml:"comboLength"`
	ComboWindow   time.Duration `yaml:"comboWindow"`   // time to chain the next attack
	ComboCooldown time.Duration `yaml:"comboCooldown"` // lockout after a full chain

	// Melee hit volume
	AttackRange        float64 `yaml:"attackRange"`
	AttackPointOffsetX float64 `yaml:"attackPointOffsetX"` // mirrored by facing
	AttackPointOffsetY float64 `yaml:"attackPointOffsetY"` // from the body centre

	// Special attack
	SpecialChargeTime       time.Duration `yaml:"specialChargeTime"`
	SpecialDamageMultiplier float64       `yaml:"specialDamageMultiplier"`

	// Projectile
	ProjectileSpeed      float64       `yaml:"projectileSpeed"`
	ProjectileSpawnDelay time.Duration `yaml:"projectileSpawnDelay"` // wind-up before the projectile appears
	ProjectileLifetime   time.Duration `yaml:"projectileLifetime"`
	ProjectileSize       float64       `yaml:"projectileSize"`
	SpawnOffsetX         float64       `yaml:"spawnOffsetX"` // mirrored by facing
	SpawnOffsetY         float64       `yaml:"spawnOffsetY"`
}

// StatsConfig contains the leveling curve and stat growth.
type StatsConfig struct {
	BaseHealth float64 `yaml:"baseHealth"`
	BaseArmor  float64 `yaml:"baseArmor"`
	BaseDamage float64 `yaml:"baseDamage"`

	HealthPerLevel float64 `yaml:"healthPerLevel"`
	ArmorPerLevel  float64 `yaml:"armorPerLevel"`
	DamagePerLevel float64 `yaml:"damagePerLevel"`

	ExpToFirstLevel float64 `yaml:"expToFirstLevel"`
	ExpMultiplier   float64 `yaml:"expMultiplier"` // growth of the exp threshold per level

	MinDamageFraction float64 `yaml:"minDamageFraction"` // share of raw damage armor can never absorb
}

// PhysicsConfig contains the demo physics world values.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	MaxFallSpeed      float64 `yaml:"maxFallSpeed"`
	MaxRiseSpeed      float64 `yaml:"maxRiseSpeed"`
	PlatformTolerance float64 `yaml:"platformTolerance"` // pixels below a platform top that still land on it
	CellSize          int     `yaml:"cellSize"`
}

// EnemyConfig contains the demo enemy values.
type EnemyConfig struct {
	Health          float64 `yaml:"health"`
	Armor           float64 `yaml:"armor"`
	DefaultExp      float64 `yaml:"defaultExp"`
	CollisionWidth  float64 `yaml:"collisionWidth"`
	CollisionHeight float64 `yaml:"collisionHeight"`

	ContactDamage   float64       `yaml:"contactDamage"`
	ContactCooldown time.Duration `yaml:"contactCooldown"` // between two contact hits from one enemy
}

// Tuning bundles every section a hero needs. Each hero holds a pointer to
// one, so a reload swaps values for all heroes sharing it.
type Tuning struct {
	Movement MovementConfig `yaml:"movement"`
	Combat   CombatConfig   `yaml:"combat"`
	Stats    StatsConfig    `yaml:"stats"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Enemy    EnemyConfig    `yaml:"enemy"`
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Combat CombatConfig
var Stats StatsConfig
var Physics PhysicsConfig
var Enemy EnemyConfig

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// Defaults returns a copy of the package-level tuning.
func Defaults() Tuning {
	return Tuning{
		Movement: Movement,
		Combat:   Combat,
		Stats:    Stats,
		Physics:  Physics,
		Enemy:    Enemy,
	}
}

// TickDuration is the simulated time covered by one tick at tps ticks/second.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Movement = MovementConfig{
		MoveSpeed: 3.0,
		JumpForce: 15.0,

		GroundCheckRadius:  3.0,
		GroundCheckOffsetY: 1.0,

		PlatformDropWindow: 500 * time.Millisecond,

		RisingThreshold: 0.1,
		RunThreshold:    0.1,

		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Combat = CombatConfig{
		ComboLength:   8,
		ComboWindow:   500 * time.Millisecond,
		ComboCooldown: time.Second,

		AttackRange:        24,
		AttackPointOffsetX: 20,
		AttackPointOffsetY: 0,

		SpecialChargeTime:       2 * time.Second,
		SpecialDamageMultiplier: 2.0,

		ProjectileSpeed:      10.0,
		ProjectileSpawnDelay: 300 * time.Millisecond,
		ProjectileLifetime:   3 * time.Second,
		ProjectileSize:       10,
		SpawnOffsetX:         14,
		SpawnOffsetY:         -4,
	}

	Stats = StatsConfig{
		BaseHealth: 100,
		BaseArmor:  10,
		BaseDamage: 20,

		HealthPerLevel: 20,
		ArmorPerLevel:  5,
		DamagePerLevel: 10,

		ExpToFirstLevel: 100,
		ExpMultiplier:   1.5,

		MinDamageFraction: 0.1,
	}

	Physics = PhysicsConfig{
		Gravity:           0.75,
		MaxFallSpeed:      10.0,
		MaxRiseSpeed:      16.0,
		PlatformTolerance: 4.0,
		CellSize:          16,
	}

	Enemy = EnemyConfig{
		Health:          60,
		Armor:           0,
		DefaultExp:      40,
		CollisionWidth:  16,
		CollisionHeight: 32,

		ContactDamage:   15,
		ContactCooldown: time.Second,
	}
}
