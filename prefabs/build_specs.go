package prefabs

import "gopkg.in/yaml.v3"

// EntityBuildSpec is a prefab: a name plus raw component specs keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type TransformComponentSpec struct {
	Position Vec3Spec `yaml:"position"`
	Yaw      float64  `yaml:"yaw"`
	Pitch    float64  `yaml:"pitch"`
	Scale    float64  `yaml:"scale"`
}

type RigidBodyComponentSpec struct {
	Mass        float64 `yaml:"mass"`
	Radius      float64 `yaml:"radius"`
	HalfHeight  float64 `yaml:"half_height"`
	UseGravity  bool    `yaml:"use_gravity"`
	Constrained bool    `yaml:"constrained"`
	Static      bool    `yaml:"static"`
}

type GravityScaleComponentSpec struct {
	Scale float64 `yaml:"scale"`
}

type CollisionLayerComponentSpec struct {
	Category []string `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type PilotComponentSpec struct {
	Speed         float64 `yaml:"speed"`
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	StallSpeed    float64 `yaml:"stall_speed"`
	TurnSpeed     float64 `yaml:"turn_speed"`
	PitchSpeed    float64 `yaml:"pitch_speed"`
	MaxTurnAngle  float64 `yaml:"max_turn_angle"`
	MaxPitchAngle float64 `yaml:"max_pitch_angle"`
	AltitudeSpeed float64 `yaml:"altitude_speed"`
	DiveGain      float64 `yaml:"dive_gain"`
	MinAltitude   float64 `yaml:"min_altitude"`
	ProbeRange    float64 `yaml:"probe_range"`
	RollTilt      float64 `yaml:"roll_tilt"`
}

type WeaponComponentSpec struct {
	FireRate        float64  `yaml:"fire_rate"`
	ProjectileSpeed float64  `yaml:"projectile_speed"`
	FirePoint       Vec3Spec `yaml:"fire_point"`
	Projectile      string   `yaml:"projectile"`
	Effect          string   `yaml:"effect"`
}

type PlayerHealthComponentSpec struct {
	Max           int     `yaml:"max"`
	Damage        int     `yaml:"damage"`
	SmokeEffect   string  `yaml:"smoke_effect"`
	Parts         int     `yaml:"parts"`
	PartPrefab    string  `yaml:"part_prefab"`
	PartInterval  float64 `yaml:"part_interval"`
	MinImpulse    float64 `yaml:"min_impulse"`
	MaxImpulse    float64 `yaml:"max_impulse"`
	GameOverDelay float64 `yaml:"game_over_delay"`
	GameOverScene string  `yaml:"game_over_scene"`
}

type AgentModesSpec struct {
	Pursuit        bool `yaml:"pursuit"`
	Avoidance      bool `yaml:"avoidance"`
	Circling       bool `yaml:"circling"`
	AscendBurst    bool `yaml:"ascend_burst"`
	AngleGate      bool `yaml:"angle_gate"`
	FlightDynamics bool `yaml:"flight_dynamics"`
}

// AgentComponentSpec overrides the controller defaults. Unset values keep
// the default.
type AgentComponentSpec struct {
	Modes  AgentModesSpec `yaml:"modes"`
	Script string         `yaml:"script"`

	MoveSpeed     *float64 `yaml:"move_speed"`
	RotationSpeed *float64 `yaml:"rotation_speed"`
	MinSpeed      *float64 `yaml:"min_speed"`
	MaxSpeed      *float64 `yaml:"max_speed"`

	FireRange       *float64  `yaml:"fire_range"`
	FireRate        *float64  `yaml:"fire_rate"`
	FireAngle       *float64  `yaml:"fire_angle"`
	ProjectileSpeed *float64  `yaml:"projectile_speed"`
	FirePoint       *Vec3Spec `yaml:"fire_point"`

	DespawnDistance *float64 `yaml:"despawn_distance"`
	DeathGrace      *float64 `yaml:"death_grace"`

	DodgeRange   *float64 `yaml:"dodge_range"`
	DodgeImpulse *float64 `yaml:"dodge_impulse"`
	AvoidRadius  *float64 `yaml:"avoid_radius"`
	RepelImpulse *float64 `yaml:"repel_impulse"`

	AttackDistance *float64 `yaml:"attack_distance"`
	CircleRadius   *float64 `yaml:"circle_radius"`
	CircleDuration *float64 `yaml:"circle_duration"`
	CircleCooldown *float64 `yaml:"circle_cooldown"`

	AscendChance    *float64 `yaml:"ascend_chance"`
	AscendHeight    *float64 `yaml:"ascend_height"`
	AscendProximity *float64 `yaml:"ascend_proximity"`
	BurstCount      *int     `yaml:"burst_count"`
	BurstInterval   *float64 `yaml:"burst_interval"`
	ClimbTimeout    *float64 `yaml:"climb_timeout"`

	LiftForce     *float64 `yaml:"lift_force"`
	GravityScale  *float64 `yaml:"gravity_scale"`
	CruiseSpeed   *float64 `yaml:"cruise_speed"`
	ApproachSpeed *float64 `yaml:"approach_speed"`
	NearDistance  *float64 `yaml:"near_distance"`
	SpeedEase     *float64 `yaml:"speed_ease"`
	TurnRate      *float64 `yaml:"turn_rate"`
	MaxBank       *float64 `yaml:"max_bank"`
	Drag          *float64 `yaml:"drag"`

	FireEffect  string `yaml:"fire_effect"`
	DeathEffect string `yaml:"death_effect"`
	Projectile  string `yaml:"projectile"`
}

type ProjectileComponentSpec struct {
	Radius    float64 `yaml:"radius"`
	TTL       float64 `yaml:"ttl"`
	HitEffect string  `yaml:"hit_effect"`
}

type EnemySpawnerComponentSpec struct {
	Prefab     string  `yaml:"prefab"`
	Interval   float64 `yaml:"interval"`
	MaxEnemies int     `yaml:"max_enemies"`
	Range      float64 `yaml:"range"`
	Altitude   float64 `yaml:"altitude"`
}

type EffectComponentSpec struct {
	Name string  `yaml:"name"`
	TTL  float64 `yaml:"ttl"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}
