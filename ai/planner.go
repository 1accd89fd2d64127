package ai

// Maneuver is the next behaviour an agent commits to.
type Maneuver string

const (
	ManeuverPursue Maneuver = "pursue"
	ManeuverCircle Maneuver = "circle"
	ManeuverAscend Maneuver = "ascend"
)

// Situation is what a planner sees on an eligible tick.
type Situation struct {
	Distance    float64
	Angle       float64
	Speed       float64
	Height      float64
	CircleReady bool
	Roll        float64
}

// Planner picks the next manoeuvre while the agent is pursuing.
type Planner interface {
	Plan(s Situation) (Maneuver, error)
}

// rules is the built-in planner: circle when close and rested, otherwise
// break off to climb with a fixed chance per tick.
func rules(cfg Config, s Situation) Maneuver {
	if cfg.Modes.Circling && s.CircleReady {
		return ManeuverCircle
	}
	if cfg.Modes.AscendBurst && s.Roll < cfg.AscendChance {
		return ManeuverAscend
	}
	return ManeuverPursue
}
