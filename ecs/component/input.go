package component

// Input stores the steering axes for an entity, each in [-1, 1], and the
// trigger.
type Input struct {
	Yaw   float64
	Pitch float64
	Fire  bool
}

var InputComponent = NewComponent[Input]()
