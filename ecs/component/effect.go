package component

// Effect is a visual effect instance. Attached effects follow their owner
// and are destroyed with it.
type Effect struct {
	Name     string
	Attached uint64
}

var EffectComponent = NewComponent[Effect]()
