package component

// SceneRequest is a one-shot request emitted by gameplay systems to ask the
// outer loop to switch scenes. Systems only emit data; the runner owns the
// switch.
type SceneRequest struct {
	Scene string
}

var SceneRequestComponent = NewComponent[SceneRequest]()
