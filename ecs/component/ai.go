package component

import "github.com/milk9111/paperplane/ai"

// Agent holds a hostile plane's combat controller.
type Agent struct {
	Controller *ai.Controller
}

var AgentComponent = NewComponent[Agent]()
