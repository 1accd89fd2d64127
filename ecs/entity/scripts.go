package entity

import (
	"sync"

	"github.com/milk9111/paperplane/ai"
	"github.com/milk9111/paperplane/prefabs"
)

// ScriptCache compiles each planner script once and hands every agent its
// own clone.
type ScriptCache struct {
	mu       sync.Mutex
	compiled map[string]*ai.ScriptPlanner
}

func NewScriptCache() *ScriptCache {
	return &ScriptCache{compiled: map[string]*ai.ScriptPlanner{}}
}

func (c *ScriptCache) Planner(name string) (*ai.ScriptPlanner, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.compiled[name]; ok {
		return p.Clone(), nil
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	p, err := ai.NewScriptPlanner(name, src)
	if err != nil {
		return nil, err
	}
	c.compiled[name] = p
	return p.Clone(), nil
}

// Invalidate forgets a script so the next agent recompiles it. Agents that
// already hold a clone keep it.
func (c *ScriptCache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.compiled, name)
}
