package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type AgentTag struct{}

var AgentTagComponent = NewComponent[AgentTag]()

type ObstacleTag struct{}

var ObstacleTagComponent = NewComponent[ObstacleTag]()

type TerrainTag struct{}

var TerrainTagComponent = NewComponent[TerrainTag]()
