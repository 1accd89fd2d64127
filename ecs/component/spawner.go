package component

// EnemySpawner spawns agents around the player on a fixed interval.
type EnemySpawner struct {
	Prefab     string
	Interval   float64
	MaxEnemies int
	Range      float64
	Altitude   float64

	Elapsed float64
	Spawned int
}

var EnemySpawnerComponent = NewComponent[EnemySpawner]()
