package component

// KillCounterHUD mirrors the kill counter label.
type KillCounterHUD struct {
	Text string
}

var KillCounterHUDComponent = NewComponent[KillCounterHUD]()

// HealthBar mirrors the player's health.
type HealthBar struct {
	Current int
	Max     int
	Fill    float64
}

var HealthBarComponent = NewComponent[HealthBar]()
