package system

import "hmactors/internal/actor"

// SetColorFilter tints a for duration ticks.
func SetColorFilter(a *actor.Actor, color actor.FilterColor, intensity uint8, duration int) {
	a.ColorFilter = actor.ColorFilter{Color: color, Intensity: intensity, Timer: duration}
}

// TickColorFilter counts the filter down, clearing it when it runs out.
func TickColorFilter(a *actor.Actor) {
	if a.ColorFilter.Timer == 0 {
		return
	}
	a.ColorFilter.Timer--
	if a.ColorFilter.Timer == 0 {
		a.ColorFilter = actor.ColorFilter{}
	}
}
