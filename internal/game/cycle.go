package game

import (
	"math"

	"github.com/desk-pro/dino-qube/internal/core"
)

// Day/night band edges on the [0, 1) cycle phase. Each transition band
// linearly interpolates between the flat bands around it, so the sky color
// is continuous across every edge.
const (
	sunsetStart  = 0.40
	duskStart    = 0.50
	nightStart   = 0.60
	sunriseStart = 0.90
)

// Star visibility window. Stars fade in through dusk, hold through deep
// night and fade out before sunrise finishes.
const (
	starFadeIn  = 0.55
	starFull    = 0.65
	starFadeOut = 0.85
	starGone    = 0.95
)

var (
	skyDay    = core.NewColor(0x87, 0xce, 0xeb)
	skySunset = core.NewColor(0xe8, 0x8a, 0x54)
	skyNight  = core.NewColor(0x0b, 0x10, 0x26)
)

// SkyColor maps a cycle phase to the sky color: day, a sunset ramp, a dusk
// ramp into night, flat night, and a sunrise ramp back to day.
func SkyColor(phase float64) core.Color {
	phase = math.Mod(phase, 1)
	if phase < 0 {
		phase += 1
	}

	switch {
	case phase < sunsetStart:
		return skyDay
	case phase < duskStart:
		t := (phase - sunsetStart) / (duskStart - sunsetStart)
		return skyDay.Lerp(skySunset, t)
	case phase < nightStart:
		t := (phase - duskStart) / (nightStart - duskStart)
		return skySunset.Lerp(skyNight, t)
	case phase < sunriseStart:
		return skyNight
	default:
		t := (phase - sunriseStart) / (1 - sunriseStart)
		return skyNight.Lerp(skyDay, t)
	}
}

// StarAlpha returns star opacity for a cycle phase: zero outside the night
// window, full in deep night, ramping at the window edges.
func StarAlpha(phase float64) float64 {
	phase = math.Mod(phase, 1)
	if phase < 0 {
		phase += 1
	}

	switch {
	case phase < starFadeIn || phase >= starGone:
		return 0
	case phase < starFull:
		return (phase - starFadeIn) / (starFull - starFadeIn)
	case phase < starFadeOut:
		return 1
	default:
		return 1 - (phase-starFadeOut)/(starGone-starFadeOut)
	}
}
