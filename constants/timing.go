package constants

import "time"

// TickInterval paces the game loop; the sleep between ticks is the only suspension point
const TickInterval = 100 * time.Millisecond

// BannerDuration is how long game over and win banners stay before the field resets
const BannerDuration = 5 * time.Second

// BannerTicks is BannerDuration expressed in loop ticks
const BannerTicks = int(BannerDuration / TickInterval)

// Sound effect timing
const (
	EatSoundDuration = 120 * time.Millisecond
	EatSoundAttack   = 5 * time.Millisecond
	EatSoundRelease  = 80 * time.Millisecond

	DeathSoundDuration = 400 * time.Millisecond
	DeathSoundAttack   = 10 * time.Millisecond
	DeathSoundRelease  = 250 * time.Millisecond

	WinNoteDuration = 180 * time.Millisecond
	WinNoteAttack   = 5 * time.Millisecond
	WinNoteRelease  = 120 * time.Millisecond
)
