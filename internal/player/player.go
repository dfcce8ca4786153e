// Package player models video playback state for the video page.
//
// The terminal client has no media pipeline; [Player] mirrors the state a
// native media element would own (play/pause, mute, progress percentage,
// proportional seek, volume, fullscreen) so the video view can render and
// mutate it directly. The actual playable link opens in the system browser.
package player

// Player holds playback state for a single video.
type Player struct {
	duration   int     // total length in seconds
	position   float64 // elapsed seconds
	playing    bool
	muted      bool
	volume     float64
	fullscreen bool
}

// New creates a paused player for a video of the given duration in seconds,
// at full volume.
func New(duration int) *Player {
	if duration < 0 {
		duration = 0
	}
	return &Player{duration: duration, volume: 1.0}
}

// TogglePlay flips between playing and paused and reports the new state.
func (p *Player) TogglePlay() bool {
	p.playing = !p.playing
	return p.playing
}

// ToggleMute flips the mute flag and reports the new state. The stored volume
// is preserved across mutes.
func (p *Player) ToggleMute() bool {
	p.muted = !p.muted
	return p.muted
}

// ToggleFullscreen flips the fullscreen flag and reports the new state.
func (p *Player) ToggleFullscreen() bool {
	p.fullscreen = !p.fullscreen
	return p.fullscreen
}

func (p *Player) Playing() bool     { return p.playing }
func (p *Player) Muted() bool       { return p.muted }
func (p *Player) Fullscreen() bool  { return p.fullscreen }
func (p *Player) Duration() int     { return p.duration }
func (p *Player) Position() float64 { return p.position }

// SetVolume sets the volume, clamped to [0, 1].
func (p *Player) SetVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	p.volume = v
}

// Volume returns the configured volume regardless of mute state.
func (p *Player) Volume() float64 { return p.volume }

// EffectiveVolume returns the audible volume: 0 while muted.
func (p *Player) EffectiveVolume() float64 {
	if p.muted {
		return 0
	}
	return p.volume
}

// Progress returns elapsed time as a percentage of the duration.
// A zero-length video reports 0.
func (p *Player) Progress() float64 {
	if p.duration == 0 {
		return 0
	}
	return p.position / float64(p.duration) * 100
}

// SeekTo seeks by proportional offset into a progress bar of the given width,
// mirroring a click at that x offset. Out-of-range offsets clamp to the ends.
func (p *Player) SeekTo(offset, width int) {
	if width <= 0 {
		return
	}
	frac := float64(offset) / float64(width)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	p.position = frac * float64(p.duration)
}

// Advance moves playback forward by the given seconds while playing.
// Reaching the end pauses the player.
func (p *Player) Advance(seconds float64) {
	if !p.playing || seconds <= 0 {
		return
	}
	p.position += seconds
	if p.position >= float64(p.duration) {
		p.position = float64(p.duration)
		p.playing = false
	}
}
