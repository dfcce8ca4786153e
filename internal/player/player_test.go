package player

import "testing"

func TestPlayer(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		p := New(120)
		if p.Playing() {
			t.Error("expected a new player to be paused")
		}
		if p.Muted() {
			t.Error("expected a new player to be unmuted")
		}
		if p.Volume() != 1.0 {
			t.Errorf("expected full volume, got %f", p.Volume())
		}
		if p.Position() != 0 {
			t.Errorf("expected position 0, got %f", p.Position())
		}
	})

	t.Run("TogglePlay", func(t *testing.T) {
		p := New(120)
		if !p.TogglePlay() {
			t.Error("expected toggle to start playback")
		}
		if p.TogglePlay() {
			t.Error("expected second toggle to pause")
		}
	})

	t.Run("ToggleMute", func(t *testing.T) {
		p := New(120)
		if !p.ToggleMute() {
			t.Error("expected toggle to mute")
		}
		if p.EffectiveVolume() != 0 {
			t.Errorf("expected effective volume 0 while muted, got %f", p.EffectiveVolume())
		}
		if p.Volume() != 1.0 {
			t.Errorf("expected the stored volume to survive muting, got %f", p.Volume())
		}
		if p.ToggleMute() {
			t.Error("expected second toggle to unmute")
		}
		if p.EffectiveVolume() != 1.0 {
			t.Errorf("expected effective volume restored, got %f", p.EffectiveVolume())
		}
	})

	t.Run("SetVolume clamps", func(t *testing.T) {
		p := New(120)
		p.SetVolume(1.5)
		if p.Volume() != 1.0 {
			t.Errorf("expected clamp to 1.0, got %f", p.Volume())
		}
		p.SetVolume(-0.5)
		if p.Volume() != 0 {
			t.Errorf("expected clamp to 0, got %f", p.Volume())
		}
		p.SetVolume(0.5)
		if p.Volume() != 0.5 {
			t.Errorf("expected 0.5, got %f", p.Volume())
		}
	})

	t.Run("Progress", func(t *testing.T) {
		p := New(200)
		p.TogglePlay()
		p.Advance(50)
		if p.Progress() != 25 {
			t.Errorf("expected 25%%, got %f", p.Progress())
		}

		t.Run("zero duration is 0", func(t *testing.T) {
			if New(0).Progress() != 0 {
				t.Error("expected 0 progress for a zero-length video")
			}
		})
	})

	t.Run("SeekTo", func(t *testing.T) {
		p := New(100)
		p.SeekTo(15, 30)
		if p.Position() != 50 {
			t.Errorf("expected position 50, got %f", p.Position())
		}

		p.SeekTo(-5, 30)
		if p.Position() != 0 {
			t.Errorf("expected clamp to 0, got %f", p.Position())
		}

		p.SeekTo(40, 30)
		if p.Position() != 100 {
			t.Errorf("expected clamp to the end, got %f", p.Position())
		}

		t.Run("ignores a non-positive width", func(t *testing.T) {
			p := New(100)
			p.SeekTo(10, 0)
			if p.Position() != 0 {
				t.Errorf("expected position unchanged, got %f", p.Position())
			}
		})
	})

	t.Run("Advance", func(t *testing.T) {
		t.Run("does nothing while paused", func(t *testing.T) {
			p := New(100)
			p.Advance(10)
			if p.Position() != 0 {
				t.Errorf("expected no movement while paused, got %f", p.Position())
			}
		})

		t.Run("pauses at the end", func(t *testing.T) {
			p := New(100)
			p.TogglePlay()
			p.Advance(150)
			if p.Position() != 100 {
				t.Errorf("expected position at the end, got %f", p.Position())
			}
			if p.Playing() {
				t.Error("expected playback to pause at the end")
			}
		})
	})

	t.Run("ToggleFullscreen", func(t *testing.T) {
		p := New(100)
		if !p.ToggleFullscreen() {
			t.Error("expected toggle to enter fullscreen")
		}
		if p.ToggleFullscreen() {
			t.Error("expected second toggle to exit fullscreen")
		}
	})
}
