package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Music owns the audio device. No track is loaded anywhere, so stream stays
// nil and Resume is a no-op hook.
type Music struct {
	stream *rl.Music
}

func NewMusic() *Music {
	rl.InitAudioDevice()
	return &Music{}
}

func (m *Music) Resume() {
	if m.stream == nil || !rl.IsAudioDeviceReady() {
		return
	}
	rl.ResumeMusicStream(*m.stream)
}

func (m *Music) Close() {
	if m.stream != nil {
		rl.UnloadMusicStream(*m.stream)
		m.stream = nil
	}
	rl.CloseAudioDevice()
}
