/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package main

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	/// Tone frequency of the beeper in Hz.
	///
	Tone = 440

	/// amplitude of the square wave around silence
	///
	volume = 24
)

var (
	/// the opened audio device, zero if there is none
	///
	audioDevice sdl.AudioDeviceID

	/// one 60 Hz frame worth of square wave
	///
	toneBuffer []byte
)

/// InitAudio opens an audio device for the beeper.
///
func InitAudio() error {
	spec := &sdl.AudioSpec{
		Freq:     22050,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var actual sdl.AudioSpec

	id, err := sdl.OpenAudioDevice("", false, spec, &actual, 0)
	if err != nil {
		return err
	}

	audioDevice = id
	toneBuffer = squareWave(int(actual.Freq), actual.Silence)

	// start the device, it stays silent until audio is queued
	sdl.PauseAudioDevice(audioDevice, false)

	return nil
}

/// squareWave builds whole cycles of the tone covering at least 1/60 s.
///
func squareWave(freq int, silence byte) []byte {
	period := freq / Tone
	cycles := (freq/60 + period - 1) / period

	buf := make([]byte, period*cycles)
	for i := range buf {
		if i%period < period/2 {
			buf[i] = silence + volume
		} else {
			buf[i] = silence - volume
		}
	}

	return buf
}

/// UpdateAudio keeps the tone queued while the sound timer runs.
///
func UpdateAudio() {
	if audioDevice == 0 {
		return
	}

	if !Machine.SoundActive() {
		sdl.ClearQueuedAudio(audioDevice)
		return
	}

	// keep a couple of frames queued ahead
	if sdl.GetQueuedAudioSize(audioDevice) < uint32(2*len(toneBuffer)) {
		sdl.QueueAudio(audioDevice, toneBuffer)
	}
}

/// CloseAudio releases the audio device.
///
func CloseAudio() {
	if audioDevice != 0 {
		sdl.CloseAudioDevice(audioDevice)
		audioDevice = 0
	}
}
