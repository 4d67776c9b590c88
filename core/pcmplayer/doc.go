// This file is part of Framepace.
//
// Framepace is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Framepace is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Framepace.  If not, see <https://www.gnu.org/licenses/>.

// Package pcmplayer is a core that plays WAV and MP3 files. Every frame sends
// one frame's worth of samples to the audio output and renders a level meter
// for each channel.
//
// Samples are converted to 16 bit stereo at audio.SampleFreq when the content
// is loaded.
package pcmplayer
