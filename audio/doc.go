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

// Package audio defines the interface between the machine producing sound and
// the host playing or recording it.
//
// Samples are signed 16bit, interleaved stereo, at SampleFreq. The machine
// calls SetAudio() with the samples for each step and EndMixing() when the
// session ends. How the samples are buffered or resampled is the business of
// the Output implementation.
package audio
