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

package video

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jetsetilly/framepace/audio"
	"github.com/jetsetilly/framepace/curated"
	"github.com/jetsetilly/framepace/environment"
	"github.com/jetsetilly/framepace/logger"
	"github.com/jetsetilly/framepace/wavwriter"
)

const logTag = "ffmpeg"

// Sentinel errors for the Recorder.
const (
	RecorderUnavailable = "ffmpeg: %s not installed"
	RecorderFailed      = "ffmpeg: %v"
)

// Profile selects the encoder settings of the Recorder.
type Profile string

// List of valid Profile values.
const (
	ProfileFast Profile = "FAST"
	Profile1080 Profile = "1080"
)

// Recorder is a Presenter that pipes every presented frame to an ffmpeg
// process. Audio is recorded to a temporary wav file by the output returned
// from Audio() and is muxed with the video by End().
//
// Frames are passed on to the next presenter before being recorded.
type Recorder struct {
	env  *environment.Environment
	next Presenter

	profile Profile
	fps     float64

	finalFilename     string
	tempVideoFilename string
	tempAudioFilename string

	wavs *wavwriter.WavWriter

	// the geometry of the recording is set by the first presented frame
	width  int
	height int

	// the running ffmpeg command and the data pipe to it
	encoder *exec.Cmd
	pipe    io.WriteCloser

	frames int
	start  time.Time

	// the first error encountered. no more frames are recorded once err is
	// not nil
	err error
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The fps argument is the rate at which frames are presented.
func NewRecorder(env *environment.Environment, filename string, profile Profile, fps float64) (*Recorder, error) {
	for _, cmd := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(cmd); err != nil {
			return nil, curated.Errorf(RecorderUnavailable, cmd)
		}
	}

	switch profile {
	case ProfileFast, Profile1080:
	default:
		return nil, curated.Errorf(RecorderFailed, fmt.Sprintf("unknown profile: %s", profile))
	}

	dir, base := filepath.Split(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	rec := &Recorder{
		env:               env,
		profile:           profile,
		fps:               fps,
		finalFilename:     filename,
		tempVideoFilename: filepath.Join(dir, fmt.Sprintf("_tmp_%s.mp4", base)),
		tempAudioFilename: filepath.Join(dir, fmt.Sprintf("_tmp_%s.wav", base)),
	}

	var err error
	rec.wavs, err = wavwriter.New(env, rec.tempAudioFilename)
	if err != nil {
		return nil, curated.Errorf(RecorderFailed, err)
	}

	return rec, nil
}

// SetNext sets the presenter that frames are passed to. Can be nil.
func (rec *Recorder) SetNext(next Presenter) {
	rec.next = next
}

// Audio returns the output that records the audio for the video.
func (rec *Recorder) Audio() audio.Output {
	return rec.wavs
}

// Frames returns the number of frames recorded.
func (rec *Recorder) Frames() int {
	return rec.frames
}

// Present implements the Presenter interface.
func (rec *Recorder) Present(buf *Buffer) {
	if rec.next != nil {
		rec.next.Present(buf)
	}

	if rec.err != nil {
		return
	}

	if rec.pipe == nil {
		rec.err = rec.startEncoder(buf.Width, buf.Height)
		if rec.err != nil {
			logger.Log(rec.env, logTag, rec.err)
			return
		}
	}

	if buf.Width != rec.width || buf.Height != rec.height {
		rec.err = curated.Errorf(RecorderFailed, "size of frame has changed")
		logger.Log(rec.env, logTag, rec.err)
		return
	}

	rowLen := buf.Width * buf.Format.BytesPerPixel()
	for y := range buf.Height {
		i := y * buf.Stride
		if _, err := rec.pipe.Write(buf.Pix[i : i+rowLen]); err != nil {
			rec.err = curated.Errorf(RecorderFailed, err)
			logger.Log(rec.env, logTag, rec.err)
			return
		}
	}

	rec.frames++
}

func (rec *Recorder) startEncoder(width, height int) error {
	rec.width = width
	rec.height = height

	opts := []string{
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.02f", rec.fps), // incoming frame rate
		"-i", "-", // stdin pipe created below
	}

	switch rec.profile {
	case ProfileFast:
		opts = append(opts,
			"-crf", "18",
			"-preset", "fast",
			"-pix_fmt", "yuv420p",
		)
	case Profile1080:
		opts = append(opts,
			"-crf", "11",
			"-preset", "medium",
			"-pix_fmt", "yuv420p",
			"-vf", "scale=-2:1080:flags=neighbor,pad=1920:1080:(ow-iw)/2:(oh-ih)/2",
		)
	}

	opts = append(opts,
		"-v", "error",
		"-y", // always overwrite output file
		rec.tempVideoFilename,
	)

	rec.encoder = exec.Command("ffmpeg", opts...)
	rec.encoder.Stderr = os.Stderr

	var err error
	rec.pipe, err = rec.encoder.StdinPipe()
	if err != nil {
		return curated.Errorf(RecorderFailed, err)
	}

	err = rec.encoder.Start()
	if err != nil {
		rec.pipe = nil
		return curated.Errorf(RecorderFailed, err)
	}

	rec.start = time.Now()
	logger.Logf(rec.env, logTag, "recording %dx%d video to %s", width, height, rec.finalFilename)

	return nil
}

// End the recording. The audio output must have received EndMixing() before
// End() is called. The video and audio are muxed into the final file and the
// temporary files are removed.
func (rec *Recorder) End() error {
	if rec.pipe == nil {
		_ = os.Remove(rec.tempAudioFilename)
		return rec.err
	}

	_ = rec.pipe.Close()
	rec.pipe = nil
	if err := rec.encoder.Wait(); err != nil {
		return curated.Errorf(RecorderFailed, err)
	}

	if rec.err != nil {
		return rec.err
	}

	d := time.Since(rec.start)
	logger.Logf(rec.env, logTag, "%d frames recorded in %s (%.02f fps)", rec.frames, d.Round(time.Second), float64(rec.frames)/d.Seconds())

	videoLen, err := probeDuration(rec.tempVideoFilename)
	if err != nil {
		return err
	}
	// a recording without audio does not need muxing
	audioLen, err := probeDuration(rec.tempAudioFilename)
	if err != nil {
		logger.Log(rec.env, logTag, err)
		_ = os.Remove(rec.tempAudioFilename)
		if err := os.Rename(rec.tempVideoFilename, rec.finalFilename); err != nil {
			return curated.Errorf(RecorderFailed, err)
		}
		return nil
	}

	// the audio is stretched to the length of the video
	stretch := audioLen / videoLen
	logger.Logf(rec.env, logTag, "stretching audio by a factor of %0.2f", 1.0/stretch)

	muxer := exec.Command("ffmpeg",
		"-v", "error",
		"-y",
		"-i", rec.tempVideoFilename, "-i", rec.tempAudioFilename,
		"-vcodec", "copy", "-acodec", "aac",
		"-filter:a", fmt.Sprintf("atempo=%f", stretch),
		rec.finalFilename)
	muxer.Stderr = os.Stderr

	if err := muxer.Run(); err != nil {
		return curated.Errorf(RecorderFailed, err)
	}

	// temporary files are only removed if muxing has succeeded
	for _, fn := range []string{rec.tempVideoFilename, rec.tempAudioFilename} {
		if err := os.Remove(fn); err != nil {
			logger.Log(rec.env, logTag, err)
		}
	}

	return nil
}

// probeDuration returns the duration of the media file in seconds.
func probeDuration(filename string) (float64, error) {
	probe := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1",
		filename)

	out, err := probe.Output()
	if err != nil {
		return 0, curated.Errorf(RecorderFailed, err)
	}

	d, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, curated.Errorf(RecorderFailed, err)
	}
	if d <= 0 {
		return 0, curated.Errorf(RecorderFailed, fmt.Sprintf("%s has no duration", filename))
	}

	return d, nil
}
