// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of port data to disk as a WAV file. The
// Space Invaders hardware drives its sound circuits from output ports 3 and
// 5 and every write to those ports is recorded as a single 8bit sample.
//
// Note that data is buffered in memory in its entirity, and written to disk
// when Close() is called. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// SampleRate is the sample rate of the WAV file.
const SampleRate = 8000

// the WAV format value for uncompressed PCM data
const formatPCM = 1

// the ports that drive the sound circuits
var soundPorts = []uint8{3, 5}

// WavWriter implements the ports.Tap interface.
type WavWriter struct {
	filename string
	ports    [256]bool
	buffer   []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}

	for _, p := range soundPorts {
		aw.ports[p] = true
	}

	return aw, nil
}

// PortWrite implements the ports.Tap interface.
func (aw *WavWriter) PortWrite(port uint8, data uint8) {
	if !aw.ports[port] {
		return
	}
	aw.buffer = append(aw.buffer, int(data))
}

// Samples returns the number of samples buffered so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the buffered samples to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, 8, 1, formatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
