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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// UnexpectedHash is returned by Load() if the data does not match the
// expected hash. The values are the expected and actual hashes.
const UnexpectedHash = "romloader: unexpected hash value (%s, wanted %s)"

// Loader specifies the ROM to load.
type Loader struct {
	// filename of the ROM. can be a URL with the http or https scheme
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value will
	// be the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() will not reload
	// the data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the base of the filename without the extension.
func (rl Loader) ShortName() string {
	n := filepath.Base(rl.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (rl Loader) HasLoaded() bool {
	return len(rl.Data) > 0
}

// Load the ROM data. Currently supported schemes are HTTP, file URLs and
// local files.
func (rl *Loader) Load() error {
	if len(rl.Data) > 0 {
		return nil
	}

	// a filename that can't be parsed as a URL is treated as a plain path
	scheme := ""

	u, err := url.Parse(rl.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("romloader: %v", fmt.Sprintf("http status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "file":
		data, err = os.ReadFile(u.Path)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	case "":
		data, err = os.ReadFile(rl.Filename)
		if err != nil {
			return curated.Errorf("romloader: %v", err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			data, err = os.ReadFile(rl.Filename)
			if err != nil {
				return curated.Errorf("romloader: %v", err)
			}
			break
		}
		return curated.Errorf("romloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))

	if rl.Hash != "" && rl.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash, rl.Hash)
	}

	rl.Hash = hash
	rl.Data = data

	logger.Logf(logger.Allow, "romloader", "%s: %d bytes (sha1 %s)", rl.ShortName(), len(data), hash)

	return nil
}
