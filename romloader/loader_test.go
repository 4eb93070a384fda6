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

package romloader_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/romloader"
	"github.com/jetsetilly/gopher8080/test"
)

// sha1 of the bytes 0x3e 0x05
const mviHash = "0c2b7e52c0f94f150c3ac2c3307c027dc46630e5"

func writeROM(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "invaders.rom")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLoadFile(t *testing.T) {
	fn := writeROM(t, []byte{0x3e, 0x05})

	rl := romloader.NewLoader(fn)
	test.ExpectFailure(t, rl.HasLoaded())
	test.ExpectEquality(t, rl.ShortName(), "invaders")

	test.DemandSuccess(t, rl.Load())
	test.ExpectSuccess(t, rl.HasLoaded())
	test.ExpectEquality(t, len(rl.Data), 2)
	test.ExpectEquality(t, rl.Hash, mviHash)

	// loading again with the recorded hash succeeds
	again := romloader.NewLoader(fn)
	again.Hash = rl.Hash
	test.ExpectSuccess(t, again.Load())
}

func TestLoadFileURL(t *testing.T) {
	fn := writeROM(t, []byte{0x3e, 0x05})

	rl := romloader.NewLoader("file://" + filepath.ToSlash(fn))
	test.DemandSuccess(t, rl.Load())
	test.ExpectEquality(t, len(rl.Data), 2)
	test.ExpectEquality(t, rl.Hash, mviHash)
	test.ExpectEquality(t, rl.ShortName(), "invaders")

	rl = romloader.NewLoader("file://" + filepath.ToSlash(filepath.Join(t.TempDir(), "missing.rom")))
	test.ExpectFailure(t, rl.Load())
}

func TestUnexpectedHash(t *testing.T) {
	fn := writeROM(t, []byte{0x3e, 0x05})

	rl := romloader.NewLoader(fn)
	rl.Hash = "0000000000000000000000000000000000000000"
	err := rl.Load()
	test.ExpectSuccess(t, curated.Is(err, romloader.UnexpectedHash))
	test.ExpectFailure(t, rl.HasLoaded())
}

func TestMissingFile(t *testing.T) {
	rl := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.rom"))
	test.ExpectFailure(t, rl.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/invaders.rom" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte{0x00, 0x00, 0x00, 0xc3})
	}))
	defer srv.Close()

	rl := romloader.NewLoader(fmt.Sprintf("%s/invaders.rom", srv.URL))
	test.DemandSuccess(t, rl.Load())
	test.ExpectEquality(t, len(rl.Data), 4)
	test.ExpectEquality(t, rl.Data[3], uint8(0xc3))

	rl = romloader.NewLoader(fmt.Sprintf("%s/missing.rom", srv.URL))
	test.ExpectFailure(t, rl.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	rl := romloader.NewLoader("ftp://example.com/invaders.rom")
	test.ExpectFailure(t, rl.Load())
}
