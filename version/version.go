// This file is part of Padmux.
//
// Padmux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padmux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padmux.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the application. A release build
// sets the number with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/padmux/version.number=v0.1.0"
//
// Other builds are described with the VCS information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Padmux"

// set by the linker for release builds
var number string

// Info describes the build.
type Info struct {
	// the release number, "unreleased" if built from a VCS checkout without a
	// number, or "local" if there is no VCS information at all (eg. "go run .")
	Version string

	// VCS revision. suffixed with "+dirty" if the checkout had uncommitted
	// changes
	Revision string

	// the Go version used to build the application
	GoVersion string

	// true if the build has a release number
	Release bool
}

// String returns the version alone for release builds and the version and
// revision otherwise.
func (i Info) String() string {
	if i.Release {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Revision)
}

var info Info

// Get the build information.
func Get() Info {
	return info
}

func init() {
	info = describe(number, debug.ReadBuildInfo)
}

// describe the build from the release number and the build information.
func describe(number string, read func() (*debug.BuildInfo, bool)) Info {
	var i Info
	var vcs bool
	var modified bool

	bi, ok := read()
	if ok {
		i.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				i.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if i.Revision == "" {
		i.Revision = "no revision information"
	} else if modified {
		i.Revision = fmt.Sprintf("%s+dirty", i.Revision)
	}

	switch {
	case number != "":
		i.Version = number
		i.Release = true
	case vcs:
		i.Version = "unreleased"
	default:
		i.Version = "local"
	}

	return i
}
