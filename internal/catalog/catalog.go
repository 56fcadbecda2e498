// Package catalog holds the compiled-in PropertyDetails layouts for the V8
// versions bundled with Node v0.10 and v0.12.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"v8bitfield/internal/bitfield"
)

// SmiBits is the payload width the layouts must fit in once the tag bit is
// dropped from a 32-bit Smi.
const SmiBits = 31

// ErrUnknownLayout is returned by Lookup for versions not in the catalog.
var ErrUnknownLayout = errors.New("unknown layout version")

var layouts = []bitfield.Layout{
	V010PropertyDetails,
	V012PropertyDetails,
}

// Default is the layout used when no version is given.
var Default = V012PropertyDetails

func init() {
	for _, l := range layouts {
		if err := l.Validate(SmiBits); err != nil {
			panic(err)
		}
	}
}

// Versions returns the known layout versions, oldest first.
func Versions() []string {
	out := make([]string, len(layouts))
	for i, l := range layouts {
		out[i] = l.Version
	}
	return out
}

// Layouts returns every layout in the catalog, oldest first.
func Layouts() []bitfield.Layout {
	return append([]bitfield.Layout(nil), layouts...)
}

// Lookup returns the layout for version. "v0.12", "0.12" and "V0.12" all
// name the same layout; an empty version selects Default.
func Lookup(version string) (bitfield.Layout, error) {
	if version == "" {
		return Default, nil
	}
	want := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(version)), "v")
	for _, l := range layouts {
		if strings.TrimPrefix(l.Version, "v") == want {
			return l, nil
		}
	}
	return bitfield.Layout{}, fmt.Errorf("%w: %q (known: %s)",
		ErrUnknownLayout, version, strings.Join(Versions(), ", "))
}
