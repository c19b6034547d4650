// Package tui holds the presentation pieces of the generator: the startup
// banner and the progress spinner. Nothing here affects what gets collected
// or written.
package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the valuesgen startup banner.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Teal-to-blue gradient, one color per line
	s1 := termenv.String(`            _                                 `).Foreground(p.Color("#2dd4bf"))
	s2 := termenv.String(` __   ____ _| |_   _  ___  ___  __ _  ___ _ __  `).Foreground(p.Color("#22d3ee"))
	s3 := termenv.String(` \ \ / / _` + "`" + ` | | | | |/ _ \/ __|/ _` + "`" + ` |/ _ \ '_ \ `).Foreground(p.Color("#38bdf8"))
	s4 := termenv.String(`  \ V / (_| | | |_| |  __/\__ \ (_| |  __/ | | |`).Foreground(p.Color("#60a5fa"))
	s5 := termenv.String(`   \_/ \__,_|_|\__,_|\___||___/\__, |\___|_| |_|`).Foreground(p.Color("#818cf8"))
	s6 := termenv.String(`                               |___/            `).Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
