package console

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	isTTYGlobal bool

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile
)

func init() {
	isTTYGlobal = term.IsTerminal(int(os.Stderr.Fd()))
	preferredProfile = detectProfile()
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p termenv.Profile) {
	preferredProfile = p
}

// SetTTY allows forcing the TTY status.
// Returns the previous value so it can be restored.
func SetTTY(isTTY bool) bool {
	old := isTTYGlobal
	isTTYGlobal = isTTY
	return old
}

// ColorEnabled reports whether Parse emits escape sequences.
func ColorEnabled() bool {
	return isTTYGlobal && preferredProfile != termenv.Ascii
}

// detectProfile determines the color profile.
// Priority: NO_COLOR > COLORTERM > TERM > termenv detection
func detectProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}

	t := strings.ToLower(os.Getenv("TERM"))
	if t == "dumb" {
		return termenv.Ascii
	}
	if strings.Contains(t, "256color") {
		return termenv.ANSI256
	}

	return termenv.NewOutput(os.Stderr).EnvColorProfile()
}
