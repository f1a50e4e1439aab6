package console

// Raw ANSI Color Codes
const (
	// Reset
	CodeReset = "\033[0m"

	// Modifiers
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"

	// Foreground
	CodeRed    = "\033[31m"
	CodeGreen  = "\033[32m"
	CodeYellow = "\033[33m"
	CodeBlue   = "\033[34m"
	CodeWhite  = "\033[37m"

	// Background
	CodeRedBg = "\033[41m"
)

// colorIndex maps color names to their basic ANSI palette index.
var colorIndex = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// semanticStyles maps semantic tag names (lower case) to fg:bg:flags styles.
var semanticStyles = map[string]string{
	"applicationname": "cyan::b",
	"version":         "cyan",
	"file":            "cyan",
	"folder":          "cyan",
	"var":             "magenta",
	"value":           "green",
	"type":            "blue",
	"count":           "yellow",
	"notice":          "green",
	"warn":            "yellow",
	"error":           "red",
	"fatalfooter":     "-",

	"usercommand":      "yellow",
	"usercommanderror": "red",
	"usagecommand":     "yellow::b",
	"usageoption":      "yellow",
	"usagefile":        "cyan",
	"usagevar":         "magenta",

	"diffadd":    "green",
	"diffremove": "red",
}
