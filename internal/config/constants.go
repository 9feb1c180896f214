package config

// ConfigFileName is the configuration file searched for by FindConfig.
const ConfigFileName = "syntactic.yaml"

// ConfigFileNames are all recognized configuration file names, in search order.
var ConfigFileNames = []string{ConfigFileName, "syntactic.yml"}

// Verbose enables progress logging.
// This is set once at startup in main.go from the -v flag.
var Verbose = false

// Render styles
const (
	StyleInline = "inline"
	StyleTree   = "tree"
)

// Colour modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Command names
const (
	ListCmdName  = "list"
	ShowCmdName  = "show"
	DrawCmdName  = "draw"
	EvalCmdName  = "eval"
	CheckCmdName = "check"
)

var (
	Styles     = []string{StyleInline, StyleTree}
	ColorModes = []string{ColorAuto, ColorAlways, ColorNever}
)
