package config

import "flag"

var (
	flagConfig       string
	flagDebug        bool
	flagSubdivisions int
	flagThreshold    float64
	flagSize         float64
	flagFormat       string
	flagOut          string
	flagLogFile      string
)

// BindFlags registers the shared generator flags on fs. Call it for every
// subcommand flag set before parsing.
func BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to config file")
	fs.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	fs.IntVar(&flagSubdivisions, "subdivisions", -1, "Icosphere subdivisions (0-8)")
	fs.Float64Var(&flagThreshold, "threshold", 0, "Cutting plane distance (0-1, exclusive)")
	fs.Float64Var(&flagSize, "size", 0, "Die edge length")
	fs.StringVar(&flagFormat, "format", "", "Mesh output format (obj, stl)")
	fs.StringVar(&flagOut, "out", "", "Output directory")
	fs.StringVar(&flagLogFile, "log", "", "Log file path")
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagSubdivisions >= 0 {
		cfg.Die.Subdivisions = flagSubdivisions
	}
	if flagThreshold > 0 {
		cfg.Die.Threshold = float32(flagThreshold)
	}
	if flagSize > 0 {
		cfg.Die.Size = float32(flagSize)
	}
	if flagFormat != "" {
		cfg.Output.Format = flagFormat
	}
	if flagOut != "" {
		cfg.Output.Dir = flagOut
	}
	if flagLogFile != "" {
		cfg.Logging.LogFile = flagLogFile
	}
}

// resetFlags restores every flag to its unset value.
func resetFlags() {
	flagConfig = ""
	flagDebug = false
	flagSubdivisions = -1
	flagThreshold = 0
	flagSize = 0
	flagFormat = ""
	flagOut = ""
	flagLogFile = ""
}

func init() {
	resetFlags()
}
