package cli

import (
	"github.com/NikitaCOEUR/ding/internal/config"
	"github.com/NikitaCOEUR/ding/internal/logger"
)

// Overrides holds the options given on the command line or through the
// environment. A nil field was not given and falls back to config files.
type Overrides struct {
	SpecPath   *string
	PathPrefix *string
	LogLevel   *string
	JSON       *bool
}

// Settings are the effective options of a run
type Settings struct {
	SpecPath    string
	PathPrefix  string
	LogLevel    string
	JSON        bool
	ConfigFiles []string
}

// ResolveSettings merges the config hierarchy of dir under the overrides.
// An invalid config file is reported on log and ignored.
func ResolveSettings(dir string, o Overrides, loader *config.Loader, log *logger.Logger) Settings {
	cfg, files, err := loader.LoadHierarchy(dir)
	if err != nil {
		log.Warn().Err(err).Strs("files", files).Msg("Ignoring configuration files")
		cfg, files = &config.Config{}, nil
	}

	s := Settings{
		SpecPath:    cfg.Spec,
		PathPrefix:  cfg.PathPrefix,
		LogLevel:    cfg.LogLevel,
		JSON:        cfg.JSONOutput(),
		ConfigFiles: files,
	}
	if o.SpecPath != nil {
		s.SpecPath = *o.SpecPath
	}
	if o.PathPrefix != nil {
		s.PathPrefix = *o.PathPrefix
	}
	if o.LogLevel != nil {
		s.LogLevel = *o.LogLevel
	}
	if o.JSON != nil {
		s.JSON = *o.JSON
	}
	if s.LogLevel == "" {
		s.LogLevel = logger.DefaultLevel
	}
	return s
}
