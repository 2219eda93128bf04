package searchbar

import (
	"github.com/creasty/defaults"
	"github.com/pkg/errors"

	"searchbar/dialog"
)

// Config holds the presentation settings of a search bar.
type Config struct {
	Placeholder string        `yaml:"placeholder" default:"Search by: "`
	MaxLength   int           `yaml:"max_length" default:"100"`
	ResultMode  ResultMode    `yaml:"result_mode" default:"plain"`
	Dialog      dialog.Config `yaml:"dialog"`
}

// ApplyDefaults fills unset fields from their default tags.
func (cfg *Config) ApplyDefaults() (err error) {

	err = defaults.Set(cfg)
	err = errors.Wrapf(err, "failed to set search bar defaults")
	return
}
