// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in a .ddgscan.yaml settings file and those passed on the
// command line.
type Config struct {
	// path to the input PDB file
	PDB string `mapstructure:"pdb"`

	// residues to mutate, each in chain:position:wildtype form
	Residues []string `mapstructure:"residues"`

	// name of or path to the foldx executable
	FoldX string `mapstructure:"foldx"`

	// stability attempts per structure before giving up on it
	MaxRetries int `mapstructure:"max-retries"`

	// seconds to wait between stability attempts on the same structure
	RetryDelay int `mapstructure:"retry-delay"`

	// name of the report file
	Out string `mapstructure:"out"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local .ddgscan.yaml) and/or command line arguments.
func New() Config {
	viper.SetDefault("foldx", "foldx")
	viper.SetDefault("max-retries", 3)
	viper.SetDefault("retry-delay", 5)
	viper.SetDefault("out", "ddgcalcoutput.txt")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return c
}
