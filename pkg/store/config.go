package store

import (
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// StateFileName is the fixed name of the state file inside the configured
// directory.
const StateFileName = ".ivy.yaml"

// Config resolves where the state file lives.
type Config interface {
	Path() string
}

// LoadConfig resolves the state file path: the IVY_DIR environment
// variable when set, the user's home directory otherwise.
func LoadConfig() (Config, error) {
	viper.SetEnvPrefix("IVY")
	viper.AutomaticEnv()

	dir := viper.GetString("dir")
	if dir == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, err
		}
		dir = home
	}

	return &fileConfig{path: filepath.Join(dir, StateFileName)}, nil
}

type fileConfig struct {
	path string
}

func (f *fileConfig) Path() string {
	return f.path
}
