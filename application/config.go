package application

import (
	"fmt"
	"os"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
	"github.com/fchen-group/dynamic-verifiable-data-access/utils"
)

// AppConfig provides an abstraction of the
// underlying encoding format for the configs.
type AppConfig interface {
	Load(file, encoding string) error
	Save() error
	GetPath() string
}

// CommonConfig is the generic type used to specify the configuration of
// any kind of application-level executable. It contains some common
// configuration values including the file path, logger configuration,
// and config loader.
type CommonConfig struct {
	Path     string        `toml:"-"`
	Logger   *LoggerConfig `toml:"logger"`
	Encoding string        `toml:"-"`
	loader   ConfigLoader
}

// NewCommonConfig initializes an application's config file path,
// its loader for the given encoding, and the logger configuration.
// Note: This constructor must be called in each Load() method
// implementation of an AppConfig.
func NewCommonConfig(file, encoding string, logger *LoggerConfig) *CommonConfig {
	return &CommonConfig{
		Path:     file,
		Logger:   logger,
		Encoding: encoding,
		loader:   newConfigLoader(encoding),
	}
}

// GetLoader returns the config's loader.
func (conf *CommonConfig) GetLoader() ConfigLoader {
	return conf.loader
}

// LoadPRFKey loads the data owner's PRF key at the given path
// specified in the given config file.
// If there is any reading error or the key is malformed,
// LoadPRFKey() returns an error.
func LoadPRFKey(path, file string) (prf.PrivateKey, error) {
	keyPath := utils.ResolvePath(path, file)
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return prf.PrivateKey{}, fmt.Errorf("Cannot read PRF key: %v", err)
	}
	if len(key) != prf.PrivateKeySize {
		return prf.PrivateKey{}, fmt.Errorf("PRF key must be %d bytes (got %d)",
			prf.PrivateKeySize, len(key))
	}
	return prf.NewKeyFromBytes(key)
}

// SavePRFKey writes a freshly generated PRF key to path.
// It refuses to overwrite an existing file.
func SavePRFKey(path string) error {
	key, err := prf.GenerateKey(nil)
	if err != nil {
		return err
	}
	return utils.WriteFile(path, key[:], 0600)
}
