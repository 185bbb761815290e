package vfs

import (
	"fmt"

	"github.com/fchen-group/dynamic-verifiable-data-access/application"
	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
	"github.com/fchen-group/dynamic-verifiable-data-access/merkletree"
	"github.com/fchen-group/dynamic-verifiable-data-access/utils"
)

// DefaultLoadFactor is the load factor written by NewConfig
// when none is given.
const DefaultLoadFactor = 0.5

// A Config contains the configuration of a verifiable file index:
// where the outsourced filenames come from, the load factor of the
// slot table, and the path of the owner's PRF key.
//
// Directory and FileList are alternatives; if both are set,
// the names of both are outsourced. Relative paths are
// resolved against the config file.
type Config struct {
	*application.CommonConfig

	Directory  string  `toml:"directory,omitempty"`
	FileList   string  `toml:"file_list,omitempty"`
	LoadFactor float64 `toml:"load_factor"`
	KeyPath    string  `toml:"key_path"`

	Key prf.PrivateKey `toml:"-"`
}

var _ application.AppConfig = (*Config)(nil)

// NewConfig initializes a new index configuration at the given file
// path, with the given config encoding, outsourced directory, load
// factor, PRF key path and logger configuration.
func NewConfig(file, encoding, dir string, loadFactor float64,
	keyPath string, logger *application.LoggerConfig) *Config {
	if loadFactor == 0 {
		loadFactor = DefaultLoadFactor
	}
	var conf = Config{
		CommonConfig: application.NewCommonConfig(file, encoding, logger),
		Directory:    dir,
		LoadFactor:   loadFactor,
		KeyPath:      keyPath,
	}
	return &conf
}

// Load initializes an index configuration from the given file
// using the given encoding.
// It checks the load factor and the logger settings,
// and reads the PRF key file.
func (conf *Config) Load(file, encoding string) error {
	conf.CommonConfig = application.NewCommonConfig(file, encoding, nil)
	if err := conf.GetLoader().Decode(conf); err != nil {
		return err
	}
	if _, err := merkletree.TreeHeight(1, conf.LoadFactor); err != nil {
		return fmt.Errorf("Invalid load factor %v: %v", conf.LoadFactor, err)
	}
	if conf.Logger != nil {
		if err := conf.Logger.Validate(); err != nil {
			return err
		}
	}

	key, err := application.LoadPRFKey(conf.KeyPath, file)
	if err != nil {
		return err
	}
	conf.Key = key
	return nil
}

// Save writes an index configuration.
func (conf *Config) Save() error {
	return conf.GetLoader().Encode(conf)
}

// GetPath returns the index configuration file path.
func (conf *Config) GetPath() string {
	return conf.Path
}

// Files returns the filenames to outsource.
func (conf *Config) Files() ([]string, error) {
	if conf.Directory == "" && conf.FileList == "" {
		return nil, fmt.Errorf("Config %s names neither a directory nor a file list", conf.Path)
	}
	var names []string
	if conf.Directory != "" {
		dirNames, err := application.ListDirectory(utils.ResolvePath(conf.Directory, conf.Path))
		if err != nil {
			return nil, err
		}
		names = append(names, dirNames...)
	}
	if conf.FileList != "" {
		listNames, err := application.ReadFileList(utils.ResolvePath(conf.FileList, conf.Path))
		if err != nil {
			return nil, err
		}
		names = append(names, listNames...)
	}
	return names, nil
}
