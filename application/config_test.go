package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fchen-group/dynamic-verifiable-data-access/crypto/prf"
)

type testConfig struct {
	*CommonConfig
	Name string `toml:"name"`
}

func (conf *testConfig) Load(file, encoding string) error {
	conf.CommonConfig = NewCommonConfig(file, encoding, nil)
	return conf.GetLoader().Decode(conf)
}

func (conf *testConfig) Save() error {
	return conf.GetLoader().Encode(conf)
}

func (conf *testConfig) GetPath() string {
	return conf.Path
}

func TestTomlLoader(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	conf := &testConfig{
		CommonConfig: NewCommonConfig(file, "toml", &LoggerConfig{Environment: "development"}),
		Name:         "index",
	}
	if err := conf.Save(); err != nil {
		t.Fatal(err)
	}
	// never overwrite an existing config
	if err := conf.Save(); err == nil {
		t.Error("Expect an error when overwriting the config")
	}

	loaded := new(testConfig)
	if err := loaded.Load(file, "toml"); err != nil {
		t.Fatal(err)
	}
	if loaded.Name != "index" || loaded.Logger == nil ||
		loaded.Logger.Environment != "development" {
		t.Error("Unexpected config", loaded.Name, loaded.Logger)
	}
}

func TestTomlLoaderUnknownKey(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(file, []byte("name = \"x\"\nnmae = \"y\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := new(testConfig).Load(file, "toml"); err == nil {
		t.Error("Expect an error for an unknown key")
	}
}

func TestPRFKeyFile(t *testing.T) {
	dir := t.TempDir()
	if err := SavePRFKey(filepath.Join(dir, "prf.key")); err != nil {
		t.Fatal(err)
	}
	// relative to the config file
	key, err := LoadPRFKey("prf.key", filepath.Join(dir, "config.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if key == (prf.PrivateKey{}) {
		t.Error("Expect a random key")
	}

	short := filepath.Join(dir, "short.key")
	if err := os.WriteFile(short, []byte("short"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPRFKey(short, ""); err == nil {
		t.Error("Expect an error for a short key")
	}
	if _, err := LoadPRFKey("missing.key", filepath.Join(dir, "config.toml")); err == nil {
		t.Error("Expect an error for a missing key")
	}
}
