package config

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/pkg/errors"
)

// ServerConfig defines runtime behaviour toggles
type ServerConfig struct {
	Debug bool `koanf:"debug"`
}

// RekognitionConfig related to the label detection calls
type RekognitionConfig struct {
	ProjectVersionARN    string  `koanf:"projectversionarn"`
	MinConfidenceDefault float64 `koanf:"minconfidencedefault"`
	MinConfidenceCustom  float64 `koanf:"minconfidencecustom"`
	MaxLabels            int32   `koanf:"maxlabels"`
}

// AppConfig defines
type AppConfig struct {
	Server      ServerConfig      `koanf:"server"`
	Rekognition RekognitionConfig `koanf:"rekognition"`
}

// Config - Global variable to export
var Config AppConfig

// Init - Assign global config to decoded config struct
func Init(filePath string) error {
	k := koanf.New(".")
	parser := yaml.Parser()

	if err := k.Load(confmap.Provider(map[string]any{
		"rekognition.minconfidencedefault": 0.65,
		"rekognition.minconfidencecustom":  0.65,
		"rekognition.maxlabels":            10,
	}, "."), nil); err != nil {
		log.Fatal(err.Error())
	}

	// The config file is optional: a packaged function usually ships
	// without one and is configured through the environment.
	if _, err := os.Stat(filePath); err == nil {
		if err := k.Load(file.Provider(filePath), parser); err != nil {
			log.Fatal(err.Error())
		}
	}

	if err := k.Load(env.ProviderWithValue("CFG_", ".", func(s string, v string) (string, any) {
		key := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "CFG_")), "_", ".")
		if strings.Contains(v, ",") {
			return key, strings.Split(strings.TrimSpace(v), ",")
		}
		return key, v
	}), nil); err != nil {
		return err
	}

	if err := k.Unmarshal("", &Config); err != nil {
		return err
	}

	return ValidateConfig(&Config)
}

// ValidateConfig is for custom validation rules for the configuration
func ValidateConfig(cfg *AppConfig) error {
	if cfg.Rekognition.ProjectVersionARN == "" {
		return errors.New("rekognition.projectversionarn config is required")
	}

	return nil
}

var defaultConfigPath = "config/config.yaml"

// ParseConfigFlag allows clients to specify the relative path to the file from
// which the configuration will be loaded.
func ParseConfigFlag() string {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("file", defaultConfigPath, "configuration file")
	flag.Parse()

	return *configPath
}
