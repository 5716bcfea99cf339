package core

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"devspace/internal/core/domain"
	"devspace/internal/ports"

	"gopkg.in/yaml.v3"
)

var configFilePath = filepath.Join("~", ".devspace.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
	}
}

// ProvideConfig loads the configuration once for components that only need
// the values, not the repository.
func ProvideConfig(configRepository ConfigRepository) (*domain.Config, error) {
	return configRepository.LoadConfig()
}

// LoadConfig reads ~/.devspace.yaml. A missing file is not an error and
// yields the defaults (code on workspace 1, alacritty on workspace 10).
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	exists, err := c.fileService.FileExists(configFilePath)
	if err != nil {
		return nil, err
	}

	config := domain.CreateDefaultConfig()
	if exists {
		data, err := c.fileService.ReadFile(configFilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		config, err = parseConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}

	if strings.HasPrefix(config.Background.LogDir, "~") {
		home, err := c.fileService.HomeDir()
		if err != nil {
			return nil, err
		}
		config.Background.LogDir = filepath.Join(home, config.Background.LogDir[1:])
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config
	return &config, nil
}

func parseConfig(data []byte) (domain.Config, error) {
	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return domain.Config{}, err
	}

	// settleDelay: 0 is a valid setting, so only a missing key gets the default.
	var delay struct {
		SettleDelay *time.Duration `yaml:"settleDelay"`
	}
	if err := yaml.Unmarshal(data, &delay); err != nil {
		return domain.Config{}, err
	}
	if delay.SettleDelay == nil {
		config.SettleDelay = domain.DefaultSettleDelay
	}

	config.ApplyDefaults()
	return config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(configFilePath, data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(configFilePath)
}
