package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Configuration struct {
	Storage   StorageConfig   `yaml:"storage"`
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Inventory InventoryConfig `yaml:"inventory"`
	Settings  SettingsConfig  `yaml:"settings"`
}

type StorageConfig struct {
	Path string `yaml:"path"`
}

// DatabaseConfig selects the gorm driver. For postgres the connection is read
// from the DB_* environment variables.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request"`
	LogConfig     LogConfig     `yaml:"log"`
	CleanConfig   CleanConfig   `yaml:"clean"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"sizeLimit"`
}

type LogConfig struct {
	Format  string `yaml:"format"`
	Level   string `yaml:"level"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"logPath"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type InventoryConfig struct {
	MaxTreeDepth             int `yaml:"maxTreeDepth"`
	EventRetention           int `yaml:"eventRetention"`
	LocationHistoryRetention int `yaml:"locationHistoryRetention"`
	LoanAgingDays            int `yaml:"loanAgingDays"`
	TopTags                  int `yaml:"topTags"`
}

// SettingsConfig holds the defaults for the user facing app settings.
type SettingsConfig struct {
	UnitSystem      string `yaml:"unitSystem"`
	WeightUnit      string `yaml:"weightUnit"`
	Currency        string `yaml:"currency"`
	Language        string `yaml:"language"`
	DateFormat      string `yaml:"dateFormat"`
	DefaultViewType string `yaml:"defaultViewType"`
	BackupFrequency string `yaml:"backupFrequency"`
	// Nil means enabled.
	AutoBackup        *bool `yaml:"autoBackup"`
	ShowSerialNumbers *bool `yaml:"showSerialNumbers"`
}

func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	data, err := os.ReadFile(configurationFilePath)
	if err != nil {
		return nil, err
	}
	var config Configuration
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.ApplyDefaults()
	return &config, nil
}

// Default returns a configuration with every default applied, used when no
// configuration file is present and in tests.
func Default() *Configuration {
	config := &Configuration{}
	config.ApplyDefaults()
	return config
}

func (c *Configuration) ApplyDefaults() {
	if c.Storage.Path == "" {
		c.Storage.Path = "./data"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "hoard.db"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 16
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@daily"
	}
	if c.Inventory.MaxTreeDepth == 0 {
		c.Inventory.MaxTreeDepth = 20
	}
	if c.Inventory.EventRetention == 0 {
		c.Inventory.EventRetention = 1000
	}
	if c.Inventory.LocationHistoryRetention == 0 {
		c.Inventory.LocationHistoryRetention = 500
	}
	if c.Inventory.LoanAgingDays == 0 {
		c.Inventory.LoanAgingDays = 30
	}
	if c.Inventory.TopTags == 0 {
		c.Inventory.TopTags = 10
	}
	if c.Settings.UnitSystem == "" {
		c.Settings.UnitSystem = "metric"
	}
	if c.Settings.WeightUnit == "" {
		c.Settings.WeightUnit = "kg"
	}
	if c.Settings.Currency == "" {
		c.Settings.Currency = "EUR"
	}
	if c.Settings.Language == "" {
		c.Settings.Language = "en"
	}
	if c.Settings.DateFormat == "" {
		c.Settings.DateFormat = "2006-01-02"
	}
	if c.Settings.DefaultViewType == "" {
		c.Settings.DefaultViewType = "list"
	}
	if c.Settings.BackupFrequency == "" {
		c.Settings.BackupFrequency = "weekly"
	}
	if c.Settings.AutoBackup == nil {
		enabled := true
		c.Settings.AutoBackup = &enabled
	}
	if c.Settings.ShowSerialNumbers == nil {
		enabled := true
		c.Settings.ShowSerialNumbers = &enabled
	}
}
