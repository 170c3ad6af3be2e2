package models

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

type Config struct {
	Seed           int    `mapstructure:"seed"`
	NetworkFile    string `mapstructure:"network_file"`
	HistoryBackend string `mapstructure:"history_backend"`
	HistoryFile    string `mapstructure:"history_file"`
	PostgresDSN    string `mapstructure:"postgres_dsn"`

	VehicleType string `mapstructure:"vehicle_type"`
	Algorithm   string `mapstructure:"algorithm"`

	KafkaEnabled    bool   `mapstructure:"kafka_enabled"`
	KafkaBrokerList string `mapstructure:"kafka_broker_list"`

	OutputPath        string             `mapstructure:"output_path"`
	OutputFolder      string             `mapstructure:"output_folder"`
	OutputFormat      string             `mapstructure:"output_format"`
	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`

	ExperimentRuns int `mapstructure:"experiment_runs"`

	// Synthetic network generation.
	CityName         string  `mapstructure:"city_name"`
	CityLat          float64 `mapstructure:"city_latitude"`
	CityLon          float64 `mapstructure:"city_longitude"`
	UrbanRadius      float64 `mapstructure:"urban_radius"` // km
	GeneratorNodes   int     `mapstructure:"generator_nodes"`
	GeneratorDegree  int     `mapstructure:"generator_degree"`
	GeneratorOneWay  float64 `mapstructure:"generator_one_way"` // fraction of roads kept one-way
	GeneratorMaxTraf float64 `mapstructure:"generator_max_traffic"`
}

// LoadConfig initialises and reads the configuration using Viper.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Default config location
		viper.AddConfigPath("examples")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("seed", 42)
	viper.SetDefault("network_file", "data/roads.json")
	viper.SetDefault("history_backend", HistoryBackendFile)
	viper.SetDefault("history_file", "data/edge_history.json")
	viper.SetDefault("vehicle_type", VehicleMotorcycle)
	viper.SetDefault("algorithm", AlgorithmAll)
	viper.SetDefault("output_format", "csv")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("experiment_runs", 100)
	viper.SetDefault("generator_nodes", 25)
	viper.SetDefault("generator_degree", 3)
	viper.SetDefault("generator_one_way", 0.2)
	viper.SetDefault("generator_max_traffic", 2.5)
	viper.SetDefault("urban_radius", 8.0)
	viper.SetDefault("city_name", "Dar es Salaam")
	viper.SetDefault("city_latitude", -6.7924)
	viper.SetDefault("city_longitude", 39.2083)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToSliceHookFunc(","),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}
