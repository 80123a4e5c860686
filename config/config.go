package config

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Benchmarks []Benchmark `mapstructure:"benchmarks" validate:"required,min=1,dive"`
	Logging    Logging     `mapstructure:"logging" validate:"required"`
	// Window is the number of recent iterations aggregated for rolling
	// percentile reporting.
	Window *int `mapstructure:"window" validate:"required,min=1"`
	// Plot, when non-empty, is the PNG path the iteration-time plot is
	// written to after each benchmark.
	Plot *string `mapstructure:"plot"`
}

type Benchmark struct {
	Name       *string `mapstructure:"name" validate:"required"`
	Command    *string `mapstructure:"command" validate:"required"`
	Iterations *int    `mapstructure:"iterations" validate:"required,min=1"`
}

type Logging struct {
	Driver   *string  `mapstructure:"driver" validate:"oneof=noop stdout influxdb"`
	InfluxDB InfluxDB `mapstructure:"influxdb" validate:"required_if=Driver influxdb"`
}

type InfluxDB struct {
	Host   *string `mapstructure:"host"`
	Token  *string `mapstructure:"token"`
	Org    *string `mapstructure:"org"`
	Bucket *string `mapstructure:"bucket"`
}

func setDefaults() {
	viper.SetDefault("Logging.Driver", "noop")
	viper.SetDefault("Window", 100)
	viper.SetDefault("Plot", "")
}

func ReadConfig() *Config {
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Fatalf("error: config.yaml not found in the working directory.\nerr = %s", err)
		} else {
			log.Fatalf("error when reading config.yaml: err = %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("error occured while reading configuration file: err = %s", err)
	}
	validate := validator.New()
	err := validate.Struct(&config)
	if err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			log.Printf("unable to validate config: err = %s", err)
		}

		log.Printf("encountered validation errors:\n")

		for _, err := range err.(validator.ValidationErrors) {
			fmt.Printf("\t%s\n", err.Error())
		}

		fmt.Println("Check your configuration file and try again.")
		os.Exit(1)
	}

	return &config
}
