package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Invoice numbering.
	InvoiceNumberPrefix string `mapstructure:"INVOICE_NUMBER_PREFIX"`

	// Clinic letterhead printed on exported invoices.
	ClinicName         string `mapstructure:"CLINIC_NAME"`
	ClinicAddressLine1 string `mapstructure:"CLINIC_ADDRESS_LINE1"`
	ClinicAddressLine2 string `mapstructure:"CLINIC_ADDRESS_LINE2"`
	ClinicPhone        string `mapstructure:"CLINIC_PHONE"`
	SupportEmail       string `mapstructure:"SUPPORT_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("INVOICE_NUMBER_PREFIX", "INV")
	viper.SetDefault("CLINIC_NAME", "Modern Dental Clinic")
	viper.SetDefault("CLINIC_ADDRESS_LINE1", "INTUC Jn, Nettoor, Maradu")
	viper.SetDefault("CLINIC_ADDRESS_LINE2", "Ernakulam, Kerala 682040")
	viper.SetDefault("CLINIC_PHONE", "+91 8304842300")
	viper.SetDefault("SUPPORT_EMAIL", "support@moderndental.com")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
