package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Port            string `mapstructure:"PORT"`
	GinMode         string `mapstructure:"GIN_MODE"`
	AllowedOrigins  string `mapstructure:"ALLOWED_ORIGINS"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	LoginDelayMs    int    `mapstructure:"LOGIN_DELAY_MS"`
	RegisterDelayMs int    `mapstructure:"REGISTER_DELAY_MS"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// ВАЖНО: Явно биндим переменные, чтобы Viper их видел без файла
	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("LOGIN_DELAY_MS")
	viper.BindEnv("REGISTER_DELAY_MS")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LOGIN_DELAY_MS", 1000)
	viper.SetDefault("REGISTER_DELAY_MS", 1500)

	// Пытаемся прочитать файл, но не умираем, если его нет
	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// Файла нет? Ну и ладно, работаем на ENV
	}

	err = viper.Unmarshal(&config)
	return
}
