package util

import (
	"fmt"

	"github.com/lintang-b-s/assignx/pkg"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	viper.SetDefault("AUCTION_EPSILON", pkg.DEFAULT_AUCTION_EPSILON)
	viper.SetDefault("PERTURBATION_DELTA", pkg.DEFAULT_PERTURBATION_DELTA)
	viper.SetDefault("MAX_MATRIX_DIM", pkg.MAX_MATRIX_DIM)

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
