package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "bodaroute",
	Short: "Adaptive route planning for urban delivery fleets",
	Long: `bodaroute plans delivery routes over a road network using four
shortest-path variants (plain Dijkstra, cost-weighted Dijkstra, A* and an
adaptive variant that learns from delivery feedback), records route
feedback into an edge history store, and benchmarks the variants against
each other.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.PersistentFlags().Int("seed", 42, "Random seed for deterministic generation")
	rootCmd.PersistentFlags().String("network-file", "data/roads.json", "Road network definition file")
	rootCmd.PersistentFlags().String("history-backend", "file", "Edge history backend (file or postgres)")
	rootCmd.PersistentFlags().String("history-file", "data/edge_history.json", "Edge history file (file backend)")
	rootCmd.PersistentFlags().String("postgres-dsn", "", "Postgres connection string (postgres backend)")
	rootCmd.PersistentFlags().Bool("kafka-enabled", false, "Publish routing events to Kafka")
	rootCmd.PersistentFlags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("network_file", rootCmd.PersistentFlags().Lookup("network-file"))
	viper.BindPFlag("history_backend", rootCmd.PersistentFlags().Lookup("history-backend"))
	viper.BindPFlag("history_file", rootCmd.PersistentFlags().Lookup("history-file"))
	viper.BindPFlag("postgres_dsn", rootCmd.PersistentFlags().Lookup("postgres-dsn"))
	viper.BindPFlag("kafka_enabled", rootCmd.PersistentFlags().Lookup("kafka-enabled"))
	viper.BindPFlag("kafka_broker_list", rootCmd.PersistentFlags().Lookup("kafka-broker-list"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
