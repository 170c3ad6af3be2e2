package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/routing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Find a route between two junctions",
	Long: `Runs the configured algorithm (or all four variants) between two
junctions and prints the comparison as JSON. When Kafka publishing is
enabled the comparison is also published to the route_comparison_events
topic.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()

		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		req := models.RoutingRequest{
			Origin:      from,
			Destination: to,
			VehicleType: viper.GetString("vehicle_type"),
			Algorithm:   viper.GetString("algorithm"),
		}

		optimizer := routing.NewOptimizer(rt.engine, rt.store)
		comparison, err := optimizer.Optimize(req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(comparison, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding comparison: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))

		sink, err := newEventSink(rt.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to Kafka: %v\n", err)
			os.Exit(1)
		}
		if sink != nil {
			defer sink.Close()
			if err := sink.WriteMessage(models.TopicComparisonEvents, out); err != nil {
				log.Printf("Failed to publish comparison event: %v", err)
			}
		}
	},
}

func init() {
	routeCmd.Flags().String("from", "", "Origin junction ID")
	routeCmd.Flags().String("to", "", "Destination junction ID")
	routeCmd.Flags().String("vehicle", models.VehicleMotorcycle, "Vehicle type (motorcycle or three_wheeler)")
	routeCmd.Flags().String("algorithm", models.AlgorithmAll, "Algorithm (dijkstra, modified, astar, adaptive or all)")
	routeCmd.MarkFlagRequired("from")
	routeCmd.MarkFlagRequired("to")

	viper.BindPFlag("vehicle_type", routeCmd.Flags().Lookup("vehicle"))
	viper.BindPFlag("algorithm", routeCmd.Flags().Lookup("algorithm"))

	rootCmd.AddCommand(routeCmd)
}
