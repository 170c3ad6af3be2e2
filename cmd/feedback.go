package cmd

import (
	"fmt"
	"os"

	"github.com/bodaroute/bodaroute/internal/models"
	"github.com/bodaroute/bodaroute/internal/routing"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Record the outcome of a completed delivery",
	Long: `Records how a delivery actually went against its expectation. The
delay and failure signals are folded into the edge history store, which
the adaptive algorithm consults on subsequent routes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer rt.Close()

		path, _ := cmd.Flags().GetStringSlice("path")
		actual, _ := cmd.Flags().GetFloat64("actual")
		expected, _ := cmd.Flags().GetFloat64("expected")
		succeeded, _ := cmd.Flags().GetBool("succeeded")

		learner := routing.NewFeedbackLearner(rt.network, rt.store)
		sink, err := newEventSink(rt.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error connecting to Kafka: %v\n", err)
			os.Exit(1)
		}
		if sink != nil {
			defer sink.Close()
			learner = learner.WithEventSink(sink)
		}

		feedback := models.RouteFeedback{
			Path:             path,
			ActualDuration:   actual,
			ExpectedDuration: expected,
			Succeeded:        succeeded,
		}
		if err := learner.RecordCompletion(ctx, feedback); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording feedback: %v\n", err)
			os.Exit(1)
		}

		summary := rt.store.Summarize()
		fmt.Printf("Recorded feedback over %d edges; %d edges tracked, mean delay %.3f\n",
			len(path)-1, summary.EdgesTracked, summary.AverageDelay)
	},
}

func init() {
	feedbackCmd.Flags().StringSlice("path", nil, "Comma-separated junction IDs of the travelled route")
	feedbackCmd.Flags().Float64("actual", 0, "Actual delivery duration (minutes)")
	feedbackCmd.Flags().Float64("expected", 0, "Expected delivery duration (minutes)")
	feedbackCmd.Flags().Bool("succeeded", true, "Whether the delivery succeeded")
	feedbackCmd.MarkFlagRequired("path")
	feedbackCmd.MarkFlagRequired("actual")
	feedbackCmd.MarkFlagRequired("expected")

	rootCmd.AddCommand(feedbackCmd)
}
