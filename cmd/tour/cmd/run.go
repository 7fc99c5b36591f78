package cmd

import (
	"context"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/lessons"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run [lesson...]",
		Short: "Run lessons",
		Long: `Run the named lessons in order. Without arguments the lessons listed
in the config are run, or every lesson when the config names none.
Unknown names are rejected before anything runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			catalog := lessons.Catalog()
			names := args
			if len(names) == 0 {
				names = cfg.Lessons
			}
			if len(names) == 0 {
				names = catalog.Names()
			}

			selected, err := catalog.Resolve(names...)
			if err != nil {
				return err
			}

			logger := demokit.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
			runner, err := demokit.NewRunner(
				demokit.WithOutput(cmd.OutOrStdout()),
				demokit.WithLogger(logger),
				demokit.WithConfig(cfg),
				demokit.WithObserver(demokit.NewFunctionalObserver("tour", func(_ context.Context, event cloudevents.Event) error {
					if event.Type() != demokit.EventTypeLessonCompleted {
						return nil
					}
					var data demokit.LessonEventData
					if err := event.DataAs(&data); err != nil {
						return err
					}
					logger.Info("Lesson completed", "lesson", data.Lesson, "steps", data.Steps, "failed", data.Failed, "id", event.ID())
					return nil
				})),
			)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runner.RunAll(ctx, selected...)
		},
	}
}
