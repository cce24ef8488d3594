package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/ArnoutVos/Firedrive/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sweepCmd())
}

func sweepCmd() *cobra.Command {
	var watch bool

	command := &cobra.Command{
		Use:     "sweep",
		Short:   "remove storage folders no document references",
		Example: "firedrive sweep [--watch]",
		Run: func(cmd *cobra.Command, args []string) {
			rt := newRuntime()

			sweeper := jobs.NewOrphanSweeper(rt.store, rt.assets, rt.cfg.StorageRoot)

			if !watch {
				if err := sweeper.Sweep(context.Background()); err != nil {
					logrus.Error(err)
				}
				return
			}

			executor := jobs.NewTaskExecutor([]jobs.Job{sweeper})
			if err := executor.Start(); err != nil {
				logrus.Error(err)
				return
			}
			defer executor.Stop()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt)
			<-stop
		},
	}

	command.Flags().BoolVarP(&watch, "watch", "w", false, "keep running on the job schedule")

	return command
}
