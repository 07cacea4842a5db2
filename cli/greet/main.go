package main

import (
	"os"
	"time"

	crafting "github.com/shaldengeki/crafting-interpreters"
	_ "github.com/shaldengeki/crafting-interpreters/common/log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	command := &cobra.Command{
		Use:     "greet [who]",
		Short:   "Print a greeting and the local time",
		Version: crafting.Version,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			who := crafting.DefaultWho
			if len(args) > 0 {
				who = args[0]
			}
			cmd.Println(crafting.Greet(who))
			cmd.Println(crafting.FormatTime(time.Now()))
		},
	}
	command.SetOut(os.Stdout)
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
