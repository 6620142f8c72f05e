package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"fwhr-bot/internal/domain/entity"
)

func main() {
	app := cli.NewApp()
	app.Name = "fwhr"
	app.Usage = "Считает FWHR (ширина лица / высота) по фото или готовым точкам"
	app.Version = "1.0.0"
	app.Flags = globalFlags
	app.Commands = []cli.Command{
		LandmarksCommand,
		ImageCommand,
		BatchCommand,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

var globalFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "method, m",
		Usage:  "side used for the height: left, right or average",
		Value:  string(entity.MethodAverage),
		EnvVar: "FWHR_METHOD",
	},
	cli.StringFlag{
		Name:   "top, t",
		Usage:  "upper line: eyebrow or eyelid",
		Value:  string(entity.TopEyebrow),
		EnvVar: "FWHR_TOP",
	},
	cli.BoolFlag{
		Name:  "mirror",
		Usage: "mirror landmarks before measuring (front camera selfies)",
	},
	cli.StringFlag{
		Name:   "log-level",
		Usage:  "trace, debug, info, warn or error",
		Value:  "warn",
		EnvVar: "LOG_LEVEL",
	},
}
