package interpreter

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"toyrobot/internal/robot"
)

// Context bundles the robot with its presentation surface

type Context struct {
	Robot *robot.Robot
	Table robot.Table
	Out   io.Writer
	Log   *logrus.Logger

	// Quiet suppresses the table view, Delay paces script playback.
	Quiet bool
	Delay time.Duration
}

func NewContext() *Context {
	table := robot.NewTable()
	log := logrus.New()
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &Context{
		Robot: robot.New(table),
		Table: table,
		Out:   os.Stdout,
		Log:   log,
	}
}
