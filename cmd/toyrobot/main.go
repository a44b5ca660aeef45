package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"toyrobot/internal/interpreter"
)

func main() {
	// .env file is optional, flags below override it
	godotenv.Load()

	var delayMs int
	var quiet bool
	var logFile string
	flag.IntVar(&delayMs, "delay", envInt("TOYROBOT_DELAY", 0), "delay between rendered script steps, ms")
	flag.BoolVar(&quiet, "quiet", envBool("TOYROBOT_QUIET"), "suppress the table view")
	flag.StringVar(&logFile, "log", os.Getenv("TOYROBOT_LOG"), "also write the log to this file")
	flag.Parse()

	ctx := interpreter.NewContext()
	ctx.Quiet = quiet

	if delayMs < 0 {
		fmt.Println("delay must be non-negative")
		return
	}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			ctx.Log.Fatalf("could not open log file %s: %v", logFile, err)
		}
		defer f.Close()
		ctx.Log.SetOutput(io.MultiWriter(os.Stderr, f))
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		runInteractive(ctx)
	case 1:
		ctx.Delay = time.Duration(delayMs) * time.Millisecond
		runScript(ctx, args[0])
	default:
		ctx.Log.Fatalf("usage: %s [flags] [script file]", os.Args[0])
	}
}

func runScript(ctx *interpreter.Context, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		ctx.Log.Fatalf("could not read script file %s: %v", path, err)
	}

	script, err := interpreter.Parse(string(data))
	if err != nil {
		ctx.Log.Fatalf("error parsing %s: %v", path, err)
	}

	script.Exec(ctx)

	if pose, ok := ctx.Robot.Report(); ok {
		fmt.Printf("Robot final position: %s\n", pose)
	} else {
		fmt.Println(interpreter.NoReportMessage)
	}
}

func runInteractive(ctx *interpreter.Context) {
	ctx.Log.Info("Welcome to Toy Robot Simulator!")
	ctx.Log.Info("Place a 2D robot on the 5x5 tabletop and move it around.")
	ctx.Log.Info("The robot has to be placed on the table before it can be moved.")
	ctx.PrintHelp()
	ctx.Draw()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		cmd, err := interpreter.ParseLine(line)
		if err != nil {
			ctx.Log.Errorf("invalid command %q: %v", line, err)
			ctx.PrintHelp()
			continue
		}
		if cmd == nil {
			continue
		}
		if cmd.Exec(ctx) {
			break
		}
	}
}

func envInt(name string, fallback int) int {
	if s := os.Getenv(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

func envBool(name string) bool {
	v, err := strconv.ParseBool(os.Getenv(name))
	return err == nil && v
}
