package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/donut/internal/chime"
	"github.com/akyairhashvil/donut/internal/config"
	"github.com/akyairhashvil/donut/internal/countdown"
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/tui"
	"github.com/akyairhashvil/donut/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

type options struct {
	configPath  string
	hours       int
	minutes     int
	seconds     int
	theme       string
	headless    bool
	export      string
	size        int
	elapsed     float64
	showVersion bool
}

func main() {
	opts, overrides, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "donut: %v\n", err)
		os.Exit(2)
	}
	if opts.showVersion {
		fmt.Printf("donut %s\n", versionLabel())
		return
	}

	settings, warnings, err := config.Load(opts.configPath, overrides)
	util.MustSucceed("load config", err)
	util.LogWarnings("config", warnings)

	if err := run(opts, settings); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags reads the command line. Only flags that were set become config overrides,
// so unset flags never mask the config file or the environment.
func parseFlags(fs *flag.FlagSet, args []string) (options, map[string]any, error) {
	var opts options
	fs.StringVar(&opts.configPath, "config", "", "config file (default is $HOME/.config/donut/config.yml)")
	fs.IntVar(&opts.hours, "hours", config.DefaultHours, "countdown hours (0-59)")
	fs.IntVar(&opts.minutes, "minutes", config.DefaultMinutes, "countdown minutes (0-59)")
	fs.IntVar(&opts.seconds, "seconds", config.DefaultSeconds, "countdown seconds (0-59)")
	fs.StringVar(&opts.theme, "theme", "", "theme name or index")
	fs.BoolVar(&opts.headless, "headless", false, "print the countdown instead of drawing it")
	fs.StringVar(&opts.export, "export", "", "write one frame to file.svg or file.pdf and exit")
	fs.IntVar(&opts.size, "size", config.DefaultExportSize, "export size in pixels")
	fs.Float64Var(&opts.elapsed, "elapsed", 0, "elapsed fraction (0-1) of the exported frame")
	fs.BoolVar(&opts.showVersion, "version", false, "print version information")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}

	overrides := map[string]any{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hours":
			overrides[config.KeyHours] = opts.hours
		case "minutes":
			overrides[config.KeyMinutes] = opts.minutes
		case "seconds":
			overrides[config.KeySeconds] = opts.seconds
		case "theme":
			overrides[config.KeyTheme] = opts.theme
		}
	})
	// A bad value typed on the command line is an error, not a silent fallback.
	d := models.Duration{Hours: opts.hours, Minutes: opts.minutes, Seconds: opts.seconds}
	if err := config.ValidateDuration(d); err != nil {
		return opts, nil, err
	}
	return opts, overrides, nil
}

func run(opts options, s config.Settings) error {
	if opts.export != "" {
		return runExport(opts, s)
	}
	if opts.headless || !term.IsTerminal(int(os.Stdout.Fd())) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		player, err := newPlayer(s, os.Stdout)
		if err != nil {
			return err
		}
		return runHeadless(ctx, s, player, os.Stdout, config.TickInterval)
	}
	return runTUI(s)
}

func runTUI(s config.Settings) error {
	if os.Getenv(config.DebugEnv) != "" {
		path, err := util.LogPath(config.AppName, config.LogFileName)
		if err != nil {
			return err
		}
		f, err := tea.LogToFile(path, config.AppName)
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		// anything written to the terminal would tear the alt screen
		log.SetOutput(io.Discard)
	}

	player, err := newPlayer(s, os.Stderr)
	if err != nil {
		return err
	}
	p := tea.NewProgram(tui.New(tui.Options{Settings: s, Player: player}), tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if m, ok := final.(tui.Model); ok {
		m.Timer().Close()
	}
	return err
}

// newPlayer builds the completion signal; bell is only rung when enabled in the settings.
func newPlayer(s config.Settings, bell io.Writer) (countdown.Player, error) {
	if !s.Bell {
		bell = nil
	}
	return chime.New(bell, s.ChimeCommand)
}
