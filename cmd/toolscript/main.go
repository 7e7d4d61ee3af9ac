// Command toolscript runs JavaScript snippets against a capability host.
//
// Snippets call host tools through generated async bindings:
//
//	toolscript -code 'return await tools.uppercase({ text: "hi" });'
//
// With no config file the built-in demo toolset is used. Point the CLI at a
// remote host by setting host.kind = "remote" in the config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/jonwraymond/toolscript/code"
	"github.com/jonwraymond/toolscript/exec"
	"github.com/jonwraymond/toolscript/host"
	"github.com/jonwraymond/toolscript/host/remote"
)

// errRunFailed marks a snippet failure already reported on stdout.
var errRunFailed = errors.New("run failed")

func main() {
	err := run()
	switch {
	case err == nil:
	case errors.Is(err, errRunFailed):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "path to TOML config file")
		codeFlag   = flag.String("code", "", "snippet to execute")
		fileFlag   = flag.String("file", "", "read the snippet from a file ('-' for stdin)")
		list       = flag.Bool("list", false, "list available capabilities and exit")
		timeoutMS  = flag.Int64("timeout-ms", 0, "execution timeout in milliseconds")
		maxCalls   = flag.Int("max-calls", 0, "maximum capability calls per run")
		dir        = flag.String("dir", "", "working directory reported to the host")
		verbose    = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Logging.Level, *verbose)

	client, err := buildClient(cfg)
	if err != nil {
		return err
	}

	timeout := time.Duration(cfg.Run.TimeoutMS) * time.Millisecond
	if *timeoutMS > 0 {
		timeout = time.Duration(*timeoutMS) * time.Millisecond
	}
	calls := cfg.Run.MaxToolCalls
	if *maxCalls > 0 {
		calls = *maxCalls
	}

	runner, err := exec.New(exec.Options{
		Client:       client,
		Logger:       execLogger{log: logger},
		Timeout:      timeout,
		MaxToolCalls: calls,
		Agent:        cfg.Run.Agent,
		Directory:    cfg.Run.Directory,
	})
	if err != nil {
		return fmt.Errorf("creating executor: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if *list {
		listing, err := runner.Capabilities(ctx)
		if err != nil {
			return fmt.Errorf("listing capabilities: %w", err)
		}
		fmt.Print(listing)
		return nil
	}

	snippet, err := readSnippet(*codeFlag, *fileFlag)
	if err != nil {
		return err
	}

	logger.Debug().Str("host", cfg.Host.Kind).Msg("executing snippet")

	resp, err := runner.Execute(ctx, exec.Params{
		Code:      snippet,
		Directory: *dir,
	})
	if err != nil {
		return fmt.Errorf("executing snippet: %w", err)
	}

	printStatus(resp)
	fmt.Print(resp.Report)

	if !resp.Succeeded() {
		return errRunFailed
	}
	return nil
}

// printStatus writes a one-line run summary to stderr so stdout carries only
// the report.
func printStatus(resp *exec.Response) {
	mark := color.New(color.FgGreen)
	symbol := "✓"
	if !resp.Succeeded() {
		mark = color.New(color.FgRed)
		symbol = "✗"
	}
	mark.Fprintf(os.Stderr, "%s %s/%s", symbol, resp.Model.ProviderID, resp.Model.ModelID)
	if resp.Result != nil {
		fmt.Fprintf(os.Stderr, " (%dms)", resp.Result.DurationMs)
	}
	fmt.Fprintln(os.Stderr)
}

// readSnippet resolves the snippet source from the -code and -file flags.
func readSnippet(codeFlag, fileFlag string) (string, error) {
	switch {
	case codeFlag != "" && fileFlag != "":
		return "", errors.New("use either -code or -file, not both")
	case codeFlag != "":
		return codeFlag, nil
	case fileFlag == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	case fileFlag != "":
		data, err := os.ReadFile(fileFlag)
		if err != nil {
			return "", fmt.Errorf("reading snippet file: %w", err)
		}
		return string(data), nil
	default:
		return "", errors.New("no code to run; use -code, -file, or -list")
	}
}

// loadConfig loads the config file, falling back to built-in defaults when no
// path was given and the default location does not exist.
func loadConfig(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	path = defaultConfigPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return defaultConfig(), nil
	}
	return Load(path)
}

// defaultConfigPath returns the config file location.
// Priority: TOOLSCRIPT_CONFIG env var > XDG_CONFIG_HOME/toolscript/config.toml > ~/.config/toolscript/config.toml
func defaultConfigPath() string {
	if envPath := os.Getenv("TOOLSCRIPT_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "toolscript.toml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "toolscript", "config.toml")
}

func buildClient(cfg *Config) (host.Client, error) {
	switch cfg.Host.Kind {
	case "local":
		return newDemoClient(), nil
	case "remote":
		var opts []remote.Option
		if cfg.Host.Token != "" {
			opts = append(opts, remote.WithToken(cfg.Host.Token))
		}
		return remote.New(cfg.Host.BaseURL, opts...), nil
	default:
		return nil, fmt.Errorf("unknown host kind %q", cfg.Host.Kind)
	}
}

func setupLogger(level string, verbose bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// execLogger adapts zerolog to the execution logger interface.
type execLogger struct {
	log zerolog.Logger
}

func (l execLogger) Logf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

var _ code.Logger = execLogger{}
