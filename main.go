package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"cinetix/service"
	"cinetix/session"
	"cinetix/store"
	"cinetix/tui"
)

const appName = "cinetix"

var (
	version = "dev"
	commit  = "none"
)

func printUsage(out *os.File) {
	fmt.Fprintf(out, "Usage: %s [--version]\n", appName)
	fmt.Fprintln(out, "\nEnvironment:")
	fmt.Fprintln(out, "  CINETIX_API_URL   override the backend base URL")
}

func printVersion() {
	fmt.Printf("%s %s", appName, version)
	if commit != "none" && commit != "" {
		fmt.Printf(" (%s)", commit)
	}
	fmt.Println()
}

func handleArgs(args []string) bool {
	if len(args) == 0 {
		return true
	}

	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			printUsage(os.Stdout)
			return false
		case "-v", "--version", "version":
			printVersion()
			return false
		default:
			fmt.Fprintf(os.Stderr, "Unknown argument: %s\n", arg)
			printUsage(os.Stderr)
			os.Exit(2)
		}
	}

	return false
}

// newLogger writes structured logs to a file under the user cache dir.
// Stdout belongs to the TUI, so logging falls back to discard on any error.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)

	dir, err := os.UserCacheDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	path := filepath.Join(dir, appName, appName+".log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return log
	}
	log.SetOutput(file)
	return log
}

// resolveBaseURL picks the backend URL: environment first, then the
// persisted settings, then the built-in default.
func resolveBaseURL() string {
	if url := os.Getenv("CINETIX_API_URL"); url != "" {
		return url
	}
	if url, err := store.LoadBaseURL(); err == nil && url != "" {
		return url
	}
	return service.DefaultBaseURL
}

func main() {
	if !handleArgs(os.Args[1:]) {
		return
	}

	_ = godotenv.Load()

	log := newLogger()
	client := service.NewClient(nil, log)
	client.SetBaseURL(resolveBaseURL())
	sess := session.New(client, nil)

	if _, err := tea.NewProgram(tui.New(client, sess), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
