// Package cmd implements the CLI application driving the paper-trading desk.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"paperfolio"
	"paperfolio/nse"
	"paperfolio/yahoo"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&fetchCmd{}, "market data")
	c.Register(&updateCmd{}, "portfolio")
	c.Register(&applyCmd{}, "portfolio")
	c.Register(&rebuildCmd{}, "portfolio")
	c.Register(&showCmd{}, "reports")
	c.Register(&weeklyCmd{}, "reports")
	c.Register(&adviseCmd{}, "advisory")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "paperfolio.toml", "Path to the desk configuration file")
var rootDir = flag.String("root", "", "Desk root folder, overriding the configuration")

// Config is the desk configuration, read from a TOML file next to the data.
type Config struct {
	Root      string `toml:"root"`       // folder holding Stock Files, Portfolio Files and Reviews
	PromptDir string `toml:"prompt_dir"` // folder holding the prompt templates; defaults to root
	Model     string `toml:"model"`      // advisory model name
	Vendor    string `toml:"vendor"`     // market data vendor: "nse" or "yahoo"
	Workers   int    `toml:"workers"`    // concurrent fetches
	Top       int    `toml:"top"`        // names kept per category, by volume
}

// LoadConfig reads the TOML configuration and the .env credentials. A missing
// config file yields the defaults; command-line flags win over the file.
func LoadConfig() (Config, error) {
	// API keys live in .env, never in the config file.
	godotenv.Load()

	c := Config{Root: ".", Vendor: "nse", Workers: 4, Top: 75}
	data, err := os.ReadFile(*configFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("cannot read config %q: %w", *configFile, err)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("cannot parse config %q: %w", *configFile, err)
	}
	if *rootDir != "" {
		c.Root = *rootDir
	}
	return c, nil
}

// Store returns the dated file store at the configured root.
func (c Config) Store() paperfolio.Store { return paperfolio.Store{Root: c.Root} }

// Quoter returns the configured market data vendor.
func (c Config) Quoter() (paperfolio.Quoter, error) {
	switch c.Vendor {
	case "nse", "":
		return nse.New(), nil
	case "yahoo":
		return yahoo.New(), nil
	default:
		return nil, fmt.Errorf("unknown vendor %q: use nse or yahoo", c.Vendor)
	}
}

// parseDay parses a -d flag value, defaulting to today when empty.
func parseDay(s string) (paperfolio.Date, error) {
	if s == "" {
		return paperfolio.Today(), nil
	}
	return paperfolio.ParseDate(s)
}

// printMarkdown renders markdown to the terminal with style.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Unstyled beats nothing.
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
