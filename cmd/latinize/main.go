// Command latinize converts text in any script to the Latin alphabet.
// It romanizes arguments, stdin or whole files, lists the scripts the
// rule data covers, and can serve the romanizer over HTTP.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/Latinize/core/cache"
	"github.com/FocuswithJustin/Latinize/core/romanize"
	"github.com/FocuswithJustin/Latinize/internal/api"
	"github.com/FocuswithJustin/Latinize/internal/logging"
)

const version = "0.4.0"

// CLI defines the command-line interface for latinize.
var CLI struct {
	// Global flags
	LogLevel  string   `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat string   `name:"log-format" default:"text" enum:"text,json" help:"Log output format"`
	Pack      []string `name:"pack" short:"p" help:"Additional rule pack files (plain or .xz)" type:"existingfile"`

	Text    TextCmd    `cmd:"" default:"withargs" help:"Romanize text from arguments or stdin"`
	File    FileCmd    `cmd:"" help:"Romanize a file line by line"`
	Scripts ScriptsCmd `cmd:"" help:"List scripts covered by the rule data"`
	Rules   RulesCmd   `cmd:"" help:"Show rule data version, checksum and rule count"`
	Serve   ServeCmd   `cmd:"" help:"Start the REST/WebSocket API server"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func initLogging() {
	level := logging.LevelWarn
	switch CLI.LogLevel {
	case "debug":
		level = logging.LevelDebug
	case "info":
		level = logging.LevelInfo
	case "error":
		level = logging.LevelError
	}
	format := logging.FormatText
	if CLI.LogFormat == "json" {
		format = logging.FormatJSON
	}
	logging.InitLogger(level, format)
}

func buildRomanizer() (*romanize.Romanizer, error) {
	return romanize.NewWithOptions(romanize.Options{Packs: CLI.Pack})
}

// TextCmd romanizes its arguments, or stdin when none are given.
type TextCmd struct {
	Lcode   string   `name:"lcode" short:"l" help:"ISO 639-3 language code"`
	Format  string   `name:"format" short:"f" default:"str" enum:"str,edges,alts,lattice" help:"Output format (alts and lattice are edges aliases)"`
	Escaped bool     `name:"escaped" help:"Decode \\uXXXX escapes before romanizing"`
	Words   []string `arg:"" optional:"" help:"Text to romanize (reads stdin when empty)"`
}

func (c *TextCmd) Run() error {
	rom, err := buildRomanizer()
	if err != nil {
		return err
	}

	text := strings.Join(c.Words, " ")
	if len(c.Words) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = strings.TrimSuffix(string(data), "\n")
	}
	if c.Escaped {
		if text, err = romanize.DecodeEscapes(text); err != nil {
			return err
		}
	}

	format, err := romanize.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	if format == romanize.FormatEdges {
		enc := json.NewEncoder(os.Stdout)
		for _, edges := range rom.RomanizeEdges(text, c.Lcode) {
			if err := enc.Encode(edges); err != nil {
				return err
			}
		}
		return nil
	}
	fmt.Println(rom.Romanize(text, c.Lcode))
	return nil
}

// FileCmd romanizes a file line by line, optionally through a persistent
// cache so repeated runs over a corpus skip known lines.
type FileCmd struct {
	Path   string `arg:"" help:"Input file, plain text or .xz" type:"existingfile"`
	Output string `name:"output" short:"o" help:"Output file (default stdout)"`
	Lcode  string `name:"lcode" short:"l" help:"ISO 639-3 language code"`
	Cache  string `name:"cache" help:"Romanization cache database path"`
}

func (c *FileCmd) Run() error {
	rom, err := buildRomanizer()
	if err != nil {
		return err
	}

	in, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	var reader io.Reader = in
	if strings.HasSuffix(c.Path, ".xz") {
		if reader, err = xz.NewReader(bufio.NewReader(in)); err != nil {
			return fmt.Errorf("opening xz stream: %w", err)
		}
	}

	out := io.Writer(os.Stdout)
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	var db *cache.Store
	if c.Cache != "" {
		if db, err = cache.Open(c.Cache); err != nil {
			return err
		}
		defer db.Close()
	}

	w := bufio.NewWriter(out)
	defer w.Flush()
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		romanized := ""
		if db != nil {
			key := cache.Key(line, c.Lcode, rom.Checksum())
			if hit, ok, err := db.Get(key); err == nil && ok {
				romanized = hit
			} else {
				romanized = rom.Romanize(line, c.Lcode)
				if err := db.Put(key, c.Lcode, line, romanized); err != nil {
					return err
				}
			}
		} else {
			romanized = rom.Romanize(line, c.Lcode)
		}
		if _, err := fmt.Fprintln(w, romanized); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ScriptsCmd lists the scripts the rule data covers.
type ScriptsCmd struct{}

func (c *ScriptsCmd) Run() error {
	rom, err := buildRomanizer()
	if err != nil {
		return err
	}
	for _, sc := range rom.Scripts() {
		fmt.Println(sc)
	}
	return nil
}

// RulesCmd shows rule data metadata.
type RulesCmd struct{}

func (c *RulesCmd) Run() error {
	rom, err := buildRomanizer()
	if err != nil {
		return err
	}
	fmt.Printf("data version: %s\n", rom.Version())
	fmt.Printf("checksum:     %s\n", rom.Checksum())
	fmt.Printf("rules:        %d\n", rom.RuleCount())
	return nil
}

// ServeCmd starts the REST/WebSocket API server.
type ServeCmd struct {
	Port  int    `name:"port" default:"8737" help:"Listen port"`
	Cache string `name:"cache" help:"Romanization cache database path"`
}

func (c *ServeCmd) Run() error {
	rom, err := buildRomanizer()
	if err != nil {
		return err
	}
	cfg := api.ConfigFromEnv()
	cfg.Port = c.Port
	if c.Cache != "" {
		cfg.CachePath = c.Cache
	}
	srv, err := api.NewServer(cfg, rom)
	if err != nil {
		return err
	}
	defer srv.Close()
	return srv.Start()
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("latinize %s\n", version)
	return nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("latinize"),
		kong.Description("Universal romanization - any script to the Latin alphabet"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	initLogging()
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
