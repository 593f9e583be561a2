// Command bunsetsu splits Japanese text into bunsetsu phrase units and
// reports per-word analysis and text statistics.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"bunsetsu/analyze"
	"bunsetsu/config"
	"bunsetsu/ingest"
	"bunsetsu/logger"
	"bunsetsu/segment"
	"bunsetsu/stats"
	"bunsetsu/tokenize"
)

const version = "1.0.0"

// appEnv carries the wired-up collaborators into command Run methods.
type appEnv struct {
	cfg      *config.Config
	log      *slog.Logger
	analyzer *tokenize.Analyzer
	splitter segment.Splitter
}

var cli struct {
	Split   SplitCmd   `cmd:"" help:"Split text into bunsetsu phrases"`
	Analyze AnalyzeCmd `cmd:"" help:"Show per-token word information"`
	Stats   StatsCmd   `cmd:"" help:"Show text statistics"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// inputArgs is the shared input selection: positional text, a file, or
// stdin (one sentence per line for file/stdin).
type inputArgs struct {
	Text []string `arg:"" optional:"" help:"Text to process; reads stdin when omitted"`
	File string   `name:"file" short:"f" type:"existingfile" help:"Read sentences from file, one per line"`
}

func (in *inputArgs) sentences() ([]ingest.Sentence, error) {
	if len(in.Text) > 0 {
		s, err := ingest.New(strings.Join(in.Text, " "))
		if err != nil {
			return nil, err
		}
		return []ingest.Sentence{s}, nil
	}
	if in.File != "" {
		f, err := os.Open(in.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ingest.Lines(f)
	}
	return ingest.Lines(os.Stdin)
}

// SplitCmd splits each input sentence into phrases.
type SplitCmd struct {
	inputArgs
	JSON bool   `help:"Emit JSON instead of delimited phrases"`
	Sep  string `default:" / " help:"Phrase delimiter for plain output"`
}

type splitResult struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Phrases []string `json:"phrases"`
}

func (c *SplitCmd) Run(app *appEnv) error {
	sentences, err := c.sentences()
	if err != nil {
		return err
	}
	app.log.Debug("splitting sentences", "count", len(sentences))

	ctx := context.Background()
	var results []splitResult
	for r := range segment.Pipeline(ctx, app.splitter, segment.Feed(ctx, sentences)) {
		if r.Err != nil {
			return fmt.Errorf("sentence %s: %w", r.Sentence.ID, r.Err)
		}
		if c.JSON {
			results = append(results, splitResult{ID: r.Sentence.ID, Text: r.Sentence.Text, Phrases: r.Phrases})
			continue
		}
		fmt.Println(strings.Join(r.Phrases, c.Sep))
	}
	if c.JSON {
		return printJSON(results)
	}
	return nil
}

// AnalyzeCmd prints per-token word information.
type AnalyzeCmd struct {
	inputArgs
	JSON bool `help:"Emit JSON instead of a token listing"`
}

func (c *AnalyzeCmd) Run(app *appEnv) error {
	sentences, err := c.sentences()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var all [][]analyze.WordInfo
	for _, s := range sentences {
		words, err := analyze.Text(ctx, app.analyzer, s.Text)
		if err != nil {
			return fmt.Errorf("sentence %s: %w", s.ID, err)
		}
		if c.JSON {
			all = append(all, words)
			continue
		}
		for _, w := range words {
			line := w.Surface + "\t" + w.POS
			if w.POSDetail != "" {
				line += "・" + w.POSDetail
			}
			if w.BaseForm != "" && w.BaseForm != w.Surface {
				line += "\t→ " + w.BaseForm
			}
			fmt.Println(line)
		}
	}
	if c.JSON {
		return printJSON(all)
	}
	return nil
}

// StatsCmd prints text statistics as JSON.
type StatsCmd struct {
	inputArgs
}

func (c *StatsCmd) Run(app *appEnv) error {
	sentences, err := c.sentences()
	if err != nil {
		return err
	}

	ctx := context.Background()
	var texts []string
	for _, s := range sentences {
		texts = append(texts, s.Text)
	}
	st, err := stats.Collect(ctx, app.analyzer, app.splitter, strings.Join(texts, "\n"))
	if err != nil {
		return err
	}
	return printJSON(st)
}

// VersionCmd prints the tool version.
type VersionCmd struct{}

func (c *VersionCmd) Run(app *appEnv) error {
	fmt.Printf("bunsetsu %s (dictionary: %s, strategy: %s)\n",
		version, app.analyzer.Dict(), app.cfg.Splitter.Strategy)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("bunsetsu"),
		kong.Description("Japanese bunsetsu phrase splitter"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load()
	kctx.FatalIfErrorf(err)

	log := logger.New(cfg.Log)

	analyzer, err := tokenize.New(tokenize.DictKind(cfg.Tokenizer.Dictionary))
	kctx.FatalIfErrorf(err)

	splitter, err := segment.NewSplitter(cfg.Splitter.Strategy, analyzer, log)
	kctx.FatalIfErrorf(err)

	err = kctx.Run(&appEnv{cfg: cfg, log: log, analyzer: analyzer, splitter: splitter})
	kctx.FatalIfErrorf(err)
}
