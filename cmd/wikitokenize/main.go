// Command wikitokenize is a thin CLI wrapper over wikitext.Tokenize: it
// reads wikicode from a file or stdin and prints the resulting token
// sequence, one token per line.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bt2901/wikitext"
)

var (
	asJSON    bool
	showStats bool
	log       = logrus.New()
)

// RootCmd is the main command for the 'wikitokenize' binary.
var RootCmd = &cobra.Command{
	Use:   "wikitokenize [file]",
	Short: "`wikitokenize` tokenizes MediaWiki-flavored wikicode",
	Long:  "`wikitokenize` tokenizes MediaWiki-flavored wikicode and prints the resulting token sequence",
	RunE:  run,
}

func init() {
	RootCmd.Flags().BoolVar(&asJSON, "json", false, "print tokens as a JSON array instead of one-per-line")
	RootCmd.Flags().BoolVar(&showStats, "stats", false, "print whether the resource caps (depth, cycles) were hit")
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
}

func run(cmd *cobra.Command, args []string) error {
	file := "stdin"
	var src io.Reader = os.Stdin
	if len(args) > 0 {
		file = args[0]
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening %s: %w", file, err)
		}
		defer f.Close()
		src = f
	}

	text, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	toks, stats := wikitext.TokenizeWithStats(string(text))
	log.WithFields(logrus.Fields{
		"file":   file,
		"tokens": len(toks),
	}).Debug("tokenized input")

	if showStats {
		log.WithFields(logrus.Fields{
			"file":       file,
			"depth_hits": stats.MaxDepthHit,
			"cycle_hits": stats.MaxCyclesHit,
		}).Info("resource caps")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	}

	for _, tok := range toks {
		fmt.Fprintf(out, "%#v\n", tok)
	}
	return nil
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		log.WithError(err).Error("wikitokenize failed")
		os.Exit(1)
	}
}
