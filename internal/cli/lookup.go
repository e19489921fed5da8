package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cleardef/pkg/config"
	"github.com/matzehuels/cleardef/pkg/coordinate"
	"github.com/matzehuels/cleardef/pkg/definitions"
)

// lookupOpts holds the command-line flags for the lookup command.
type lookupOpts struct {
	file      string // read coordinates from a file, one per line
	root      string // override the configured service root
	chunkSize int    // override the configured chunk size
	parallel  int    // override the configured parallelism
	asJSON    bool   // emit raw JSON instead of the rendered summary
	config    string // explicit config file path
}

// newLookupCmd creates the lookup command.
func newLookupCmd() *cobra.Command {
	var opts lookupOpts

	cmd := &cobra.Command{
		Use:   "lookup [coordinate...]",
		Short: "Fetch definitions for one or more coordinates",
		Long: `Fetch component definitions from the definitions service.

Coordinates use the form shape/provider/namespace/name/version, with "-" for
an empty namespace. Lookups are chunked into bounded requests and dispatched
in parallel; components the service has not finished processing render as
"pending" rather than failing.

Examples:
  cleardef lookup crate/cratesio/-/syn/1.0.14
  cleardef lookup git/github/myorg/myrepo/abcdef/pr/42
  cleardef lookup -f coordinates.txt --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read coordinates from a file, one per line")
	cmd.Flags().StringVar(&opts.root, "root", "", "service root URI (overrides config)")
	cmd.Flags().IntVar(&opts.chunkSize, "chunk-size", 0, "coordinates per request (overrides config)")
	cmd.Flags().IntVar(&opts.parallel, "parallel", 0, "parallel requests (overrides config)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit definitions as JSON")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file path")

	return cmd
}

func runLookup(cmd *cobra.Command, args []string, opts lookupOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	coords, err := gatherCoordinates(args, opts.file)
	if err != nil {
		return err
	}
	if len(coords) == 0 {
		return fmt.Errorf("no coordinates given (pass them as arguments or via --file)")
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	if opts.root != "" {
		cfg.Root = opts.root
	}
	if opts.chunkSize > 0 {
		cfg.ChunkSize = opts.chunkSize
	}
	if opts.parallel > 0 {
		cfg.Parallel = opts.parallel
	}

	client := definitions.NewClient(definitions.Options{
		HTTPClient: &http.Client{Timeout: cfg.Timeout()},
		Root:       cfg.Root,
		Parallel:   cfg.Parallel,
		Logger:     logger,
	})

	logger.Debug("looking up definitions", "coordinates", len(coords), "root", cfg.Root)
	prog := newProgress(logger)

	defs, err := client.Definitions(ctx, cfg.ChunkSize, slices.Values(coords))
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Fetched %d definitions", len(defs)))

	if opts.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}

	out := cmd.OutOrStdout()
	for _, def := range defs {
		fmt.Fprintln(out, renderDefinition(def))
	}
	return nil
}

// gatherCoordinates parses coordinates from args and, when set, from a file
// of one coordinate per line (blank lines and #-comments skipped).
func gatherCoordinates(args []string, file string) ([]coordinate.Coordinate, error) {
	texts := slices.Clone(args)

	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			texts = append(texts, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}

	coords := make([]coordinate.Coordinate, 0, len(texts))
	for _, text := range texts {
		coord, err := coordinate.Parse(text)
		if err != nil {
			return nil, err
		}
		coords = append(coords, coord)
	}
	return coords, nil
}
