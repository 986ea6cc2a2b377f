package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/db47h/pcb"
	"github.com/db47h/pcb/chiplib"
	"github.com/db47h/pcb/pcbdl"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	catalogPath string
	jsonOutput  bool
	jobs        int
)

var checkCmd = &cobra.Command{
	Use:   "check <design-file>...",
	Short: "Validate design files against a chip catalog",
	Long: `Parse each design file, instantiate its chips from the catalog and check
all connections. Designs are checked independently and concurrently; every
invalid design is reported.

Examples:
  pcbcheck check --catalog chips.yaml board.pcb
  pcbcheck check -c chips.yaml -j 4 --json a.pcb b.pcb`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&catalogPath, "catalog", "c", "", "chip catalog (YAML)")
	checkCmd.Flags().BoolVar(&jsonOutput, "json", false, "print boards as JSON")
	checkCmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of designs checked concurrently")
	_ = checkCmd.MarkFlagRequired("catalog")
}

// result is the outcome of checking one design file.
type result struct {
	file  string
	board *pcb.Board
	err   error
}

func runCheck(cmd *cobra.Command, args []string) error {
	cat, err := chiplib.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}
	results := checkFiles(cat, args, jobs, logger)
	return report(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, jsonOutput)
}

// checkFiles checks all files, at most jobs at a time. Results are returned
// in the order of files.
func checkFiles(cat *chiplib.Catalog, files []string, jobs int, log *zap.Logger) []result {
	results := make([]result, len(files))
	var g errgroup.Group
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			b, err := checkFile(cat, f, log)
			results[i] = result{file: f, board: b, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func checkFile(cat *chiplib.Catalog, file string, log *zap.Logger) (*pcb.Board, error) {
	d, err := pcbdl.ParseFile(file)
	if err != nil {
		return nil, err
	}
	b := pcb.NewBuilder(d, pcb.WithLogger(log.With(zap.String("file", file))))
	if err := cat.AddTo(b); err != nil {
		return nil, err
	}
	return b.Build()
}

// report prints boards to w and errors to ew.
func report(w, ew io.Writer, results []result, asJSON bool) error {
	failed := 0
	var boards []*pcb.Board
	for _, r := range results {
		if r.err != nil {
			failed++
			fmt.Fprintf(ew, "%s: %v\n", r.file, r.err)
			continue
		}
		if asJSON {
			boards = append(boards, r.board)
			continue
		}
		fmt.Fprintf(w, "%s: %s ok\n", r.file, r.board.Name())
		for _, c := range r.board.Connections() {
			fmt.Fprintf(w, "  %s\n", c)
		}
		for _, p := range r.board.Exposed() {
			fmt.Fprintf(w, "  expose %s (%s)\n", p.ChipPin, p.PinMetadata)
		}
	}
	if asJSON && len(boards) > 0 {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(boards); err != nil {
			return errors.Wrap(err, "failed to encode boards")
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d designs invalid", failed, len(results))
	}
	return nil
}
