package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"uast/internal/diag"
	"uast/internal/source"
	"uast/internal/testkit"
)

var validateSourceDir string

func init() {
	validateCmd.Flags().StringVar(&validateSourceDir, "source-dir", "", "directory holding the original sources, for content-bounds checks")
}

var validateCmd = &cobra.Command{
	Use:   "validate [flags] file...",
	Short: "Check tree invariants of serialized trees",
	Long: `Validate decodes each tree and checks its structural invariants:
token provenance, span bounds, and catch-all labeling. The exit status
is non-zero when any tree fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	maxDiags, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")

	dc := openCache()
	var idx *sourceIndex
	if validateSourceDir != "" {
		idx = newSourceIndex()
	}
	bag := diag.NewBag(maxDiags)
	var mu sync.Mutex
	var failed int

	var g errgroup.Group
	g.SetLimit(jobs)
	for _, path := range args {
		g.Go(func() error {
			p, err := loadTree(path, dc)
			if err != nil {
				return err
			}
			var sf *source.File
			if idx != nil {
				sf = idx.lookup(path, uint32(p.File))
			}

			local := diag.NewBag(maxDiags)
			var r diag.Reporter = diag.BagReporter{Bag: local}
			if quiet {
				r = diag.NopReporter{}
			}
			n := testkit.CheckTree(p, sf, r)

			mu.Lock()
			defer mu.Unlock()
			bag.Merge(local)
			if n > 0 {
				failed++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bag.Sort()
	if !quiet {
		var lines diag.LineSource
		if idx != nil {
			lines = idx
		}
		diag.RenderBag(os.Stderr, bag, lines)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d trees failed validation", failed, len(args))
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%d trees ok\n", len(args))
	}
	return nil
}

// sourceIndex loads the original source next to each tree and serves it
// back to the renderer under the file id the tree itself claims. The
// first tree to claim an id owns it.
type sourceIndex struct {
	mu    sync.Mutex
	fs    *source.FileSet
	files map[uint32]*source.File
}

func newSourceIndex() *sourceIndex {
	return &sourceIndex{
		fs:    source.NewFileSet(),
		files: make(map[uint32]*source.File),
	}
}

// lookup finds the source for treePath, loading it on first use, and
// registers it under id. Missing sources yield nil; bounds checks are
// skipped for those trees.
func (idx *sourceIndex) lookup(treePath string, id uint32) *source.File {
	path := sourcePathFor(treePath)
	idx.mu.Lock()
	defer idx.mu.Unlock()

	sf, ok := idx.fs.GetByPath(path)
	if !ok {
		fid, err := idx.fs.Load(path)
		if err != nil {
			return nil
		}
		sf = idx.fs.Get(fid)
	}
	if _, taken := idx.files[id]; !taken {
		idx.files[id] = sf
	}
	return sf
}

func (idx *sourceIndex) Path(file uint32) (string, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if sf, ok := idx.files[file]; ok {
		return sf.Path, true
	}
	return "", false
}

func (idx *sourceIndex) Line(file uint32, line uint32) (string, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	sf, ok := idx.files[file]
	if !ok {
		return "", false
	}
	text := sf.GetLine(line)
	if text == "" {
		return "", false
	}
	return text, true
}

// sourcePathFor maps a tree file to its source: the same base name with
// the encoding extension stripped, under --source-dir.
func sourcePathFor(treePath string) string {
	base := filepath.Base(treePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(validateSourceDir, base)
}
