package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ddgscan/config"
	"ddgscan/internal/ddg"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run the full FoldX mutation workflow against a PDB file",
	Long: `Run the full FoldX mutation workflow against a PDB file.

"ddgscan scan" repairs the input structure once, generates every
single-residue substitution at the requested sites (19 per site), has
FoldX build one mutant model per substitution, scores the stability of
the repaired wild type and of every mutant, and writes a report of each
mutation's DDG against the wild type, grouped by residue position.

Everything happens in the PDB file's directory and FoldX must be on the
PATH (or pointed at with --foldx). Rerunning over a directory with
leftovers from an earlier scan is not safe; clear it first.`,
	Run: runScan,
}

func init() {
	RootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringP("pdb", "p", "", "path to the input PDB file")
	scanCmd.Flags().StringArrayP("residues", "r", nil, "residue to mutate as chain:position:wildtype, eg A:468:R (repeatable)")
	scanCmd.Flags().String("foldx", "foldx", "name of or path to the foldx executable")
	scanCmd.Flags().Int("max-retries", 3, "stability attempts per structure before giving up on it")
	scanCmd.Flags().Int("retry-delay", 5, "seconds to wait between stability attempts")
	scanCmd.Flags().StringP("out", "o", "ddgcalcoutput.txt", "name of the report file")

	scanCmd.MarkFlagRequired("pdb")
	scanCmd.MarkFlagRequired("residues")

	viper.BindPFlag("pdb", scanCmd.Flags().Lookup("pdb"))
	viper.BindPFlag("residues", scanCmd.Flags().Lookup("residues"))
	viper.BindPFlag("foldx", scanCmd.Flags().Lookup("foldx"))
	viper.BindPFlag("max-retries", scanCmd.Flags().Lookup("max-retries"))
	viper.BindPFlag("retry-delay", scanCmd.Flags().Lookup("retry-delay"))
	viper.BindPFlag("out", scanCmd.Flags().Lookup("out"))
}

// runScan validates the input arguments and drives the pipeline.
func runScan(cmd *cobra.Command, args []string) {
	conf := config.New()

	if filepath.Ext(conf.PDB) != ".pdb" {
		log.Fatalf("%s is not a .pdb file", conf.PDB)
	}
	if _, err := os.Stat(conf.PDB); err != nil {
		log.Fatalf("cannot read PDB file %s: %v", conf.PDB, err)
	}

	var targets []ddg.ResidueTarget
	for _, spec := range conf.Residues {
		t, err := ddg.ParseResidueTarget(spec)
		if err != nil {
			log.Fatalf("%v", err)
		}
		targets = append(targets, t)
	}
	if len(targets) == 0 {
		log.Fatal("no residues to mutate")
	}

	dir := filepath.Dir(conf.PDB)
	base := strings.TrimSuffix(filepath.Base(conf.PDB), ".pdb")

	store := ddg.NewStore(dir)
	foldx := ddg.NewFoldX(conf.FoldX, store)
	pipeline := ddg.NewPipeline(
		store,
		foldx,
		base,
		targets,
		conf.MaxRetries,
		time.Duration(conf.RetryDelay)*time.Second,
		conf.Out,
	)

	if err := pipeline.Run(); err != nil {
		log.Fatalf("%v", err)
	}
}
