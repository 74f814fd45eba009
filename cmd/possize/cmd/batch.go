package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/possize/batch"
	"github.com/rustyeddy/possize/pkg/id"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Size every trade setup in a CSV file",
	Long: `Read trade setups from CSV and write one result row per setup.

The input needs a header with account_size, risk_percent, entry_price and
stop_loss columns, plus an optional label column. Numbers follow the
configured display locale. Invalid rows are kept in the output with their
error messages.

Examples:
  possize batch -f setups.csv > sized.csv
  possize batch -f setups.csv --xlsx sized.xlsx`,
	PreRunE: setup,
	RunE:    runBatch,
}

var (
	batchInput string
	batchXLSX  string
)

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchInput, "file", "f", "", "input CSV file (required)")
	batchCmd.Flags().StringVar(&batchXLSX, "xlsx", "", "also write results to this Excel workbook")
	batchCmd.MarkFlagRequired("file")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in, err := os.Open(batchInput)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	p, err := cfg.Parser()
	if err != nil {
		return err
	}
	setups, err := batch.ReadSetups(in, p)
	if err != nil {
		return err
	}

	rep := batch.Run(setups)
	started, err := id.Time(rep.ID)
	if err != nil {
		return err
	}
	log.Info("batch sized",
		zap.String("run_id", rep.ID),
		zap.Time("started", started),
		zap.String("input", batchInput),
		zap.Int("rows", len(rep.Rows)),
		zap.Int("valid", rep.Valid()),
	)
	for _, r := range rep.Rows {
		if !r.OK() {
			log.Warn("row rejected",
				zap.String("run_id", rep.ID),
				zap.Int("line", r.Line),
				zap.String("label", r.Label),
				zap.Strings("violations", r.Violations.Messages()),
			)
		}
	}

	if err := batch.WriteCSV(cmd.OutOrStdout(), rep); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	if batchXLSX != "" {
		if err := batch.WriteXLSX(batchXLSX, rep); err != nil {
			return fmt.Errorf("write xlsx: %w", err)
		}
		log.Info("workbook written", zap.String("run_id", rep.ID), zap.String("path", batchXLSX))
	}
	return nil
}
