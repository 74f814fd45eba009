package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rustyeddy/possize/form"
	"github.com/rustyeddy/possize/report"
)

var sizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Size a single trade",
	Long: `Calculate the position size for one trade.

Account size and risk % fall back to the config file and POSSIZE_*
environment variables when the flags are not given. Numbers are read
with the separators of the configured display locale, so with de-DE
"1,5" is one and a half.

Examples:
  possize size --account 10000 --risk 1 --entry 62500 --stop 60000
  possize size --entry 100 --stop 105`,
	PreRunE: setup,
	RunE:    runSize,
}

var sizeText struct {
	account string
	risk    string
	entry   string
	stop    string
}

func init() {
	rootCmd.AddCommand(sizeCmd)

	sizeCmd.Flags().StringVarP(&sizeText.account, "account", "a", "", "account size")
	sizeCmd.Flags().StringVarP(&sizeText.risk, "risk", "r", "", "risk percent of account (1 = 1%)")
	sizeCmd.Flags().StringVarP(&sizeText.entry, "entry", "e", "", "entry price (required)")
	sizeCmd.Flags().StringVarP(&sizeText.stop, "stop", "s", "", "stop loss price (required)")
	sizeCmd.MarkFlagRequired("entry")
	sizeCmd.MarkFlagRequired("stop")
}

func runSize(cmd *cobra.Command, args []string) error {
	f, err := cfg.Formatter()
	if err != nil {
		return err
	}
	p, err := cfg.Parser()
	if err != nil {
		return err
	}

	account := sizeText.account
	if account == "" && cfg.Account.Size > 0 {
		account = p.Format(cfg.Account.Size)
	}
	riskPct := sizeText.risk
	if riskPct == "" {
		riskPct = p.Format(cfg.Defaults.RiskPercent)
	}

	fm := form.New(account, riskPct, sizeText.entry, sizeText.stop).WithParser(p)
	fm.Calculate()
	v := fm.View()

	report.Render(cmd.OutOrStdout(), v, f)

	if !v.Valid() {
		log.Debug("invalid input", zap.Strings("violations", v.Violations.Messages()))
		return v.Violations.Err()
	}

	log.Debug("sized position",
		zap.String("direction", string(v.Result.Direction)),
		zap.Float64("units", v.Result.Units),
		zap.Float64("notional", v.Result.Notional),
	)
	return nil
}
