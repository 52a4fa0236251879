package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/otdb/otdb-terminal/internal/cli"
)

// CheckResult is the outcome of validating one value
type CheckResult struct {
	Value string `json:"value" yaml:"value"`
	Valid bool   `json:"valid" yaml:"valid"`
}

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <validation> <text>...",
		Short: "Check values against a field validation",
		Long: `Check values against one of the field validations used by forms.

Validations:
  any    - Anything goes
  int    - Optional minus sign followed by digits
  uint   - Digits only
  mod    - Mod acronym followed by a slot number (NM1, HD2, FM3, ...)

Examples:
  otdb check mod NM1 HD2 XX1
  otdb check uint 12 -4 --output json`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	validate, err := cli.ValidateValidation(args[0])
	if err != nil {
		return err
	}

	results := make([]CheckResult, 0, len(args)-1)
	failed := 0
	for _, value := range args[1:] {
		ok := validate(value)
		if !ok {
			failed++
		}
		results = append(results, CheckResult{Value: value, Valid: ok})
	}

	format := outputFormat(cmd, nil)
	if format == string(cli.FormatText) {
		table := cli.NewTable("VALUE", "VALID")
		for _, r := range results {
			valid := "yes"
			if !r.Valid {
				valid = "no"
			}
			table.Row(r.Value, valid)
		}
		if err := table.Write(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else if err := cli.Encode(cmd.OutOrStdout(), format, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d value(s) failed %s validation", failed, len(results), args[0])
	}
	return nil
}
