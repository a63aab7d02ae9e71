package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/openin/internal/config"
	"github.com/thoreinstein/openin/internal/detect"
	"github.com/thoreinstein/openin/internal/doctor"
	"github.com/thoreinstein/openin/internal/errors"
	"github.com/thoreinstein/openin/internal/logging"
)

var (
	doctorJSON bool
	doctorAll  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorAll, "all", false,
		"show every check, including passed ones")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose configuration and editor issues",
	Long: `Run diagnostic checks on the openin configuration and installed editors.

Validates the configuration file, checks that the configured editor resolves
and is installed, and reports which supported editors are present.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --all       Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - No errors or warnings
  1 - Warnings present, no errors
  2 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorAll, quiet} {
		if set {
			count++
		}
	}
	if count > 1 {
		return errors.NewUserError(errors.New("flags --json, --quiet, and --all are mutually exclusive"), "")
	}
	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	d := detect.New(newRunner())

	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewConfigCheck(configFile))
	runner.AddCheck(doctor.NewEditorCheck(config.Current().Editor, d))
	runner.AddCheck(doctor.NewInstalledEditorsCheck(d))

	report := runner.Run(cmd.Context())

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if report.HasErrors() {
		return errors.NewExitError(errDoctorErrors, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(errDoctorWarnings, errors.ExitUser)
	}
	return nil
}

func outputDoctorReport(w io.Writer, report *doctor.Report) error {
	switch {
	case quiet:
		return nil
	case doctorJSON:
		return writeJSON(w, report)
	default:
		return outputDoctorText(w, report, doctorAll)
	}
}

func outputDoctorText(w io.Writer, report *doctor.Report, showAll bool) error {
	_, green, yellow, gray := palette(w)
	red := color.New(color.FgRed)
	if !logging.SupportsColor(w) {
		red.DisableColor()
	}

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		icon := statusIcon(result.Status)
		switch result.Status {
		case doctor.SeverityPass:
			icon = green.Sprint(icon)
		case doctor.SeverityWarning:
			icon = yellow.Sprint(icon)
		case doctor.SeverityError:
			icon = red.Sprint(icon)
		default:
			icon = gray.Sprint(icon)
		}
		fmt.Fprintf(w, "%s [%s] %s: %s\n", icon, result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	_, err := fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
	return err
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}

// errDoctorWarnings is returned with exit code 1.
var errDoctorWarnings = errors.New("doctor found warnings")

// errDoctorErrors is returned with exit code 2.
var errDoctorErrors = errors.New("doctor found errors")
