package cmd

import (
	"github.com/haystacksec/kustodian/internal/message"
	"github.com/haystacksec/kustodian/pkg/grc"
	"github.com/spf13/cobra"
)

var (
	formatFlag   string
	detailedFlag bool
	markdownFlag bool
)

var assessCmd = &cobra.Command{
	Use:     "assess",
	Aliases: []string{"grc"},
	Short:   "NIST 800-171 compliance assessment commands",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var assessRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full compliance assessment and produce a report",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := grc.ParseFormat(formatFlag)
		if err != nil {
			return invalidFlags("%s", err.Error())
		}

		registry, err := grc.NewRegistry()
		if err != nil {
			return err
		}

		message.Info("Running NIST 800-171 compliance assessment")
		report := registry.ComplianceReport(detailedFlag)
		rendered, err := grc.RenderComplianceReport(report, format)
		if err != nil {
			return err
		}

		if format == grc.FormatJSON {
			return emitJSON("assess-run", report, rendered)
		}
		return emitText("assess-run", rendered)
	},
}

var assessControlCmd = &cobra.Command{
	Use:   "control <control-id>",
	Short: "Assess a single control by id (e.g. 3.1.1)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := grc.ParseFormat(formatFlag)
		if err != nil {
			return invalidFlags("%s", err.Error())
		}

		registry, err := grc.NewRegistry()
		if err != nil {
			return err
		}

		control, err := registry.GetControl(args[0])
		if err != nil {
			return err
		}

		rendered, err := grc.RenderControl(control, format, detailedFlag)
		if err != nil {
			return err
		}

		if format == grc.FormatJSON {
			return emitJSON("assess-control", control, rendered)
		}
		return emitText("assess-control", rendered)
	},
}

var assessFamilyCmd = &cobra.Command{
	Use:   "family <family-id>",
	Short: "Assess a control family by id prefix (e.g. 3.1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return invalidFlags("expected exactly one family id, got %d arguments", len(args))
		}

		format, err := grc.ParseFormat(formatFlag)
		if err != nil {
			return invalidFlags("%s", err.Error())
		}

		registry, err := grc.NewRegistry()
		if err != nil {
			return err
		}

		message.Info("Assessing control family %s", args[0])
		report, err := registry.FamilyReport(args[0], detailedFlag)
		if err != nil {
			return err
		}

		rendered, err := grc.RenderFamilyReport(report, format, detailedFlag)
		if err != nil {
			return err
		}

		if format == grc.FormatJSON {
			return emitJSON("assess-family", report, rendered)
		}
		return emitText("assess-family", rendered)
	},
}

var assessGapsCmd = &cobra.Command{
	Use:     "gaps",
	Aliases: []string{"gap-analysis"},
	Short:   "Produce a priority-bucketed gap analysis",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := grc.ParseFormat(formatFlag)
		if err != nil {
			return invalidFlags("%s", err.Error())
		}
		if markdownFlag && format == grc.FormatJSON {
			return invalidFlags("--markdown and --format json are mutually exclusive")
		}

		registry, err := grc.NewRegistry()
		if err != nil {
			return err
		}

		message.Info("Generating gap analysis")
		report := registry.GapAnalysis()

		if markdownFlag {
			return emitTable("gap-analysis", report.MarkdownTable())
		}

		rendered, err := grc.RenderGapReport(report, format)
		if err != nil {
			return err
		}

		if format == grc.FormatJSON {
			return emitJSON("gap-analysis", report, rendered)
		}
		return emitText("gap-analysis", rendered)
	},
}

func init() {
	assessCmd.PersistentFlags().StringVar(&formatFlag, "format", string(grc.FormatSummary), "output format (json or summary)")
	assessCmd.PersistentFlags().BoolVarP(&detailedFlag, "detailed", "d", false, "include findings and recommendations")
	assessGapsCmd.Flags().BoolVar(&markdownFlag, "markdown", false, "render the gap analysis as a markdown table")

	assessCmd.AddCommand(assessRunCmd)
	assessCmd.AddCommand(assessControlCmd)
	assessCmd.AddCommand(assessFamilyCmd)
	assessCmd.AddCommand(assessGapsCmd)
	rootCmd.AddCommand(assessCmd)
}
