package main

import (
	"github.com/spf13/cobra"

	"led-proposal-engine/models"
)

func extractCmd() *cobra.Command {
	var req models.ExtractRequest
	var notesFile string

	cmd := &cobra.Command{
		Use:   "extract <workbook.xlsx | sheet.csv...>",
		Short: "Read a cost spreadsheet and generate its proposal",
		Long: `extract reads a cost spreadsheet, either one xlsx workbook or one CSV file per
sheet (the file name becomes the sheet name), and generates the artifacts
of the quote it holds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheets, err := readSheets(args)
			if err != nil {
				return err
			}
			req.Sheets = sheets

			notes, err := readNotes(notesFile)
			if err != nil {
				return err
			}
			req.Notes = notes

			svc, exporter, err := newServices(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.Extract(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return export(cmd.Context(), cmd.OutOrStdout(), exporter, resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.ClientName, "client", "", "client name (required)")
	flags.StringVar(&req.ProjectName, "project", "", "project name")
	flags.Float64Var(&req.DesiredMargin, "margin", 0, "desired margin for the audit workbook, e.g. 0.3")
	flags.StringVar(&notesFile, "notes", "", "markdown file with project notes")
	_ = cmd.MarkFlagRequired("client")

	return cmd
}
