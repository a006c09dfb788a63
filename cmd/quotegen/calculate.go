package main

import (
	"github.com/spf13/cobra"

	"led-proposal-engine/models"
)

func calculateCmd() *cobra.Command {
	var req models.QuoteRequest
	var notesFile string

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Price a display from its dimensions and options",
		Example: `  quotegen calculate --client "Riverside Stadium" --width 20 --height 10
  quotegen calculate --client Arena --width 30 --height 8 --environment outdoor --category scoreboard --margin 0.25`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			notes, err := readNotes(notesFile)
			if err != nil {
				return err
			}
			req.Notes = notes

			svc, exporter, err := newServices(cmd.Context())
			if err != nil {
				return err
			}
			resp, err := svc.Calculate(cmd.Context(), &req)
			if err != nil {
				return err
			}
			return export(cmd.Context(), cmd.OutOrStdout(), exporter, resp)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&req.ClientName, "client", "", "client name (required)")
	flags.StringVar(&req.ProjectName, "project", "", "project name")
	flags.Float64Var(&req.Width, "width", 0, "display width in feet (required)")
	flags.Float64Var(&req.Height, "height", 0, "display height in feet (required)")
	flags.Float64Var(&req.PixelPitch, "pitch", 0, "pixel pitch in mm (default from rates config)")
	flags.StringVar(&req.Environment, "environment", "", "indoor or outdoor")
	flags.StringVar(&req.ProductCategory, "category", "", "product category, e.g. video_wall, scoreboard")
	flags.Float64Var(&req.Margin, "margin", 0, "desired margin as a fraction, e.g. 0.3")
	flags.StringVar(&req.ServiceAccess, "service", "", "front or rear service access")
	flags.StringVar(&req.SteelType, "steel", "", "steel type, e.g. standard, galvanized")
	flags.StringVar(&req.MountingType, "mounting", "", "mounting type, e.g. wall, pole")
	flags.BoolVar(&req.Curved, "curved", false, "curved display")
	flags.StringVar(&notesFile, "notes", "", "markdown file with project notes")
	_ = cmd.MarkFlagRequired("client")
	_ = cmd.MarkFlagRequired("width")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}
