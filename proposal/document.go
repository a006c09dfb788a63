// Package proposal renders the client-facing proposal: a structured document
// built from quote data, serialized to sanitized HTML and printed to PDF.
package proposal

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"led-proposal-engine/models"
	"led-proposal-engine/utils"
)

// BlockKind identifies a content block
type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockParagraph BlockKind = "paragraph"
	BlockList      BlockKind = "list"
	BlockTable     BlockKind = "table"
	BlockPageBreak BlockKind = "pagebreak"
	BlockHTML      BlockKind = "html"
	BlockSignature BlockKind = "signature"
)

// Block is one piece of document content
type Block struct {
	Kind       BlockKind
	Level      int      // headings
	Text       string   // headings, paragraphs
	Items      []string // lists
	Table      *Table
	HTML       template.HTML // already sanitized
	Signatures []string      // parties signing
}

// Table is a header row, body rows and an optional footer row
type Table struct {
	Class  string
	Header []string
	Rows   [][]string
	Footer []string
}

// Brand carries the company identity printed on the proposal
type Brand struct {
	Name   string
	Logo   template.URL // data URI, empty for no logo
	Accent string       // #rrggbb
}

// Document is an ordered list of content blocks plus the running footer label
type Document struct {
	Title       string
	FooterLabel string
	Brand       Brand
	Blocks      []Block
}

// PriceLine is one row of the client pricing table
type PriceLine struct {
	Label  string
	Amount float64
}

// Input is everything a proposal is built from
type Input struct {
	Brand       Brand
	FooterLabel string
	ClientName  string
	ProjectName string
	Date        time.Time
	Displays    []models.LineItem
	Pricing     []PriceLine // last line is the total
	Notes       string      // markdown
}

// statementOfWork is the fixed scope printed on every proposal
var statementOfWork = []string{
	"Furnish the LED display system(s) specified above, including a spare parts kit.",
	"Provide structural engineering, permits and the mounting structure.",
	"Install, terminate and commission the displays and their control system.",
	"Crate, ship and deliver all equipment to site.",
	"Project management through final acceptance, including operator training.",
}

const exclusions = "Unless stated otherwise, primary power to the display location, network connectivity and site civil work are by others."

// BuildDocument assembles the proposal blocks. Only client-safe figures are
// used: per-display specifications and the lines of in.Pricing.
func BuildDocument(in Input) (Document, error) {
	if len(in.Displays) == 0 {
		return Document{}, fmt.Errorf("proposal needs at least one display")
	}
	if len(in.Pricing) == 0 {
		return Document{}, fmt.Errorf("proposal needs a pricing total")
	}

	title := "Proposal for " + in.ClientName
	doc := Document{
		Title:       title,
		FooterLabel: in.FooterLabel,
		Brand:       in.Brand,
	}
	if doc.FooterLabel == "" {
		doc.FooterLabel = strings.TrimSpace(in.Brand.Name + " Proposal")
	}

	date := in.Date.Format("January 2, 2006")
	doc.add(Block{Kind: BlockHeading, Level: 1, Text: title})
	if in.ProjectName != "" {
		doc.add(Block{Kind: BlockParagraph, Text: "Project: " + in.ProjectName})
	}
	doc.add(Block{Kind: BlockParagraph, Text: "Prepared " + date + ". This proposal is valid for 30 days."})

	doc.add(Block{Kind: BlockHeading, Level: 2, Text: "Display specifications"})
	for i, d := range in.Displays {
		name := d.Name
		if name == "" {
			name = fmt.Sprintf("Display %d", i+1)
		}
		doc.add(Block{Kind: BlockHeading, Level: 3, Text: name})
		doc.add(Block{Kind: BlockTable, Table: specTable(d)})
	}

	doc.add(Block{Kind: BlockHeading, Level: 2, Text: "Investment"})
	doc.add(Block{Kind: BlockTable, Table: pricingTable(in.Pricing)})

	if notes := strings.TrimSpace(in.Notes); notes != "" {
		fragment, err := RenderNotes(notes)
		if err != nil {
			return Document{}, err
		}
		doc.add(Block{Kind: BlockHeading, Level: 2, Text: "Project notes"})
		doc.add(Block{Kind: BlockHTML, HTML: fragment})
	}

	doc.add(Block{Kind: BlockPageBreak})
	doc.add(Block{Kind: BlockHeading, Level: 2, Text: "Statement of work"})
	doc.add(Block{Kind: BlockList, Items: statementOfWork})
	doc.add(Block{Kind: BlockParagraph, Text: exclusions})

	doc.add(Block{Kind: BlockHeading, Level: 2, Text: "Acceptance"})
	doc.add(Block{Kind: BlockSignature, Signatures: []string{in.Brand.Name, in.ClientName}})
	return doc, nil
}

func (d *Document) add(b Block) {
	d.Blocks = append(d.Blocks, b)
}

func specTable(d models.LineItem) *Table {
	t := &Table{Class: "spec", Header: []string{"Specification", "Value"}}
	if d.Pitch != nil {
		t.Rows = append(t.Rows, []string{"Pixel pitch", *d.Pitch + " mm"})
	}
	if d.Dimensions != nil {
		t.Rows = append(t.Rows,
			[]string{"Dimensions", formatFeet(d.Dimensions.Height) + " H x " + formatFeet(d.Dimensions.Width) + " W"},
			[]string{"Display area", strconv.FormatFloat(d.Dimensions.Area(), 'f', -1, 64) + " sq ft"},
		)
	}
	if d.Brightness != nil {
		t.Rows = append(t.Rows, []string{"Brightness", *d.Brightness + " nits"})
	}
	qty := d.Quantity
	if qty < 1 {
		qty = 1
	}
	t.Rows = append(t.Rows, []string{"Quantity", strconv.Itoa(qty)})
	return t
}

func pricingTable(lines []PriceLine) *Table {
	t := &Table{Class: "pricing", Header: []string{"Description", "Amount"}}
	last := len(lines) - 1
	for _, l := range lines[:last] {
		t.Rows = append(t.Rows, []string{l.Label, utils.FormatUSD(l.Amount)})
	}
	t.Footer = []string{lines[last].Label, utils.FormatUSD(lines[last].Amount)}
	return t
}

func formatFeet(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + " ft"
}

// PricingFromTotals lists the totals found on a source sheet. Zero lines are
// left out except the total.
func PricingFromTotals(t models.PricingTotals) []PriceLine {
	var lines []PriceLine
	if t.Subtotal > 0 {
		lines = append(lines, PriceLine{Label: "Subtotal", Amount: t.Subtotal})
	}
	if t.Tax > 0 {
		lines = append(lines, PriceLine{Label: "Sales tax", Amount: t.Tax})
	}
	if t.Bond > 0 {
		lines = append(lines, PriceLine{Label: "Performance bond", Amount: t.Bond})
	}
	return append(lines, PriceLine{Label: "Total", Amount: t.Total})
}

// PricingFromBreakdown lists the client-visible prices of a calculated
// quote. Costs, margin and sections stay internal.
func PricingFromBreakdown(b models.CostBreakdown) []PriceLine {
	return []PriceLine{
		{Label: "Display system, installed", Amount: b.SellPrice},
		{Label: "Performance bond", Amount: b.Bond},
		{Label: "Total investment", Amount: b.FinalPrice},
	}
}

// DisplayFromParameters describes the display of a calculator quote
func DisplayFromParameters(p models.CostParameters) models.LineItem {
	pitch := strconv.FormatFloat(p.PixelPitchMM, 'f', -1, 64)
	product := titleCase(p.ProductType)
	if p.ProductType == "lcd" {
		product = "LCD"
	}
	name := titleCase(p.Environment) + " " + product + " display"
	if p.Curved {
		name = "Curved " + name
	}
	return models.LineItem{
		Name:       strings.TrimSpace(name),
		Pitch:      &pitch,
		Dimensions: &models.Dimensions{Height: p.HeightFt, Width: p.WidthFt},
		Quantity:   1,
	}
}

// titleCase turns "video_wall" into "Video Wall"
func titleCase(key string) string {
	words := strings.Fields(strings.ReplaceAll(key, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
