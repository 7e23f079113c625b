package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/scorex"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/scott-cotton/cli"
)

func info(cfg *InfoConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Info.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: info requires at least 1 source", cli.ErrUsage)
	}
	for i, src := range args {
		doc, err := getDoc(context.Background(), cc, src)
		if err != nil {
			return err
		}
		parts, err := scorex.Parts(doc)
		if err != nil {
			return fmt.Errorf("%s: %w", src, err)
		}
		if len(args) > 1 {
			if i > 0 {
				io.WriteString(cc.Out, "\n")
			}
			io.WriteString(cc.Out, src+":\n")
		}
		io.WriteString(cc.Out, partsTable(parts)+"\n")
	}
	return nil
}

func partsTable(parts []scorex.PartInfo) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "ID", "Name", "Staves", "Measures", "First", "Last"})
	for _, p := range parts {
		tw.AppendRow(table.Row{
			strconv.Itoa(p.Index),
			p.ID,
			p.Name,
			strconv.Itoa(p.Staves),
			strconv.Itoa(p.Measures),
			p.First,
			p.Last,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	return tw.Render()
}
