// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	// defaultTableConfig enables lines wrapping and limits cell width.
	defaultTableConfig = tablewriter.Config{
		Row: tw.CellConfig{
			Formatting: tw.CellFormatting{
				AutoWrap: tw.WrapNormal,
			},
			ColMaxWidths: tw.CellWidth{Global: 32},
		},
	}

	// defaultTableLinesTint removes color from table borders.
	defaultTableLinesTint = renderer.Tint{
		BG: renderer.Colors{color.Reset},
		FG: renderer.Colors{color.Reset},
	}

	// defaultTableRendererSettings enables separator between rows and columns.
	defaultTableRendererSettings = tw.Settings{
		Separators: tw.Separators{
			BetweenColumns: tw.On,
			BetweenRows:    tw.On,
		},
	}
)

// defaultColorizedConfig returns config for the colorized renderer with
// bold headers and a highlighted first column.
func defaultColorizedConfig() renderer.ColorizedConfig {
	return renderer.ColorizedConfig{
		Header: renderer.Tint{
			FG: renderer.Colors{color.Bold},
		},
		Column: renderer.Tint{
			Columns: []renderer.Tint{
				{FG: renderer.Colors{color.Bold, color.FgCyan}},
			},
		},
		Settings:  defaultTableRendererSettings,
		Symbols:   tw.NewSymbols(tw.StyleRounded),
		Border:    defaultTableLinesTint,
		Separator: defaultTableLinesTint,
	}
}

// newTable creates a table with the default config, colorized unless
// coloured output is disabled.
func newTable(w io.Writer) *tablewriter.Table {
	options := []tablewriter.Option{
		tablewriter.WithConfig(defaultTableConfig),
	}
	if !color.NoColor {
		options = append(options, tablewriter.WithRenderer(renderer.NewColorized(defaultColorizedConfig())))
	}
	return tablewriter.NewTable(w, options...)
}
