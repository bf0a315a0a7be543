package main

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// renderCompactTable writes the four-column listing: name, type, size
// in bytes, and modified date.
func renderCompactTable(w io.Writer, entries []Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Type", "Size B", "Modified"})
	if !color.NoColor {
		header := tablewriter.Colors{tablewriter.FgHiGreenColor}
		table.SetHeaderColor(header, header, header, header)
		table.SetColumnColor(
			tablewriter.Colors{tablewriter.FgHiCyanColor},
			tablewriter.Colors{tablewriter.FgWhiteColor},
			tablewriter.Colors{tablewriter.FgHiMagentaColor},
			tablewriter.Colors{tablewriter.FgHiBlueColor},
		)
	}
	for _, e := range entries {
		table.Append([]string{
			e.Name,
			string(e.Kind),
			strconv.FormatUint(e.Size, 10),
			e.modifiedDisplay(),
		})
	}
	table.Render()
}

// renderDetailedTable adds the permission triple and owner columns.
// Entries whose metadata could not be read keep their row; the unknown
// fields render as empty cells rather than fabricated zeros.
func renderDetailedTable(w io.Writer, entries []Entry) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Permission", "Owner", "Name", "Type", "Size B", "Modified"})
	if !color.NoColor {
		header := tablewriter.Colors{tablewriter.FgHiGreenColor}
		table.SetHeaderColor(header, header, header, header, header, header)
		table.SetColumnColor(
			tablewriter.Colors{tablewriter.FgHiYellowColor},
			tablewriter.Colors{tablewriter.FgHiWhiteColor},
			tablewriter.Colors{tablewriter.FgHiCyanColor},
			tablewriter.Colors{tablewriter.FgWhiteColor},
			tablewriter.Colors{tablewriter.FgHiMagentaColor},
			tablewriter.Colors{tablewriter.FgHiBlueColor},
		)
	}
	for _, e := range entries {
		table.Append([]string{
			e.Permissions,
			e.Owner,
			e.Name,
			string(e.Kind),
			strconv.FormatUint(e.Size, 10),
			e.modifiedDisplay(),
		})
	}
	table.Render()
}
