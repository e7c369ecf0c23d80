// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/jonathan/extension-forge/internal/types"
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintFeatureSet outputs a human-readable summary of the analyzed features.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFeatureSet(features *types.FeatureSet) {
	if features == nil {
		return
	}

	pterm.DefaultSection.WithWriter(p.out).Println("Feature Set")

	if features.Fallback {
		pterm.Warning.WithWriter(p.out).Println("No intents qualified; using the default popup feature set")
	}

	intentRows := pterm.TableData{{"Intent", "Confidence", "Threshold"}}
	for _, intent := range features.Intents {
		intentRows = append(intentRows, []string{
			string(intent.Category),
			fmt.Sprintf("%.2f", intent.Confidence),
			fmt.Sprintf("%.2f", intent.Threshold),
		})
	}
	pterm.DefaultTable.WithWriter(p.out).WithHasHeader().WithData(intentRows).Render()

	for _, category := range []types.EntityCategory{
		types.EntitySite, types.EntityVisual, types.EntityDataType, types.EntityTimeWindow,
	} {
		values := features.EntityValues(category)
		if len(values) > 0 {
			pterm.Info.WithWriter(p.out).Printfln("%s: %s", category, strings.Join(values, ", "))
		}
	}

	if len(features.Permissions) > 0 {
		pterm.Info.WithWriter(p.out).Printfln("permissions: %s", strings.Join(features.Permissions, ", "))
	}

	files := make([]string, 0, len(features.RequiredFiles))
	for _, role := range features.RequiredFiles {
		files = append(files, role.Filename())
	}
	pterm.Info.WithWriter(p.out).Printfln("files: %s", strings.Join(files, ", "))

	if features.ColorScheme != "" {
		pterm.Info.WithWriter(p.out).Printfln("color scheme: %s", features.ColorScheme)
	}
}

// PrintManifest outputs a short summary of the built manifest.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintManifest(descriptor *types.ManifestDescriptor) {
	if descriptor == nil {
		return
	}

	pterm.DefaultSection.WithWriter(p.out).Println("Manifest")
	rows := pterm.TableData{
		{"Name", descriptor.Name},
		{"Version", descriptor.Version},
		{"Description", descriptor.Description},
	}
	if len(descriptor.Permissions) > 0 {
		rows = append(rows, []string{"Permissions", strings.Join(descriptor.Permissions, ", ")})
	}
	if len(descriptor.HostPermissions) > 0 {
		rows = append(rows, []string{"Host permissions", strings.Join(descriptor.HostPermissions, ", ")})
	}
	pterm.DefaultTable.WithWriter(p.out).WithData(rows).Render()
}

// PrintWriteReport outputs where the bundle landed and what it contains.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWriteReport(report *types.WriteReport) {
	if report == nil {
		return
	}

	pterm.DefaultSection.WithWriter(p.out).Println("Write Report")
	pterm.Info.WithWriter(p.out).Printfln("run %s wrote %d file(s) to %s",
		report.RunID, len(report.FilesWritten), report.TargetDir)
	if report.BackupDir != "" {
		pterm.Info.WithWriter(p.out).Printfln("previous bundle preserved at %s", report.BackupDir)
	}

	items := make([]pterm.BulletListItem, 0, len(report.FilesWritten))
	for _, file := range report.FilesWritten {
		items = append(items, pterm.BulletListItem{Level: 0, Text: file})
	}
	pterm.DefaultBulletList.WithWriter(p.out).WithItems(items).Render()
}
