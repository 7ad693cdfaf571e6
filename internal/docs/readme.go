// Package docs renders repository documentation from the live command
// registry, so the README never drifts from the code.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"text/template"

	"github.com/PineFruitDev/TSTemplateBot/internal/command"
	"github.com/PineFruitDev/TSTemplateBot/internal/logger"
)

// CommandSections renders the per-category command listing spliced into the
// README template. Categories and commands keep registry order so the
// document matches what /help shows.
func CommandSections(reg *command.Registry) string {
	var buf bytes.Buffer
	for i, cat := range reg.Categories() {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(&buf, "### %s\n\n", cat.Name)
		for _, cmd := range cat.Commands {
			d := cmd.Descriptor()
			fmt.Fprintf(&buf, "* **`/%s`**\n  %s\n", d.Name, d.Description)
		}
	}
	return buf.String()
}

// UpdateReadme renders tmplPath with the current command catalog and writes
// the result to outPath.
func UpdateReadme(reg *command.Registry, tmplPath, outPath string) error {
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("parse template %s: %w", tmplPath, err)
	}

	data := struct {
		CommandSections string
	}{
		CommandSections: CommandSections(reg),
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render %s: %w", outPath, err)
	}

	logger.Info("readme updated", "path", outPath, "commands", reg.Len())
	return nil
}
