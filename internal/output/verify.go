package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/extension-forge/internal/schemas"
	"github.com/jonathan/extension-forge/internal/types"
)

// Problem describes a single verification finding for a written bundle
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// Verify inspects a written bundle directory and reports structural problems:
// a manifest that does not parse or fails its schema, declared entry-point
// files that are missing, and popup markup referencing assets that do not
// exist. Verification is advisory and never modifies the bundle.
func Verify(targetDir string) ([]Problem, error) {
	manifestPath := filepath.Join(targetDir, ManifestFilename)
	manifestJSON, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &IOError{Path: manifestPath, Message: "failed to read manifest", Cause: err}
	}

	var problems []Problem

	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", "manifest.schema.json"))
	if schemaPath == "" {
		problems = append(problems, Problem{
			Path:    ManifestFilename,
			Message: "manifest schema not found, schema validation skipped",
		})
	} else if err := schemas.ValidateFile(schemaPath, manifestPath); err != nil {
		problems = append(problems, Problem{
			Path:    ManifestFilename,
			Message: fmt.Sprintf("schema validation failed: %v", err),
		})
	}

	var manifest types.ManifestDescriptor
	if err := json.Unmarshal(manifestJSON, &manifest); err != nil {
		problems = append(problems, Problem{
			Path:    ManifestFilename,
			Message: fmt.Sprintf("manifest does not parse: %v", err),
		})
		return problems, nil
	}

	for _, entryPoint := range manifest.EntryPoints() {
		fullPath := filepath.Join(targetDir, entryPoint)
		if _, err := os.Stat(fullPath); os.IsNotExist(err) {
			problems = append(problems, Problem{
				Path:    entryPoint,
				Message: "declared in manifest but missing from bundle",
			})
		}
	}

	if manifest.Action != nil && manifest.Action.DefaultPopup != "" {
		popupPath := filepath.Join(targetDir, manifest.Action.DefaultPopup)
		if _, err := os.Stat(popupPath); err == nil {
			problems = append(problems, verifyPopupMarkup(targetDir, manifest.Action.DefaultPopup)...)
		}
	}

	return problems, nil
}

// verifyPopupMarkup parses the popup markup and checks that every script and
// stylesheet it references exists in the bundle.
func verifyPopupMarkup(targetDir, popupFile string) []Problem {
	popupPath := filepath.Join(targetDir, popupFile)
	f, err := os.Open(popupPath)
	if err != nil {
		return []Problem{{Path: popupFile, Message: fmt.Sprintf("failed to open popup markup: %v", err)}}
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return []Problem{{Path: popupFile, Message: fmt.Sprintf("popup markup does not parse: %v", err)}}
	}

	var problems []Problem
	checkAsset := func(kind, asset string) {
		asset = strings.TrimSpace(asset)
		if asset == "" || strings.Contains(asset, "://") {
			return
		}
		if _, err := os.Stat(filepath.Join(targetDir, asset)); os.IsNotExist(err) {
			problems = append(problems, Problem{
				Path:    popupFile,
				Message: fmt.Sprintf("references %s %q which is missing from bundle", kind, asset),
			})
		}
	}

	doc.Find("script[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		checkAsset("script", src)
	})
	doc.Find("link[rel=stylesheet][href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		checkAsset("stylesheet", href)
	})

	if doc.Find("script[src]").Length() == 0 {
		problems = append(problems, Problem{
			Path:    popupFile,
			Message: "popup markup references no script",
		})
	}

	return problems
}
