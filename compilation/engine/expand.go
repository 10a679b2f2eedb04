package engine

import (
	"encoding/json"
	"path"
	"regexp"
)

// importDirectivePattern matches Solidity import directives in their plain, aliased and symbol-list forms, capturing
// the quoted import path.
var importDirectivePattern = regexp.MustCompile(`import\s+(?:[^"';]*\s+from\s+)?["']([^"']+)["']\s*;`)

// ExpandImportedSources resolves the import closure of a standard-JSON request through the given hook. Source units
// already present in the request are never replaced; units reachable through import directives but missing from the
// request are resolved and added, transitively. Units whose resolution fails are simply not added, leaving the
// engine to surface the missing source as a compile diagnostic. Returns the expanded request document.
func ExpandImportedSources(input []byte, importHook ImportHook) ([]byte, error) {
	// Parse the request generically so unknown settings survive re-serialization untouched.
	var requestDoc map[string]any
	if err := json.Unmarshal(input, &requestDoc); err != nil {
		return nil, err
	}
	sources, ok := requestDoc["sources"].(map[string]any)
	if !ok {
		return input, nil
	}

	// Seed the scan worklist with every source unit carrying inline content.
	type sourceUnit struct {
		name     string
		contents string
	}
	var worklist []sourceUnit
	for name, source := range sources {
		if contents, ok := inlineContent(source); ok {
			worklist = append(worklist, sourceUnit{name: name, contents: contents})
		}
	}

	// Scan units for import directives until the closure stops growing. The sources map doubles as the visited
	// set, so import cycles terminate naturally.
	for len(worklist) > 0 {
		unit := worklist[0]
		worklist = worklist[1:]

		for _, match := range importDirectivePattern.FindAllStringSubmatch(unit.contents, -1) {
			importedUnitName := canonicalImportName(unit.name, match[1])
			if _, exists := sources[importedUnitName]; exists {
				continue
			}

			result := importHook(importedUnitName)
			if result.Error != "" {
				continue
			}
			sources[importedUnitName] = map[string]any{"content": result.Contents}
			worklist = append(worklist, sourceUnit{name: importedUnitName, contents: result.Contents})
		}
	}

	return json.Marshal(requestDoc)
}

// inlineContent returns the inline contents of a standard-JSON source entry, or false if the entry carries none
// (e.g. a urls-based source).
func inlineContent(source any) (string, bool) {
	sourceMap, ok := source.(map[string]any)
	if !ok {
		return "", false
	}
	contents, ok := sourceMap["content"].(string)
	return contents, ok
}

// canonicalImportName converts an import path as written in a source unit into its canonical source unit name.
// Relative imports are resolved against the importing unit's directory; direct imports are used as-is.
func canonicalImportName(importingUnit string, importPath string) string {
	if len(importPath) > 0 && importPath[0] == '.' {
		return path.Join(path.Dir(importingUnit), importPath)
	}
	return importPath
}
