package generation

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/jonathan/presidential-roast/internal/schemas"
	"github.com/jonathan/presidential-roast/internal/types"
)

//go:embed tables/*.json
var tableFiles embed.FS

// phraseTable maps pool names to their fragment lists. Tables are static and
// never mutated after load.
type phraseTable map[string][]string

var (
	tablesOnce sync.Once
	tables     map[types.Category]phraseTable
	tablesErr  error
)

// loadTables parses and schema-checks every embedded phrase table exactly once.
func loadTables() (map[types.Category]phraseTable, error) {
	tablesOnce.Do(func() {
		schemaData, err := tableFiles.ReadFile("tables/phrase_tables.schema.json")
		if err != nil {
			tablesErr = fmt.Errorf("failed to read phrase table schema: %w", err)
			return
		}

		loaded := make(map[types.Category]phraseTable)
		for _, category := range []types.Category{types.CategoryIdea, types.CategoryResume, types.CategoryTwitter} {
			name := fmt.Sprintf("tables/%s.json", category)
			data, err := tableFiles.ReadFile(name)
			if err != nil {
				tablesErr = fmt.Errorf("failed to read phrase table %s: %w", name, err)
				return
			}

			if err := schemas.ValidateJSONString(string(schemaData), string(data)); err != nil {
				tablesErr = fmt.Errorf("phrase table %s is invalid: %w", name, err)
				return
			}

			var table phraseTable
			if err := json.Unmarshal(data, &table); err != nil {
				tablesErr = fmt.Errorf("failed to parse phrase table %s: %w", name, err)
				return
			}
			loaded[category] = table
		}
		tables = loaded
	})
	return tables, tablesErr
}

// pool returns the named fragment list, failing loudly on a missing pool
// since that is a programmer error, not a runtime condition.
func (t phraseTable) pool(name string) ([]string, error) {
	fragments, ok := t[name]
	if !ok || len(fragments) == 0 {
		return nil, fmt.Errorf("phrase pool %q is missing or empty", name)
	}
	return fragments, nil
}

// fill replaces {{.Key}} placeholders with values, same convention as the
// prompt templates.
func fill(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}
