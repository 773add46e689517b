package judge0

import "strings"

// Judge0 CE language ids for the languages the editor offers
var languageIDs = map[string]int{
	"javascript": 63,
	"python":     71,
	"java":       62,
	"c":          50,
	"cpp":        54,
	"csharp":     51,
	"ruby":       72,
	"go":         60,
	"rust":       73,
	"typescript": 74,
	"php":        68,
	"swift":      83,
	"kotlin":     78,
}

// languageOrder keeps listings stable
var languageOrder = []string{
	"javascript", "python", "java", "c", "cpp", "csharp", "ruby",
	"go", "rust", "typescript", "php", "swift", "kotlin",
}

// LanguageID resolves a language name to its Judge0 id
func LanguageID(name string) (int, bool) {
	id, ok := languageIDs[name]
	return id, ok
}

// Language describes one supported language for listings
type Language struct {
	Name  string `json:"name"`
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Languages returns the supported languages in a fixed order
func Languages() []Language {
	out := make([]Language, 0, len(languageOrder))
	for _, name := range languageOrder {
		out = append(out, Language{
			Name:  name,
			ID:    languageIDs[name],
			Label: strings.ToUpper(name[:1]) + name[1:],
		})
	}
	return out
}
