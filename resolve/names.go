package resolve

import (
	"fmt"
	"strings"

	"github.com/railatlas/railatlas/network"
)

// AggregateNames converts a station's raw name records into a deduplicated
// alternate-name mapping. The first record of a language keys as
// "name:<language>"; later records of the same language key as
// "name:<language>_1", "name:<language>_2" and so on, in input order.
// Records missing name or language are skipped. Identical input order yields
// identical output, which callers rely on for stable presentation.
func AggregateNames(records []network.NameRecord) map[string]string {
	out := make(map[string]string, len(records))
	perLanguage := map[string]int{}
	for _, r := range records {
		name := strings.TrimSpace(r.Name)
		lang := strings.TrimSpace(r.Language)
		if name == "" || lang == "" {
			continue
		}
		key := "name:" + lang
		if n := perLanguage[lang]; n > 0 {
			key = fmt.Sprintf("name:%s_%d", lang, n)
		}
		perLanguage[lang]++
		out[key] = name
	}
	return out
}
