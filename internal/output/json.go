package output

import (
	"encoding/json"
	"os"
	"time"
)

// WriteJSON writes the full result set, raw per-trial ratios included, for
// downstream reporting and plotting tools.
func WriteJSON(filename string, results Results) error {
	results.Timestamp = time.Now().Format(time.RFC3339)

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
