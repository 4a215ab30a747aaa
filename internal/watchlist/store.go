package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultSymbols seeds a fresh watch-list store.
var DefaultSymbols = []string{"AAPL", "MSFT", "NVDA", "TSLA"}

// ErrCorruptStore indicates the store file existed but did not hold a JSON
// list of symbol strings. Recoverable: Load resets the store to the default
// list and persists the reset before returning.
var ErrCorruptStore = errors.New("watchlist store is corrupt")

// Load reads the watch-list from a JSON file. A missing file seeds the
// default list and persists it. A corrupt file is reset to the default list;
// the returned symbols are still usable and the error wraps ErrCorruptStore
// so the caller can log the recovery.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := append([]string(nil), DefaultSymbols...)
			if saveErr := Save(path, defaults); saveErr != nil {
				return nil, fmt.Errorf("seed default watchlist: %w", saveErr)
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("read watchlist: %w", err)
	}

	var symbols []string
	if err := json.Unmarshal(data, &symbols); err != nil {
		defaults := append([]string(nil), DefaultSymbols...)
		if saveErr := Save(path, defaults); saveErr != nil {
			return nil, fmt.Errorf("reset corrupt watchlist: %w", saveErr)
		}
		return defaults, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return symbols, nil
}

// Save writes the watch-list to a JSON file, creating parent directories as
// needed.
func Save(path string, symbols []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create watchlist dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(symbols, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
