package asd

import (
	"encoding/json"
	"os"
)

// WriteJson serialises data as indented JSON to path on the local
// filesystem.
func WriteJson(path string, data any) (int, error) {
	jsn, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, jsn, 0o644); err != nil {
		return 0, err
	}
	return len(jsn), nil
}

// JsonDumps constructs a compact JSON string of the supplied data.
func JsonDumps(data any) (string, error) {
	jsn, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(jsn), nil
}

// JsonIndentDumps constructs a JSON string of the supplied data using an
// indentation of four spaces.
func JsonIndentDumps(data any) (string, error) {
	jsn, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return "", err
	}
	return string(jsn), nil
}
