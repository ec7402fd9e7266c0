package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

func postPlayer(name string, age, tenure int) error {
	return postJSON("/players", map[string]any{
		"name":   name,
		"age":    age,
		"tenure": tenure,
	}, http.StatusCreated)
}

func postCheckIn(code string) error {
	return postJSON("/check-in", map[string]any{"code": code}, http.StatusOK)
}

func postJSON(endpoint string, payload map[string]any, wantStatus int) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	resp, err := http.Post(host+endpoint, "application/json", bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		var detail struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &detail) == nil && detail.Detail != "" {
			return fmt.Errorf("server rejected request: %s", detail.Detail)
		}
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil
}
