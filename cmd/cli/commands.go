package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/spf13/cobra"
)

var recentLimit int

func init() {
	recentCmd.Flags().IntVar(&recentLimit, "limit", 5, "How many of today's check-ins to show")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/health", nil)
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name> <age> <tenure>",
	Short: "Register a new player and print their code",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("age must be a number: %w", err)
		}
		tenure, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("tenure must be a number: %w", err)
		}
		return performRequest("POST", "/players", map[string]any{
			"name":   args[0],
			"age":    age,
			"tenure": tenure,
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered players",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/players", nil)
	},
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a single player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/players/"+args[0], nil)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <id> <name> <age> <tenure>",
	Short: "Update a player's name, age and tenure",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		age, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("age must be a number: %w", err)
		}
		tenure, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("tenure must be a number: %w", err)
		}
		return performRequest("PUT", "/players/"+args[0], map[string]any{
			"name":   args[1],
			"age":    age,
			"tenure": tenure,
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a player and their attendance history",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("DELETE", "/players/"+args[0], nil)
	},
}

var checkinCmd = &cobra.Command{
	Use:   "checkin <code>",
	Short: "Record attendance for a player by their code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("POST", "/check-in", map[string]any{"code": args[0]})
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify <code>",
	Short: "Check whether a code belongs to a registered player",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/verify/"+args[0], nil)
	},
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show today's most recent check-ins",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", fmt.Sprintf("/attendance/recent?limit=%d", recentLimit), nil)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Regenerate the attendance spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/export", nil)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest("GET", "/metrics", nil)
	},
}

func performRequest(method, endpoint string, payload map[string]any) error {
	url := host + endpoint
	fmt.Printf("Making %s request to %s\n", method, url)

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
