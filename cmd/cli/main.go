package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "transferhub-cli",
		Short: "TransferHub CLI tool",
		Long:  `A command line interface for interacting with the TransferHub API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the TransferHub API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Transfer commands
	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer operations",
	}

	var (
		playerID       int64
		newTeamID      int64
		commission     int64
		idempotencyKey string
	)

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Transfer a player to a new team",
		Run: func(cmd *cobra.Command, args []string) {
			createTransfer(playerID, newTeamID, commission, idempotencyKey)
		},
	}
	createCmd.Flags().Int64Var(&playerID, "player", 0, "Player ID")
	createCmd.Flags().Int64Var(&newTeamID, "team", 0, "New team ID")
	createCmd.Flags().Int64Var(&commission, "commission", 0, "Commission percentage (1-10)")
	createCmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Optional idempotency key")
	createCmd.MarkFlagRequired("player")
	createCmd.MarkFlagRequired("team")
	createCmd.MarkFlagRequired("commission")

	getCmd := &cobra.Command{
		Use:   "get <transferID>",
		Short: "Get a transfer by ID",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/transfers/" + args[0])
		},
	}

	transferCmd.AddCommand(createCmd, getCmd)
	rootCmd.AddCommand(transferCmd)

	// Player commands
	playerCmd := &cobra.Command{
		Use:   "player",
		Short: "Player operations",
	}

	teamsCmd := &cobra.Command{
		Use:   "teams <playerID>",
		Short: "List the teams a player has been transferred to",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := mustParseID(args[0])
			getJSON("/api/v1/players/" + strconv.FormatInt(id, 10) + "/teams")
		},
	}

	historyCmd := &cobra.Command{
		Use:   "transfers <playerID>",
		Short: "List a player's transfer history",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			id := mustParseID(args[0])
			getJSON("/api/v1/players/" + strconv.FormatInt(id, 10) + "/transfers")
		},
	}

	playerCmd.AddCommand(teamsCmd, historyCmd)
	rootCmd.AddCommand(playerCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func createTransfer(playerID, newTeamID, commission int64, idempotencyKey string) {
	payload, _ := json.Marshal(map[string]int64{
		"player_id":   playerID,
		"new_team_id": newTeamID,
		"commission":  commission,
	})

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/transfers", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusCreated {
		fmt.Printf("Transfer FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	printIndented(body)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	printIndented(body)
}

func printIndented(body []byte) {
	var out bytes.Buffer
	if err := json.Indent(&out, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}
	fmt.Println(out.String())
}

func mustParseID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Printf("Invalid ID %q\n", arg)
		os.Exit(1)
	}
	return id
}
