package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/addonhub/addonhub/internal/api"
	"github.com/addonhub/addonhub/internal/config"
)

// List runs the list subcommand: fetch the inventory report and print it.
func List(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}

	out, err := fetchReport(cfg)
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) == "" {
		fmt.Fprintln(stdout, "No custom addons installed.")
		return nil
	}
	fmt.Fprint(stdout, out)
	return nil
}

// fetchReport retrieves the rendered inventory report text from the server.
func fetchReport(cfg *config.ClientConfig) (string, error) {
	resp, err := apiGet(cfg, "/api/list")
	if err != nil {
		return "", fmt.Errorf("list request: %w", err)
	}

	var lr api.ListResponse
	if err := decodeResponse(resp, &lr); err != nil {
		return "", err
	}
	if !lr.Success {
		return "", fmt.Errorf("listing addons failed: %s: %s", lr.Message, lr.Error)
	}
	return lr.Output, nil
}
