package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/addonhub/addonhub/internal/config"
)

// Init runs the interactive init wizard and writes the client config.
func Init(args []string, stdout io.Writer) error {
	reinit := false
	for _, a := range args {
		if a == "--reinit" || a == "-r" {
			reinit = true
		}
	}

	if cfg, err := config.LoadClientConfig(); err == nil && cfg != nil && !reinit {
		fmt.Fprintln(stdout, "A client config already exists. Run with --reinit to overwrite.")
		return nil
	}

	fmt.Fprintln(stdout, "Welcome to addonhub init. Let's connect to your addon panel.")
	fmt.Fprintln(stdout)

	var serverURL, token string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Panel server URL").
			Description("Where addonhubd is listening, e.g. http://192.168.1.40:8732").
			Value(&serverURL).
			Validate(func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return fmt.Errorf("server URL cannot be empty")
				}
				if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
					return fmt.Errorf("server URL must start with http:// or https://")
				}
				return nil
			}),
		huh.NewInput().
			Title("Auth token").
			Description("The 'token' value from the server's /etc/addonhub/server.yaml.").
			Value(&token).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("token cannot be empty")
				}
				return nil
			}),
	)).Run(); err != nil {
		return err
	}

	cfg := &config.ClientConfig{
		Server: strings.TrimRight(strings.TrimSpace(serverURL), "/"),
		Token:  strings.TrimSpace(token),
	}
	if err := config.SaveClientConfig(cfg); err != nil {
		return fmt.Errorf("writing client config: %w", err)
	}

	fmt.Fprintln(stdout, "Config written. Try 'addonhub list'.")
	return nil
}
