package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/addonhub/addonhub/internal/api"
	"github.com/addonhub/addonhub/internal/config"
	"github.com/addonhub/addonhub/internal/pack"
)

// Remove runs the remove subcommand. Without flags it fetches the inventory
// report, parses it, and lets the user pick packs interactively; --all
// removes every custom pack. --yes skips the confirmation prompt (the server
// still requires confirm=true in the payload).
func Remove(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("remove", flag.ContinueOnError)
	fs.SetOutput(stderr)
	all := fs.Bool("all", false, "Remove all custom addons")
	yes := fs.Bool("yes", false, "Skip the confirmation prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}

	payload := api.RemoveRequest{Confirm: true}

	if *all {
		payload.RemoveAll = true
		if !*yes {
			ok, err := confirmRemoval("Remove ALL custom addons?", "This removes every custom behavior and resource pack. It cannot be undone.")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(stdout, "Aborted.")
				return nil
			}
		}
	} else {
		selected, err := pickPacks(cfg, fs.Args(), stdout)
		if err != nil || selected == nil {
			return err
		}
		if !*yes {
			ok, err := confirmRemoval(
				fmt.Sprintf("Remove %d addon(s)?", len(selected)),
				strings.Join(selected, ", ")+". This cannot be undone.",
			)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(stdout, "Aborted.")
				return nil
			}
		}
		payload.Packs = selected
	}

	body, _ := json.Marshal(payload)
	resp, err := apiPost(cfg, "/api/remove", "application/json", body)
	if err != nil {
		return fmt.Errorf("remove request: %w", err)
	}

	var rr api.RemoveResponse
	if err := decodeResponse(resp, &rr); err != nil {
		return err
	}
	if !rr.Success {
		return fmt.Errorf("removal failed: %s: %s", rr.Message, rr.Error)
	}

	fmt.Fprintln(stdout, rr.Message)
	if rr.Output != "" {
		fmt.Fprint(stdout, rr.Output)
	}
	return nil
}

// pickPacks resolves the packs to remove: positional names when given,
// otherwise an interactive multiselect over the parsed inventory report.
// A nil, nil return means there is nothing to do.
func pickPacks(cfg *config.ClientConfig, names []string, stdout io.Writer) ([]string, error) {
	if len(names) > 0 {
		return names, nil
	}

	out, err := fetchReport(cfg)
	if err != nil {
		return nil, err
	}
	records := pack.ParseReport(out)
	if len(records) == 0 {
		fmt.Fprintln(stdout, "No custom addons installed.")
		return nil, nil
	}

	options := make([]huh.Option[string], len(records))
	for i, rec := range records {
		label := rec.Name
		if rec.Details != "" {
			label += " " + rec.Details
		}
		if rec.Section != "" {
			label += " [" + rec.Section + "]"
		}
		options[i] = huh.NewOption(label, rec.Name)
	}

	var selected []string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Select addons to remove").
			Options(options...).
			Value(&selected),
	)).Run(); err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		fmt.Fprintln(stdout, "Nothing selected.")
		return nil, nil
	}
	return selected, nil
}

func confirmRemoval(title, description string) (bool, error) {
	var ok bool
	err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Description(description).
			Value(&ok),
	)).Run()
	return ok, err
}
