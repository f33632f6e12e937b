package cmd

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/addonhub/addonhub/internal/api"
	"github.com/addonhub/addonhub/internal/config"
	"github.com/addonhub/addonhub/internal/upload"
)

// Install runs the install subcommand: upload a .mcaddon archive and print
// the installation result.
func Install(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("install", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: addonhub install <file.mcaddon>")
	}
	archivePath := fs.Arg(0)

	if !upload.Allowed(archivePath) {
		return fmt.Errorf("%s: only .mcaddon files can be installed", archivePath)
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		return err
	}

	body, contentType, err := buildUploadBody(archivePath)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Uploading %s to %s\n", filepath.Base(archivePath), cfg.Server)
	resp, err := apiPost(cfg, "/api/install", contentType, body)
	if err != nil {
		return fmt.Errorf("install request: %w", err)
	}

	var ir api.InstallResponse
	if err := decodeResponse(resp, &ir); err != nil {
		return err
	}
	if !ir.Success {
		return fmt.Errorf("install failed: %s: %s", ir.Message, ir.Error)
	}

	fmt.Fprintln(stdout, ir.Message)
	if ir.EntityInfo != "" {
		fmt.Fprintln(stdout, ir.EntityInfo)
	}
	if ir.Output != "" {
		fmt.Fprintln(stdout, "Installation log:")
		fmt.Fprint(stdout, ir.Output)
	}
	return nil
}

// buildUploadBody packs the archive into a multipart form under the "file"
// field, as the install endpoint expects.
func buildUploadBody(archivePath string) ([]byte, string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, "", fmt.Errorf("opening %s: %w", archivePath, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(archivePath))
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", archivePath, err)
	}
	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}
