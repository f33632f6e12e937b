package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/addonhub/addonhub/internal/api"
	"github.com/addonhub/addonhub/internal/config"
	"github.com/addonhub/addonhub/internal/pack"
	"github.com/addonhub/addonhub/internal/script"
	"github.com/addonhub/addonhub/internal/upload"
)

type panelServer struct {
	cfg *config.ServerConfig

	// scriptMu serializes install/remove script invocations so only one
	// filesystem mutation runs at a time.
	scriptMu sync.Mutex
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *panelServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.HealthResponse{Status: "healthy"})
}

// handleList scans the pack directories and returns the rendered inventory
// report. The scan is bounded by the configured timeout; exceeding it fails
// this request only.
func (s *panelServer) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, api.ListResponse{Success: false, Message: "method not allowed"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ScanTimeout())
	defer cancel()

	rep, err := pack.ScanInventory(ctx, s.cfg.DataDir)
	if err != nil {
		slog.Error("inventory scan failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, api.ListResponse{
			Success: false,
			Message: "inventory scan failed",
			Error:   err.Error(),
		})
		return
	}

	out := rep.Render()
	writeJSON(w, http.StatusOK, api.ListResponse{Success: true, Output: out, Packs: out})
}

// handleInstall stages an uploaded .mcaddon archive and hands it to the
// install script. On success the freshly installed resource pack is probed
// for its entity identifiers.
func (s *panelServer) handleInstall(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, api.InstallResponse{Success: false, Message: "method not allowed"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes())
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, api.InstallResponse{
			Success: false,
			Message: "no file uploaded",
			Error:   err.Error(),
		})
		return
	}
	defer file.Close()

	name := upload.SanitizeFilename(hdr.Filename)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, api.InstallResponse{Success: false, Message: "no file selected"})
		return
	}
	if !upload.Allowed(name) {
		writeJSON(w, http.StatusBadRequest, api.InstallResponse{
			Success: false,
			Message: "invalid file type, only .mcaddon files are allowed",
		})
		return
	}

	staged, sum, err := upload.Save(s.cfg.UploadDir, name, file)
	if err != nil {
		slog.Error("cannot stage upload", "file", name, "err", err)
		writeJSON(w, http.StatusInternalServerError, api.InstallResponse{
			Success: false,
			Message: "cannot stage upload",
			Error:   err.Error(),
		})
		return
	}
	defer os.Remove(staged)
	slog.Info("staged upload", "file", staged, "sha256", sum)

	if !s.scriptMu.TryLock() {
		writeJSON(w, http.StatusConflict, api.InstallResponse{
			Success: false,
			Message: "another install or removal is in progress, try again later",
		})
		return
	}
	defer s.scriptMu.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ScriptTimeout())
	defer cancel()

	res := script.Run(ctx, s.cfg.InstallScript, staged)
	if res.TimedOut {
		writeJSON(w, http.StatusInternalServerError, api.InstallResponse{
			Success: false,
			Message: fmt.Sprintf("failed to install %s", name),
			Error:   fmt.Sprintf("install script timed out after %s", s.cfg.ScriptTimeout()),
		})
		return
	}
	if !res.Success() {
		writeJSON(w, http.StatusInternalServerError, api.InstallResponse{
			Success: false,
			Message: fmt.Sprintf("failed to install %s", name),
			Error:   res.ErrorText(),
		})
		return
	}

	// The installed pack's basename equals the archive name without its
	// extension; its resource content lands under resource_packs/.
	addonName := strings.TrimSuffix(name, filepath.Ext(name))
	ids := pack.ScanEntities(filepath.Join(s.cfg.DataDir, pack.Resource.Dir(), addonName))

	writeJSON(w, http.StatusOK, api.InstallResponse{
		Success:     true,
		Message:     fmt.Sprintf("Successfully installed %s", name),
		Output:      res.Stdout,
		EntityInfo:  entityInfo(ids),
		EntityCount: len(ids),
		Entities:    ids,
	})
}

// entityInfo builds the human-readable summon hint for an install response.
func entityInfo(ids []string) string {
	switch len(ids) {
	case 0:
		return ""
	case 1:
		return "Summon with: /summon " + ids[0]
	}
	var b strings.Builder
	b.WriteString("Summon commands:")
	for _, id := range ids {
		b.WriteString("\n/summon " + id)
	}
	return b.String()
}

// handleRemove validates the removal payload and invokes the remove script
// with either "all" or "selective" plus the quoted pack names. Validation
// failures never spawn the script.
func (s *panelServer) handleRemove(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, api.RemoveResponse{Success: false, Message: "method not allowed"})
		return
	}

	var req api.RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.RemoveResponse{
			Success: false,
			Message: "invalid JSON payload",
			Error:   err.Error(),
		})
		return
	}

	if !req.Confirm {
		writeJSON(w, http.StatusBadRequest, api.RemoveResponse{Success: false, Message: "confirmation required"})
		return
	}

	var args []string
	switch {
	case req.RemoveAll:
		args = []string{"all"}
	case req.Packs != nil:
		if len(req.Packs) == 0 {
			writeJSON(w, http.StatusBadRequest, api.RemoveResponse{Success: false, Message: "no packs specified for removal"})
			return
		}
		quoted := make([]string, len(req.Packs))
		for i, p := range req.Packs {
			quoted[i] = `"` + p + `"`
		}
		args = []string{"selective", strings.Join(quoted, " ")}
	default:
		writeJSON(w, http.StatusBadRequest, api.RemoveResponse{
			Success: false,
			Message: `invalid request format, use "remove_all": true or "packs": [...]`,
		})
		return
	}

	if !s.scriptMu.TryLock() {
		writeJSON(w, http.StatusConflict, api.RemoveResponse{
			Success: false,
			Message: "another install or removal is in progress, try again later",
		})
		return
	}
	defer s.scriptMu.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ScriptTimeout())
	defer cancel()

	res := script.Run(ctx, s.cfg.RemoveScript, args...)
	if res.TimedOut {
		writeJSON(w, http.StatusInternalServerError, api.RemoveResponse{
			Success: false,
			Message: "failed to remove addons",
			Error:   fmt.Sprintf("remove script timed out after %s", s.cfg.ScriptTimeout()),
		})
		return
	}
	if !res.Success() {
		writeJSON(w, http.StatusInternalServerError, api.RemoveResponse{
			Success: false,
			Message: "failed to remove addons",
			Error:   res.ErrorText(),
		})
		return
	}

	writeJSON(w, http.StatusOK, api.RemoveResponse{
		Success: true,
		Message: "Successfully removed addons",
		Output:  res.Stdout,
	})
}
