package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

const (
	textHeader = "==================== mqscope audit log ===================="
	textFooter = "==========================================================="
)

// exportEntry fixes the JSON key set and order for exports. Fields are
// declared in sorted key order so the encoding is deterministic; timestamps
// render as ISO-8601 (RFC 3339 UTC).
type exportEntry struct {
	Action       Action `json:"action"`
	Actor        string `json:"actor,omitempty"`
	Detail       string `json:"detail,omitempty"`
	ID           string `json:"id"`
	QueueManager string `json:"queue_manager,omitempty"`
	Resource     string `json:"resource"`
	Timestamp    string `json:"timestamp"`
}

func toExportEntry(e Entry) exportEntry {
	return exportEntry{
		Action:       e.Action,
		Actor:        e.Actor,
		Detail:       e.Detail,
		ID:           e.ID,
		QueueManager: e.QueueManager,
		Resource:     e.Resource,
		Timestamp:    e.Timestamp.UTC().Format(time.RFC3339),
	}
}

// ExportJSON writes the log as an indented JSON array, most recent first.
// A write failure surfaces to the caller; the in-memory log is untouched
// either way.
func (l *Log) ExportJSON(w io.Writer) error {
	entries := l.Entries()
	out := make([]exportEntry, len(entries))
	for i, e := range entries {
		out[i] = toExportEntry(e)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding audit log: %w", err)
	}
	return nil
}

// ExportText writes a human-readable rendering with a fixed banner and a
// trailing total-count line.
func (l *Log) ExportText(w io.Writer) error {
	entries := l.Entries()
	if _, err := fmt.Fprintln(w, textHeader); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %-14s  %s", e.Timestamp.UTC().Format(time.RFC3339), e.Action, e.Resource)
		if e.QueueManager != "" {
			line += fmt.Sprintf("  [%s]", e.QueueManager)
		}
		if e.Detail != "" {
			line += "  " + e.Detail
		}
		if e.Actor != "" {
			line += "  by " + e.Actor
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing audit log: %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, textFooter); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Total entries: %d\n", len(entries)); err != nil {
		return fmt.Errorf("writing audit log: %w", err)
	}
	return nil
}

// ExportFile writes the log to path, as JSON when the extension is .json and
// as text otherwise.
func (l *Log) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if len(path) > 5 && path[len(path)-5:] == ".json" {
		err = l.ExportJSON(f)
	} else {
		err = l.ExportText(f)
	}
	if err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("flushing export file: %w", err)
	}
	return nil
}

// ParseJSON reads an exported JSON document back into entries, most recent
// first, for round-trip verification and external tooling.
func ParseJSON(r io.Reader) ([]Entry, error) {
	var raw []exportEntry
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding audit export: %w", err)
	}
	entries := make([]Entry, len(raw))
	for i, e := range raw {
		ts, err := time.Parse(time.RFC3339, e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", e.Timestamp, err)
		}
		entries[i] = Entry{
			ID:           e.ID,
			Timestamp:    ts,
			Action:       e.Action,
			Resource:     e.Resource,
			Detail:       e.Detail,
			QueueManager: e.QueueManager,
			Actor:        e.Actor,
		}
	}
	return entries, nil
}
