package slogtint

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

const previewProfile = "preview"

// Preview writes one styled record for every threshold of p to w, lowest level first.
// A non-empty name is printed as a heading.
func Preview(w io.Writer, name string, p Profile) error {
	if name != "" {
		if _, err := fmt.Fprintf(w, "*** Testing color profile '%s' ***\n", name); err != nil {
			return err
		}
	}

	h := NewHandler(NewStreamHandler(w, &slog.HandlerOptions{Level: LevelNotSet}), &HandlerOptions{
		Profile:  previewProfile,
		Profiles: Profiles{previewProfile: p},
	})

	ctx := context.Background()
	for _, lvl := range p.Thresholds() {
		msg := fmt.Sprintf("Logging message of level %d (%s)", lvl, LevelName(lvl))
		if lvl == LevelNotSet {
			msg = "Logging message of level " + LogLevelNotSet
		}
		if err := h.Handle(ctx, slog.NewRecord(time.Time{}, lvl, msg, 0)); err != nil {
			return err
		}
	}
	return nil
}

// PreviewAll previews every profile of ps in name order.
func PreviewAll(w io.Writer, ps Profiles) error {
	for _, name := range ps.Names() {
		if err := Preview(w, name, ps[name]); err != nil {
			return err
		}
	}
	return nil
}
