package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/holeops/adpause/internal/config"
	"github.com/holeops/adpause/internal/journal"
	"github.com/holeops/adpause/internal/logger"
	"github.com/holeops/adpause/internal/pihole"
	"github.com/holeops/adpause/internal/probe"
	"github.com/holeops/adpause/pkg/httpclient"
	"github.com/holeops/adpause/pkg/notifiers"
)

// ErrRefused reports that the appliance answered but rejected the request,
// typically because the auth key is wrong.
var ErrRefused = errors.New("appliance refused the request")

// App wires the Pi-hole client together with the journal, notifiers, and the
// optional admin-page probe, and runs one pause or resume against the
// appliance.
type App struct {
	cfg     *config.Config
	log     logger.Logger
	client  *pihole.Client
	journal journal.Journal
	fanout  *notifiers.Fanout
	prober  *probe.Prober
	host    string
}

// New builds the runtime from config. The appliance URL and key are checked
// here with the pihole validators so a bad configuration fails fast, before
// any network activity.
func New(ctx context.Context, cfg *config.Config, log logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if !pihole.ValidateAPIURL(cfg.PiholeURL) {
		return nil, fmt.Errorf("invalid pihole_url %q (need a scheme and host, e.g. http://pihole.local)", cfg.PiholeURL)
	}
	if !pihole.ValidateAPIKey(cfg.PiholeAPIKey) {
		return nil, fmt.Errorf("pihole_api_key must not be empty")
	}

	host := cfg.PiholeURL
	if u, err := url.Parse(cfg.PiholeURL); err == nil && u.Host != "" {
		host = u.Host
	}

	transport := httpclient.NewRestyClient(cfg.RequestTimeout)
	client := pihole.New(cfg.PiholeURL, cfg.PiholeAPIKey, transport)

	jnl, err := journal.NewJournal(cfg.JournalType, cfg.JournalPath, journal.Options{
		EntryTTL:        cfg.JournalTTL,
		CleanupInterval: cfg.JournalCleanup,
	})
	if err != nil {
		return nil, fmt.Errorf("init journal: %w", err)
	}
	log.InfoObj("journal initialized", "journal_config", map[string]any{
		"type": cfg.JournalType,
		"path": cfg.JournalPath,
	})

	var fanout *notifiers.Fanout
	if cfg.NotifiersFile != "" {
		reg, err := notifiers.LoadRegistry(cfg.NotifiersFile)
		if err != nil {
			jnl.Close()
			return nil, fmt.Errorf("load notifiers registry: %w", err)
		}
		enabled := reg.Enabled()
		built, err := notifiers.BuildAll(ctx, notifiers.DefaultRegistry(), enabled, log)
		if err != nil {
			jnl.Close()
			return nil, fmt.Errorf("build notifiers: %w", err)
		}
		fanout = notifiers.NewFanout(built)

		summaries := make([]map[string]string, 0, len(enabled))
		for _, nCfg := range enabled {
			summaries = append(summaries, map[string]string{
				"id":   nCfg.ID,
				"type": nCfg.Type,
			})
		}
		log.InfoObj("notifiers registry loaded", "notifiers_meta", map[string]any{
			"count":     len(summaries),
			"notifiers": summaries,
		})
	}

	var prober *probe.Prober
	if cfg.ProbeAdminPage {
		prober = probe.New(cfg.PiholeURL, transport)
	}

	return &App{
		cfg:     cfg,
		log:     log,
		client:  client,
		journal: jnl,
		fanout:  fanout,
		prober:  prober,
		host:    host,
	}, nil
}

// Pause disables ad blocking for the configured window. It returns nil only
// when the appliance accepted the request; a refusal maps to ErrRefused so
// the caller can exit non-zero.
func (a *App) Pause(ctx context.Context) error {
	a.probeAppliance(ctx)

	ok, err := a.client.DisableAdblocker(ctx, a.cfg.DisableSeconds)
	a.recordOutcome(ctx, notifiers.ActionPause, a.cfg.DisableSeconds, ok)
	if err != nil {
		return fmt.Errorf("disable ad blocking: %w", err)
	}
	if !ok {
		return fmt.Errorf("disable ad blocking: %w", ErrRefused)
	}

	a.log.InfoObj("ad blocking paused", "pause_meta", map[string]any{
		"host":             a.host,
		"duration_seconds": a.cfg.DisableSeconds,
	})
	return nil
}

// Resume re-enables ad blocking, ending any active pause window early.
func (a *App) Resume(ctx context.Context) error {
	a.probeAppliance(ctx)

	ok, err := a.client.EnableAdblocker(ctx)
	a.recordOutcome(ctx, notifiers.ActionResume, 0, ok)
	if err != nil {
		return fmt.Errorf("enable ad blocking: %w", err)
	}
	if !ok {
		return fmt.Errorf("enable ad blocking: %w", ErrRefused)
	}

	a.log.InfoObj("ad blocking resumed", "resume_meta", map[string]any{
		"host": a.host,
	})
	return nil
}

// Close releases the journal.
func (a *App) Close() {
	if a == nil || a.journal == nil {
		return
	}
	if err := a.journal.Close(); err != nil {
		a.log.ErrorObj("journal close failed", "error", err)
	}
}

// probeAppliance logs what the admin dashboard reports about itself. Probe
// failures never block the pause.
func (a *App) probeAppliance(ctx context.Context) {
	if a.prober == nil {
		return
	}
	info, err := a.prober.Probe(ctx)
	if err != nil {
		a.log.WarnObj("admin page probe failed", "probe_error", err.Error())
		return
	}
	a.log.InfoObj("appliance identified", "appliance_info", map[string]any{
		"hostname":     info.Hostname,
		"core_version": info.CoreVersion,
	})
}

// recordOutcome journals the attempt and fans the event out to notifiers.
// Neither is allowed to fail the run.
func (a *App) recordOutcome(ctx context.Context, action string, durationSeconds float64, succeeded bool) {
	evt := notifiers.NewEvent(action, a.host, durationSeconds, succeeded)

	if err := a.journal.Record(journal.Entry{
		Action:          action,
		DurationSeconds: durationSeconds,
		Host:            a.host,
		Succeeded:       succeeded,
		At:              evt.OccurredAt,
	}); err != nil {
		a.log.ErrorObj("journal record failed", "journal_error", err.Error())
	}

	if a.fanout == nil || a.fanout.Size() == 0 {
		return
	}
	delivered, err := a.fanout.Notify(ctx, evt)
	if err != nil {
		a.log.ErrorObj("notifier delivery incomplete", "notify_error", map[string]any{
			"delivered": delivered,
			"error":     err.Error(),
		})
	}
}
