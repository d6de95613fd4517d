// Package showcase plays a config.Scenario against the three creational
// pattern packages and reports what happened through a trace.Tracer.
package showcase

import (
	"errors"
	"fmt"

	"github.com/dyluth/creational/internal/config"
	"github.com/dyluth/creational/internal/connection"
	"github.com/dyluth/creational/internal/editor"
	"github.com/dyluth/creational/internal/notify"
	"github.com/dyluth/creational/internal/trace"
	"github.com/dyluth/creational/internal/ui"
)

// Name identifies one showcase
type Name string

const (
	FactoryMethod   Name = "factory-method"
	Singleton       Name = "singleton"
	AbstractFactory Name = "abstract-factory"
)

// All returns every showcase in run order
func All() []Name {
	return []Name{FactoryMethod, Singleton, AbstractFactory}
}

// Report summarises a run
type Report struct {
	Ran []Name

	// Deliveries is the number of notifications that reported success
	Deliveries int

	// QueryFailures holds every query rejected because the shared
	// connection was not open. These are reported, not fatal.
	QueryFailures []*connection.NotConnectedError

	// SameConnection is true when both handles resolved to one instance
	SameConnection bool

	Editors []ui.Platform
}

// Runner executes showcases
type Runner struct {
	scenario *config.Scenario
	tracer   *trace.Tracer
	shared   func(*trace.Tracer) *connection.Connection
}

// Option configures a Runner
type Option func(*Runner)

// WithConnections makes the Singleton showcase draw from h instead of the
// process-wide connection
func WithConnections(h *connection.Holder) Option {
	return func(r *Runner) {
		r.shared = h.Get
	}
}

// New creates a runner for scenario writing to t
func New(scenario *config.Scenario, t *trace.Tracer, opts ...Option) *Runner {
	r := &Runner{
		scenario: scenario,
		tracer:   t,
		shared:   connection.Shared,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll runs every showcase in order
func (r *Runner) RunAll() (*Report, error) {
	return r.Run(All()...)
}

// Run executes the named showcases in the order given
func (r *Runner) Run(names ...Name) (*Report, error) {
	report := &Report{}
	for _, name := range names {
		var err error
		switch name {
		case FactoryMethod:
			err = r.factoryMethod(report)
		case Singleton:
			err = r.singleton(report)
		case AbstractFactory:
			err = r.abstractFactory(report)
		default:
			err = fmt.Errorf("unknown showcase: %q", name)
		}
		if err != nil {
			return report, fmt.Errorf("%s showcase failed: %w", name, err)
		}
		report.Ran = append(report.Ran, name)
	}
	return report, nil
}

func (r *Runner) factoryMethod(report *Report) error {
	r.tracer.Heading("Factory Method Demo")

	cfg := r.scenario.Notifications
	for _, name := range cfg.Channels {
		ch, err := notify.ParseChannel(name)
		if err != nil {
			return err
		}
		creator, err := notify.CreatorFor(ch, r.tracer)
		if err != nil {
			return err
		}
		if notify.NewNotifier(creator).SendVia(cfg.Message, cfg.Recipient) {
			report.Deliveries++
		}
	}
	return nil
}

func (r *Runner) singleton(report *Report) error {
	r.tracer.Heading("Singleton Demo")

	first := r.shared(r.tracer)
	first.Connect()
	if err := r.runQueries(first, "first", report); err != nil {
		return err
	}

	second := r.shared(r.tracer)
	if err := r.runQueries(second, "second", report); err != nil {
		return err
	}

	report.SameConnection = first == second
	r.tracer.Named("showcase").Info(
		fmt.Sprintf("Same instance? %t", report.SameConnection),
		trace.F("first", first.ID()),
		trace.F("second", second.ID()),
	)

	first.Close()
	return nil
}

func (r *Runner) runQueries(conn *connection.Connection, handle string, report *Report) error {
	for _, q := range r.scenario.Connection.Queries {
		if q.Handle != handle {
			continue
		}
		err := conn.RunQuery(q.SQL)
		var notConnected *connection.NotConnectedError
		switch {
		case err == nil:
		case errors.As(err, &notConnected):
			report.QueryFailures = append(report.QueryFailures, notConnected)
		default:
			return err
		}
	}
	return nil
}

func (r *Runner) abstractFactory(report *Report) error {
	r.tracer.Heading("Abstract Factory Demo")

	narrator := r.tracer.Named("showcase")
	for _, ec := range r.scenario.Editors {
		p, err := ui.ParsePlatform(ec.Platform)
		if err != nil {
			return err
		}
		factory, err := ui.FactoryFor(p, r.tracer)
		if err != nil {
			return err
		}

		narrator.Info(fmt.Sprintf("Editor on %s:", p.DisplayName()), trace.F("platform", string(p)))
		e := editor.New(factory, r.tracer)
		for _, action := range ec.Actions {
			if err := perform(e, action); err != nil {
				return err
			}
		}
		report.Editors = append(report.Editors, e.Platform())
	}
	return nil
}

func perform(e *editor.Editor, action string) error {
	switch action {
	case "start":
		e.Start()
	case "open":
		e.OpenFile()
	case "save":
		e.SaveFile()
	case "menu":
		e.ChooseMenu()
	default:
		return fmt.Errorf("unknown editor action: %q", action)
	}
	return nil
}
