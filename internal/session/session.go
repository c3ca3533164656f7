// Package session owns the menu state seen by the shell. Callers send
// commands; the session applies them to the store and returns the view the
// shell should render, including a one-line notice describing what changed.
package session

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mesh-intelligence/maestro/internal/logging"
	"github.com/mesh-intelligence/maestro/internal/menu"
	"github.com/mesh-intelligence/maestro/internal/metrics"
	"github.com/mesh-intelligence/maestro/pkg/types"
)

// Command errors. The menu is unchanged when one is returned.
var (
	ErrDuplicateID    = errors.New("an item with this ID is already on the menu")
	ErrUnknownItem    = errors.New("no item with this ID is on the menu")
	ErrUnknownCommand = errors.New("unknown command")
)

// ViewState is everything the shell needs to render the menu.
type ViewState struct {
	Items      []types.MenuItem      `json:"items"`      // Filtered view.
	TotalItems int                   `json:"totalItems"` // Size of the unfiltered menu.
	Summary    types.Summary         `json:"summary"`    // Of Items.
	Filter     types.FilterSelection `json:"-"`
	Courses    []types.Course        `json:"filter"`
	Notice     string                `json:"notice,omitempty"`
}

// Session is the single owner of the menu and the active filter.
// It is not safe for concurrent use.
type Session struct {
	store   types.Store
	filter  types.FilterSelection
	log     logrus.FieldLogger
	metrics metrics.Recorder
	newID   func() (string, error)
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for command tracing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) { s.log = log }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(s *Session) { s.metrics = r }
}

// WithIDGenerator overrides the ID generator used by AddItem.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(s *Session) { s.newID = fn }
}

// New creates a session over store with no active filter.
func New(store types.Store, opts ...Option) *Session {
	s := &Session{
		store:   store,
		log:     logging.Discard(),
		metrics: metrics.Nop{},
		newID:   NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics.Items(len(store.All()))
	return s
}

// NewID returns a time-ordered UUID v7 string.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	return id.String(), nil
}

// Store returns the underlying store.
func (s *Session) Store() types.Store {
	return s.store
}

// Filter returns the active course selection.
func (s *Session) Filter() types.FilterSelection {
	return s.filter
}

// Get returns the item with the given ID from the full menu.
func (s *Session) Get(id string) (types.MenuItem, bool) {
	return s.store.Get(id)
}

// View returns the current view without a notice.
func (s *Session) View() ViewState {
	return s.view(s.store.All(), "")
}

// Apply executes cmd and returns the resulting view. On error the menu and
// filter are unchanged and the returned view reflects the current state.
func (s *Session) Apply(cmd Command) (ViewState, error) {
	var (
		items   []types.MenuItem
		notice  string
		outcome = metrics.OutcomeApplied
		err     error
	)

	switch c := cmd.(type) {
	case AddItem:
		items, notice, err = s.add(c.Item)
	case EditItem:
		items, notice, err = s.edit(c.Item)
	case SaveItem:
		items, notice = s.save(c.Item)
	case RemoveItem:
		items, notice = s.remove(c.ID)
		if notice == "" {
			outcome = metrics.OutcomeNoop
		}
	case ApplyFilter:
		s.filter = types.NewFilterSelection(c.Courses...)
		items = s.store.All()
		notice = filterNotice(s.filter)
	case nil:
		err = ErrUnknownCommand
	default:
		err = fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}

	kind := "unknown"
	if cmd != nil {
		kind = cmd.kind()
	}
	if err != nil {
		s.metrics.Command(kind, metrics.OutcomeRejected)
		s.log.WithField("command", kind).WithError(err).Debug("command rejected")
		return s.View(), err
	}

	s.metrics.Command(kind, outcome)
	s.metrics.Items(len(items))
	s.log.WithFields(logrus.Fields{
		"command": kind,
		"outcome": outcome,
		"items":   len(items),
	}).Debug("command applied")

	return s.view(items, notice), nil
}

func (s *Session) add(item types.MenuItem) ([]types.MenuItem, string, error) {
	if item.ID == "" {
		id, err := s.newID()
		if err != nil {
			return nil, "", err
		}
		item.ID = id
	} else if _, ok := s.store.Get(item.ID); ok {
		return nil, "", fmt.Errorf("%w: %s", ErrDuplicateID, item.ID)
	}
	return s.store.AddOrUpdate(item), addedNotice(item), nil
}

func (s *Session) edit(item types.MenuItem) ([]types.MenuItem, string, error) {
	if item.ID == "" {
		return nil, "", types.ErrInvalidID
	}
	if _, ok := s.store.Get(item.ID); !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownItem, item.ID)
	}
	return s.store.AddOrUpdate(item), updatedNotice(item), nil
}

func (s *Session) save(item types.MenuItem) ([]types.MenuItem, string) {
	_, existed := s.store.Get(item.ID)
	items := s.store.AddOrUpdate(item)
	if existed {
		return items, updatedNotice(item)
	}
	return items, addedNotice(item)
}

func (s *Session) remove(id string) ([]types.MenuItem, string) {
	item, ok := s.store.Get(id)
	items := s.store.Remove(id)
	if !ok {
		return items, ""
	}
	return items, fmt.Sprintf("Menu item '%s' removed.", item.DishName)
}

func (s *Session) view(all []types.MenuItem, notice string) ViewState {
	visible := menu.Filter(all, s.filter)
	return ViewState{
		Items:      visible,
		TotalItems: len(all),
		Summary:    menu.Summarize(visible),
		Filter:     s.filter,
		Courses:    s.filter.Courses(),
		Notice:     notice,
	}
}

func addedNotice(item types.MenuItem) string {
	return fmt.Sprintf("Menu item '%s' added to the menu.", item.DishName)
}

func updatedNotice(item types.MenuItem) string {
	return fmt.Sprintf("Menu item '%s' updated.", item.DishName)
}

func filterNotice(sel types.FilterSelection) string {
	if sel.Empty() {
		return "Showing all menu items."
	}
	return fmt.Sprintf("Showing %d course(s).", sel.Len())
}
