package client

import (
	"context"
	"sync"

	"factboard/internal/models"
)

// AllCategories selects the unfiltered list.
const AllCategories = "all"

// API is what the controller needs from the fact service.
type API interface {
	ListFacts(ctx context.Context) ([]models.Fact, error)
	ListFactsByCategory(ctx context.Context, category string) ([]models.Fact, error)
	CreateFact(ctx context.Context, input models.FactInput) (*models.Fact, error)
	Vote(ctx context.Context, id uint, kind models.VoteKind) (*models.Fact, error)
}

// Entry is a displayed fact. LocalKey is nonzero only for an optimistic
// create whose server id is not known yet; the real id is never guessed.
type Entry struct {
	models.Fact
	LocalKey int64
}

// Snapshot is an immutable copy of the controller state for rendering.
type Snapshot struct {
	Facts            []Entry
	Loading          bool
	SelectedCategory string
	FormVisible      bool
	Err              error
}

// Controller holds the displayed fact list and the UI flags. All state
// lives here, mutated only through its methods; a presentation layer
// renders snapshots and never writes back.
type Controller struct {
	mu sync.Mutex

	api      API
	facts    []Entry
	loading  bool
	selected string
	form     bool
	lastErr  error

	// fetchGen guards against stale in-flight list responses: only the
	// latest-triggered fetch may land its result.
	fetchGen     uint64
	nextLocalKey int64

	onChange func(Snapshot)
}

func NewController(api API) *Controller {
	return &Controller{api: api, selected: AllCategories}
}

// SetOnChange installs a hook invoked with a fresh snapshot after every
// state change.
func (ctl *Controller) SetOnChange(fn func(Snapshot)) {
	ctl.mu.Lock()
	ctl.onChange = fn
	ctl.mu.Unlock()
}

func (ctl *Controller) Snapshot() Snapshot {
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	return ctl.snapshotLocked()
}

func (ctl *Controller) snapshotLocked() Snapshot {
	facts := make([]Entry, len(ctl.facts))
	copy(facts, ctl.facts)
	return Snapshot{
		Facts:            facts,
		Loading:          ctl.loading,
		SelectedCategory: ctl.selected,
		FormVisible:      ctl.form,
		Err:              ctl.lastErr,
	}
}

func (ctl *Controller) notify() {
	ctl.mu.Lock()
	fn := ctl.onChange
	snap := ctl.snapshotLocked()
	ctl.mu.Unlock()
	if fn != nil {
		fn(snap)
	}
}

// ToggleForm flips the creation form and returns its new visibility.
func (ctl *Controller) ToggleForm() bool {
	ctl.mu.Lock()
	ctl.form = !ctl.form
	visible := ctl.form
	ctl.mu.Unlock()
	ctl.notify()
	return visible
}

// SelectCategory switches the filter and fetches the matching list. The
// call blocks for its own fetch; when selections overlap (callers on
// separate goroutines), the latest selection's result wins and earlier
// in-flight responses are dropped. On failure the previous list stays
// untouched and the error is surfaced; there is no automatic retry.
func (ctl *Controller) SelectCategory(ctx context.Context, category string) error {
	ctl.mu.Lock()
	ctl.selected = category
	ctl.fetchGen++
	gen := ctl.fetchGen
	ctl.loading = true
	ctl.mu.Unlock()
	ctl.notify()

	var (
		facts []models.Fact
		err   error
	)
	if category == AllCategories || category == "" {
		facts, err = ctl.api.ListFacts(ctx)
	} else {
		facts, err = ctl.api.ListFactsByCategory(ctx, category)
	}

	ctl.mu.Lock()
	if gen != ctl.fetchGen {
		// A newer selection started while this one was in flight.
		ctl.mu.Unlock()
		return nil
	}
	ctl.loading = false
	if err != nil {
		ctl.lastErr = err
	} else {
		entries := make([]Entry, len(facts))
		for i, f := range facts {
			entries[i] = Entry{Fact: f}
		}
		ctl.facts = entries
		ctl.lastErr = nil
	}
	ctl.mu.Unlock()
	ctl.notify()
	return err
}

// Refresh re-fetches the currently selected category.
func (ctl *Controller) Refresh(ctx context.Context) error {
	ctl.mu.Lock()
	category := ctl.selected
	ctl.mu.Unlock()
	return ctl.SelectCategory(ctx, category)
}

// SubmitFact validates, posts, and on acknowledgment prepends the new
// fact with zeroed counters. Nothing is applied before the server
// confirms, so a failure needs no rollback. When the server echoes the
// created record its id is used directly; otherwise the entry is held
// under a temporary local key until the next refresh.
func (ctl *Controller) SubmitFact(ctx context.Context, input models.FactInput) error {
	if err := input.Validate(); err != nil {
		ctl.setErr(err)
		return err
	}

	created, err := ctl.api.CreateFact(ctx, input)
	if err != nil {
		ctl.setErr(err)
		return err
	}

	ctl.mu.Lock()
	var entry Entry
	if created != nil {
		entry.Fact = *created
	} else {
		ctl.nextLocalKey++
		entry.LocalKey = ctl.nextLocalKey
		entry.Fact = models.Fact{
			Text:     input.Text,
			Source:   input.Source,
			Category: input.Category,
		}
	}
	ctl.facts = append([]Entry{entry}, ctl.facts...)
	ctl.form = false
	ctl.lastErr = nil
	ctl.mu.Unlock()
	ctl.notify()
	return nil
}

// CastVote casts one vote and, once the server acknowledges, bumps
// exactly that counter on the matching in-memory record. No re-fetch.
func (ctl *Controller) CastVote(ctx context.Context, id uint, kind models.VoteKind) error {
	if _, err := ctl.api.Vote(ctx, id, kind); err != nil {
		ctl.setErr(err)
		return err
	}

	ctl.mu.Lock()
	for i := range ctl.facts {
		if ctl.facts[i].LocalKey == 0 && ctl.facts[i].ID == id {
			kind.Bump(&ctl.facts[i].Fact)
			break
		}
	}
	ctl.lastErr = nil
	ctl.mu.Unlock()
	ctl.notify()
	return nil
}

func (ctl *Controller) setErr(err error) {
	ctl.mu.Lock()
	ctl.lastErr = err
	ctl.mu.Unlock()
	ctl.notify()
}
