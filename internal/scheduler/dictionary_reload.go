package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/brainstorm/internal/dictionary"
	"github.com/MrSnakeDoc/brainstorm/internal/logger"
	"github.com/MrSnakeDoc/brainstorm/internal/sources/wordlist"
)

var errEmptyWordlist = errors.New("word list is empty")

// ReloadStatus describes the last reload attempt.
type ReloadStatus struct {
	Source    string    `json:"source"`
	Words     int       `json:"words"`
	LoadedAt  time.Time `json:"loadedAt"`
	LastError string    `json:"lastError,omitempty"`
}

// DictionaryReloader loads the word list into the shared dictionary holder,
// once on start and then on every tick or manual trigger.
type DictionaryReloader struct {
	loader        *wordlist.Loader
	holder        *dictionary.Holder
	logger        logger.Logger
	interval      time.Duration
	manualTrigger <-chan struct{}
	stopCh        chan struct{}
	stopOnce      sync.Once

	mu     sync.RWMutex
	status ReloadStatus
}

// NewDictionaryReloader creates a reloader. An interval of 0 disables
// periodic reloads; manual triggers still work.
func NewDictionaryReloader(
	wordlistFile string,
	holder *dictionary.Holder,
	log logger.Logger,
	interval time.Duration,
	manualTrigger <-chan struct{},
) *DictionaryReloader {
	loader := wordlist.NewLoader(wordlistFile)
	return &DictionaryReloader{
		loader:        loader,
		holder:        holder,
		logger:        log.Named("dictionary"),
		interval:      interval,
		manualTrigger: manualTrigger,
		stopCh:        make(chan struct{}),
		status:        ReloadStatus{Source: loader.Source()},
	}
}

// Start loads the dictionary synchronously, then keeps it fresh in the
// background until Stop or ctx is done.
func (dr *DictionaryReloader) Start(ctx context.Context) error {
	if err := dr.Reload(ctx); err != nil {
		return fmt.Errorf("initial dictionary load failed: %w", err)
	}

	go dr.loop(ctx)
	return nil
}

func (dr *DictionaryReloader) loop(ctx context.Context) {
	// nil channel never fires when periodic reloads are disabled
	var tick <-chan time.Time
	if dr.interval > 0 {
		ticker := time.NewTicker(dr.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case <-tick:
			dr.reloadLogged(ctx)
		case <-dr.manualTrigger:
			dr.logger.Info("manual reload triggered")
			dr.reloadLogged(ctx)
		case <-dr.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (dr *DictionaryReloader) reloadLogged(ctx context.Context) {
	if err := dr.Reload(ctx); err != nil {
		dr.logger.Error("failed to reload dictionary, keeping previous snapshot",
			logger.Error(err))
	}
}

// Stop stops the background loop. Safe to call more than once.
func (dr *DictionaryReloader) Stop() {
	dr.stopOnce.Do(func() { close(dr.stopCh) })
}

// Reload reads the word list and publishes a new dictionary. On failure the
// previous dictionary stays in place.
func (dr *DictionaryReloader) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	words, err := dr.loader.Load()
	if err == nil && len(words) == 0 {
		err = errEmptyWordlist
	}
	if err != nil {
		dr.setStatus(func(s *ReloadStatus) { s.LastError = err.Error() })
		return fmt.Errorf("failed to load word list from %s: %w", dr.loader.Source(), err)
	}

	dict := dictionary.New(words)
	dr.holder.Store(dict)

	dr.setStatus(func(s *ReloadStatus) {
		s.Words = dict.Size()
		s.LoadedAt = time.Now()
		s.LastError = ""
	})

	dr.logger.Info("dictionary loaded",
		logger.String("source", dr.loader.Source()),
		logger.Int("words", dict.Size()))
	return nil
}

// Status returns a copy of the last reload outcome.
func (dr *DictionaryReloader) Status() ReloadStatus {
	dr.mu.RLock()
	defer dr.mu.RUnlock()
	return dr.status
}

func (dr *DictionaryReloader) setStatus(fn func(*ReloadStatus)) {
	dr.mu.Lock()
	fn(&dr.status)
	dr.mu.Unlock()
}
