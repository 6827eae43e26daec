package testing

import (
	"slices"
	"sync"

	"github.com/go-drift/tabscroll/pkg/errors"
	"github.com/go-drift/tabscroll/pkg/tabscroll"
)

// Recorder captures widget callbacks and reported errors.
type Recorder struct {
	mu       sync.Mutex
	changed  []int
	scrolled []int
	errs     []*errors.Error
}

// Callbacks returns callbacks that record into r.
func (r *Recorder) Callbacks() tabscroll.Callbacks {
	return tabscroll.Callbacks{
		OnPageChanged: func(index int) {
			r.mu.Lock()
			r.changed = append(r.changed, index)
			r.mu.Unlock()
		},
		OnPageScrolled: func(index int) {
			r.mu.Lock()
			r.scrolled = append(r.scrolled, index)
			r.mu.Unlock()
		},
	}
}

// HandleError implements errors.Handler.
func (r *Recorder) HandleError(err *errors.Error) {
	r.mu.Lock()
	r.errs = append(r.errs, err)
	r.mu.Unlock()
}

// Changed returns every OnPageChanged index in order.
func (r *Recorder) Changed() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.changed)
}

// Scrolled returns every OnPageScrolled index in order.
func (r *Recorder) Scrolled() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.scrolled)
}

// Errors returns every reported error in order.
func (r *Recorder) Errors() []*errors.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.errs)
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changed, r.scrolled, r.errs = nil, nil, nil
}
