package surface

import (
	"sync"

	"github.com/go-collage/collage/pkg/span"
)

// Value is the editing state captured from the surface on each event: the
// flat text plus the selection wrapped into logical offsets. The platform's
// live selection object is read exactly once per event and never consulted
// again; every consumer works from this value.
type Value struct {
	Text      string
	Selection span.Selection
}

// Controller carries the current editing value between the surface and the
// span model and notifies listeners when it changes.
type Controller struct {
	value          Value
	listeners      map[int]func()
	nextListenerID int
	mu             sync.RWMutex
}

// NewController creates a controller with the given initial text and the
// caret parked at the end.
func NewController(text string) *Controller {
	return &Controller{
		value: Value{
			Text:      text,
			Selection: span.Collapsed(len(text)),
		},
		listeners: make(map[int]func()),
	}
}

// Text returns the current text content.
func (c *Controller) Text() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.Text
}

// SetText sets the text content, clamping the selection to the new length.
func (c *Controller) SetText(text string) {
	c.mu.Lock()
	c.value.Text = text
	c.value.Selection = c.value.Selection.Clamp(len(text))
	c.mu.Unlock()
	c.notifyListeners()
}

// Selection returns the current selection.
func (c *Controller) Selection() span.Selection {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value.Selection
}

// SetSelection sets the selection.
func (c *Controller) SetSelection(sel span.Selection) {
	c.mu.Lock()
	c.value.Selection = sel
	c.mu.Unlock()
	c.notifyListeners()
}

// Value returns the complete editing value.
func (c *Controller) Value() Value {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

// SetValue sets the complete editing value.
func (c *Controller) SetValue(value Value) {
	c.mu.Lock()
	c.value = value
	c.mu.Unlock()
	c.notifyListeners()
}

// Clear empties the text.
func (c *Controller) Clear() {
	c.SetText("")
}

// AddListener adds a callback invoked whenever the value changes.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	c.mu.Lock()
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// notifyListeners calls all registered listeners.
func (c *Controller) notifyListeners() {
	c.mu.RLock()
	listeners := make([]func(), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
