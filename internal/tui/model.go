// Package tui renders the product browser screen. It owns no domain state:
// every user intent is dispatched to the store as an action, and the screen
// re-renders from the state snapshots the store publishes back.
package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/vitrine/internal/browse"
	"github.com/tinytelemetry/vitrine/internal/store"
)

// Section represents the focusable regions of the browser screen.
type Section int

const (
	SectionSidebar Section = iota // category sidebar
	SectionList                   // product list
)

// StateMsg carries a fresh state snapshot from the store into Bubble Tea.
type StateMsg browse.State

// stateBridge conflates store notifications into a latest-wins slot that a
// recurring tea.Cmd drains. The subscriber callback must not block, so it
// only swaps the snapshot and signals.
type stateBridge struct {
	mu     sync.Mutex
	latest browse.State
	dirty  chan struct{}
}

func newStateBridge() *stateBridge {
	return &stateBridge{dirty: make(chan struct{}, 1)}
}

func (b *stateBridge) publish(st browse.State) {
	b.mu.Lock()
	b.latest = st
	b.mu.Unlock()

	select {
	case b.dirty <- struct{}{}:
	default:
	}
}

// wait blocks until a new snapshot is available and delivers it as a StateMsg.
func (b *stateBridge) wait() tea.Cmd {
	return func() tea.Msg {
		<-b.dirty
		b.mu.Lock()
		st := b.latest
		b.mu.Unlock()
		return StateMsg(st)
	}
}

// BrowserModel is the Bubble Tea model for the product browser screen.
type BrowserModel struct {
	store  *store.Store
	bridge *stateBridge
	unsub  func()

	// Latest state snapshot; the single source of truth for rendering.
	st browse.State

	// Window dimensions
	width  int
	height int

	// Navigation
	activeSection Section
	sidebarCursor int // 0 = All, 1..n = categories
	listCursor    int

	// Inline search input
	searchInput  textinput.Model
	searchActive bool

	modalStack []Modal
	keys       KeyMap
}

// NewBrowserModel wires a browser screen to the given store.
func NewBrowserModel(st *store.Store) *BrowserModel {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search products by name..."
	searchInput.CharLimit = 80

	m := &BrowserModel{
		store:         st,
		bridge:        newStateBridge(),
		st:            st.State(),
		activeSection: SectionList,
		searchInput:   searchInput,
		keys:          DefaultKeyMap(),
	}
	m.unsub = st.Subscribe(m.bridge.publish)
	return m
}

// Init announces the screen and kicks off the first load.
func (m *BrowserModel) Init() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			m.store.Dispatch(browse.Appeared())
			m.store.Dispatch(browse.StartLoad())
			return nil
		},
		m.bridge.wait(),
	)
}

// PushModal pushes a modal onto the stack. Deduplicates by ID.
func (m *BrowserModel) PushModal(modal Modal) {
	for _, existing := range m.modalStack {
		if existing.ID() == modal.ID() {
			return
		}
	}
	m.modalStack = append(m.modalStack, modal)
}

// PopModal removes the topmost modal from the stack.
func (m *BrowserModel) PopModal() {
	if len(m.modalStack) > 0 {
		m.modalStack = m.modalStack[:len(m.modalStack)-1]
	}
}

// TopModal returns the topmost modal, or nil if the stack is empty.
func (m *BrowserModel) TopModal() Modal {
	if len(m.modalStack) == 0 {
		return nil
	}
	return m.modalStack[len(m.modalStack)-1]
}

// sidebarEntries returns the sidebar rows: "All" plus every category.
func (m *BrowserModel) sidebarEntries() []string {
	return append([]string{"All"}, m.st.Categories()...)
}

// clampCursors keeps both cursors inside the current state after a refresh
// changed the visible rows.
func (m *BrowserModel) clampCursors() {
	if n := len(m.st.FilteredItems()); m.listCursor >= n {
		m.listCursor = max(0, n-1)
	}
	if n := len(m.sidebarEntries()); m.sidebarCursor >= n {
		m.sidebarCursor = max(0, n-1)
	}
}
