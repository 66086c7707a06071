package tui

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flixstream/flix/internal/admin"
	"github.com/flixstream/flix/internal/domain"
	"github.com/flixstream/flix/internal/service"
	"github.com/flixstream/flix/internal/tui/components"
)

// View identifies which screen owns the body of the terminal
type View int

const (
	ViewBrowse View = iota
	ViewSearch
	ViewFilter
	ViewAdmin
	ViewHelp
)

const statusDisplayDuration = 4 * time.Second

// searchSession holds the state of the remote search. seq is a request
// counter: every issued request carries the current value, and a response is
// committed only if its sequence still matches, so a slow older response can
// never overwrite a newer one.
type searchSession struct {
	query   string
	loading bool
	results []domain.ContentItem
	seq     int
}

func (s *searchSession) clear() {
	s.query = ""
	s.loading = false
	s.results = nil
	s.seq++ // orphan any in-flight request
}

func (s searchSession) active() bool {
	return s.query != "" || s.loading
}

// Model is the root application model. It owns all view state; child
// components render from it and report intents back through messages.
type Model struct {
	catalogSvc *service.CatalogService
	adminSvc   *admin.Service
	filterSvc  *service.FilterService
	store      domain.AdminStore
	userID     string
	logger     *slog.Logger
	keys       KeyMap

	width  int
	height int

	view     View
	prevView View

	collections map[domain.CollectionKey]domain.Collection
	pending     int // collection fetches still in flight
	category    domain.CategoryFilter

	search    searchSession
	searchBar components.SearchBar
	searchSel int

	filterBar     components.SearchBar
	filterResults []service.FilterResult
	filterSel     int

	rowIndex int
	colIndex int

	// selected is required for the player to be open; closing the player
	// clears both together
	selected *domain.ContentItem
	player   Player

	adminPanel components.AdminPanel

	status        string
	statusIsError bool
	spinnerFrame  int
}

// Options carries the wired services into the model
type Options struct {
	Catalog *service.CatalogService
	Admin   *admin.Service
	Store   domain.AdminStore
	UserID  string
	Logger  *slog.Logger
}

// NewModel creates the root model
func NewModel(opts Options) Model {
	filterBar := components.NewSearchBar()

	return Model{
		catalogSvc:  opts.Catalog,
		adminSvc:    opts.Admin,
		filterSvc:   service.NewFilterService(),
		store:       opts.Store,
		userID:      opts.UserID,
		logger:      opts.Logger,
		keys:        DefaultKeyMap(),
		view:        ViewBrowse,
		collections: make(map[domain.CollectionKey]domain.Collection),
		pending:     len(domain.CollectionOrder),
		category:    domain.FilterAll,
		searchBar:   components.NewSearchBar(),
		filterBar:   filterBar,
		player:      NewPlayer(),
		adminPanel:  components.NewAdminPanel(),
	}
}

// Init starts the initial collection fetches
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		LoadAllCollectionsCmd(m.catalogSvc),
		TickCmd(120*time.Millisecond),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchBar.SetWidth(msg.Width)
		m.filterBar.SetWidth(msg.Width)
		m.player.SetSize(msg.Width, msg.Height)
		m.adminPanel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.spinnerFrame++
		m.searchBar.Tick()
		if m.search.loading || m.pending > 0 {
			return m, TickCmd(120 * time.Millisecond)
		}
		return m, nil

	case CollectionLoadedMsg:
		m.collections[msg.Collection.Key] = msg.Collection
		m.filterSvc.IndexCollection(msg.Collection)
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case CollectionFailedMsg:
		// Tolerated: the row is simply absent. Only search failures are
		// surfaced to the user.
		if m.logger != nil {
			m.logger.Warn("collection load failed", "key", msg.Key, "error", msg.Err)
		}
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case SearchResultsMsg:
		if msg.Seq != m.search.seq {
			return m, nil // stale response
		}
		m.search.loading = false
		m.search.results = msg.Results
		m.searchSel = 0
		m.searchBar.SetLoading(false)
		return m, nil

	case SearchFailedMsg:
		if msg.Seq != m.search.seq {
			return m, nil
		}
		m.search.loading = false
		m.search.results = nil
		m.searchBar.SetLoading(false)
		return m.setStatus("Search failed: "+msg.Err.Error(), true)

	case PlayerTickMsg:
		return m, m.player.HandleTick(msg)

	case HideControlsMsg:
		m.player.HandleHideControls(msg)
		return m, nil

	case ScrubDoneMsg:
		return m, m.player.HandleScrubDone(msg)

	case AdminLoadedMsg:
		if msg.Dashboard != nil {
			m.adminPanel.SetDashboard(*msg.Dashboard)
		}
		return m, nil

	case AdminDeniedMsg:
		m.adminPanel.SetDenied()
		return m, nil

	case AdminUpdatedMsg:
		var cmd tea.Cmd
		m, cmd = m.setStatus(msg.Message, false)
		m.adminPanel.SetLoading(true)
		return m, tea.Batch(cmd, LoadAdminCmd(m.adminSvc, m.userID))

	case ErrMsg:
		if m.logger != nil {
			m.logger.Error("operation failed", "context", msg.Context, "error", msg.Err)
		}
		return m.setStatus(msg.Error(), true)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.status = ""
		m.statusIsError = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The player overlay captures all input while open
	if m.player.IsOpen() {
		return m.handlePlayerKey(msg)
	}

	// Text inputs capture everything except their exit keys
	if m.searchBar.Focused() {
		return m.handleSearchInput(msg)
	}
	if m.filterBar.Focused() {
		return m.handleFilterInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		if m.view == ViewHelp {
			m.view = m.prevView
		} else {
			m.prevView = m.view
			m.view = ViewHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.view = ViewSearch
		return m, m.searchBar.Show()

	case key.Matches(msg, m.keys.Filter):
		if m.view == ViewBrowse {
			m.view = ViewFilter
			m.filterResults = nil
			m.filterSel = 0
			return m, m.filterBar.Show()
		}
		return m, nil

	case key.Matches(msg, m.keys.Category):
		if m.view == ViewBrowse {
			m.requestCategory(nextFilter(m.category))
		}
		return m, nil

	case key.Matches(msg, m.keys.Admin):
		return m.openAdmin()

	case key.Matches(msg, m.keys.Back):
		return m.handleBack()
	}

	switch m.view {
	case ViewBrowse:
		return m.handleBrowseKey(msg)
	case ViewSearch:
		return m.handleResultsKey(msg)
	case ViewFilter:
		return m.handleFilterResultsKey(msg)
	case ViewAdmin:
		return m.handleAdminKey(msg)
	}
	return m, nil
}

func (m Model) handlePlayerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		return m.closePlayer()
	case key.Matches(msg, m.keys.Play), key.Matches(msg, m.keys.Select):
		return m, m.player.TogglePlay()
	case key.Matches(msg, m.keys.Mute):
		return m, m.player.ToggleMute()
	case key.Matches(msg, m.keys.Left):
		return m, m.player.Scrub(false)
	case key.Matches(msg, m.keys.Right):
		return m, m.player.Scrub(true)
	}
	return m, nil
}

// handleSearchInput runs while the search bar owns the keyboard. Every
// keystroke that changes the trimmed query issues a new request; blank
// queries clear the session without touching the network.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.searchBar.Hide()
		m.search.clear()
		m.view = ViewBrowse
		return m, nil
	case key.Matches(msg, m.keys.Select):
		// Commit: move focus to the results
		if len(m.search.results) > 0 {
			m.searchBar.Blur()
		}
		return m, nil
	}

	before := m.searchBar.Query()
	cmd := m.searchBar.Update(msg)
	after := m.searchBar.Query()
	if after == before {
		return m, cmd
	}
	searchCmd := m.requestSearch(after)
	return m, tea.Batch(cmd, searchCmd)
}

func (m Model) handleFilterInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.filterBar.Hide()
		m.filterResults = nil
		m.view = ViewBrowse
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if len(m.filterResults) > 0 {
			m.filterBar.Blur()
		}
		return m, nil
	}

	cmd := m.filterBar.Update(msg)
	m.filterResults = m.filterSvc.Filter(m.filterBar.Query())
	m.filterSel = 0
	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.VisibleCollections()
	if len(rows) == 0 {
		return m, nil
	}
	if m.rowIndex >= len(rows) {
		m.rowIndex = len(rows) - 1
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.rowIndex > 0 {
			m.rowIndex--
			m.clampCol(rows)
		}
	case key.Matches(msg, m.keys.Down):
		if m.rowIndex < len(rows)-1 {
			m.rowIndex++
			m.clampCol(rows)
		}
	case key.Matches(msg, m.keys.Left):
		if m.colIndex > 0 {
			m.colIndex--
		}
	case key.Matches(msg, m.keys.Right):
		if m.colIndex < len(rows[m.rowIndex].Items)-1 {
			m.colIndex++
		}
	case key.Matches(msg, m.keys.Info):
		return m.selectItem(rows[m.rowIndex].Items[m.colIndex])
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Play):
		item := rows[m.rowIndex].Items[m.colIndex]
		return m.playItem(item)
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.search.results) == 0 {
		return m, nil
	}
	cols := components.GridColumns(m.width)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.searchSel-cols >= 0 {
			m.searchSel -= cols
		} else {
			return m, m.searchBar.Focus()
		}
	case key.Matches(msg, m.keys.Down):
		if m.searchSel+cols < len(m.search.results) {
			m.searchSel += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.searchSel > 0 {
			m.searchSel--
		}
	case key.Matches(msg, m.keys.Right):
		if m.searchSel < len(m.search.results)-1 {
			m.searchSel++
		}
	case key.Matches(msg, m.keys.Info):
		return m.selectItem(m.search.results[m.searchSel])
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Play):
		return m.playItem(m.search.results[m.searchSel])
	}
	return m, nil
}

func (m Model) handleFilterResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.filterResults) == 0 {
		return m, nil
	}
	cols := components.GridColumns(m.width)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.filterSel-cols >= 0 {
			m.filterSel -= cols
		} else {
			return m, m.filterBar.Focus()
		}
	case key.Matches(msg, m.keys.Down):
		if m.filterSel+cols < len(m.filterResults) {
			m.filterSel += cols
		}
	case key.Matches(msg, m.keys.Left):
		if m.filterSel > 0 {
			m.filterSel--
		}
	case key.Matches(msg, m.keys.Right):
		if m.filterSel < len(m.filterResults)-1 {
			m.filterSel++
		}
	case key.Matches(msg, m.keys.Info):
		return m.selectItem(m.filterResults[m.filterSel].Item)
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Play):
		return m.playItem(m.filterResults[m.filterSel].Item)
	}
	return m, nil
}

func (m Model) handleAdminKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.adminPanel.MoveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.adminPanel.MoveCursor(1)
	case key.Matches(msg, m.keys.Tab):
		m.adminPanel.NextTab()
	case key.Matches(msg, m.keys.ShiftTab):
		m.adminPanel.PrevTab()
	case key.Matches(msg, m.keys.Select):
		if u, ok := m.adminPanel.SelectedUser(); ok {
			return m, ToggleUserRoleCmd(m.adminSvc, m.userID, u.ID)
		}
		if c, ok := m.adminPanel.SelectedContent(); ok {
			return m, ToggleFeaturedCmd(m.adminSvc, m.userID, c)
		}
	}
	return m, nil
}

func (m Model) handleBack() (tea.Model, tea.Cmd) {
	switch m.view {
	case ViewSearch:
		m.searchBar.Hide()
		m.search.clear()
		m.view = ViewBrowse
	case ViewFilter:
		m.filterBar.Hide()
		m.filterResults = nil
		m.view = ViewBrowse
	case ViewAdmin:
		m.adminPanel.Reset()
		m.view = ViewBrowse
	case ViewHelp:
		m.view = m.prevView
	}
	return m, nil
}

func (m *Model) openAdmin() (tea.Model, tea.Cmd) {
	if m.adminSvc == nil {
		return m.setStatus("Admin panel requires a database connection", true)
	}
	m.view = ViewAdmin
	m.adminPanel.Reset()
	m.adminPanel.SetLoading(true)
	return *m, LoadAdminCmd(m.adminSvc, m.userID)
}

// requestCategory switches the browse filter. Switching is mutually
// exclusive with searching: any live search session is abandoned.
func (m *Model) requestCategory(f domain.CategoryFilter) {
	if f == m.category {
		return
	}
	m.category = f
	m.search.clear()
	m.searchBar.Hide()
	m.rowIndex = 0
	m.colIndex = 0
	m.view = ViewBrowse
}

// requestSearch issues a search for the trimmed query. A blank query clears
// the session without a network call. Starting a search resets the category
// filter, mirroring how a category switch abandons the search.
func (m *Model) requestSearch(query string) tea.Cmd {
	if query == "" {
		m.search.clear()
		m.searchBar.SetLoading(false)
		return nil
	}
	m.category = domain.FilterAll
	m.search.seq++
	m.search.query = query
	m.search.loading = true
	m.searchBar.SetLoading(true)
	return tea.Batch(
		SearchCmd(m.catalogSvc, query, m.search.seq),
		TickCmd(120*time.Millisecond),
	)
}

// selectItem marks an item as the current selection without starting
// playback
func (m Model) selectItem(item domain.ContentItem) (tea.Model, tea.Cmd) {
	m.selected = &item
	return m.setStatus("Selected: "+item.DisplayTitle(), false)
}

// playItem sets the selection and opens the player for it
func (m Model) playItem(item domain.ContentItem) (tea.Model, tea.Cmd) {
	m.selected = &item
	return m, m.player.Open(item)
}

// closePlayer shuts the overlay and clears the selection with it, recording
// watch progress first when a database is connected.
func (m Model) closePlayer() (tea.Model, tea.Cmd) {
	var progressCmd tea.Cmd
	if m.store != nil && m.player.Item() != nil {
		progressCmd = RecordProgressCmd(
			m.store,
			m.userID,
			strconv.Itoa(m.player.Item().ID),
			int(m.player.Position().Seconds()),
		)
	}
	m.player.Close()
	m.selected = nil
	return m, progressCmd
}

// VisibleCollections derives the browse rows: every fetched collection in
// the fixed display order, filtered by the active category, with rows that
// end up empty suppressed entirely. The filter never reorders rows.
func (m Model) VisibleCollections() []domain.Collection {
	rows := make([]domain.Collection, 0, len(domain.CollectionOrder))
	for _, ckey := range domain.CollectionOrder {
		c, ok := m.collections[ckey]
		if !ok {
			continue
		}
		items := m.category.FilterItems(c.Items)
		if len(items) == 0 {
			continue
		}
		c.Items = items
		rows = append(rows, c)
	}
	return rows
}

// Selected returns the selected item, nil when nothing is playing
func (m Model) Selected() *domain.ContentItem { return m.selected }

// Category returns the active browse filter
func (m Model) Category() domain.CategoryFilter { return m.category }

// SearchLoading reports whether a search request is in flight
func (m Model) SearchLoading() bool { return m.search.loading }

// SearchResults returns the committed search results
func (m Model) SearchResults() []domain.ContentItem { return m.search.results }

// SearchQuery returns the query of the live search session
func (m Model) SearchQuery() string { return m.search.query }

func (m Model) setStatus(message string, isError bool) (Model, tea.Cmd) {
	m.status = message
	m.statusIsError = isError
	return m, ClearStatusCmd(statusDisplayDuration)
}

func (m *Model) clampCol(rows []domain.Collection) {
	if max := len(rows[m.rowIndex].Items) - 1; m.colIndex > max {
		m.colIndex = max
	}
}

func nextFilter(f domain.CategoryFilter) domain.CategoryFilter {
	switch f {
	case domain.FilterAll:
		return domain.FilterMovies
	case domain.FilterMovies:
		return domain.FilterShows
	default:
		return domain.FilterAll
	}
}
