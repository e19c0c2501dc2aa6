package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"github.com/rileylov/reorderlist/internal/dnd"
)

// ErrNoItems is returned by New when there is nothing to show.
var ErrNoItems = errors.New("no items to display")

// Options configures the list program.
type Options struct {
	Title      string
	Items      []dnd.Item
	ItemHeight int // Terminal rows per item.
	Clipboard  bool
	Logger     zerolog.Logger
}

// Model is the bubbletea model for the reorderable list. It owns the
// authoritative item order and applies reorders reported by the list.
type Model struct {
	id     string
	title  string
	width  int
	height int

	list       *dnd.List
	itemHeight int

	zones   *zone.Manager
	hits    hitTester
	pointer *pointerBackend
	split   *split
	events  *eventLog

	keys keyMap
	help help.Model

	cursor     int
	kbDragging bool
	kbHover    int

	moves     int
	status    string
	clipboard bool
	copyFn    func(string) error
	logger    zerolog.Logger
}

// New validates the options and builds the model.
func New(opts Options) (*Model, error) {
	if len(opts.Items) == 0 {
		return nil, ErrNoItems
	}

	m := &Model{
		title:      opts.Title,
		itemHeight: opts.ItemHeight,
		pointer:    newPointerBackend(),
		events:     &eventLog{},
		keys:       defaultKeyMap(),
		help:       help.New(),
		clipboard:  opts.Clipboard,
		copyFn:     clipboard.WriteAll,
		logger:     opts.Logger,
	}

	list, err := dnd.NewList(opts.Items,
		dnd.Geometry{ItemHeight: float64(opts.ItemHeight)},
		dnd.WithLogger(opts.Logger),
		dnd.WithReorderFunc(m.applyReorder),
	)
	if err != nil {
		return nil, err
	}
	m.list = list

	m.zones = zone.New()
	m.id = m.zones.NewPrefix()
	m.split = newSplit(m.zones, 0.6)
	m.hits = zoneHits{m: m}
	return m, nil
}

// Items returns the current order.
func (m *Model) Items() []dnd.Item {
	return m.list.Items()
}

// Moves returns the number of committed reorders.
func (m *Model) Moves() int {
	return m.moves
}

// Close stops the zone manager's worker.
func (m *Model) Close() {
	m.zones.Close()
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancelDrag()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancelDrag()
		case key.Matches(msg, m.keys.Grab):
			m.toggleGrab()
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Copy):
			m.copyOrder()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.relayout()
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	onDivider := !m.pointer.IsDragging() && m.hits.OnDivider(msg)
	if handled, deltaX := m.split.drag.handle(msg, onDivider); handled {
		if deltaX != 0 {
			m.split.resize(deltaX)
		}
		return
	}
	if m.kbDragging {
		return
	}

	ev, ok := m.pointer.HandleMouseEvent(msg, m.hits)
	if !ok {
		return
	}
	if start, isStart := ev.(dnd.DragStart); isStart {
		if i := dnd.IndexOf(m.list.Items(), start.ItemID); i >= 0 {
			m.cursor = i
		}
	}
	m.dispatch(ev)

	// The list may have refused the start; don't keep a dangling mouse drag.
	if m.pointer.IsDragging() && !m.list.Dragging() {
		m.pointer.reset()
	}
}

// dispatch forwards ev to the list and records it in the event log.
func (m *Model) dispatch(ev dnd.Event) {
	if _, isMove := ev.(dnd.DragMove); !isMove {
		m.events.add(fmt.Sprint(ev))
	}
	m.list.Dispatch(ev)
	if move, isMove := ev.(dnd.DragMove); isMove {
		if s := m.list.Session(); s.Active {
			m.events.addMove(fmt.Sprintf("%s → slot %d", move, s.HoverIndex))
		}
	}
}

// applyReorder is the list's reorder callback.
func (m *Model) applyReorder(r dnd.Reorder) {
	if err := m.list.SetItems(r.Items); err != nil {
		m.logger.Error().Err(err).Msg("apply reorder")
		return
	}
	m.moves++
	m.cursor = r.HoverIndex
	m.status = fmt.Sprintf("reorder %d > %d", r.OriginIndex, r.HoverIndex)
	m.events.addReorder(m.status)
}

func (m *Model) toggleGrab() {
	if m.pointer.IsDragging() {
		return
	}
	if m.kbDragging {
		m.kbDragging = false
		m.dispatch(dnd.Drop{})
		return
	}
	items := m.list.Items()
	if m.cursor < 0 || m.cursor >= len(items) {
		return
	}
	m.dispatch(dnd.DragStart{ItemID: items[m.cursor].ID})
	if m.list.Dragging() {
		m.kbDragging = true
		m.kbHover = m.cursor
	}
}

func (m *Model) moveCursor(delta int) {
	if m.pointer.IsDragging() {
		return
	}
	last := m.list.Len() - 1
	if !m.kbDragging {
		m.cursor = max(0, min(m.cursor+delta, last))
		return
	}
	m.kbHover = max(0, min(m.kbHover+delta, last))
	// Place the pointer exactly on the slot so the resolver lands on it.
	geom := m.list.Geometry()
	m.dispatch(dnd.DragMove{PointerY: geom.ContainerTop + float64(m.kbHover)*geom.ItemHeight})
}

func (m *Model) cancelDrag() {
	if m.pointer.IsDragging() {
		m.pointer.reset()
	}
	m.kbDragging = false
	if m.list.Dragging() {
		m.dispatch(dnd.DragCancel{})
		m.status = "drag cancelled"
	}
}

func (m *Model) copyOrder() {
	if !m.clipboard {
		m.status = "clipboard disabled"
		return
	}
	items := m.list.Items()
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	if err := m.copyFn(strings.Join(names, "\n")); err != nil {
		m.status = fmt.Sprintf("Couldn't write to clipboard: %v", err)
		m.logger.Warn().Err(err).Msg("clipboard")
		return
	}
	m.status = fmt.Sprintf("copied %d items", len(items))
}

func (m *Model) itemZoneID(id string) string {
	return m.id + "item_" + id
}

func (m *Model) listZoneID() string {
	return m.id + "list"
}

// frameLayout holds absolute screen positions of the model's parts.
type frameLayout struct {
	innerWidth int
	bodyTop    int
	bodyHeight int
	listX      int
	listWidth  int
	rowsTop    int // Top edge of the first row; the list's container top.
	dividerX   int
}

func (m *Model) layout() frameLayout {
	const border = 1
	innerWidth := max(m.width-2*border, 0)
	headerHeight := lipgloss.Height(m.headerView(innerWidth))
	footerHeight := lipgloss.Height(m.footerView(innerWidth))
	bodyHeight := max(m.height-2*border-headerHeight-footerHeight, 1)

	listWidth, _ := m.split.widths()
	bodyTop := border + headerHeight
	return frameLayout{
		innerWidth: innerWidth,
		bodyTop:    bodyTop,
		bodyHeight: bodyHeight,
		listX:      border,
		listWidth:  listWidth,
		rowsTop:    bodyTop + lipgloss.Height(m.listHeaderView(listWidth)),
		dividerX:   border + listWidth,
	}
}

// relayout pushes the current frame size into the split and the list's
// geometry.
func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}
	l := m.layout()
	m.split.setSize(l.innerWidth, l.bodyHeight)
	m.list.SetContainerTop(float64(l.rowsTop))
}

func (m *Model) headerView(width int) string {
	return renderHeader(width, m.title, m.moves, m.list.Dragging())
}

func (m *Model) footerView(width int) string {
	return renderFooter(width, m.status, m.help, m.keys)
}

func (m *Model) listHeaderView(width int) string {
	return paneHeader.Width(width).Render(fmt.Sprintf("%d items", m.list.Len()))
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()
	listWidth, logWidth := m.split.widths()

	rows := listView{
		states:     m.list.Layout(),
		itemHeight: m.itemHeight,
		width:      listWidth,
		cursor:     m.cursor,
		zones:      m.zones,
		zoneID:     m.itemZoneID,
	}.render()
	listPane := m.zones.Mark(m.listZoneID(), lipgloss.JoinVertical(lipgloss.Left, m.listHeaderView(listWidth), rows))
	logPane := m.events.view(logWidth, l.bodyHeight)

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(l.innerWidth),
		m.split.render(m.zones, listPane, logPane),
		m.footerView(l.innerWidth),
	)
	return m.zones.Scan(frameStyle.
		Width(l.innerWidth).
		MaxHeight(m.height).
		Render(content))
}
