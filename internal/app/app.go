package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/resourcecmd/internal/activator"
	"github.com/renato0307/resourcecmd/internal/commands"
	"github.com/renato0307/resourcecmd/internal/components"
	"github.com/renato0307/resourcecmd/internal/components/commandbar"
	"github.com/renato0307/resourcecmd/internal/host"
	"github.com/renato0307/resourcecmd/internal/keyboard"
	"github.com/renato0307/resourcecmd/internal/logging"
	"github.com/renato0307/resourcecmd/internal/messages"
	"github.com/renato0307/resourcecmd/internal/resources"
	"github.com/renato0307/resourcecmd/internal/types"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// AppName is shown in the header and the terminal title.
const AppName = "resourcecmd"

// OpenPaletteShortcut is the registry name of the palette chord.
const OpenPaletteShortcut = "app/open-palette"

// URLOpener opens a URL and describes the outcome for the user.
type URLOpener interface {
	Open(url string) (string, error)
}

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	theme   *ui.Theme
	keys    keyboard.Bindings
	catalog *resources.Catalog
	opener  URLOpener
	logger  *logging.Logger

	header      *components.Header
	layout      *components.Layout
	catalogView *components.CatalogView
	commandBar  *commandbar.CommandBar
	userMessage *components.UserMessage

	host      *teaHost
	activator *activator.Activator
}

type options struct {
	keys             *keyboard.Keys
	activatorTimeout time.Duration
	noticeDuration   time.Duration
	opener           URLOpener
}

// Option configures the model.
type Option func(*options)

// WithKeys overrides the key configuration.
func WithKeys(keys *keyboard.Keys) Option {
	return func(o *options) {
		o.keys = keys
	}
}

// WithActivatorTimeout sets how long the two-step flow waits for a key.
func WithActivatorTimeout(d time.Duration) Option {
	return func(o *options) {
		o.activatorTimeout = d
	}
}

// WithNoticeDuration sets how long notices stay visible.
func WithNoticeDuration(d time.Duration) Option {
	return func(o *options) {
		o.noticeDuration = d
	}
}

// WithOpener sets the URL opener.
func WithOpener(opener URLOpener) Option {
	return func(o *options) {
		o.opener = opener
	}
}

// NewModel wires the palette, notices and the resource search extension.
func NewModel(catalog *resources.Catalog, theme *ui.Theme, opts ...Option) Model {
	o := options{
		keys:             keyboard.Default(),
		activatorTimeout: activator.DefaultTimeout,
		noticeDuration:   components.NoticeDisplayDuration,
	}
	for _, opt := range opts {
		opt(&o)
	}
	keys := o.keys.Bindings()

	userMessage := components.NewUserMessage(theme, o.noticeDuration)
	h := newTeaHost(userMessage)

	registry := commands.NewRegistry(catalog, h)
	bar := commandbar.New(registry, catalog, h, theme, keys)
	h.bar = bar

	h.RegisterGlobalShortcut(OpenPaletteShortcut, keys.PaletteActivate)
	h.OnShortcutFired(OpenPaletteShortcut, func(*host.KeyEvent) {
		h.OpenPalette()
	})

	act := activator.New(h, h, h, catalog,
		activator.WithChord(keys.ResourceChord),
		activator.WithTimeout(o.activatorTimeout),
	)
	act.Mount()

	m := Model{
		width:       80,
		height:      24,
		theme:       theme,
		keys:        keys,
		catalog:     catalog,
		opener:      o.opener,
		logger:      logging.Component("app"),
		header:      components.NewHeader(AppName, catalog.Len(), theme),
		layout:      components.NewLayout(80, 24),
		catalogView: components.NewCatalogView(catalog, theme),
		commandBar:  bar,
		userMessage: userMessage,
		host:        h,
		activator:   act,
	}
	m.setWidth(80)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(AppName)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout.SetSize(msg.Width, msg.Height)
		m.setWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case types.QuitRequestMsg:
		return m, m.quit()

	case types.TimerFiredMsg:
		m.host.fire(msg.ID)

	case types.StatusMsg:
		cmds = append(cmds, m.userMessage.Show(msg.Message, msg.Type))

	case types.ClearStatusMsg:
		m.userMessage.Clear(msg.MessageID)

	case types.OpenPaletteMsg:
		m.host.OpenPalette()

	case types.PrefillPaletteMsg:
		m.host.PrefillPalette(msg.Text)

	case types.OpenResourceMsg:
		cmds = append(cmds, m.openResource(msg.URL))

	case spinner.TickMsg:
		_, cmd := m.userMessage.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.header.SetArmed(m.activator.State() == activator.StateArmed)
	cmds = append(cmds, m.host.drain())
	return m, tea.Batch(cmds...)
}

// handleKey routes a key through capture-phase listeners, global chords,
// the palette and finally the application keys.
func (m Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.host.intercept(msg.String()) {
		return nil
	}
	if m.host.shortcut(msg) {
		return nil
	}
	if cmd, handled := m.commandBar.HandleKey(msg); handled {
		return cmd
	}
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}
	return nil
}

// quit unmounts the activator and exits. Every quit path goes through here.
func (m Model) quit() tea.Cmd {
	m.activator.Unmount()
	m.logger.Info("quitting")
	return tea.Quit
}

// openResource shows a loading notice and opens url off the update loop.
// The notice is set before the open starts so its result always replaces it.
func (m Model) openResource(url string) tea.Cmd {
	if m.opener == nil {
		return messages.ErrorCmd("No browser configured to open %s", url)
	}

	spin := m.userMessage.Show("Opening "+url, types.MessageTypeLoading)

	opener := m.opener
	logger := m.logger
	open := func() tea.Msg {
		timing := logging.Start("open resource")
		result, err := opener.Open(url)
		logging.End(timing)
		if err != nil {
			logger.Error("open resource failed", "url", url, "error", err)
			return types.ErrorStatusMsg(err.Error())
		}
		logger.Info("resource opened", "url", url)
		return types.SuccessMsg(result)
	}

	return tea.Batch(spin, open)
}

func (m Model) setWidth(width int) {
	m.header.SetWidth(width)
	m.catalogView.SetWidth(width)
	m.commandBar.SetWidth(width)
	m.userMessage.SetWidth(width)
}

func (m Model) View() string {
	return m.layout.Render(
		m.header.View(),
		m.catalogView.View(),
		m.commandBar.View(),
		m.commandBar.ViewHints(),
		m.userMessage.View(),
	)
}
