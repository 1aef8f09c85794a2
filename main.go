package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/schollz/multiverse/internal/audio"
	"github.com/schollz/multiverse/internal/input"
	"github.com/schollz/multiverse/internal/model"
	"github.com/schollz/multiverse/internal/remote"
	"github.com/schollz/multiverse/internal/storage"
	"github.com/schollz/multiverse/internal/types"
	"github.com/schollz/multiverse/internal/views"
)

var (
	Version = "dev"

	// Command-line configuration
	config struct {
		debug   string
		content string
		sound   bool
		oscHost string
		port    int
		midi    string
		listen  int
		fps     int
		leave   time.Duration
		enter   time.Duration
		dump    string // Path to file for periodic terminal dumps
		color   string
	}
)

var rootCmd = &cobra.Command{
	Use:   "multiverse",
	Short: "A portfolio that splits into parallel timelines",
	Long: `Multiverse is a terminal portfolio that starts in an undecided
singularity. Lean the pointer toward a timeline and click to collapse into it:

• The Architect: data engineering and machine learning
• The Anomaly: creative frontend work
• The Mirror: web3 and distributed ledgers

Each timeline has its own scene, projects and soundscape.`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runMultiverse,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.debug, "log", "l", "",
		"Write debug logs to specified file (empty disables)")
	rootCmd.Flags().StringVarP(&config.content, "content", "c", "",
		"Portfolio content JSON (.json or .json.gz); built-in example when empty")
	rootCmd.Flags().BoolVar(&config.sound, "sound", false,
		"Start with sound enabled")
	rootCmd.Flags().StringVar(&config.oscHost, "osc-host", "localhost",
		"Host of the OSC synth that plays the soundscapes (empty disables)")
	rootCmd.Flags().IntVar(&config.port, "port", 57120,
		"OSC port of the synth")
	rootCmd.Flags().StringVar(&config.midi, "midi", "",
		"Play the soundscapes on this MIDI output device instead of OSC (see 'devices')")
	rootCmd.Flags().IntVar(&config.listen, "listen", 0,
		"Accept OSC remote control on this port (0 disables)")
	rootCmd.Flags().IntVar(&config.fps, "fps", 30,
		"Frame rate of the animation loop")
	rootCmd.Flags().DurationVar(&config.leave, "leave", input.DefaultLeaveDuration,
		"Duration of the leaving phase of a timeline transition")
	rootCmd.Flags().DurationVar(&config.enter, "enter", input.DefaultEnterDuration,
		"Duration of the entering phase of a timeline transition")
	rootCmd.Flags().StringVarP(&config.dump, "dump", "d", "",
		"Write terminal frames to specified file every 10 seconds (empty disables)")
	rootCmd.Flags().StringVar(&config.color, "color", "auto",
		"Color profile: auto, ascii, ansi, ansi256 or truecolor")

	rootCmd.AddCommand(newRenderCmd(), newClassifyCmd(), newContentCmd(), newDevicesCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The returned func closes the log file.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "debug")
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}
	log.SetOutput(f)
	// Set log flags to include file and line number for clickable links
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	return func() { f.Close() }, nil
}

// parseColorProfile maps a --color value onto a termenv profile. ok is
// false for "auto", which keeps the detected profile.
func parseColorProfile(s string) (p termenv.Profile, ok bool, err error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "ascii", "none":
		return termenv.Ascii, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ansi256":
		return termenv.ANSI256, true, nil
	case "truecolor":
		return termenv.TrueColor, true, nil
	}
	return termenv.Ascii, false, fmt.Errorf("unknown color profile %q", s)
}

func runMultiverse(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging(config.debug)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Println("Debug logging enabled")

	profile, override, err := parseColorProfile(config.color)
	if err != nil {
		return err
	}
	if override {
		lipgloss.SetColorProfile(profile)
	}

	content, err := storage.LoadContent(config.content)
	if err != nil {
		return err
	}

	state := model.NewState()

	backend, err := newBackend()
	if err != nil {
		return err
	}
	sound := audio.NewController(state, backend)
	defer func() {
		if err := sound.Close(); err != nil {
			log.Printf("Error closing audio: %v", err)
		}
	}()
	if config.sound {
		state.ToggleAudio()
	}

	app, err := newApp(state, content, config.fps, config.dump)
	if err != nil {
		return err
	}
	app.ctl.Sequencer.LeaveDuration = config.leave
	app.ctl.Sequencer.EnterDuration = config.enter
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())

	if config.listen > 0 {
		server := remote.NewServer(config.listen, remote.NewDispatcher(p.Send))
		go func() {
			log.Printf("Starting OSC remote on port %d", config.listen)
			if err := server.ListenAndServe(); err != nil {
				log.Printf("Error starting OSC remote: %v", err)
			}
		}()
	}

	setupCleanupOnExit(p)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newBackend picks the sound output: a MIDI device when --midi is set,
// otherwise the OSC synth, otherwise nothing.
func newBackend() (audio.Backend, error) {
	if config.midi != "" {
		for _, device := range audio.MIDIDevices() {
			log.Printf("MIDI device found: %s", device)
		}
		return audio.NewMIDIBackend(config.midi)
	}
	if config.oscHost != "" {
		log.Printf("OSC synth configured: %s:%d", config.oscHost, config.port)
		return audio.NewOSCBackend(config.oscHost, config.port), nil
	}
	return audio.Discard{}, nil
}

func setupCleanupOnExit(p *tea.Program) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-c
		p.Quit()
	}()
}

// App wraps the UI state and implements tea.Model.
type App struct {
	state    *model.State
	ctl      *input.Controller
	renderer *views.Renderer
	fps      int

	width, height int

	splashState   *views.SplashState
	showingSplash bool

	dumpFile *os.File
}

// FrameMsg advances every animation by one frame.
type FrameMsg struct{}

// SplashTickMsg drives the splash screen animation
type SplashTickMsg struct{}

// DumpTickMsg triggers periodic dumps to file
type DumpTickMsg struct{}

func newApp(state *model.State, content *types.Content, fps int, dumpPath string) (*App, error) {
	if fps <= 0 {
		fps = 30
	}
	app := &App{
		state:         state,
		ctl:           input.NewController(state, fps),
		renderer:      views.NewRenderer(content, fps),
		fps:           fps,
		splashState:   views.NewSplashState(2 * time.Second),
		showingSplash: true,
	}
	app.ctl.Tracker.Install()

	if dumpPath != "" {
		f, err := os.Create(dumpPath)
		if err != nil {
			return nil, fmt.Errorf("opening dump file: %w", err)
		}
		app.dumpFile = f
		log.Printf("Terminal dump enabled: writing to %s every 10 seconds", dumpPath)
	}
	return app, nil
}

// Close stops the sequencer, drops the waveform cache and closes the dump
// file.
func (a *App) Close() {
	a.ctl.Shutdown()
	if err := a.renderer.Close(); err != nil {
		log.Printf("Error removing waveform cache: %v", err)
	}
	if a.dumpFile != nil {
		if err := a.dumpFile.Close(); err != nil {
			log.Printf("Error closing dump file: %v", err)
		}
		a.dumpFile = nil
	}
}

func tickFrame(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{}
	})
}

func tickSplash() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(time.Time) tea.Msg {
		return SplashTickMsg{}
	})
}

func tickDump() tea.Cmd {
	return tea.Tick(10*time.Second, func(time.Time) tea.Msg {
		return DumpTickMsg{}
	})
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if a.showingSplash {
		cmds = append(cmds, tickSplash())
	} else {
		cmds = append(cmds, tickFrame(a.fps))
	}
	if a.dumpFile != nil {
		cmds = append(cmds, tickDump())
	}
	return tea.Batch(cmds...)
}

// dismissSplash leaves the intro and starts the frame loop. It returns nil
// when the splash is already gone so only one loop ever runs.
func (a *App) dismissSplash() tea.Cmd {
	if !a.showingSplash {
		return nil
	}
	a.showingSplash = false
	return tickFrame(a.fps)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ctl.Tracker.Resize(msg.Width, msg.Height)
		return a, nil

	case SplashTickMsg:
		if !a.showingSplash {
			return a, nil
		}
		if a.splashState.Done(time.Now()) {
			return a, a.dismissSplash()
		}
		return a, tickSplash()

	case FrameMsg:
		a.ctl.Frame()
		a.renderer.Advance(1/float64(a.fps), a.ctl)
		return a, tickFrame(a.fps)

	case input.PhaseMsg:
		return a, a.ctl.Sequencer.Handle(msg)

	case remote.SwitchMsg:
		return a, a.ctl.Sequencer.Request(msg.Timeline)

	case remote.SoundMsg:
		a.state.ToggleAudio()
		return a, nil

	case remote.PointerMsg:
		a.ctl.Tracker.Place(types.PointerVector{X: msg.X, Y: msg.Y})
		return a, nil

	case DumpTickMsg:
		if a.dumpFile != nil {
			timestamp := time.Now().Format("2006-01-02 15:04:05")
			fmt.Fprintf(a.dumpFile, "\n=== Frame at %s ===\n", timestamp)
			fmt.Fprintf(a.dumpFile, "%s\n", a.View())
			a.dumpFile.Sync()
			return a, tickDump()
		}
		return a, nil

	case tea.KeyMsg:
		// Skip splash screen on any key press
		if a.showingSplash {
			return a, a.dismissSplash()
		}
		return a, input.HandleKeyInput(a.ctl, msg)

	case tea.MouseMsg:
		// Track the pointer under the splash so it is in place afterwards.
		a.ctl.Tracker.Handle(msg)
		if a.showingSplash {
			if msg.Action == tea.MouseActionPress {
				return a, a.dismissSplash()
			}
			return a, nil
		}
		return a, input.HandleMouseInput(a.ctl, msg, a.renderer)
	}

	return a, nil
}

func (a *App) View() string {
	if a.showingSplash {
		return views.RenderSplashScreen(a.width, a.height, a.splashState, Version)
	}
	return a.renderer.View(a.ctl, a.width, a.height)
}
