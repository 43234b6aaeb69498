package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubepilot/cubepilot"
	"github.com/cubepilot/cubepilot/internal/camera"
	"github.com/cubepilot/cubepilot/internal/scan"
	"github.com/cubepilot/cubepilot/internal/servo"
	"github.com/cubepilot/cubepilot/internal/solver"
	"github.com/cubepilot/cubepilot/internal/storage"
	"github.com/cubepilot/cubepilot/internal/vision"
)

var (
	solveCameraID  int
	solveServoPort string
	solveSolverBin string
	solveFrameless string
	solveNoTUI     bool
	solveDryRun    bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Scan the cube and solve it",
	Long: `Run one full solve cycle: warm up the camera, scan all six faces,
interpret the colors into a cube status, solve it, and drive the servos
through the translated move sequence.

With --dry-run the servo moves are printed instead of executed, so a
cycle can be tested without the robot hardware attached.`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().IntVar(&solveCameraID, "camera", 0, "Camera device index")
	solveCmd.Flags().StringVar(&solveServoPort, "port", "/dev/ttyUSB0", "Servo controller serial port")
	solveCmd.Flags().StringVar(&solveSolverBin, "solver", "kociemba", "External solver binary")
	solveCmd.Flags().StringVar(&solveFrameless, "frameless", "false", "Cube type: false (framed), true (frameless), auto")
	solveCmd.Flags().BoolVar(&solveNoTUI, "no-tui", false, "Plain text progress instead of the TUI")
	solveCmd.Flags().BoolVar(&solveDryRun, "dry-run", false, "Print servo moves instead of executing them")
}

func framelessMode(s string) (vision.FramelessMode, error) {
	switch s {
	case "false":
		return vision.Framed, nil
	case "true":
		return vision.Frameless, nil
	case "auto":
		return vision.AutoFrame, nil
	}
	return vision.Framed, fmt.Errorf("invalid --frameless value %q (want false, true or auto)", s)
}

func openDB() (*storage.DB, error) {
	var (
		db  *storage.DB
		err error
	)
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	mode, err := framelessMode(solveFrameless)
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	camCfg := camera.DefaultConfig()
	camCfg.DeviceID = solveCameraID
	camCfg.Detector = []vision.Option{vision.WithMode(mode)}
	cam, err := camera.Open(camCfg)
	if err != nil {
		return err
	}
	defer cam.Close()

	var sv scan.Servo
	if solveDryRun {
		sv = &servo.Mock{}
	} else {
		drv, err := servo.Open(servo.DefaultConfig(solveServoPort))
		if err != nil {
			return err
		}
		defer drv.Close()
		sv = drv
	}

	slv := solver.NewCommand(solver.Config{Path: solveSolverBin})

	var res *scan.CycleResult
	if solveNoTUI {
		res, err = runPlainCycle(cmd.Context(), cam, sv, slv)
	} else {
		res, err = runTUICycle(cmd.Context(), cam, sv, slv)
	}
	if err != nil {
		return err
	}

	if err := recordCycle(db, res); err != nil {
		return err
	}

	printSummary(res)
	if solveDryRun {
		fmt.Printf("Robot moves (not executed): %s\n", res.Moves)
	}
	return nil
}

func recordCycle(db *storage.DB, res *scan.CycleResult) error {
	repo := storage.NewCycleRepository(db)
	id, err := repo.Create(res)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("Recorded cycle %s\n", id)
	}

	histPath, err := storage.DefaultHistoryPath()
	if err != nil {
		return err
	}
	return storage.NewHistory(histPath, solveFrameless).Append(res)
}

func runPlainCycle(ctx context.Context, cam scan.Camera, sv scan.Servo, slv scan.Solver) (*scan.CycleResult, error) {
	orch := scan.New(cam, sv, slv, scan.WithNotify(func(e scan.Event) {
		if e.Phase == scan.PhaseScanning {
			fmt.Printf("%s: face %d of 6\n", e.Phase, e.Face)
			return
		}
		fmt.Println(e.Phase)
	}))
	return orch.Run(ctx)
}

func printSummary(res *scan.CycleResult) {
	fmt.Println()
	fmt.Println(RenderStatus(res.Status))
	if res.AlreadyDone {
		fmt.Println("Cube already solved.")
		return
	}
	fmt.Printf("Detection:  %s\n", res.Method)
	fmt.Printf("Status:     %s\n", res.Status)
	fmt.Printf("Solution:   %s\n", res.Solution)
	fmt.Printf("Servo moves: %d in %.1fs (total %.1fs)\n",
		res.MovesCount, res.RobotTime.Seconds(), res.TotalTime.Seconds())
}

// TUI

type scanEventMsg scan.Event

type cycleDoneMsg struct {
	res *scan.CycleResult
	err error
}

type solveTickMsg time.Time

var (
	solveTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	solvePhaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	solveHelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solveErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

type solveModel struct {
	events <-chan scan.Event
	cancel context.CancelFunc
	run    func() tea.Msg

	phase   scan.Phase
	face    int
	samples []cubepilot.BGR
	started time.Time
	elapsed time.Duration

	res      *scan.CycleResult
	err      error
	quitting bool
}

func runTUICycle(ctx context.Context, cam scan.Camera, sv scan.Servo, slv scan.Solver) (*scan.CycleResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan scan.Event, 16)
	orch := scan.New(cam, sv, slv, scan.WithNotify(func(e scan.Event) {
		select {
		case events <- e:
		default:
		}
	}))

	m := &solveModel{
		events:  events,
		cancel:  cancel,
		started: time.Now(),
		run: func() tea.Msg {
			res, err := orch.Run(ctx)
			return cycleDoneMsg{res: res, err: err}
		},
	}

	p := tea.NewProgram(m, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	fm := final.(*solveModel)
	if fm.err != nil {
		return nil, fm.err
	}
	if fm.res == nil {
		return nil, context.Canceled
	}
	return fm.res, nil
}

func (m *solveModel) listenEvents() tea.Cmd {
	return func() tea.Msg {
		return scanEventMsg(<-m.events)
	}
}

func (m *solveModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return solveTickMsg(t)
	})
}

func (m *solveModel) Init() tea.Cmd {
	return tea.Batch(m.run, m.listenEvents(), m.tickCmd())
}

func (m *solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case scanEventMsg:
		m.phase = msg.Phase
		m.face = msg.Face
		if msg.Samples != nil {
			m.samples = msg.Samples
		}
		return m, m.listenEvents()

	case cycleDoneMsg:
		m.res = msg.res
		m.err = msg.err
		return m, tea.Quit

	case solveTickMsg:
		m.elapsed = time.Since(m.started)
		return m, m.tickCmd()
	}
	return m, nil
}

func (m *solveModel) View() string {
	if m.quitting {
		return ""
	}

	s := solveTitleStyle.Render("CubePilot") + "\n\n"
	if m.err != nil {
		s += solveErrorStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
		return s
	}

	phase := m.phase.String()
	if m.phase == scan.PhaseScanning {
		phase = fmt.Sprintf("%s face %d/6", phase, m.face)
	}
	s += solvePhaseStyle.Render(phase) + fmt.Sprintf("  %.1fs", m.elapsed.Seconds()) + "\n\n"

	if len(m.samples) == 54 {
		s += RenderSamples(m.samples) + "\n"
	}
	s += solveHelpStyle.Render("q: abort") + "\n"
	return s
}
