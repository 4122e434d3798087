package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/zenora/internal/assessment"
	"github.com/dmitrijs2005/zenora/internal/client/guard"
	"github.com/dmitrijs2005/zenora/internal/client/models"
	"github.com/dmitrijs2005/zenora/internal/client/notice"
	"github.com/dmitrijs2005/zenora/internal/client/services"
	"github.com/dmitrijs2005/zenora/internal/client/session"
	"github.com/dmitrijs2005/zenora/internal/logging"
)

type authService interface {
	Login(ctx context.Context, form services.LoginForm) (models.User, error)
	Signup(ctx context.Context, form services.SignupForm) (models.User, error)
	Logout(ctx context.Context)
}

type assessmentService interface {
	NewWorkspace(kind assessment.Kind) (*services.Workspace, error)
	History(ctx context.Context) ([]models.AssessmentRecord, error)
}

type journalService interface {
	Save(ctx context.Context, title, content string) (models.JournalEntry, error)
	List(ctx context.Context) ([]models.JournalEntry, error)
}

type moodService interface {
	Log(ctx context.Context, mood, note string) (models.MoodEntry, error)
	List(ctx context.Context) ([]models.MoodEntry, error)
}

type sessionSource interface {
	Current() session.Session
}

// Deps is everything the App needs. Notifier and Out default to stdout.
type Deps struct {
	Sessions    sessionSource
	Auth        authService
	Assessments assessmentService
	Journal     journalService
	Moods       moodService
	Notifier    notice.Notifier
	Logger      logging.Logger
	In          io.Reader
	Out         io.Writer

	// ShutdownWait bounds how long Run waits for in-flight saves on exit.
	ShutdownWait time.Duration
}

type App struct {
	sessions    sessionSource
	auth        authService
	assessments assessmentService
	journal     journalService
	moods       moodService
	guard       *guard.Guard
	notifier    notice.Notifier
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	workspace    *services.Workspace
	saves        []*services.SaveTask
	shutdownWait time.Duration
}

func NewApp(d Deps) *App {
	if d.Out == nil {
		d.Out = os.Stdout
	}
	if d.In == nil {
		d.In = os.Stdin
	}
	if d.Notifier == nil {
		d.Notifier = notice.NewWriterNotifier(d.Out)
	}
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.ShutdownWait == 0 {
		d.ShutdownWait = 10 * time.Second
	}

	return &App{
		sessions:     d.Sessions,
		auth:         d.Auth,
		assessments:  d.Assessments,
		journal:      d.Journal,
		moods:        d.Moods,
		guard:        guard.New(d.Sessions, d.Notifier),
		notifier:     d.Notifier,
		log:          d.Logger,
		reader:       bufio.NewReader(d.In),
		out:          d.Out,
		shutdownWait: d.ShutdownWait,
	}
}

// Run prints the banner, serves commands until exit or EOF, then gives
// in-flight saves a bounded chance to finish.
func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to Zenora (type 'help' for commands)")

	runREPL(ctx, a, a.getStatus, a.reader)

	waitCtx, cancel := context.WithTimeout(ctx, a.shutdownWait)
	defer cancel()
	a.waitSaves(waitCtx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current().IsAuthenticated()
}

func (a *App) getStatus() string {
	s := a.sessions.Current()
	switch s.Status {
	case session.Authenticated:
		return s.User.Name
	case session.Pending:
		return "verifying"
	default:
		return "guest"
	}
}

// enter runs the guard for dest. On a redirect it opens the login prompt;
// the original command is not resumed afterwards.
func (a *App) enter(ctx context.Context, dest guard.Destination) bool {
	out := a.guard.Check(ctx, dest)
	switch out.Decision {
	case guard.Allow:
		return true
	case guard.Redirect:
		if out.RedirectTo == guard.Login {
			_ = a.Login(ctx)
		}
		return false
	default:
		a.println("Verifying your session, please try again in a moment.")
		return false
	}
}

func (a *App) println(args ...any) {
	_, _ = io.WriteString(a.out, sprintln(args...))
}
