package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cosplitz/cosplitz-client/internal/guard"
	"github.com/cosplitz/cosplitz-client/internal/logger"
	"github.com/cosplitz/cosplitz-client/internal/service"
	"github.com/cosplitz/cosplitz-client/internal/utils"
	"github.com/cosplitz/cosplitz-client/internal/validators"
	"github.com/cosplitz/cosplitz-client/models"
)

type App struct {
	sessions service.SessionService
	guard    *guard.Guard
	out      io.Writer
	logger   *logger.Logger
}

func NewApp(sessions service.SessionService, log *logger.Logger) *App {
	return &App{
		sessions: sessions,
		guard:    guard.New(sessions, log),
		out:      os.Stdout,
		logger:   log,
	}
}

// Run dispatches the subcommand named by args[0]. Remaining args are the
// subcommand's own flags.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("no command given")
	}

	ctx := context.Background()

	switch args[0] {
	case "register":
		return a.register(ctx, args[1:])
	case "verify":
		return a.verify(ctx, args[1:])
	case "resend":
		return a.resend(ctx)
	case "login":
		return a.login(ctx, args[1:])
	case "logout":
		return a.logout(ctx)
	case "whoami":
		return a.whoami(ctx)
	case "status":
		return a.status(ctx)
	default:
		a.printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	req := models.RegisterRequest{}
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	fs.StringVar(&req.Nationality, "nationality", "", "nationality (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validators.ValidateRegistration(req); err != nil {
		return err
	}

	if !a.sessions.RegisterAndKickoffVerification(ctx, req) {
		return fmt.Errorf("%s", a.sessions.Session().LastError)
	}

	session := a.sessions.Session()
	fmt.Fprintf(a.out, "Registered %s. A verification code is on its way to your inbox.\n",
		session.PendingVerification.Email)
	fmt.Fprintln(a.out, "Run 'cosplitz-client verify -code <code>' to finish.")

	return nil
}

func (a *App) verify(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	code := fs.String("code", "", "the 6-digit code from the verification email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validators.ValidateOTP(*code); err != nil {
		return err
	}

	// each invocation is a fresh process, pick up the pending marker first
	a.sessions.Initialize(ctx)

	if !a.sessions.VerifyCode(ctx, *code) {
		return fmt.Errorf("%s", a.sessions.Session().LastError)
	}

	fmt.Fprintln(a.out, "Email verified. Welcome to CoSplitz!")

	return nil
}

func (a *App) resend(ctx context.Context) error {
	a.sessions.Initialize(ctx)
	a.sessions.ResendCode(ctx)

	if lastError := a.sessions.Session().LastError; lastError != "" {
		return fmt.Errorf("%s", lastError)
	}

	fmt.Fprintln(a.out, "A fresh verification code has been sent.")

	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	req := models.LoginRequest{}
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validators.ValidateLogin(req); err != nil {
		return err
	}

	if !a.sessions.Login(ctx, req) {
		return fmt.Errorf("%s", a.sessions.Session().LastError)
	}

	session := a.sessions.Session()
	fmt.Fprintf(a.out, "Logged in as %s.\n", session.User.Email)

	return nil
}

func (a *App) logout(ctx context.Context) error {
	a.sessions.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")

	return nil
}

func (a *App) whoami(ctx context.Context) error {
	if !a.sessions.CheckAuth(ctx) {
		return fmt.Errorf("not logged in")
	}

	session := a.sessions.Session()
	user := session.User

	fmt.Fprintf(a.out, "Email:    %s\n", user.Email)
	if user.Name != "" {
		fmt.Fprintf(a.out, "Name:     %s\n", user.Name)
	}
	fmt.Fprintf(a.out, "Role:     %s\n", user.Role)
	fmt.Fprintf(a.out, "Verified: %t\n", user.EmailVerified)

	// the token may be an opaque string, claims are display-only sugar
	if claims, err := utils.ParseTokenClaims(session.Token); err == nil && !claims.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Token expires: %s\n", claims.ExpiresAt.Format(time.RFC1123))
	}

	return nil
}

func (a *App) status(ctx context.Context) error {
	decision := a.guard.Authorize(ctx, "")
	session := a.sessions.Session()

	switch decision {
	case guard.Allow:
		fmt.Fprintf(a.out, "Authenticated as %s.\n", session.User.Email)
	case guard.RedirectVerification:
		fmt.Fprintf(a.out, "Verification pending for %s. Run 'cosplitz-client verify'.\n",
			session.PendingVerification.Email)
	default:
		fmt.Fprintln(a.out, "Not logged in.")
	}

	if session.LastError != "" {
		fmt.Fprintf(a.out, "Last error: %s\n", session.LastError)
	}

	return nil
}

func (a *App) printUsage() {
	fmt.Fprintln(a.out, "Usage: cosplitz-client [flags] <command>")
	fmt.Fprintln(a.out, "")
	fmt.Fprintln(a.out, "Commands:")
	fmt.Fprintln(a.out, "  register   create an account and start email verification")
	fmt.Fprintln(a.out, "  verify     submit the verification code")
	fmt.Fprintln(a.out, "  resend     request a fresh verification code")
	fmt.Fprintln(a.out, "  login      sign in with email and password")
	fmt.Fprintln(a.out, "  logout     sign out and forget the local session")
	fmt.Fprintln(a.out, "  whoami     show the current account")
	fmt.Fprintln(a.out, "  status     show the session state")
}
