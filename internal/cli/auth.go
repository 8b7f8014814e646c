package cli

import (
	"fmt"

	"github.com/MKhiriev/go-route-handler/models"
)

// Credentials are shared by Register and Login.
type Credentials struct {
	Login    string `arg:"" help:"Account login."`
	Password string `required:"" env:"CLIENT_PASSWORD" help:"Account password."`
}

func (c Credentials) user() models.User {
	return models.User{Login: c.Login, Password: c.Password}
}

// The Register command creates an account.
type Register struct {
	Credentials `embed:""`
}

func (c *Register) Run(appCtx *Context) error {
	user, err := appCtx.Adapter.Register(appCtx.Ctx, c.user())
	if err != nil {
		return fmt.Errorf("failed registering '%s': %w", c.Login, err)
	}

	return printToken(appCtx, user)
}

// The Login command exchanges credentials for a bearer token.
type Login struct {
	Credentials `embed:""`
}

func (c *Login) Run(appCtx *Context) error {
	user, err := appCtx.Adapter.Login(appCtx.Ctx, c.user())
	if err != nil {
		return fmt.Errorf("failed logging in as '%s': %w", c.Login, err)
	}

	return printToken(appCtx, user)
}

func printToken(appCtx *Context, user models.User) error {
	_, err := fmt.Fprintf(appCtx.Stdout, "logged in as %s\nexport CLIENT_TOKEN=%s\n", user.Login, appCtx.Adapter.Token())
	return err
}

// The VersionCmd command prints the server build.
type VersionCmd struct{}

func (c *VersionCmd) Run(appCtx *Context) error {
	v, err := appCtx.Adapter.Version(appCtx.Ctx)
	if err != nil {
		return fmt.Errorf("failed getting server version: %w", err)
	}

	_, err = fmt.Fprintf(appCtx.Stdout, "server version %s", v.Version)
	if err == nil && v.Commit != "" {
		_, err = fmt.Fprintf(appCtx.Stdout, " (commit %s, built %s)", v.Commit, v.Date)
	}
	if err == nil {
		_, err = fmt.Fprintln(appCtx.Stdout)
	}
	return err
}
