package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-route-handler/internal/adapter"
	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/mock"
	"github.com/MKhiriev/go-route-handler/models"
)

func run(t *testing.T, args []string, setup func(a *mock.MockServerAdapter)) (string, error) {
	t.Helper()

	a := mock.NewMockServerAdapter(gomock.NewController(t))
	if setup != nil {
		setup(a)
	}

	c, err := New("v0.0.1-test")
	require.NoError(t, err)
	require.NoError(t, c.Parse(args))

	var out bytes.Buffer
	err = c.Execute(&Context{Ctx: context.Background(), Adapter: a, Stdout: &out})
	return out.String(), err
}

func TestParse_Overrides(t *testing.T) {
	c, err := New("v0.0.1-test")
	require.NoError(t, err)

	require.NoError(t, c.Parse([]string{
		"--server-url", "http://notes.local:9000",
		"--timeout", "3s",
		"--token", "tok",
		"--log-level", "debug",
		"note", "ls",
	}))

	assert.Equal(t, "note ls", c.Command())
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, config.ClientConfig{
		ServerURL:      "http://notes.local:9000",
		RequestTimeout: 3 * time.Second,
		Token:          "tok",
	}, c.Overrides())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown command", args: []string{"nope"}},
		{name: "missing password", args: []string{"login", "alice"}},
		{name: "note id is not a number", args: []string{"note", "get", "abc"}},
		{name: "bad log level", args: []string{"--log-level", "trace", "version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("CLIENT_PASSWORD", "")
			require.NoError(t, os.Unsetenv("CLIENT_PASSWORD"))
			c, err := New("v0.0.1-test")
			require.NoError(t, err)
			c.kong.Stderr = &bytes.Buffer{}

			assert.Error(t, c.Parse(tt.args))
		})
	}
}

func TestRegisterAndLogin(t *testing.T) {
	for _, cmd := range []string{"register", "login"} {
		t.Run(cmd, func(t *testing.T) {
			out, err := run(t, []string{cmd, "alice", "--password", "secret-password"}, func(a *mock.MockServerAdapter) {
				user := models.User{Login: "alice", Password: "secret-password"}
				if cmd == "register" {
					a.EXPECT().Register(gomock.Any(), user).Return(models.User{Login: "alice"}, nil)
				} else {
					a.EXPECT().Login(gomock.Any(), user).Return(models.User{Login: "alice"}, nil)
				}
				a.EXPECT().Token().Return("tok")
			})

			require.NoError(t, err)
			assert.Equal(t, "logged in as alice\nexport CLIENT_TOKEN=tok\n", out)
		})
	}
}

func TestLogin_PasswordFromEnv(t *testing.T) {
	t.Setenv("CLIENT_PASSWORD", "from-env-password")

	_, err := run(t, []string{"login", "bob"}, func(a *mock.MockServerAdapter) {
		a.EXPECT().Login(gomock.Any(), models.User{Login: "bob", Password: "from-env-password"}).
			Return(models.User{}, adapter.ErrUnauthorized)
	})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestVersion(t *testing.T) {
	out, err := run(t, []string{"version"}, func(a *mock.MockServerAdapter) {
		a.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "v1.0.0", Commit: "abc", Date: "2026-01-01"}, nil)
	})

	require.NoError(t, err)
	assert.Equal(t, "server version v1.0.0 (commit abc, built 2026-01-01)\n", out)
}

func TestNoteCommands(t *testing.T) {
	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	newTitle := "renamed"
	emptyBody := ""

	tests := []struct {
		name    string
		args    []string
		setup   func(a *mock.MockServerAdapter)
		want    []string
		wantErr error
	}{
		{
			name: "add",
			args: []string{"note", "add", "groceries", "milk"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().CreateNote(gomock.Any(), models.Note{Title: "groceries", Body: "milk"}).Return(models.Note{ID: 4}, nil)
			},
			want: []string{"created note 4"},
		},
		{
			name: "ls",
			args: []string{"note", "ls"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().ListNotes(gomock.Any()).Return([]models.Note{
					{ID: 1, Title: "first", UpdatedAt: updated},
					{ID: 2, Title: "second"},
				}, nil)
			},
			want: []string{"first", "second"},
		},
		{
			name: "ls empty",
			args: []string{"note", "ls"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().ListNotes(gomock.Any()).Return([]models.Note{}, nil)
			},
		},
		{
			name: "get",
			args: []string{"note", "get", "2"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().GetNote(gomock.Any(), int64(2)).Return(models.Note{ID: 2, Title: "second", Body: "text"}, nil)
			},
			want: []string{"# second", "text"},
		},
		{
			name: "get missing",
			args: []string{"note", "get", "3"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().GetNote(gomock.Any(), int64(3)).Return(models.Note{}, adapter.ErrNotFound)
			},
			wantErr: adapter.ErrNotFound,
		},
		{
			name: "edit title",
			args: []string{"note", "edit", "2", "--title", "renamed"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().UpdateNote(gomock.Any(), models.NoteUpdate{ID: 2, Title: &newTitle}).Return(models.Note{ID: 2}, nil)
			},
			want: []string{"updated note 2"},
		},
		{
			name: "edit clear body",
			args: []string{"note", "edit", "2", "--clear-body"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().UpdateNote(gomock.Any(), models.NoteUpdate{ID: 2, Body: &emptyBody}).Return(models.Note{ID: 2}, nil)
			},
			want: []string{"updated note 2"},
		},
		{
			name: "rm",
			args: []string{"note", "rm", "2"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().DeleteNote(gomock.Any(), int64(2)).Return(nil)
			},
			want: []string{"deleted note 2"},
		},
		{
			name: "rm without token",
			args: []string{"note", "rm", "2"},
			setup: func(a *mock.MockServerAdapter) {
				a.EXPECT().DeleteNote(gomock.Any(), int64(2)).Return(adapter.ErrNoToken)
			},
			wantErr: adapter.ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args, tt.setup)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			if tt.want == nil {
				assert.Empty(t, out)
			}
		})
	}
}

func TestNoteEdit_NothingToChange(t *testing.T) {
	_, err := run(t, []string{"note", "edit", "2"}, nil)

	require.Error(t, err)
	assert.False(t, errors.Is(err, adapter.ErrNotFound))
	assert.Contains(t, err.Error(), "nothing to change")
}
