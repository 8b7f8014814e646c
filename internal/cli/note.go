package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-route-handler/models"
)

// The Note command manages the notes of the logged in user.
type Note struct {
	Add  NoteAdd  `kong:"cmd,help='Create a note.'"`
	Ls   NoteLs   `kong:"cmd,help='List notes.'"`
	Get  NoteGet  `kong:"cmd,help='Print a note.'"`
	Edit NoteEdit `kong:"cmd,help='Change the title or body of a note.'"`
	Rm   NoteRm   `kong:"cmd,help='Delete a note.'"`
}

type NoteAdd struct {
	Title string `kong:"arg,help='Note title.'"`
	Body  string `kong:"arg,optional,help='Note body.'"`
}

func (c *NoteAdd) Run(appCtx *Context) error {
	note, err := appCtx.Adapter.CreateNote(appCtx.Ctx, models.Note{Title: c.Title, Body: c.Body})
	if err != nil {
		return fmt.Errorf("failed creating note: %w", err)
	}

	_, err = fmt.Fprintf(appCtx.Stdout, "created note %d\n", note.ID)
	return err
}

type NoteLs struct{}

func (c *NoteLs) Run(appCtx *Context) error {
	notes, err := appCtx.Adapter.ListNotes(appCtx.Ctx)
	if err != nil {
		return fmt.Errorf("failed listing notes: %w", err)
	}
	if len(notes) == 0 {
		return nil
	}

	data := make([][]string, len(notes))
	for i, note := range notes {
		data[i] = []string{
			strconv.FormatInt(note.ID, 10),
			note.Title,
			formatTime(note.UpdatedAt),
		}
	}

	if err = renderTable([]string{"ID", "Title", "Updated"}, data, appCtx.Stdout); err != nil {
		return fmt.Errorf("failed rendering notes: %w", err)
	}
	return nil
}

type NoteGet struct {
	ID int64 `kong:"arg,help='Note ID.'"`
}

func (c *NoteGet) Run(appCtx *Context) error {
	note, err := appCtx.Adapter.GetNote(appCtx.Ctx, c.ID)
	if err != nil {
		return fmt.Errorf("failed getting note %d: %w", c.ID, err)
	}

	_, err = fmt.Fprintf(appCtx.Stdout, "# %s\n\n%s\n\ncreated %s, updated %s\n",
		note.Title, note.Body, formatTime(note.CreatedAt), formatTime(note.UpdatedAt))
	return err
}

type NoteEdit struct {
	ID        int64  `kong:"arg,help='Note ID.'"`
	Title     string `kong:"help='New title.'"`
	Body      string `kong:"help='New body.'"`
	ClearBody bool   `kong:"name='clear-body',help='Make the body empty.'"`
}

func (c *NoteEdit) Run(appCtx *Context) error {
	update := models.NoteUpdate{ID: c.ID}
	if c.Title != "" {
		update.Title = &c.Title
	}
	if c.Body != "" || c.ClearBody {
		update.Body = &c.Body
	}
	if update.Empty() {
		return fmt.Errorf("nothing to change: pass --title, --body or --clear-body")
	}

	note, err := appCtx.Adapter.UpdateNote(appCtx.Ctx, update)
	if err != nil {
		return fmt.Errorf("failed updating note %d: %w", c.ID, err)
	}

	_, err = fmt.Fprintf(appCtx.Stdout, "updated note %d\n", note.ID)
	return err
}

type NoteRm struct {
	ID int64 `kong:"arg,help='Note ID.'"`
}

func (c *NoteRm) Run(appCtx *Context) error {
	if err := appCtx.Adapter.DeleteNote(appCtx.Ctx, c.ID); err != nil {
		return fmt.Errorf("failed deleting note %d: %w", c.ID, err)
	}

	_, err := fmt.Fprintf(appCtx.Stdout, "deleted note %d\n", c.ID)
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}
