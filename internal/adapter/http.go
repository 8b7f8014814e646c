package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/utils"
	"github.com/MKhiriev/go-route-handler/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds the REST implementation of [ServerAdapter] for
// cfg.ServerURL. A URL without a scheme is treated as http. cfg.Token, when
// set, is used for authenticated calls.
func NewHTTPServerAdapter(cfg config.ClientConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)
	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

// authenticate posts credentials and keeps the token from the Authorization
// response header.
func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.User, error) {
	var result models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		SetResult(&result).
		Post(path)
	if err != nil {
		return models.User{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: parse bearer token: %w", path, err)
	}
	h.SetToken(token)

	h.logger.Debug().Str("login", result.Login).Str("path", path).Msg("authenticated")
	return result, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes models.NotesResponse

	req, err := h.authorized(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := req.SetResult(&notes).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes.Notes, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	var created models.Note

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		SetResult(&created).
		Post("/api/notes")
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetNote(ctx context.Context, noteID int64) (models.Note, error) {
	var note models.Note

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}
	resp, err := req.SetResult(&note).Get(notePath(noteID))
	if err != nil {
		return models.Note{}, fmt.Errorf("get note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	var note models.Note

	req, err := h.authorized(ctx)
	if err != nil {
		return models.Note{}, err
	}
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&note).
		Patch(notePath(update.ID))
	if err != nil {
		return models.Note{}, fmt.Errorf("update note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID int64) error {
	req, err := h.authorized(ctx)
	if err != nil {
		return err
	}
	resp, err := req.Delete(notePath(noteID))
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authorized(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}

func notePath(noteID int64) string {
	return "/api/notes/" + strconv.FormatInt(noteID, 10)
}
