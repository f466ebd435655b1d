package ghclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// DefaultBaseURL — адрес публичного GitHub API.
const DefaultBaseURL = "https://api.github.com"

// TokenEnv — переменная окружения с токеном доступа.
const TokenEnv = "GITHUB_ACCESS_TOKEN"

// --- Response types ---

// Branch — ветка репозитория.
type Branch struct {
	Name   string `json:"name"`
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

// Contents — файл репозитория из contents API.
type Contents struct {
	Path     string `json:"path"`
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

// Decoded возвращает раскодированное содержимое файла.
// GitHub отдаёт base64 с переводами строк внутри.
func (c *Contents) Decoded() ([]byte, error) {
	if c.Encoding != "base64" {
		return nil, fmt.Errorf("unexpected content encoding %q", c.Encoding)
	}
	return base64.StdEncoding.DecodeString(strings.ReplaceAll(c.Content, "\n", ""))
}

// --- Request types ---

// createRefRequest — создание git ref.
type createRefRequest struct {
	Ref string `json:"ref"`
	SHA string `json:"sha"`
}

// updateFileRequest — коммит обновления файла.
type updateFileRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// --- Client ---

// Client — клиент GitHub API для одного репозитория.
type Client struct {
	baseURL    string
	repo       string
	token      string
	httpClient *http.Client
}

// New создаёт клиент для репозитория repo ("owner/name").
func New(baseURL, repo, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		repo:    repo,
		token:   token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewFromEnv создаёт клиент с токеном из окружения.
// Отсутствие токена не ошибка на этом этапе — см. doc.go.
func NewFromEnv(repo string) *Client {
	return New(DefaultBaseURL, repo, os.Getenv(TokenEnv))
}

// GetBranch возвращает ветку репозитория.
// Возвращает ErrNotFound, если ветки нет.
func (c *Client) GetBranch(ctx context.Context, name string) (*Branch, error) {
	var branch Branch
	err := c.do(ctx, http.MethodGet, "/repos/"+c.repo+"/branches/"+url.PathEscape(name), nil, &branch)
	if err != nil {
		return nil, err
	}
	return &branch, nil
}

// CreateRef создаёт git ref (например "refs/heads/Osprey/3.7") на коммите sha.
func (c *Client) CreateRef(ctx context.Context, ref, sha string) error {
	body := createRefRequest{Ref: ref, SHA: sha}
	return c.do(ctx, http.MethodPost, "/repos/"+c.repo+"/git/refs", body, nil)
}

// GetContents возвращает файл репозитория по пути path на ref.
// Пустой ref означает ветку по умолчанию.
func (c *Client) GetContents(ctx context.Context, path, ref string) (*Contents, error) {
	endpoint := "/repos/" + c.repo + "/contents/" + path
	if ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref)
	}

	var contents Contents
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &contents); err != nil {
		return nil, err
	}
	return &contents, nil
}

// UpdateFile коммитит новое содержимое файла path.
// sha — текущий blob SHA файла (из GetContents), message — сообщение коммита.
func (c *Client) UpdateFile(ctx context.Context, path, message string, content []byte, sha string) error {
	body := updateFileRequest{
		Message: message,
		Content: base64.StdEncoding.EncodeToString(content),
		SHA:     sha,
	}
	return c.do(ctx, http.MethodPut, "/repos/"+c.repo+"/contents/"+path, body, nil)
}

// do выполняет запрос к API и декодирует ответ в out (если out != nil).
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	if c.token == "" {
		return ErrNoToken
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, endpoint)
	}
	if resp.StatusCode >= 400 {
		var apiErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
