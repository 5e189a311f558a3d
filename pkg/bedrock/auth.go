package bedrock

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandertv/gophertunnel/minecraft/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// TokenCache keeps the Xbox Live token on disk so the device code login
// only happens once per data directory.
type TokenCache struct {
	path   string
	logger *zap.Logger

	login   func() (*oauth2.Token, error)
	refresh func(*oauth2.Token) oauth2.TokenSource

	mu sync.Mutex
}

// NewTokenCache stores the token under dir/auth/token.json. Device code
// instructions are written to prompt.
func NewTokenCache(dir string, prompt io.Writer, logger *zap.Logger) *TokenCache {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TokenCache{
		path:   filepath.Join(dir, "auth", "token.json"),
		logger: logger,
		login: func() (*oauth2.Token, error) {
			return auth.RequestLiveTokenWriter(prompt)
		},
		refresh: auth.RefreshTokenSource,
	}
}

// TokenSource returns a source that refreshes the cached token and writes
// every new token back to disk. It runs the interactive login when nothing
// is cached yet.
func (c *TokenCache) TokenSource() (oauth2.TokenSource, error) {
	tok, err := c.Load()
	if errors.Is(err, errNoToken) {
		c.logger.Info("no cached Xbox Live token, starting device login")

		tok, err = c.login()
		if err != nil {
			return nil, fmt.Errorf("device login failed: %w", err)
		}

		if err := c.Save(tok); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return &persistingSource{
		src:   c.refresh(tok),
		cache: c,
		last:  tok.AccessToken,
	}, nil
}

func (c *TokenCache) Load() (*oauth2.Token, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errNoToken
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read token cache: %w", err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to decode token cache: %w", err)
	}

	if tok.RefreshToken == "" && tok.AccessToken == "" {
		return nil, errNoToken
	}

	return &tok, nil
}

func (c *TokenCache) Save(tok *oauth2.Token) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token cache: %w", err)
	}

	return os.Rename(tmp, c.path)
}

type persistingSource struct {
	src   oauth2.TokenSource
	cache *TokenCache

	mu   sync.Mutex
	last string
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if tok.AccessToken != p.last {
		p.last = tok.AccessToken

		if err := p.cache.Save(tok); err != nil {
			p.cache.logger.Warn("failed to persist refreshed token", zap.Error(err))
		}
	}

	return tok, nil
}

// Lazy defers the cache lookup, and the device login when nothing is
// cached, to the first dial. A failed attempt is retried on the next call.
func (c *TokenCache) Lazy() oauth2.TokenSource {
	return &lazySource{cache: c}
}

type lazySource struct {
	cache *TokenCache

	mu  sync.Mutex
	src oauth2.TokenSource
}

func (l *lazySource) Token() (*oauth2.Token, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.src == nil {
		src, err := l.cache.TokenSource()
		if err != nil {
			return nil, err
		}

		l.src = src
	}

	return l.src.Token()
}
