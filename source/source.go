package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/signadot/scorex/debug"
)

var ErrSource = errors.New("source error")

const DefaultTimeout = 10 * time.Second

// HTTPDoer is the part of *http.Client used for fetching.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Loader reads sources. The zero value reads from os.Stdin and fetches
// with http.DefaultClient within DefaultTimeout.
type Loader struct {
	Client  HTTPDoer
	Stdin   io.Reader
	Timeout time.Duration
}

// Load reads src with a zero Loader.
func Load(ctx context.Context, src string) ([]byte, error) {
	return (&Loader{}).Load(ctx, src)
}

// IsURL reports whether src names an http or https resource.
func IsURL(src string) bool {
	s := strings.ToLower(src)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load returns the MusicXML text named by src: "-" for standard input,
// an http(s) URL or a file path. Compressed containers are unpacked.
func (l *Loader) Load(ctx context.Context, src string) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	switch {
	case src == "-":
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		d, err = io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("%w: error reading stdin: %w", ErrSource, err)
		}
	case IsURL(src):
		d, err = l.fetch(ctx, src)
		if err != nil {
			return nil, err
		}
	default:
		d, err = os.ReadFile(src)
		if err != nil {
			return nil, fmt.Errorf("%w: could not read %q: %w", ErrSource, src, err)
		}
	}
	if debug.Source() {
		debug.Logf("source: read %d bytes from %s\n", len(d), src)
	}
	if IsMXL(d) {
		d, err = Unpack(d)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
	}
	return d, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %w", ErrSource, url, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", ErrSource, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: fetch %s returned %d", ErrSource, url, resp.StatusCode)
	}
	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrSource, url, err)
	}
	return buf.Bytes(), nil
}
