package window

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/tracy/internal/shared"
)

type recordingOpener struct {
	spec Spec
	err  error
}

func (r *recordingOpener) Open(ctx context.Context, spec Spec) error {
	r.spec = spec
	return r.err
}

func TestLayout(t *testing.T) {
	cfg := shared.DefaultConfig().Window

	tc := []struct {
		name       string
		goos       string
		base       string
		wantURL    string
		wantWidth  int
		wantHeight int
		wantNotice bool
	}{
		{name: "linux", goos: "linux", base: "http://localhost:8001/", wantURL: "http://localhost:8001/", wantWidth: 600, wantHeight: 800},
		{name: "darwin", goos: "darwin", base: "http://localhost:8001/", wantURL: "http://localhost:8001/", wantWidth: 600, wantHeight: 800},
		{name: "windows", goos: "windows", base: "http://localhost:8001/", wantURL: "http://localhost:8001/windows", wantWidth: 250, wantHeight: 200, wantNotice: true},
		{name: "missing slash", goos: "windows", base: "http://localhost:9000", wantURL: "http://localhost:9000/windows", wantWidth: 250, wantHeight: 200, wantNotice: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			spec := Layout(tt.goos, tt.base, cfg)

			if spec.URL != tt.wantURL {
				t.Errorf("URL = %s, want %s", spec.URL, tt.wantURL)
			}
			if spec.Width != tt.wantWidth || spec.Height != tt.wantHeight {
				t.Errorf("size = %dx%d, want %dx%d", spec.Width, spec.Height, tt.wantWidth, tt.wantHeight)
			}
			if (spec.Notice != "") != tt.wantNotice {
				t.Errorf("Notice = %q, want notice %v", spec.Notice, tt.wantNotice)
			}
			if spec.Title != "Tracy" {
				t.Errorf("Title = %s, want Tracy", spec.Title)
			}
		})
	}
}

// dispatch calls fn the way the web view binding does: req is the JSON array of script
// arguments, each decoded into the matching parameter type.
func dispatch(fn any, req string) error {
	v := reflect.ValueOf(fn)
	raw := []json.RawMessage{}
	if err := json.Unmarshal([]byte(req), &raw); err != nil {
		return err
	}

	typ := v.Type()
	numIn := typ.NumIn()
	if (typ.IsVariadic() && len(raw) < numIn-1) || (!typ.IsVariadic() && len(raw) != numIn) {
		return errors.New("function arguments mismatch")
	}

	args := []reflect.Value{}
	for i := range raw {
		var arg reflect.Value
		if typ.IsVariadic() && i >= numIn-1 {
			arg = reflect.New(typ.In(numIn - 1).Elem())
		} else {
			arg = reflect.New(typ.In(i))
		}
		if err := json.Unmarshal(raw[i], arg.Interface()); err != nil {
			return err
		}
		args = append(args, arg.Elem())
	}

	out := v.Call(args)
	if err, ok := out[len(out)-1].Interface().(error); ok {
		return err
	}
	return nil
}

func TestInvoke(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		if err := Invoke(); err != nil {
			t.Errorf("Invoke() = %v, want nil", err)
		}
		if err := Invoke(json.RawMessage(`"anything"`)); err != nil {
			t.Errorf("Invoke(anything) = %v, want nil", err)
		}
	})

	t.Run("from script", func(t *testing.T) {
		for _, req := range []string{
			`[]`,
			`["x"]`,
			`[""]`,
			`[42]`,
			`[{"cmd":"save"}]`,
			`["a","b"]`,
			`[null,true,[1,2]]`,
		} {
			if err := dispatch(Invoke, req); err != nil {
				t.Errorf("invoke(%s) = %v, want nil", req, err)
			}
		}
	})
}

func TestShell(t *testing.T) {
	logger := shared.NewLogger(io.Discard)

	t.Run("prints notice", func(t *testing.T) {
		var out bytes.Buffer
		opener := &recordingOpener{}
		spec := Layout("windows", "http://localhost:8001/", shared.DefaultConfig().Window)

		if err := NewShell(opener, logger, &out).Run(context.Background(), spec); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if !strings.Contains(out.String(), WindowsNotice) {
			t.Errorf("expected notice, got %q", out.String())
		}
		if opener.spec.URL != spec.URL {
			t.Errorf("expected opener to receive %s, got %s", spec.URL, opener.spec.URL)
		}
	})

	t.Run("no notice", func(t *testing.T) {
		var out bytes.Buffer
		spec := Layout("linux", "http://localhost:8001/", shared.DefaultConfig().Window)

		if err := NewShell(&recordingOpener{}, logger, &out).Run(context.Background(), spec); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if out.Len() != 0 {
			t.Errorf("expected no output, got %q", out.String())
		}
	})

	t.Run("opener failure", func(t *testing.T) {
		boom := errors.New("no display")
		err := NewShell(&recordingOpener{err: boom}, logger, io.Discard).Run(context.Background(), Spec{})
		if !errors.Is(err, boom) {
			t.Errorf("expected wrapped opener error, got %v", err)
		}
	})
}

func TestBrowserOpener(t *testing.T) {
	t.Run("waits for context", func(t *testing.T) {
		var opened string
		b := &BrowserOpener{open: func(url string) error { opened = url; return nil }}

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		if err := b.Open(ctx, Spec{URL: "http://localhost:8001/"}); err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if opened != "http://localhost:8001/" {
			t.Errorf("expected browser to open the url, got %q", opened)
		}
	})

	t.Run("launch failure", func(t *testing.T) {
		b := &BrowserOpener{open: func(string) error { return errors.New("no browser") }}
		if err := b.Open(context.Background(), Spec{}); err == nil {
			t.Error("expected error")
		}
	})
}
