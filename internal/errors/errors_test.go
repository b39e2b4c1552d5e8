package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := Newf(CategoryConfig, "invalid port %d", 99999)
	want := "config: invalid port 99999"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorStringWithWrapped(t *testing.T) {
	inner := fmt.Errorf("unexpected end of JSON input")
	err := Newf(CategoryConfig, "parsing verdana.json").Wrap(inner)
	got := err.Error()
	if !strings.Contains(got, "parsing verdana.json") || !strings.Contains(got, inner.Error()) {
		t.Errorf("Error() = %q, want both message and cause", got)
	}
}

func TestUnwrap(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := Newf(CategoryLive, "session failed").Wrap(inner)
	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestFormatIncludesSuggestion(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := Newf(CategoryConfig, "invalid port").
		WithSuggestion("set VERDANA_PORT to a value between 1 and 65535")

	out := err.Format()
	if !strings.Contains(out, "ERROR config: invalid port") {
		t.Errorf("Format() missing header: %q", out)
	}
	if !strings.Contains(out, "hint: set VERDANA_PORT") {
		t.Errorf("Format() missing suggestion: %q", out)
	}
}

func TestColorsDisabled(t *testing.T) {
	DisableColors()
	defer EnableColors()

	out := Newf(CategoryRender, "bad node").Format()
	if strings.Contains(out, "\033[") {
		t.Errorf("Format() contains ANSI codes with colors disabled: %q", out)
	}
}
