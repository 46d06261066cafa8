package errors

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	e := New("sample error message")
	if e == nil {
		t.Fatalf("expected non-nil error but got nil")
	}

	match, err := regexp.MatchString(`^sample error message: at `, e.Error())
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Errorf("expected %q to carry the caller location", e.Error())
	}
}

func TestNewEmbeddedError(t *testing.T) {
	errOne := New("sample error message one")
	errTwo := Wrap(errOne, "sample error message two")

	if er := errors.Unwrap(errTwo); er != errOne {
		t.Errorf("expected %v to be equal to %v", er, errOne)
	}
}

func TestFilePath(t *testing.T) {
	path := filePath()

	if path == "" {
		t.Fatalf("expected non-empty string but got empty string")
	}

	pattern := `^at testing.tRunner.*`
	match, err := regexp.MatchString(pattern, path)
	if err != nil {
		t.Fatal(err)
	}
	if !match {
		t.Fatalf("expected %q to match %q", path, pattern)
	}
}

func TestStatusError(t *testing.T) {
	err := Wrap(&StatusError{URL: "https://example.com/sitemap.xml", Code: 503}, "fetch sitemap")

	assert.True(t, Is(err, ErrHTTPStatus))
	assert.False(t, Is(err, ErrDiscovery))

	var statusErr *StatusError
	if assert.True(t, As(err, &statusErr)) {
		assert.Equal(t, 503, statusErr.Code)
	}
	assert.Contains(t, err.Error(), "returned status 503")
}

func TestJoinKeepsBothTargets(t *testing.T) {
	err := Join(ErrDiscovery, &StatusError{URL: "u", Code: 404})

	assert.True(t, Is(err, ErrDiscovery))
	assert.True(t, Is(err, ErrHTTPStatus))
}

func TestCause(t *testing.T) {
	root := New("connection reset")
	err := Wrap(Wrap(root, "request failed"), "fetch page")

	assert.Equal(t, root, Cause(err))
	assert.Equal(t, root, Cause(root))
	assert.Nil(t, Cause(nil))
}
