package errors

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSvurlError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SvurlError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(CategoryValidation, SeverityError, "unknown set"),
			expected: "validation (error): unknown set",
		},
		{
			name:     "error with cause",
			err:      Wrap(fmt.Errorf("permission denied"), CategoryFileSystem, SeverityFatal, "set file is not readable"),
			expected: "filesystem (fatal): set file is not readable: permission denied",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.Error(); got != test.expected {
				t.Errorf("Error() = %q, want %q", got, test.expected)
			}
		})
	}
}

func TestSvurlError_UnwrapThroughFmt(t *testing.T) {
	cause := stdErrors.New("boom")
	wrapped := fmt.Errorf("outer: %w", PersistFailed("rename", "/tmp/x", cause))

	se, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CategoryFileSystem, se.Category)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "rename", se.Context["operation"])
}

func TestGetCategory(t *testing.T) {
	assert.Equal(t, CategoryRange, GetCategory(IndexOutOfRange(nil, 0, 2)))
	assert.Equal(t, CategoryInternal, GetCategory(stdErrors.New("plain")))
	assert.True(t, IsCategory(UnknownSet("nope"), CategoryValidation))
	assert.False(t, IsCategory(stdErrors.New("plain"), CategoryValidation))
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.True(t, IsFatal(stdErrors.New("plain")))
	assert.True(t, IsFatal(InvalidMode("bogus")))
	assert.False(t, IsFatal(IndexOutOfRange(nil, 0, 2)))
	assert.False(t, IsFatal(CannotUndo(nil, "./.saved")))
}

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", stdErrors.New("x"), 1},
		{"unknown set", UnknownSet("x"), 2},
		{"invalid url", InvalidURL("x", nil), 2},
		{"index", IndexOutOfRange(nil, 0, 1), 3},
		{"undo", CannotUndo(nil, "p"), 4},
		{"config", ConfigInvalid("c.yaml", nil), 7},
		{"filesystem", FileAccess("p", nil), 11},
		{"opener", OpenFailed("https://ex.com", nil), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	a := NewCLIErrorAdapter(false, nil)

	assert.Equal(t, "", a.FormatError(nil))
	assert.Equal(t, "Error: x", a.FormatError(stdErrors.New("x")))
	assert.Equal(t, "Warning: index out of range (index=0, max=2)", a.FormatError(IndexOutOfRange(nil, 0, 2)))
	assert.Equal(t, "Error: unknown set (set=nope)", a.FormatError(UnknownSet("nope")))

	verbose := NewCLIErrorAdapter(true, nil)
	assert.Equal(t, "validation (error): unknown set", verbose.FormatError(UnknownSet("nope")))
}

func TestCLIErrorAdapter_HandleErrorPrintsWithoutLogger(t *testing.T) {
	var out bytes.Buffer
	a := NewCLIErrorAdapter(false, nil).WithOutput(&out)

	code := a.HandleError(IndexOutOfRange(nil, 0, 1).WithContext("set", "saved"))

	assert.Equal(t, 3, code)
	assert.Equal(t, "Warning: index out of range (index=0, max=1, set=saved)\n", out.String())
	assert.Equal(t, 0, a.HandleError(nil))
	assert.Equal(t, "Warning: index out of range (index=0, max=1, set=saved)\n", out.String())
}

func TestCLIErrorAdapter_HandleErrorLogsFatal(t *testing.T) {
	var out bytes.Buffer
	core, logs := observer.New(zap.DebugLevel)
	a := NewCLIErrorAdapter(false, zap.New(core)).WithOutput(&out)

	a.HandleError(CannotUndo(nil, "./.saved"))
	assert.Equal(t, 0, logs.Len())

	code := a.HandleError(FileAccess("./.saved", stdErrors.New("denied")))
	assert.Equal(t, 11, code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "set file is not readable", logs.All()[0].Message)
	assert.Contains(t, out.String(), "Error: set file is not readable (path=./.saved)")
}
