package components

import (
	"testing"
	"time"

	tuitest "github.com/Veraticus/transfers/internal/tui/testing"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToast_ShowAndExpire(t *testing.T) {
	toast := NewToast(themes.Default, themes.UnicodeIcons, 10*time.Millisecond)
	assert.False(t, toast.Visible())
	assert.Empty(t, toast.View())

	cmd := toast.Show(ToastSuccess, "Copied to Clipboard", "Text has been copied successfully!")
	require.NotNil(t, cmd)
	assert.True(t, toast.Visible())
	assert.Equal(t, "Copied to Clipboard", toast.Title())
	assert.Equal(t, ToastSuccess, toast.Kind())

	view := tuitest.StripANSI(toast.View())
	assert.Contains(t, view, "Copied to Clipboard")
	assert.Contains(t, view, "Text has been copied successfully!")

	expired, ok := cmd().(ToastExpiredMsg)
	require.True(t, ok)

	toast, _ = toast.Update(expired)
	assert.False(t, toast.Visible())
}

func TestToast_StaleTimerDoesNotHideNewerToast(t *testing.T) {
	toast := NewToast(themes.Default, themes.UnicodeIcons, 10*time.Millisecond)

	first := toast.Show(ToastSuccess, "first", "")
	second := toast.Show(ToastError, "second", "boom")

	toast, _ = toast.Update(first())
	assert.True(t, toast.Visible(), "the first timer belongs to a replaced toast")
	assert.Equal(t, "second", toast.Title())
	assert.Equal(t, ToastError, toast.Kind())

	toast, _ = toast.Update(second())
	assert.False(t, toast.Visible())
}

func TestToast_DefaultDuration(t *testing.T) {
	toast := NewToast(themes.Default, themes.ASCIIIcons, 0)
	assert.Equal(t, DefaultToastDuration, toast.duration)

	toast.Show(ToastError, "Gagal menyalin", "clipboard unsupported")
	view := tuitest.StripANSI(toast.View())
	assert.Contains(t, view, "! Gagal menyalin")
}
