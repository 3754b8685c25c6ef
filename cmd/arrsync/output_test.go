package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vmunix/arrsync/internal/progress"
)

func TestRenderTable(t *testing.T) {
	out := renderTable(
		[]string{"ID", "Title"},
		[][]string{{"1", "Lost"}, {"2"}},
		[]columnAlignment{alignRight},
	)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Lost")
	assert.Len(t, strings.Split(out, "\n"), 6, "three borders, a header and two rows")
}

func TestRenderTable_NoColumns(t *testing.T) {
	assert.Empty(t, renderTable(nil, [][]string{{"x"}}, nil))
}

func TestFormatWhen(t *testing.T) {
	assert.Equal(t, "never", formatWhen(nil))
	assert.Equal(t, "never", formatWhen(&time.Time{}))

	then := time.Now().Add(-3 * time.Hour)
	assert.Equal(t, "3 hours ago", formatWhen(&then))
}

func TestFormatID(t *testing.T) {
	assert.Equal(t, "-", formatID(nil))
	id := int64(73244)
	assert.Equal(t, "73244", formatID(&id))
}

func TestPrintRun(t *testing.T) {
	n := progress.New("Import new series", nil)
	n.SetMessage("Imported 1 of 2 series")
	n.RecordError(`import "Lost" failed at update_info`, errors.New("tvdb down"))
	n.Complete(nil)

	var b strings.Builder
	printRun(&b, n)
	out := b.String()
	assert.Contains(t, out, "Import new series: completed")
	assert.Contains(t, out, "Imported 1 of 2 series")
	assert.Contains(t, out, "tvdb down")
}

func TestPrintRun_NoErrorsNoTable(t *testing.T) {
	n := progress.New("Series search", nil)
	n.Complete(nil)

	var b strings.Builder
	printRun(&b, n)
	assert.NotContains(t, b.String(), "ERROR")
}
