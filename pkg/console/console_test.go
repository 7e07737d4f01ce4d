package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/diillson/apba-dashboard-go/internal/shared/types"
)

func TestTableRender(t *testing.T) {
	table := NewConsole().CreateTable()
	table.AddColumn("Unit")
	table.AddColumn("Total Budget")
	table.AddRow("Dinas Kesehatan", "Rp 2.5 Jt")
	table.AddRow("Dinas Pendidikan", 42)

	out := table.Render()
	for _, want := range []string{"Unit", "Total Budget", "Dinas Kesehatan", "Rp 2.5 Jt", "42"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table misses %q:\n%s", want, out)
		}
	}
}

func TestLogsUseConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleWithWriter(&buf)
	c.LogInfo("loaded %d tables", 4)
	c.LogWarning("unit %q has no lines", "Dinas Sosial")
	c.Println("plain")

	out := buf.String()
	for _, want := range []string{"loaded 4 tables", `unit "Dinas Sosial" has no lines`, "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("output misses %q:\n%s", want, out)
		}
	}
}

func TestShareTableScalesToLargestValue(t *testing.T) {
	data, ok := shareTable([]types.ShareBar{
		{Label: "Belanja Pegawai", Value: 300, Display: "Rp 300"},
		{Label: "Belanja Modal", Value: 100, Display: "Rp 100"},
	})
	if !ok {
		t.Fatal("expected bars for non-zero shares")
	}
	if len(data) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(data))
	}
	if got := strings.Count(data[1][2], "█"); got != barWidth {
		t.Errorf("largest share bar = %d chars, want %d", got, barWidth)
	}
	if got := strings.Count(data[2][2], "█"); got != barWidth/3 {
		t.Errorf("smaller share bar = %d chars, want %d", got, barWidth/3)
	}
	if data[1][3] != "75.0%" || data[2][3] != "25.0%" {
		t.Errorf("shares = %q, %q; want 75.0%%, 25.0%%", data[1][3], data[2][3])
	}
}

func TestDisplayShareBarsWarnsWhenEverythingIsZero(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleWithWriter(&buf).DisplayShareBars("Grants by Type", []types.ShareBar{{Label: "GOODS", Display: "Rp 0"}})

	out := buf.String()
	if !strings.Contains(out, "Grants by Type: all amounts are Rp 0") {
		t.Errorf("expected zero warning, got:\n%s", out)
	}
	if strings.Contains(out, "█") {
		t.Errorf("no bar expected for zero shares:\n%s", out)
	}
}

func TestDisplayShareBarsWritesPanel(t *testing.T) {
	var buf bytes.Buffer
	NewConsoleWithWriter(&buf).DisplayShareBars("Expenditure Composition", []types.ShareBar{
		{Label: "Belanja Operasi", Value: 2_500_000, Display: "Rp 2.5 Jt"},
	})

	out := buf.String()
	for _, want := range []string{"Expenditure Composition", "Belanja Operasi", "Rp 2.5 Jt", "100.0%"} {
		if !strings.Contains(out, want) {
			t.Errorf("panel misses %q:\n%s", want, out)
		}
	}
}
