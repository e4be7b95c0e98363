package output

import (
	"strings"
	"testing"
	"time"

	"github.com/fdsmon/shiftrep/internal/model"
)

func sampleReport() *model.Report {
	r := model.NewReport(
		"Selamat sore, berikut rekap shift problem Zabbix monitoring IFG pada akhir shift A",
		"01/06/2024 06:00 - 01/06/2024 15:00",
		"Armin",
	)

	space := model.Event{
		Host:       "srv-app-01",
		Start:      time.Date(2024, 6, 1, 6, 30, 0, 0, time.Local),
		DurationMs: 10_800_000, // 3h
		Status:     model.Unresolved,
		Category:   model.CategorySpace,
		TicketID:   "IFG-1001",
	}
	mem := model.Event{
		Host:       "srv-db-02",
		Start:      time.Date(2024, 6, 1, 7, 0, 0, 0, time.Local),
		DurationMs: 7_200_000, // 2h
		Status:     model.Resolved,
		Category:   model.CategoryMemory,
		TicketID:   "N/A",
	}
	longRunner := model.Event{
		Host:       "srv-old-09",
		Start:      time.Date(2024, 5, 30, 7, 10, 0, 0, time.Local),
		DurationMs: 176_400_000, // 2d 1h
		Status:     model.Unresolved,
		Category:   model.CategorySpace,
		TicketID:   "IFG-1002",
	}

	for _, e := range []model.Event{space, mem, longRunner} {
		r.All.Add(e)
	}
	r.Current.Add(space)
	r.Current.Add(mem)
	r.FollowUp.Add(longRunner)
	return r
}

func TestRenderText(t *testing.T) {
	got := RenderText(sampleReport())

	want := "Selamat sore, berikut rekap shift problem Zabbix monitoring IFG pada akhir shift A\n" +
		"01/06/2024 06:00 - 01/06/2024 15:00\n" +
		"\n" +
		"Space is critically low\n" +
		"- srv-app-01  Durasi: 3 jam 0 menit (start 6/1/2024, 06:30)  (IFG-1001)  *Belum Resolved*\n" +
		"\n" +
		"High memory utilization\n" +
		"- srv-db-02  Durasi: 2 jam 0 menit (start 6/1/2024, 07:00)  (N/A)  *Resolved*\n" +
		"\n" +
		"Follow Up Report:\n" +
		"\n" +
		"Space is critically low\n" +
		"- srv-old-09  Durasi: 2 hari 1 jam 0 menit (start 5/30/2024, 07:10)  (IFG-1002)  *Belum Resolved*\n" +
		"\n" +
		"Terima kasih\n" +
		"FDS Monitoring - Armin"

	if got != want {
		t.Errorf("report mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderTextOmitsEmptyCategories(t *testing.T) {
	r := model.NewReport("header", "period", "Op")
	got := RenderText(r)

	if strings.Contains(got, "Temperature") || strings.Contains(got, "Other") {
		t.Errorf("empty categories rendered:\n%s", got)
	}
	if !strings.Contains(got, "Follow Up Report:") {
		t.Error("follow-up heading missing")
	}
	if !strings.HasSuffix(got, "FDS Monitoring - Op") {
		t.Errorf("signature missing, got:\n%s", got)
	}
}

func TestRenderTextVerbatimLabels(t *testing.T) {
	r := model.NewReport("h", "p", "Op")
	r.Current.Add(model.Event{Host: "a", Category: model.CategoryTemperature, DurationMs: 3_600_000, StartRaw: "x", TicketID: "N/A"})
	r.Current.Add(model.Event{Host: "b", Category: model.CategoryOther, DurationMs: 3_600_000, StartRaw: "y", TicketID: "N/A"})

	got := RenderText(r)
	if !strings.Contains(got, "Temperature\n- a") {
		t.Errorf("Temperature label not verbatim:\n%s", got)
	}
	if !strings.Contains(got, "Other\n- b") {
		t.Errorf("Other label not verbatim:\n%s", got)
	}
}
