package report

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"github.com/Jrmarques7/ISABELA-TCC/model"
)

func responsesQ11(values ...string) []model.SurveyResponse {
	var out []model.SurveyResponse
	for _, v := range values {
		out = append(out, model.SurveyResponse{Q11: model.String(v)})
	}
	return out
}

func TestTally(t *testing.T) {
	tests := []struct {
		name      string
		responses []model.SurveyResponse
		field     string
		want      map[string]int
	}{
		{"scalar", responsesQ11("A", "A", "B"), model.FieldQ11, map[string]int{"A": 2, "B": 1}},
		{"empty list", nil, model.FieldQ11, map[string]int{}},
		{"empty values excluded", responsesQ11("A", ""), model.FieldQ11, map[string]int{"A": 1}},
		{"list counts every element", []model.SurveyResponse{
			{Q12: []string{"A", "B"}},
			{Q12: []string{"A"}},
			{Q12: []string{}},
		}, model.FieldQ12, map[string]int{"A": 2, "B": 1}},
		{"unknown field", responsesQ11("A"), "q99", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tally(tt.responses, tt.field)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTallyNested(t *testing.T) {
	responses := []model.SurveyResponse{
		{Q16: model.RatingGroup{Carga: model.String("Ruim"), Fluxo: model.String("Bom")}},
		{Q16: model.RatingGroup{Carga: model.String("Ruim")}},
		{},
	}

	got := TallyNested(responses, model.RatingCarga)
	if !reflect.DeepEqual(got, map[string]int{"Ruim": 2}) {
		t.Errorf("carga: got %v", got)
	}
	if got := TallyNested(responses, model.RatingVinculo); len(got) != 0 {
		t.Errorf("vinculo: expected empty, got %v", got)
	}
}

func TestBars(t *testing.T) {
	chart := Bars(map[string]int{"A": 5})
	if chart.Total != 5 || len(chart.Bars) != 1 {
		t.Fatalf("unexpected chart %+v", chart)
	}
	if b := chart.Bars[0]; b.Width != 100 || b.Caption() != "A (100.0%)" {
		t.Errorf("expected full bar captioned A (100.0%%), got %+v %q", b, b.Caption())
	}

	chart = Bars(map[string]int{"rare": 1, "common": 30, "mid": 9, "also-mid": 9})
	labels := []string{}
	for _, b := range chart.Bars {
		labels = append(labels, b.Label)
	}
	if !reflect.DeepEqual(labels, []string{"common", "also-mid", "mid", "rare"}) {
		t.Errorf("unexpected order %v", labels)
	}
	rare := chart.Bars[3]
	if rare.PercentText() != "2.0" || rare.Width != MinBarWidth {
		t.Errorf("small share should show 2.0%% at minimum width, got %+v", rare)
	}

	if !Bars(map[string]int{}).Empty() {
		t.Error("expected empty chart")
	}
}

func TestRenderBarsHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBarsHTML(&buf, Bars(map[string]int{"A": 5})); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`class="bar-label">A<`, `width: 100.0%`, `5 (100.0%)`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := RenderBarsHTML(&buf, Bars(map[string]int{})); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), NoDataText) {
		t.Errorf("expected empty-state placeholder, got %q", buf.String())
	}
}

func TestRenderBarsText(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderBarsText(&buf, Bars(map[string]int{"A": 1, "BB": 3})); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], "  BB") || !strings.HasSuffix(lines[0], "3 (75.0%)") {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestBuild(t *testing.T) {
	rep := Build(responsesQ11("A", "B"))
	if rep.Total != 2 {
		t.Errorf("expected total 2, got %d", rep.Total)
	}
	if len(rep.Sections) != 11 {
		t.Fatalf("expected 11 sections, got %d", len(rep.Sections))
	}
	if rep.Sections[0].Title != "Q11 - Autonomia" || rep.Sections[0].Chart.Total != 2 {
		t.Errorf("unexpected first section %+v", rep.Sections[0])
	}
	if !rep.Sections[1].Chart.Empty() {
		t.Error("q12 should be empty")
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, rep); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Q16 - Sistematização") {
		t.Error("page misses the last section")
	}
}

func exportSample() model.SurveyResponse {
	return model.SurveyResponse{
		ID:        7,
		DataEnvio: time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC),
		Q11:       model.String("Sim"),
		Q12:       []string{"A", "B"},
		Q13:       model.String(`Outro: "aspas"`),
		Q15:       []string{"Outra: x"},
		Q16:       model.RatingGroup{Estrutura: model.String("Bom")},
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, []model.SurveyResponse{exportSample()}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, utf8BOM) {
		t.Error("missing BOM")
	}
	lines := strings.Split(strings.TrimPrefix(out, utf8BOM), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"ID","Data Envio","Q11 - Autonomia"`) {
		t.Errorf("unexpected header %q", lines[0])
	}

	want := `"7","2026-10-19T14:30:00Z","Sim","A; B","Outro: ""aspas""","","","Outra: x","Bom","","","",""`
	if lines[1] != want {
		t.Errorf("unexpected row\nwant %s\ngot  %s", want, lines[1])
	}
	if n := strings.Count(lines[1], `","`) + 1; n != 13 {
		t.Errorf("expected 13 quoted cells, got %d", n)
	}
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, []model.SurveyResponse{exportSample()}); err != nil {
		t.Fatal(err)
	}

	var got []model.SurveyResponse
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID != 7 || !reflect.DeepEqual(got[0].Q12, []string{"A", "B"}) {
		t.Errorf("unexpected export %+v", got)
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); !errors.Is(err, ErrNoData) {
		t.Errorf("csv: expected ErrNoData, got %v", err)
	}
	if err := ExportJSON(&buf, nil); !errors.Is(err, ErrNoData) {
		t.Errorf("json: expected ErrNoData, got %v", err)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC)
	if got := Filename("csv", now); got != "pesquisa_respostas_2026-10-19.csv" {
		t.Errorf("unexpected filename %q", got)
	}
}
