package csvimport

import (
	"strings"
	"testing"
	"time"

	"dealtrack/internal/domain/deal"
)

var ref = time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)

const header = `Address,City,State,Country,Broker,BDD,"Deal ",Status,Brand,NCO / Existing,Deal type,Notes,"RSF ",Owner`

// row builds a 14-column line from the given overrides, defaulting the rest.
func row(overrides map[string]string) string {
	cols := []string{"Address", "City", "State", "Country", "Broker", "BDD", "Deal", "Status", "Brand", "NCO / Existing", "Deal type", "Notes", "RSF", "Owner"}
	defaults := map[string]string{
		"Address": "100 Main St", "City": "Austin", "State": "TX", "Country": "USA",
		"Broker": "CBRE", "BDD": "Jane Roe", "Deal": "2", "Status": "LOI",
		"Brand": "Spaces", "NCO / Existing": "Existing", "Deal type": "MCA",
		"Notes": "note", "RSF": "12,000", "Owner": "Owner LLC",
	}
	vals := make([]string, len(cols))
	for i, c := range cols {
		v := defaults[c]
		if ov, ok := overrides[c]; ok {
			v = ov
		}
		if strings.ContainsAny(v, `,"`) {
			v = `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
		}
		vals[i] = v
	}
	return strings.Join(vals, ",")
}

func TestParseDeals_WellFormedRows_InOrder(t *testing.T) {
	text := header + "\n" +
		row(map[string]string{"Address": "1 First Ave", "Status": "Executed"}) + "\n" +
		row(map[string]string{"Address": "2 Second Ave", "Status": "In Legal"}) + "\n"

	got := ParseDeals(text, ref)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Address != "1 First Ave" || got[1].Address != "2 Second Ave" {
		t.Fatalf("row order lost: %q, %q", got[0].Address, got[1].Address)
	}
	if got[0].Status != deal.StageExecuted || got[1].Status != deal.StageInLegal {
		t.Fatalf("stages = %q, %q", got[0].Status, got[1].Status)
	}
	if got[0].ID != "deal-1" || got[1].ID != "deal-2" {
		t.Fatalf("ids = %q, %q", got[0].ID, got[1].ID)
	}
}

func TestParseDeals_BOMStripped(t *testing.T) {
	text := "\uFEFF" + header + "\n" + row(nil)
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Address != "100 Main St" {
		t.Fatalf("address = %q", got[0].Address)
	}
}

func TestParseDeals_UnknownStatus_FallsBackToProspecting(t *testing.T) {
	text := header + "\n" + row(map[string]string{"Status": "Under Review"})
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Status != deal.StageProspecting {
		t.Fatalf("status = %q, want Prospecting", got[0].Status)
	}
}

func TestParseDeals_SkipsMalformedRows(t *testing.T) {
	text := header + "\n" +
		"\n" + // blank
		",\n" + // bare comma
		"no commas here\n" +
		row(map[string]string{"Address": ""}) + "\n" + // address-less
		"short,row\n" + // fewer tokens than headers
		row(nil) + "\n"

	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1 (only the well-formed row)", len(got))
	}
}

func TestParseDeals_QuotedComma_IsOneField(t *testing.T) {
	text := header + "\n" + row(map[string]string{"Address": "123 Main St, Suite 400"})
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Address != "123 Main St, Suite 400" {
		t.Fatalf("address = %q", got[0].Address)
	}
}

func TestSplitLine_DoubledQuoteUnescapes(t *testing.T) {
	got := splitLine(`"Say ""hi""",X`)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0] != `Say "hi"` {
		t.Fatalf("field = %q, want %q", got[0], `Say "hi"`)
	}
	if got[1] != "X" {
		t.Fatalf("field = %q, want X", got[1])
	}
}

func TestSplitLine_TrimsFields(t *testing.T) {
	got := splitLine(` a , b ,c `)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("field[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseDeals_BDDPreferredOverBroker(t *testing.T) {
	text := header + "\n" +
		row(map[string]string{"BDD": "Jane Roe", "Broker": "CBRE"}) + "\n" +
		row(map[string]string{"Address": "2 Second Ave", "BDD": "", "Broker": "JLL"})

	got := ParseDeals(text, ref)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Broker != "Jane Roe" {
		t.Fatalf("broker = %q, want the BDD value", got[0].Broker)
	}
	if got[1].Broker != "JLL" {
		t.Fatalf("broker = %q, want the Broker fallback", got[1].Broker)
	}
	if got[0].BDD != "Jane Roe" || got[1].BDD != "" {
		t.Fatalf("bdd fields = %q, %q", got[0].BDD, got[1].BDD)
	}
}

func TestParseDeals_DealNumberFallback(t *testing.T) {
	text := header + "\n" +
		row(map[string]string{"Deal": "7"}) + "\n" +
		row(map[string]string{"Address": "2 Second Ave", "Deal": "n/a"}) + "\n" +
		row(map[string]string{"Address": "3 Third Ave", "Deal": ""})

	got := ParseDeals(text, ref)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].DealNumber != 7 || got[1].DealNumber != 1 || got[2].DealNumber != 1 {
		t.Fatalf("deal numbers = %d, %d, %d", got[0].DealNumber, got[1].DealNumber, got[2].DealNumber)
	}
}

func TestParseDeals_RSFKeptAsTextWithQuotesStripped(t *testing.T) {
	text := header + "\n" + row(map[string]string{"RSF": `24,500`})
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].RSF != "24,500" {
		t.Fatalf("rsf = %q, want the display string", got[0].RSF)
	}
}

func TestParseDeals_EnumFallbacks(t *testing.T) {
	text := header + "\n" + row(map[string]string{
		"Brand": "WeWork", "NCO / Existing": "Renewal", "Deal type": "LEASE",
	})
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	d := got[0]
	if d.Brand != deal.DefaultBrand {
		t.Fatalf("brand = %q, want %q", d.Brand, deal.DefaultBrand)
	}
	if d.NCOExisting != deal.DefaultNCOExisting {
		t.Fatalf("ncoExisting = %q, want %q", d.NCOExisting, deal.DefaultNCOExisting)
	}
	if d.DealType != deal.DefaultDealType {
		t.Fatalf("dealType = %q, want %q", d.DealType, deal.DefaultDealType)
	}
}

func TestParseDeals_SynthesizesWeeklyHistory(t *testing.T) {
	text := header + "\n" + row(map[string]string{"Status": "Executed"})
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	h := got[0].WeeklyHistory
	if len(h) != 4 {
		t.Fatalf("history len = %d, want 4", len(h))
	}
	want := []deal.Stage{deal.StageExecuted, deal.StageInLegal, deal.StageICApproved, deal.StageLOI}
	for i := range want {
		if h[i].Stage != want[i] {
			t.Fatalf("history[%d] = %q, want %q", i, h[i].Stage, want[i])
		}
	}
	if h[0].Week != "9/22/25" {
		t.Fatalf("week label = %q, want 9/22/25", h[0].Week)
	}
}

func TestParseDeals_QuotedHeaderTokensMatch(t *testing.T) {
	// "Deal " and "RSF " are literal-quoted with trailing spaces in the
	// export; both must still project into their columns.
	text := header + "\n" + row(map[string]string{"Deal": "5", "RSF": "9000"})
	got := ParseDeals(text, ref)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].DealNumber != 5 {
		t.Fatalf("dealNumber = %d, want 5", got[0].DealNumber)
	}
	if got[0].RSF != "9000" {
		t.Fatalf("rsf = %q, want 9000", got[0].RSF)
	}
}

func TestParseDeals_EmptyInput(t *testing.T) {
	if got := ParseDeals("", ref); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
	if got := ParseDeals(header, ref); len(got) != 0 {
		t.Fatalf("header only: len = %d, want 0", len(got))
	}
}
