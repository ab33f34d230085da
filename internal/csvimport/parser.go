// Package csvimport normalizes a spreadsheet CSV export into typed deal
// records. It is deliberately forgiving: malformed rows are dropped
// silently and unrecognized enum values are coerced to their defaults, so
// parsing never fails. The caller gets a possibly-empty slice and owns all
// user-facing messaging.
package csvimport

import (
	"strconv"
	"strings"
	"time"

	"dealtrack/internal/domain/deal"
)

// Expected header row (stray surrounding quotes and trailing spaces are
// stripped before matching):
//
//	Address, City, State, Country, Broker, BDD, Deal , Status, Brand,
//	NCO / Existing, Deal type, Notes, RSF , Owner
const (
	colAddress     = "Address"
	colCity        = "City"
	colState       = "State"
	colCountry     = "Country"
	colBroker      = "Broker"
	colBDD         = "BDD"
	colDealNumber  = "Deal"
	colStatus      = "Status"
	colBrand       = "Brand"
	colNCOExisting = "NCO / Existing"
	colDealType    = "Deal type"
	colNotes       = "Notes"
	colRSF         = "RSF"
	colOwner       = "Owner"
)

// idPrefix prefixes the synthesized row ids. Ids are stable only within a
// single parse, not across re-imports of a changed file.
const idPrefix = "deal-"

// ParseDeals converts the full text of a CSV blob into deal records. ref is
// the reference date the synthesized weekly history counts back from.
func ParseDeals(text string, ref time.Time) []deal.Deal {
	text = strings.TrimPrefix(text, "\uFEFF")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return nil
	}

	headers := strings.Split(lines[0], ",")
	for i, h := range headers {
		headers[i] = normalizeHeader(h)
	}

	var deals []deal.Deal
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || line == "," || !strings.Contains(line, ",") {
			continue // blank or malformed row
		}

		values := splitLine(line)
		if len(values) < len(headers) || values[0] == "" {
			continue // short or address-less row
		}

		// Transient column-name → value mapping; projected into the typed
		// record below and discarded.
		row := make(map[string]string, len(headers))
		for j, h := range headers {
			row[h] = values[j]
		}
		if row[colAddress] == "" {
			continue
		}

		status := deal.CoerceStage(row[colStatus])

		deals = append(deals, deal.Deal{
			ID:      idPrefix + strconv.Itoa(i),
			Address: row[colAddress],
			City:    row[colCity],
			State:   row[colState],
			Country: row[colCountry],
			// The BDD column holds the person, the Broker column the firm;
			// the person wins when present.
			Broker:        firstNonEmpty(row[colBDD], row[colBroker]),
			BDD:           row[colBDD],
			DealNumber:    parseDealNumber(row[colDealNumber]),
			Status:        status,
			Brand:         deal.CoerceBrand(row[colBrand]),
			NCOExisting:   deal.CoerceNCOExisting(row[colNCOExisting]),
			DealType:      deal.CoerceDealType(row[colDealType]),
			Notes:         row[colNotes],
			RSF:           strings.ReplaceAll(row[colRSF], `"`, ""),
			Owner:         row[colOwner],
			WeeklyHistory: deal.SynthesizeWeeklyHistory(status, ref),
		})
	}

	return deals
}

// normalizeHeader trims a header token and strips one literal surrounding
// quote, so `"Deal "` and `RSF ` both match their expected column names.
func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimPrefix(h, `"`)
	h = strings.TrimSuffix(h, `"`)
	return strings.TrimSpace(h)
}

// splitLine tokenizes one data line: a two-state quote-aware comma
// splitter. Inside quotes a doubled `""` emits one literal quote and stays
// quoted; a comma separates fields only outside quotes. Fields are trimmed
// as they are emitted. An unbalanced quote simply runs to end of line.
func splitLine(line string) []string {
	var (
		result   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"') // escaped quote
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			result = append(result, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	result = append(result, strings.TrimSpace(current.String()))
	return result
}

func parseDealNumber(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n == 0 {
		return 1
	}
	return n
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
