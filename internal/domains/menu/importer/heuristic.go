package importer

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"carre/shared/constant"
)

// headerSynonyms maps FR/EN column headings onto canonical field names.
var headerSynonyms = map[string]string{
	"nom":         "name",
	"name":        "name",
	"produit":     "name",
	"article":     "name",
	"designation": "name",
	"prix":        "price",
	"price":       "price",
	"tarif":       "price",
	"chf":         "price",
	"categorie":   "category",
	"category":    "category",
	"type":        "category",
	"format":      "format",
	"contenant":   "format",
	"volume":      "volume",
	"contenance":  "volume",
	"taille":      "volume",
	"description": "description",
	"commentaire": "description",
}

// categoryKeywords maps product-name fragments onto the category enum.
// Checked in order so the more specific fragments win.
var categoryKeywords = []struct {
	keyword  string
	category string
}{
	{"champagne", constant.CategoryChampagne},
	{"moet", constant.CategoryChampagne},
	{"veuve", constant.CategoryChampagne},
	{"dom perignon", constant.CategoryChampagne},
	{"ruinart", constant.CategoryChampagne},
	{"laurent perrier", constant.CategoryChampagne},
	{"prosecco", constant.CategoryVin},
	{"vin", constant.CategoryVin},
	{"wine", constant.CategoryVin},
	{"rose", constant.CategoryVin},
	{"rouge", constant.CategoryVin},
	{"blanc", constant.CategoryVin},
	{"vodka", constant.CategorySpirits},
	{"gin", constant.CategorySpirits},
	{"rhum", constant.CategorySpirits},
	{"rum", constant.CategorySpirits},
	{"whisky", constant.CategorySpirits},
	{"whiskey", constant.CategorySpirits},
	{"tequila", constant.CategorySpirits},
	{"cognac", constant.CategorySpirits},
	{"liqueur", constant.CategorySpirits},
	{"jagermeister", constant.CategorySpirits},
	{"biere", constant.CategoryBiere},
	{"beer", constant.CategoryBiere},
	{"heineken", constant.CategoryBiere},
	{"corona", constant.CategoryBiere},
	{"desperados", constant.CategoryBiere},
	{"redbull", constant.CategoryEnergy},
	{"red bull", constant.CategoryEnergy},
	{"energy", constant.CategoryEnergy},
	{"monster", constant.CategoryEnergy},
	{"aperol", constant.CategoryAperitif},
	{"spritz", constant.CategoryAperitif},
	{"campari", constant.CategoryAperitif},
	{"pastis", constant.CategoryAperitif},
	{"ricard", constant.CategoryAperitif},
	{"martini", constant.CategoryAperitif},
	{"eau", constant.CategorySoft},
	{"water", constant.CategorySoft},
	{"coca", constant.CategorySoft},
	{"soda", constant.CategorySoft},
	{"jus", constant.CategorySoft},
}

var formatKeywords = []struct {
	keyword string
	format  string
}{
	{"jeroboam", "Jeroboam"},
	{"magnum", "Magnum"},
	{"canette", "Canette"},
	{"verre", "Verre"},
}

var (
	volumePattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(cl|ml|l)\b`)
	pricePattern  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)
)

// HeuristicExtractor parses tabular menu rows by column-keyword matching
// and keyword inference, with no external calls.
type HeuristicExtractor struct{}

func NewHeuristic() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

func (e *HeuristicExtractor) Extract(_ context.Context, doc Document) ([]Draft, error) {
	headerIndex, columns := detectHeader(doc.Rows)

	drafts := []Draft{}

	for i, row := range doc.Rows {
		if i <= headerIndex {
			continue
		}

		draft, ok := parseRow(row, columns)
		if !ok {
			continue
		}

		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// detectHeader scans the first rows for a line whose cells match known
// column headings. A header needs at least a name and a price column.
func detectHeader(rows [][]string) (int, map[string]int) {
	limit := min(len(rows), 10)

	for i := range limit {
		columns := map[string]int{}

		for j, cell := range rows[i] {
			key := normalize(cell)
			if field, ok := headerSynonyms[key]; ok {
				if _, taken := columns[field]; !taken {
					columns[field] = j
				}
			}
		}

		_, hasName := columns["name"]
		_, hasPrice := columns["price"]

		if hasName && hasPrice {
			return i, columns
		}
	}

	return -1, nil
}

func parseRow(row []string, columns map[string]int) (Draft, bool) {
	if columns != nil {
		return parseMappedRow(row, columns)
	}

	return parseFreeRow(row)
}

func parseMappedRow(row []string, columns map[string]int) (Draft, bool) {
	name := cellAt(row, columns, "name")
	if name == constant.Empty {
		return Draft{}, false
	}

	price, ok := parsePrice(cellAt(row, columns, "price"))
	if !ok {
		return Draft{}, false
	}

	category := normalizeCategory(cellAt(row, columns, "category"))
	if category == constant.Empty {
		category = inferCategory(name)
	}

	format := cellAt(row, columns, "format")
	if format == constant.Empty {
		format = inferFormat(strings.Join(row, " "))
	}

	volume := cellAt(row, columns, "volume")
	if volume == constant.Empty {
		volume = inferVolume(strings.Join(row, " "))
	}

	return newDraft(name, price, category, format, volume, cellAt(row, columns, "description")), true
}

// parseFreeRow handles documents without a recognizable header: the first
// non-numeric cell is the name, the first numeric cell the price.
func parseFreeRow(row []string) (Draft, bool) {
	var (
		name  string
		price float64
		found bool
	)

	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == constant.Empty {
			continue
		}

		if p, ok := parsePrice(cell); ok && !found && name != constant.Empty {
			price = p
			found = true

			continue
		}

		if name == constant.Empty {
			name = cell
		}
	}

	if name == constant.Empty || !found {
		return Draft{}, false
	}

	rowText := strings.Join(row, " ")

	return newDraft(name, price, inferCategory(name), inferFormat(rowText), inferVolume(rowText), constant.Empty), true
}

func cellAt(row []string, columns map[string]int, field string) string {
	index, ok := columns[field]
	if !ok || index >= len(row) {
		return constant.Empty
	}

	return strings.TrimSpace(row[index])
}

func parsePrice(raw string) (float64, bool) {
	match := pricePattern.FindString(raw)
	if match == constant.Empty {
		return 0, false
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return 0, false
	}

	return price, true
}

// normalizeCategory maps a free-text category cell onto the enum, or
// returns empty when it does not resolve.
func normalizeCategory(raw string) string {
	key := normalize(raw)
	if key == constant.Empty {
		return constant.Empty
	}

	for _, category := range constant.MenuCategories {
		if key == category {
			return category
		}
	}

	// Common aliases.
	switch key {
	case "spiritueux", "spirits", "alcool":
		return constant.CategorySpirits
	case "soft", "softs", "sans alcool":
		return constant.CategorySoft
	case "bieres", "beers":
		return constant.CategoryBiere
	case "vins", "wines":
		return constant.CategoryVin
	case "aperitifs":
		return constant.CategoryAperitif
	case "champagnes":
		return constant.CategoryChampagne
	}

	return constant.Empty
}

func inferCategory(name string) string {
	key := normalize(name)

	for _, entry := range categoryKeywords {
		if strings.Contains(key, entry.keyword) {
			return entry.category
		}
	}

	return constant.CategorySoft
}

func inferFormat(text string) string {
	key := normalize(text)

	for _, entry := range formatKeywords {
		if strings.Contains(key, entry.keyword) {
			return entry.format
		}
	}

	return constant.DefaultMenuFormat
}

func inferVolume(text string) string {
	match := volumePattern.FindStringSubmatch(text)
	if match == nil {
		return constant.Empty
	}

	return strings.ToLower(strings.ReplaceAll(match[1]+match[2], ",", "."))
}

// normalize lowercases and strips the accents common in FR menu files.
func normalize(raw string) string {
	replacer := strings.NewReplacer(
		"é", "e", "è", "e", "ê", "e", "ë", "e",
		"à", "a", "â", "a",
		"î", "i", "ï", "i",
		"ô", "o",
		"û", "u", "ù", "u",
		"ç", "c",
	)

	return strings.TrimSpace(replacer.Replace(strings.ToLower(raw)))
}
