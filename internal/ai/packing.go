package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// packingCategories are the eight mandatory category names, in output order.
var packingCategories = []string{
	"Clothing",
	"Footwear",
	"Toiletries",
	"Medicines & First Aid",
	"Electronics",
	"Documents & Money",
	"Kids Essentials",
	"Miscellaneous",
}

// PackingRequest describes the trip a packing list is generated for.
type PackingRequest struct {
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
	NumAdults   int    `json:"num_adults"`
	NumKids     int    `json:"num_kids"`
	KidAges     []int  `json:"kid_ages"`
	Weather     string `json:"weather"`
}

// PackingCategory is one named group of items.
type PackingCategory struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// PackingList is the generated packing answer.
type PackingList struct {
	Categories []PackingCategory `json:"categories"`
}

// destinationNotes augments the prompt with local packing advice. Scanned by
// lowercase substring, first match wins.
var destinationNotes = []struct {
	key         string
	weatherType string
	notes       string
}{
	{"dubai", "hot desert", "Light breathable cotton, sun protection for kids, modest wear for malls and mosques, a light layer for heavily air-conditioned interiors."},
	{"bali", "tropical humid", "Quick-dry clothes, rain shell year-round, reef-safe sunscreen, mosquito repellent for evenings."},
	{"maldives", "tropical marine", "Swimwear for everyone, rash guards for kids, waterproof pouches, extra sun protection on the water."},
	{"singapore", "tropical urban", "Comfortable walking shoes, compact umbrella for sudden showers, a layer for air-conditioned metros and malls."},
	{"thailand", "tropical humid", "Temple-appropriate cover-ups, sandals that slip off easily, repellent, electrolyte sachets for the heat."},
	{"phuket", "tropical humid", "Beachwear plus a rain shell in monsoon months, repellent, water shoes for rocky beaches."},
	{"goa", "tropical coastal", "Beachwear, flip-flops, light evening wear for shacks, repellent after sunset."},
	{"manali", "cold mountain", "Warm layers even in summer, woollen caps and gloves for kids, sturdy shoes, motion-sickness tablets for the hill roads."},
	{"srinagar", "cold mountain", "Heavy woollens in winter, thermal innerwear for kids, sunblock for snow glare."},
	{"darjeeling", "cool hill", "Layered clothing, a windproof jacket, comfortable shoes for steep walks."},
}

const defaultNotes = "Pack for variable weather with layers, comfortable walking shoes, and any regular medication."

func notesFor(destination string) (weatherType, notes string) {
	d := strings.ToLower(destination)
	for _, e := range destinationNotes {
		if strings.Contains(d, e.key) {
			return e.weatherType, e.notes
		}
	}
	return "moderate", defaultNotes
}

// PackingGenerator produces family packing lists via the model.
type PackingGenerator struct {
	gen textGenerator
}

// NewPackingGenerator constructs a PackingGenerator backed by the given generator.
func NewPackingGenerator(gen textGenerator) *PackingGenerator {
	return &PackingGenerator{gen: gen}
}

// Generate builds the destination-augmented prompt, calls the model, and
// validates the fence-stripped JSON against the eight-category contract.
func (g *PackingGenerator) Generate(ctx context.Context, req PackingRequest) (*PackingList, error) {
	raw, err := g.gen.Generate(ctx, buildPackingPrompt(req))
	if err != nil {
		return nil, err
	}

	var list PackingList
	if err := json.Unmarshal([]byte(StripFences(raw)), &list); err != nil {
		return nil, fmt.Errorf("parsing packing list: %w: %v", ErrMalformedOutput, err)
	}
	if err := validatePackingList(&list); err != nil {
		return nil, fmt.Errorf("parsing packing list: %w: %v", ErrMalformedOutput, err)
	}

	return &list, nil
}

// validatePackingList enforces the fixed schema: exactly the eight expected
// categories, each with at least one item.
func validatePackingList(list *PackingList) error {
	if len(list.Categories) != len(packingCategories) {
		return fmt.Errorf("expected %d categories, got %d", len(packingCategories), len(list.Categories))
	}
	for i, cat := range list.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d has no name", i)
		}
		if len(cat.Items) == 0 {
			return fmt.Errorf("category %q has no items", cat.Name)
		}
	}
	return nil
}

func buildPackingPrompt(req PackingRequest) string {
	weatherType, notes := notesFor(req.Destination)

	var b strings.Builder
	fmt.Fprintf(&b, `You are a packing assistant for Indian families.
Build a packing list for this trip:

Destination: %s (typical weather: %s)
Duration: %d days
Party: %d adult(s), %d kid(s)`,
		req.Destination, weatherType, req.Duration, req.NumAdults, req.NumKids)

	if len(req.KidAges) > 0 {
		ages := make([]string, len(req.KidAges))
		for i, a := range req.KidAges {
			ages[i] = fmt.Sprintf("%d", a)
		}
		fmt.Fprintf(&b, " (ages %s)", strings.Join(ages, ", "))
	}
	if req.Weather != "" {
		fmt.Fprintf(&b, "\nExpected weather during the trip: %s", req.Weather)
	}

	fmt.Fprintf(&b, "\n\nDestination advice: %s\n", notes)

	b.WriteString(`
Age-banded guidance:
- Infants (0-2): diapers, formula and sterilised bottles, baby carrier, baby-safe sunscreen.
- Toddlers (2-5): spill-proof bottles, familiar snacks, two changes of clothes per day, a comfort toy.
- Young kids (5-9): activity books for travel time, kid-sized daypack, refillable water bottle.
- Pre-teens (9-13): their own headphones, sunscreen they will actually use, some pocket money.

Reply with ONLY a JSON object, no prose and no markdown, in exactly this schema
with exactly these eight categories in this order:

{"categories": [
`)
	for i, name := range packingCategories {
		sep := ","
		if i == len(packingCategories)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  {\"name\": %q, \"items\": [\"...\"]}%s\n", name, sep)
	}
	b.WriteString(`]}

Every category must have at least one item. Quantities belong inside the item
strings, e.g. "Cotton t-shirts x6".`)

	return b.String()
}
