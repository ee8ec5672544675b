package catalog

import "fmt"

// Source tags stored in the supplement rows for provenance.
const (
	SourceOpenFoodFacts = "open_food_facts"
	SourceBulkCSV       = "open_food_facts_bulk"
	SourceUSDA          = "usda"
	SourceNIH           = "nih_dsld"
	SourceSpoonacular   = "spoonacular"
	SourceManual        = "manual_entry"
)

// ErrUnknownSource is returned when a source tag has no registered binding.
// Routing records to the right binding is the caller's job; the normalizer
// never sniffs the record shape to guess its vendor.
var ErrUnknownSource = fmt.Errorf("no catalog registered for source")

// Binding ties one source tag to everything vendor-specific the normalizer
// needs: its nutrient catalog, the unknown-key policy, and the aliases
// mapping canonical supplement fields to the vendor's raw field names.
// Resolved once at adapter construction time, not per record.
type Binding struct {
	Catalog *Catalog
	Unknown UnknownKeyPolicy
	// Fields maps a canonical field name ("name", "barcode", "brand", …)
	// to the vendor keys to probe, in preference order.
	Fields map[string][]string
}

// Registry maps source tags to their bindings.
type Registry struct {
	bindings map[string]Binding
}

func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]Binding)}
}

func (r *Registry) Register(source string, b Binding) {
	r.bindings[source] = b
}

// Resolve returns the binding for a source tag.
func (r *Registry) Resolve(source string) (Binding, error) {
	b, ok := r.bindings[source]
	if !ok {
		return Binding{}, fmt.Errorf("%w: %q", ErrUnknownSource, source)
	}
	return b, nil
}

// Default builds the registry covering every shipped adapter family.
func Default() *Registry {
	r := NewRegistry()

	off := OpenFoodFacts()
	offFields := map[string][]string{
		"name":         {"product_name_en", "product_name"},
		"barcode":      {"code"},
		"brand":        {"brands"},
		"category":     {"categories_en", "categories"},
		"serving_size": {"serving_size"},
		"ingredients":  {"ingredients_text_en", "ingredients_text"},
		"image_url":    {"image_url"},
	}

	r.Register(SourceOpenFoodFacts, Binding{Catalog: off, Unknown: DropUnknown, Fields: offFields})
	// The bulk dump carries the full open column set, so unknown nutrient
	// columns are humanized instead of dropped.
	r.Register(SourceBulkCSV, Binding{Catalog: off, Unknown: HumanizeUnknown, Fields: offFields})

	r.Register(SourceUSDA, Binding{
		Catalog: USDA(),
		Unknown: DropUnknown,
		Fields: map[string][]string{
			"name":         {"description"},
			"barcode":      {"gtinUpc"},
			"brand":        {"brandOwner"},
			"category":     {"foodCategory"},
			"serving_size": {"servingSize"},
			"serving_unit": {"servingSizeUnit"},
			"ingredients":  {"ingredients"},
		},
	})

	r.Register(SourceNIH, Binding{
		// DSLD label search returns no parsed nutrient amounts, only label
		// metadata; the catalog is empty on purpose.
		Catalog: New(nil),
		Unknown: DropUnknown,
		Fields: map[string][]string{
			"name":         {"product_name"},
			"barcode":      {"barcode"},
			"brand":        {"brand_name"},
			"serving_size": {"serving_size"},
			"description":  {"net_contents"},
		},
	})

	r.Register(SourceSpoonacular, Binding{
		Catalog: Spoonacular(),
		Unknown: DropUnknown,
		Fields: map[string][]string{
			"name":         {"title"},
			"barcode":      {"upc"},
			"brand":        {"brand"},
			"image_url":    {"image"},
			"serving_size": {"serving_size"},
			"serving_unit": {"serving_unit"},
		},
	})

	r.Register(SourceManual, Binding{
		Catalog: Manual(),
		Unknown: DropUnknown,
		Fields: map[string][]string{
			"name":         {"name"},
			"barcode":      {"barcode"},
			"brand":        {"brand"},
			"category":     {"category"},
			"serving_size": {"serving_size"},
			"serving_unit": {"serving_unit"},
			"ingredients":  {"ingredients"},
			"warnings":     {"warnings"},
			"description":  {"description"},
		},
	})

	return r
}
